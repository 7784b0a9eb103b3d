package usecases

import "github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"

// Capability names as they appear in degraded-mode messages.
const (
	capEmbedding  = "embedding service"
	capGeneration = "generation service"
	capStore      = "vector store"
)

// Capabilities holds the external service handles established once at
// startup. A nil handle means the capability was not configured. Pipelines
// evaluate this exactly once on entry and switch into degraded mode instead
// of re-checking ad hoc before every external call.
type Capabilities struct {
	Embedder  ports.EmbeddingService
	Generator ports.GenerationService
	Store     ports.VectorStore
}

// MissingForIngest lists the capabilities the ingest pipeline needs
// but does not have.
func (c Capabilities) MissingForIngest() []string {
	var missing []string
	if c.Embedder == nil {
		missing = append(missing, capEmbedding)
	}
	if c.Store == nil {
		missing = append(missing, capStore)
	}
	return missing
}

// MissingForQuery lists the capabilities the query pipeline needs
// but does not have.
func (c Capabilities) MissingForQuery() []string {
	missing := c.MissingForIngest()
	if c.Generator == nil {
		missing = append(missing, capGeneration)
	}
	return missing
}
