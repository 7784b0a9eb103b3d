package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

// Retriever composes embedding and namespace-scoped similarity search into
// a context string for the answer generator.
type Retriever struct {
	embedder ports.EmbeddingService
	store    ports.VectorStore
	topK     int
}

// NewRetriever creates a Retriever with injected dependencies.
func NewRetriever(embedder ports.EmbeddingService, store ports.VectorStore, topK int) *Retriever {
	if topK <= 0 {
		topK = 3
	}
	return &Retriever{
		embedder: embedder,
		store:    store,
		topK:     topK,
	}
}

// Retrieve embeds the query, fetches the tenant's top matches and joins
// their contents with a blank-line separator, preserving similarity order.
// An empty result set yields an empty string, not an error.
func (r *Retriever) Retrieve(ctx context.Context, tenantID, query string) (string, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embedding query: %w", err)
	}

	matches, err := r.store.Query(ctx, tenantID, vector, r.topK)
	if err != nil {
		return "", fmt.Errorf("searching vectors: %w", err)
	}

	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = m.Document.Content
	}
	return strings.Join(parts, "\n\n"), nil
}
