// Package ports defines interfaces for external dependencies.
// Clean Architecture: These are the boundaries - usecases depend on these abstractions,
// not concrete implementations. Adapters implement these interfaces.
package ports

import (
	"context"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// EmbeddingService maps text to fixed-dimension vectors.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// GenerationService produces text from a chat-completion model.
// Both answer generation and translation run through it.
type GenerationService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// VectorStore persists and queries embeddings partitioned by tenant.
// A tenant namespace is the multi-tenancy boundary: records upserted under
// one tenant are never visible to queries issued under another.
type VectorStore interface {
	// Upsert writes documents and their vectors into the tenant's namespace.
	Upsert(ctx context.Context, tenantID string, docs []entities.Document, vectors [][]float32) error

	// Query returns the topK most similar documents from the tenant's
	// namespace, ordered by descending cosine similarity.
	Query(ctx context.Context, tenantID string, vector []float32, topK int) ([]entities.Match, error)
}

// LanguageDetector identifies the ISO 639-1 code of free text.
// Detection is advisory; callers fall back to a default code on error.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// SeedLoader reads a FAQ seed file into a tenant batch.
type SeedLoader interface {
	Load(ctx context.Context, path string) (tenantID string, faqs []entities.FAQ, err error)
}

// FileWatcher monitors a directory for changes.
type FileWatcher interface {
	// Watch starts monitoring the directory and emits events.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent represents a file system change.
type FileEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)
