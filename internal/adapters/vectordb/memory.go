package vectordb

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

type memoryRecord struct {
	doc    entities.Document
	vector []float32
}

// InMemoryStore is a namespace-partitioned in-memory vector store, used for
// tests and for running without external infrastructure. Records are keyed
// by record ID inside each namespace, so re-ingesting a batch position
// overwrites it - same semantics as the remote backends.
type InMemoryStore struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]memoryRecord
}

// NewInMemoryStore creates an empty in-memory vector store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		namespaces: make(map[string]map[string]memoryRecord),
	}
}

// Upsert writes the batch into the tenant's namespace.
func (s *InMemoryStore) Upsert(ctx context.Context, tenantID string, docs []entities.Document, vectors [][]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[tenantID]
	if !ok {
		ns = make(map[string]memoryRecord)
		s.namespaces[tenantID] = ns
	}
	for i, doc := range docs {
		ns[doc.Metadata.RecordID] = memoryRecord{doc: doc, vector: vectors[i]}
	}
	return nil
}

// Query scans only the tenant's namespace and returns the topK records by
// descending cosine similarity.
func (s *InMemoryStore) Query(ctx context.Context, tenantID string, vector []float32, topK int) ([]entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		topK = 3
	}

	var matches []entities.Match
	for _, rec := range s.namespaces[tenantID] {
		matches = append(matches, entities.Match{
			Document: rec.doc,
			Score:    cosineSimilarity(vector, rec.vector),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Count returns the number of records in a tenant's namespace.
func (s *InMemoryStore) Count(tenantID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces[tenantID])
}

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
