package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// mockEmbedder implements ports.EmbeddingService for testing
type mockEmbedder struct {
	calls   int
	embedFn func(text string) ([]float32, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	if m.embedFn != nil {
		return m.embedFn(text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i := range texts {
		emb, err := m.Embed(ctx, texts[i])
		if err != nil {
			return nil, err
		}
		result[i] = emb
	}
	return result, nil
}

// mockVectorStore implements ports.VectorStore for testing
type mockVectorStore struct {
	upserts     map[string][]entities.Document // tenant -> docs
	matches     []entities.Match
	upsertErr   error
	queryErr    error
	upsertCalls int
	queryCalls  int
}

func (m *mockVectorStore) Upsert(ctx context.Context, tenantID string, docs []entities.Document, vectors [][]float32) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.upserts == nil {
		m.upserts = make(map[string][]entities.Document)
	}
	m.upserts[tenantID] = append(m.upserts[tenantID], docs...)
	return nil
}

func (m *mockVectorStore) Query(ctx context.Context, tenantID string, vector []float32, topK int) ([]entities.Match, error) {
	m.queryCalls++
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.matches, nil
}

func TestIngest_EmptyBatchSucceedsWithoutSideEffects(t *testing.T) {
	embedder := &mockEmbedder{}
	store := &mockVectorStore{}
	uc := NewIngestUseCase(Capabilities{Embedder: embedder, Store: store}, nil)

	if ok := uc.Ingest(context.Background(), nil, "t1"); !ok {
		t.Fatal("empty batch should succeed")
	}
	if embedder.calls != 0 || store.upsertCalls != 0 {
		t.Error("empty batch must not contact any external system")
	}
}

func TestIngest_DegradedModeSimulatesSuccess(t *testing.T) {
	// No embedder and no store: ingest is simulated, not failed.
	uc := NewIngestUseCase(Capabilities{}, nil)

	faqs := []entities.FAQ{{Question: "Q", Answer: "A"}}
	if ok := uc.Ingest(context.Background(), faqs, "t1"); !ok {
		t.Fatal("degraded-mode ingest should report success")
	}
}

func TestIngest_DegradedModeMakesNoExternalCalls(t *testing.T) {
	// Store configured but embedder missing: still degraded, store untouched.
	store := &mockVectorStore{}
	uc := NewIngestUseCase(Capabilities{Store: store}, nil)

	faqs := []entities.FAQ{{Question: "Q", Answer: "A"}}
	if ok := uc.Ingest(context.Background(), faqs, "t1"); !ok {
		t.Fatal("degraded-mode ingest should report success")
	}
	if store.upsertCalls != 0 {
		t.Error("degraded-mode ingest must not touch the store")
	}
}

func TestIngest_BuildsPositionalRecordIDs(t *testing.T) {
	embedder := &mockEmbedder{}
	store := &mockVectorStore{}
	uc := NewIngestUseCase(Capabilities{Embedder: embedder, Store: store}, nil)

	faqs := []entities.FAQ{
		{Question: "How do I cancel?", Answer: "Go to Orders and click Cancel."},
		{Question: "How do I pay?", Answer: "We accept cards."},
	}
	if ok := uc.Ingest(context.Background(), faqs, "t1"); !ok {
		t.Fatal("ingest failed")
	}

	docs := store.upserts["t1"]
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Metadata.RecordID != "t1_0" || docs[1].Metadata.RecordID != "t1_1" {
		t.Errorf("unexpected record IDs: %s, %s", docs[0].Metadata.RecordID, docs[1].Metadata.RecordID)
	}
	if docs[0].Content != "Question: How do I cancel?\nAnswer: Go to Orders and click Cancel." {
		t.Errorf("unexpected content: %q", docs[0].Content)
	}
}

func TestIngest_EmbeddingFailureAbortsBatch(t *testing.T) {
	embedder := &mockEmbedder{embedFn: func(string) ([]float32, error) {
		return nil, errors.New("rate limited")
	}}
	store := &mockVectorStore{}
	uc := NewIngestUseCase(Capabilities{Embedder: embedder, Store: store}, nil)

	faqs := []entities.FAQ{{Question: "Q", Answer: "A"}}
	if ok := uc.Ingest(context.Background(), faqs, "t1"); ok {
		t.Fatal("ingest should fail when embedding fails")
	}
	if store.upsertCalls != 0 {
		t.Error("nothing should be upserted after an embedding failure")
	}
}

func TestIngest_UpsertFailureReportsFalse(t *testing.T) {
	embedder := &mockEmbedder{}
	store := &mockVectorStore{upsertErr: errors.New("index unavailable")}
	uc := NewIngestUseCase(Capabilities{Embedder: embedder, Store: store}, nil)

	faqs := []entities.FAQ{{Question: "Q", Answer: "A"}}
	if ok := uc.Ingest(context.Background(), faqs, "t1"); ok {
		t.Fatal("ingest should fail when the store rejects the batch")
	}
}
