package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

func TestRetrieve_JoinsMatchesInOrder(t *testing.T) {
	store := &mockVectorStore{matches: []entities.Match{
		{Document: entities.Document{Content: "first"}, Score: 0.9},
		{Document: entities.Document{Content: "second"}, Score: 0.7},
	}}
	r := NewRetriever(&mockEmbedder{}, store, 3)

	got, err := r.Retrieve(context.Background(), "t1", "question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first\n\nsecond" {
		t.Errorf("unexpected context block: %q", got)
	}
}

func TestRetrieve_EmptyResultIsEmptyString(t *testing.T) {
	r := NewRetriever(&mockEmbedder{}, &mockVectorStore{}, 3)

	got, err := r.Retrieve(context.Background(), "t1", "question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

func TestRetrieve_EmbeddingFailure(t *testing.T) {
	embedder := &mockEmbedder{embedFn: func(string) ([]float32, error) {
		return nil, errors.New("rate limited")
	}}
	store := &mockVectorStore{}
	r := NewRetriever(embedder, store, 3)

	if _, err := r.Retrieve(context.Background(), "t1", "question"); err == nil {
		t.Fatal("expected an error")
	}
	if store.queryCalls != 0 {
		t.Error("store must not be queried after an embedding failure")
	}
}

func TestRetrieve_StoreFailure(t *testing.T) {
	store := &mockVectorStore{queryErr: errors.New("index offline")}
	r := NewRetriever(&mockEmbedder{}, store, 3)

	if _, err := r.Retrieve(context.Background(), "t1", "question"); err == nil {
		t.Fatal("expected an error")
	}
}
