package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

type stubWatcher struct {
	events chan ports.FileEvent
}

func (w *stubWatcher) Watch(ctx context.Context, dir string) (<-chan ports.FileEvent, error) {
	return w.events, nil
}

func (w *stubWatcher) Stop() error { return nil }

type stubLoader struct {
	tenantID string
	faqs     []entities.FAQ
	loaded   []string
}

func (l *stubLoader) Load(ctx context.Context, path string) (string, []entities.FAQ, error) {
	l.loaded = append(l.loaded, path)
	return l.tenantID, l.faqs, nil
}

func TestSeedSync_IngestsExistingFilesThenWatches(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "acme.json")
	if err := os.WriteFile(seedPath, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := &mockVectorStore{}
	ingest := NewIngestUseCase(Capabilities{Embedder: &mockEmbedder{}, Store: store}, nil)
	loader := &stubLoader{tenantID: "acme", faqs: []entities.FAQ{{Question: "Q", Answer: "A"}}}
	watcher := &stubWatcher{events: make(chan ports.FileEvent, 1)}

	watcher.events <- ports.FileEvent{Path: seedPath, Operation: ports.FileModified}
	close(watcher.events)

	sync := NewSeedSync(watcher, loader, ingest, nil)
	if err := sync.Run(context.Background(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Once on startup, once for the modify event.
	if len(loader.loaded) != 2 {
		t.Fatalf("expected 2 loads, got %d", len(loader.loaded))
	}
	if store.upsertCalls != 2 {
		t.Errorf("expected 2 upserts, got %d", store.upsertCalls)
	}
}

func TestSeedSync_DeleteEventsAreIgnored(t *testing.T) {
	dir := t.TempDir()

	store := &mockVectorStore{}
	ingest := NewIngestUseCase(Capabilities{Embedder: &mockEmbedder{}, Store: store}, nil)
	loader := &stubLoader{tenantID: "acme"}
	watcher := &stubWatcher{events: make(chan ports.FileEvent, 1)}

	watcher.events <- ports.FileEvent{Path: filepath.Join(dir, "acme.json"), Operation: ports.FileDeleted}
	close(watcher.events)

	sync := NewSeedSync(watcher, loader, ingest, nil)
	if err := sync.Run(context.Background(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loader.loaded) != 0 {
		t.Errorf("delete events must not trigger a load, got %d", len(loader.loaded))
	}
}

func TestSeedSync_StopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()

	ingest := NewIngestUseCase(Capabilities{}, nil)
	watcher := &stubWatcher{events: make(chan ports.FileEvent)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewSeedSync(watcher, &stubLoader{}, ingest, nil).Run(ctx, dir)
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
