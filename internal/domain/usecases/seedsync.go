package usecases

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

// SeedSync keeps the vector store in sync with a directory of FAQ seed
// files. Every JSON file is one tenant batch; files are ingested on startup
// and re-ingested whenever they are created or modified.
type SeedSync struct {
	watcher ports.FileWatcher
	loader  ports.SeedLoader
	ingest  *IngestUseCase
	logger  *zap.Logger
}

// NewSeedSync creates a SeedSync with injected dependencies.
func NewSeedSync(watcher ports.FileWatcher, loader ports.SeedLoader, ingest *IngestUseCase, logger *zap.Logger) *SeedSync {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedSync{
		watcher: watcher,
		loader:  loader,
		ingest:  ingest,
		logger:  logger,
	}
}

// Run ingests all existing seed files, then blocks consuming watcher events
// until the context is cancelled.
func (s *SeedSync) Run(ctx context.Context, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		s.ingestFile(ctx, path)
	}

	events, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Operation == ports.FileDeleted {
				// Records stay in the store; seed files are additive.
				continue
			}
			s.ingestFile(ctx, event.Path)
		}
	}
}

func (s *SeedSync) ingestFile(ctx context.Context, path string) {
	tenantID, faqs, err := s.loader.Load(ctx, path)
	if err != nil {
		s.logger.Warn("skipping unreadable seed file",
			zap.String("path", path), zap.Error(err))
		return
	}
	if ok := s.ingest.Ingest(ctx, faqs, tenantID); !ok {
		s.logger.Error("seed file ingest failed",
			zap.String("path", path), zap.String("tenant_id", tenantID))
		return
	}
	s.logger.Info("seed file ingested",
		zap.String("path", path),
		zap.String("tenant_id", tenantID),
		zap.Int("faqs", len(faqs)))
}
