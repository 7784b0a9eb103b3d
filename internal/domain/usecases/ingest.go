// Package usecases contains application business rules.
// Clean Architecture: Usecases orchestrate entities and depend on port interfaces.
package usecases

import (
	"context"

	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// IngestUseCase turns FAQ batches into vector records in the tenant's
// namespace. Single Responsibility: only ingestion logic.
type IngestUseCase struct {
	caps   Capabilities
	logger *zap.Logger
}

// NewIngestUseCase creates an IngestUseCase with injected dependencies.
func NewIngestUseCase(caps Capabilities, logger *zap.Logger) *IngestUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestUseCase{caps: caps, logger: logger}
}

// Ingest embeds one FAQ batch and upserts it into the tenant's namespace.
// An empty batch trivially succeeds. When the embedding or store capability
// is absent the ingest is simulated (logged, no external calls) and still
// reports success - the documented degraded mode, not an error. Any failure
// in the configured path aborts the whole batch and returns false; partial
// writes are not rolled back.
func (uc *IngestUseCase) Ingest(ctx context.Context, faqs []entities.FAQ, tenantID string) bool {
	if len(faqs) == 0 {
		return true
	}

	if missing := uc.caps.MissingForIngest(); len(missing) > 0 {
		uc.logger.Info("ingest simulated in degraded mode",
			zap.String("tenant_id", tenantID),
			zap.Int("faqs", len(faqs)),
			zap.Strings("missing", missing))
		return true
	}

	docs := make([]entities.Document, len(faqs))
	texts := make([]string, len(faqs))
	for i, faq := range faqs {
		docs[i] = entities.NewDocument(faq, tenantID, i)
		texts[i] = docs[i].Content
	}

	vectors, err := uc.caps.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		uc.logger.Error("embedding FAQ batch failed",
			zap.String("tenant_id", tenantID), zap.Error(err))
		return false
	}

	if err := uc.caps.Store.Upsert(ctx, tenantID, docs, vectors); err != nil {
		uc.logger.Error("upserting FAQ batch failed",
			zap.String("tenant_id", tenantID), zap.Error(err))
		return false
	}

	uc.logger.Info("ingested FAQ batch",
		zap.String("tenant_id", tenantID), zap.Int("faqs", len(faqs)))
	return true
}
