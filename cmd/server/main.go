// Command server runs the multilingual FAQ answering service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/embedding"
	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/filewatcher"
	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/langdetect"
	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/llm"
	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/seed"
	"github.com/cangirhabil/LinguaBot-AI/internal/adapters/vectordb"
	"github.com/cangirhabil/LinguaBot-AI/internal/config"
	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
	"github.com/cangirhabil/LinguaBot-AI/internal/domain/usecases"
	apphttp "github.com/cangirhabil/LinguaBot-AI/internal/infrastructure/http"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.APISecret == "" {
		logger.Warn("API_KEY not set, all authenticated endpoints will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	caps := buildCapabilities(ctx, cfg, logger)

	detector := langdetect.NewLinguaDetector()
	ingestUC := usecases.NewIngestUseCase(caps, logger)
	queryUC := usecases.NewQueryUseCase(caps, detector, cfg.TopK,
		usecases.Language(cfg.DefaultLanguage), logger)

	if cfg.SeedDir != "" {
		go runSeedSync(ctx, cfg.SeedDir, ingestUC, logger)
	}

	server := apphttp.NewServer(ingestUC, queryUC, cfg.APISecret, cfg.Addr, cfg.AllowedOrigins, logger)
	if err := server.Start(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// buildCapabilities assembles the external capability set. Each capability
// is independently optional: a missing credential or a failed index
// provisioning leaves that handle nil and the pipelines run degraded.
func buildCapabilities(ctx context.Context, cfg *config.Config, logger *zap.Logger) usecases.Capabilities {
	var caps usecases.Capabilities

	if cfg.OpenAIAPIKey != "" {
		caps.Embedder = embedding.NewOpenAIAdapter(embedding.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.EmbeddingModel,
			Timeout: cfg.RequestTimeout,
		}, logger)
		caps.Generator = llm.NewOpenAIAdapter(llm.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.ChatModel,
			Timeout: cfg.RequestTimeout,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, embedding and generation run degraded")
	}

	caps.Store = buildVectorStore(ctx, cfg, logger)
	return caps
}

func buildVectorStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) ports.VectorStore {
	switch cfg.VectorBackend {
	case "memory":
		return vectordb.NewInMemoryStore()

	case "sqlite":
		store, err := vectordb.NewSQLiteStore(cfg.DataPath)
		if err != nil {
			logger.Error("sqlite store unavailable, vector store runs degraded", zap.Error(err))
			return nil
		}
		return store

	case "pinecone", "":
		if cfg.PineconeAPIKey == "" {
			logger.Warn("PINECONE_API_KEY not set, vector store runs degraded")
			return nil
		}
		store, err := vectordb.NewPineconeStore(vectordb.PineconeConfig{
			APIKey:    cfg.PineconeAPIKey,
			IndexName: cfg.PineconeIndex,
			Timeout:   cfg.RequestTimeout,
		}, logger)
		if err != nil {
			logger.Error("pinecone client invalid, vector store runs degraded", zap.Error(err))
			return nil
		}
		// Provision before accepting traffic; a failure here degrades the
		// store capability only, the service still starts.
		if err := store.EnsureIndex(ctx); err != nil {
			logger.Error("pinecone index provisioning failed, vector store runs degraded", zap.Error(err))
			return nil
		}
		return store

	default:
		logger.Error("unknown vector backend, vector store runs degraded",
			zap.String("backend", cfg.VectorBackend))
		return nil
	}
}

func runSeedSync(ctx context.Context, dir string, ingestUC *usecases.IngestUseCase, logger *zap.Logger) {
	watcher, err := filewatcher.NewFSNotifyWatcher(nil, logger)
	if err != nil {
		logger.Error("seed watcher unavailable", zap.Error(err))
		return
	}
	defer watcher.Stop()

	sync := usecases.NewSeedSync(watcher, seed.NewJSONLoader(), ingestUC, logger)
	if err := sync.Run(ctx, dir); err != nil && ctx.Err() == nil {
		logger.Error("seed sync stopped", zap.Error(err))
	}
}
