// Package http provides the HTTP server infrastructure.
// Framework/driver layer - the outermost circle; it adapts gin to the
// ingest and query pipelines and keeps all protocol concerns out of them.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/usecases"
)

// Server is the HTTP server for the multilingual FAQ API.
type Server struct {
	ingestUseCase *usecases.IngestUseCase
	queryUseCase  *usecases.QueryUseCase
	apiSecret     string
	addr          string
	logger        *zap.Logger
	engine        *gin.Engine
}

// NewServer creates a new HTTP server.
func NewServer(
	ingestUC *usecases.IngestUseCase,
	queryUC *usecases.QueryUseCase,
	apiSecret string,
	addr string,
	allowedOrigins []string,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		ingestUseCase: ingestUC,
		queryUseCase:  queryUC,
		apiSecret:     apiSecret,
		addr:          addr,
		logger:        logger,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(RequestLogger(logger), CORS(allowedOrigins), gin.Recovery())

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)

	v1 := engine.Group("/v1", RequireAPIKey(apiSecret))
	v1.POST("/ingest", s.handleIngest)
	v1.POST("/query", s.handleQuery)

	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the HTTP server until the context is cancelled, then drains
// in-flight requests with a bounded shutdown.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	s.logger.Info("server starting", zap.String("addr", s.addr))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown did not drain cleanly", zap.Error(err))
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
