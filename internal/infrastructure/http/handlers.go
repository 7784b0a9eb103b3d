package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// FAQs deliberately carries no "required" binding: an empty batch is a
// valid, trivially successful ingest.
type ingestRequest struct {
	FAQs   []entities.FAQ `json:"faqs"`
	UserID string         `json:"user_id" binding:"required"`
}

type ingestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Message is not "required": an empty message still flows through the
// pipeline, where language detection falls back to the default code.
type queryRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id" binding:"required"`
}

type queryResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// handleRoot returns the liveness banner.
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Multilingual Chatbot AI Service",
		"status":  "running",
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ai-service",
	})
}

// handleIngest stores a tenant's FAQ batch in the vector index.
func (s *Server) handleIngest(c *gin.Context) {
	defer s.recoverTo(c, "Ingestion failed")

	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	if ok := s.ingestUseCase.Ingest(c.Request.Context(), req.FAQs, req.UserID); !ok {
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "Failed to ingest data"})
		return
	}

	c.JSON(http.StatusOK, ingestResponse{
		Status:  "success",
		Message: "Data ingested successfully",
	})
}

// handleQuery answers a user message against the tenant's knowledge base.
func (s *Server) handleQuery(c *gin.Context) {
	defer s.recoverTo(c, "Query failed")

	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	answer := s.queryUseCase.Answer(c.Request.Context(), req.Message, req.UserID)
	c.JSON(http.StatusOK, queryResponse{Answer: answer})
}

// recoverTo converts a handler panic into the operation's error payload.
func (s *Server) recoverTo(c *gin.Context, operation string) {
	if r := recover(); r != nil {
		s.logger.Error("handler panic",
			zap.String("path", c.FullPath()), zap.Any("panic", r))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			errorResponse{Detail: fmt.Sprintf("%s: %v", operation, r)})
	}
}
