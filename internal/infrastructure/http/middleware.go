package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// apiKeyHeader carries the shared secret issued to the backend callers.
const apiKeyHeader = "X-API-KEY"

// RequireAPIKey validates the X-API-KEY header against the configured
// secret. Rejections happen here, before any pipeline work: a missing
// header is a malformed request, a wrong value is unauthorized, and a
// server with no secret configured cannot authenticate anyone at all.
func RequireAPIKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				errorResponse{Detail: "API key not configured"})
			return
		}

		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
				errorResponse{Detail: "Missing X-API-KEY header"})
			return
		}
		if key != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorResponse{Detail: "Invalid API key"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one structured line per request, tagged with a
// generated request id.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// CORS allows the configured frontend origins to call the API.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-KEY")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
