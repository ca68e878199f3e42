package handlers

import (
	"net/http"

	"resumewright/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	logger logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With("handler", "health"),
	}
}

// Health returns the health status of the service
func (hh *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "resumewright",
		"version": "1.0.0",
	})
}

// Ready returns the readiness status of the service. The conversion
// pipeline has no external dependencies (no database, no cache, no
// object store), so readiness is equivalent to liveness.
func (hh *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
