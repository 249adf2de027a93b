package http

import (
	"net/http"

	"video-summarizer/domain/dto"

	"github.com/gin-gonic/gin"
)

// IHealthHandler defines the interface for liveness probes
type IHealthHandler interface {
	Healthz(ctx *gin.Context)
}

type HealthHandler struct{}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler() IHealthHandler {
	return &HealthHandler{}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
