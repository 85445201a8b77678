package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// readinessTimeout bounds the database ping of the readiness probe
const readinessTimeout = 2 * time.Second

// DatabasePinger reports whether the database answers
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	db      DatabasePinger
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabasePinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Live godoc
// @ID           healthLive
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
}

// Ready godoc
// @ID           healthReady
// @Summary      Readiness probe
// @Description  Pings the database
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "unreachable",
			Version:  h.version,
		})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok", Version: h.version})
}
