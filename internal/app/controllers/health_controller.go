package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StorePinger verifies the data store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service and store health.
type HealthController struct {
	store StorePinger
}

// NewHealthController creates a new HealthController
func NewHealthController(store StorePinger) *HealthController {
	return &HealthController{store: store}
}

// HealthCheck reports service health including store reachability
// @Summary Health check
// @Description Reports service health; degraded when the data store is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Healthy"
// @Failure 503 {object} map[string]interface{} "Store unreachable"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "ok",
		"store":     "ok",
		"timestamp": time.Now().UTC(),
	}
	if err := c.store.Ping(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
		body["store"] = "unreachable"
	}
	ctx.JSON(status, body)
}

// Ping is a trivial liveness probe
// @Summary Ping
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "pong"
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
