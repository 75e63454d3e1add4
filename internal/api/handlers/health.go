package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	redis redis.Cmdable
}

// NewHealthHandler creates a new health handler. redisClient may be nil when
// rate limiting is disabled.
func NewHealthHandler(db *gorm.DB, redisClient redis.Cmdable) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  h.checkServices(c, "healthy", "error: "),
	}

	statusCode := http.StatusOK
	if !h.databaseOK(response.Services, "healthy") {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else if response.Services["redis"] != "healthy" && response.Services["redis"] != "disabled" {
		// the rate limiter fails open, so redis only degrades the service
		response.Status = "degraded"
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services := h.checkServices(c, "ready", "not ready: ")
	ready := h.databaseOK(services, "ready")

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) checkServices(ctx context.Context, okStatus, errPrefix string) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	services := make(map[string]string)

	if h.db == nil {
		services["database"] = errPrefix + "not configured"
	} else if sqlDB, err := h.db.DB(); err != nil {
		services["database"] = errPrefix + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		services["database"] = errPrefix + err.Error()
	} else {
		services["database"] = okStatus
	}

	if h.redis == nil {
		services["redis"] = "disabled"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		services["redis"] = errPrefix + err.Error()
	} else {
		services["redis"] = okStatus
	}

	return services
}

func (h *HealthHandler) databaseOK(services map[string]string, okStatus string) bool {
	return services["database"] == okStatus
}
