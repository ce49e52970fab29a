package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness and snapshot durability.
type HealthController struct {
	storageHealthChecker func() bool
	startedAt            time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Storage     string `json:"storage"`
	Persistence string `json:"persistence"`
	UptimeSec   int64  `json:"uptime_sec"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storageHealthChecker func() bool) *HealthController {
	return &HealthController{
		storageHealthChecker: storageHealthChecker,
		startedAt:            time.Now(),
	}
}

// Check handles GET /health requests.
// Storage being down does not fail the check: the list keeps serving from
// memory and only loses durability, so the response degrades to
// "memory-only" persistence instead of turning unhealthy.
func (h *HealthController) Check(c *gin.Context) {
	storageUp := h.storageHealthChecker != nil && h.storageHealthChecker()

	response := HealthResponse{
		Status:      "ok",
		Storage:     "connected",
		Persistence: "durable",
		UptimeSec:   int64(time.Since(h.startedAt).Seconds()),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if !storageUp {
		response.Status = "degraded"
		response.Storage = "disconnected"
		response.Persistence = "memory-only"
	}

	c.JSON(http.StatusOK, response)
}
