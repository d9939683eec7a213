package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/service"
)

type HealthResponse struct {
	Status    string     `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	Service   string     `json:"service"`
	Version   string     `json:"version"`
	Regions   int        `json:"regions"`
	LoadedAt  *time.Time `json:"loaded_at,omitempty"`
}

// SnapshotSource exposes the currently published topology.
type SnapshotSource interface {
	Snapshot() *service.Snapshot
}

type HealthHandler struct {
	serviceName string
	version     string
	topology    SnapshotSource
}

func NewHealthHandler(serviceName, version string, topology SnapshotSource) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		topology:    topology,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}

	snap := h.topology.Snapshot()
	if snap == nil {
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	loadedAt := snap.LoadedAt.UTC()
	resp.Regions = snap.Topology.Len()
	resp.LoadedAt = &loadedAt
	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
