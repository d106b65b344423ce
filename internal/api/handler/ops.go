package handler

import (
	"net/http"
	"time"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/api/response"
	"github.com/eventcast/eventcast/internal/event"
	"github.com/eventcast/eventcast/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	events    *event.Service
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, events *event.Service, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		events:    events,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check. The status
// degrades when any weather provider's circuit breaker is open.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	details := map[string]interface{}{
		"version":   h.version,
		"buildTime": h.buildTime,
	}

	if h.events != nil {
		if count, err := h.events.Count(r.Context()); err == nil {
			details["events"] = count
		}
	}

	if h.registry != nil {
		providers := make(map[string]interface{}, h.registry.ProviderCount())
		for _, ph := range h.registry.GetAllHealth() {
			providers[ph.Name] = map[string]interface{}{
				"circuitState": ph.CircuitState.String(),
				"healthy":      ph.IsHealthy(),
			}
			if !ph.IsHealthy() {
				status = models.HealthStatusDegraded
			}
		}
		if len(providers) > 0 {
			details["providers"] = providers
		}
	}

	response.JSON(w, r, http.StatusOK, models.Health{
		Status:  status,
		Time:    models.Timestamp(time.Now()),
		Details: details,
	})
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	})
}
