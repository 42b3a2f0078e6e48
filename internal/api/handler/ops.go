// Package handler provides HTTP handlers for the optimal route API.
package handler

import (
	"net/http"

	"github.com/optimalroute/optimalroute/internal/api/models"
	"github.com/optimalroute/optimalroute/internal/api/response"
	"github.com/optimalroute/optimalroute/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version              string
	buildTime            string
	credentialConfigured bool
	registry             *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler. credentialConfigured reflects
// whether the routing provider credential was present at startup.
func NewOpsHandler(version, buildTime string, credentialConfigured bool, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:              version,
		buildTime:            buildTime,
		credentialConfigured: credentialConfigured,
		registry:             registry,
	}
}

// HealthCheck handles GET /api/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:    "ok",
		Version:   h.version,
		BuildTime: h.buildTime,
	})
}

// Status handles GET /api/status - reports whether the routing client is
// usable, plus per-provider circuit health.
func (h *OpsHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !h.credentialConfigured {
		response.JSON(w, r, http.StatusInternalServerError, models.StatusResponse{
			Status: "Backend is running, but the routing client failed to initialize.",
			Error:  "Check the MAPS_API_KEY environment variable. It is likely missing or invalid.",
		})
		return
	}

	resp := models.StatusResponse{
		Status: "Backend is running and the routing client initialized successfully.",
	}
	if h.registry != nil {
		for _, ph := range h.registry.GetAllHealth() {
			status := "ok"
			if !ph.IsHealthy() {
				status = "degraded"
			}
			resp.Providers = append(resp.Providers, models.ProviderStatus{
				Provider:      ph.Name,
				Status:        status,
				LastSuccessAt: ph.LastSuccessAt,
				LastError:     ph.LastError,
			})
		}
	}

	response.JSON(w, r, http.StatusOK, resp)
}
