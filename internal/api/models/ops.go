package models

import "time"

// StatusResponse is the body for GET /api/status. Error is set only when
// the routing client is not usable.
type StatusResponse struct {
	Status    string           `json:"status"`
	Error     string           `json:"error,omitempty"`
	Providers []ProviderStatus `json:"providers,omitempty"`
}

// ProviderStatus reports the health of one external provider.
type ProviderStatus struct {
	Provider      string     `json:"provider"`
	Status        string     `json:"status"`
	LastSuccessAt *time.Time `json:"last_success_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

// Health is the body for GET /api/health.
type Health struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
}
