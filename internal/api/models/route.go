// Package models defines the request and response DTOs for the HTTP API.
package models

import (
	"encoding/json"

	"github.com/optimalroute/optimalroute/internal/geocode"
	"github.com/optimalroute/optimalroute/internal/routing"
)

// OptimizeRouteRequest is the body for POST /api/optimize_route.
type OptimizeRouteRequest struct {
	StartLocation    string   `json:"start_location"`
	FinalDestination string   `json:"final_destination"`
	FriendLocations  []string `json:"friend_locations"`
}

// OptimizeRouteResponse is the success body for POST /api/optimize_route.
// Directions carries the raw provider payload for map rendering.
type OptimizeRouteResponse struct {
	Status           string          `json:"status"`
	OptimalSequence  []string        `json:"optimal_sequence"`
	TotalTimeMinutes float64         `json:"total_time_minutes"`
	LLMAnalysis      string          `json:"llm_analysis"`
	LLMBufferMinutes int             `json:"llm_buffer_minutes"`
	Directions       json.RawMessage `json:"directions"`
}

// OptimizeRequest is the body for POST /api/optimize and the mock
// POST /optimize. Locations are address strings or "lat,lng" pairs; the
// first and last entries are start and destination.
type OptimizeRequest struct {
	Locations []string `json:"locations"`
}

// OptimizeResponse is the success body for POST /api/optimize.
type OptimizeResponse struct {
	Route            []routing.RoutePoint `json:"route"`
	Legs             []routing.LegDetail  `json:"legs"`
	Summary          string               `json:"summary"`
	TotalDistanceKM  float64              `json:"total_distance_km"`
	TotalTimeMinutes float64              `json:"total_time_minutes"`
}

// MockRoutePoint is one stop in the mock route. Coordinates are always
// populated, fabricated when the input is not a "lat,lng" pair.
type MockRoutePoint struct {
	Input string             `json:"input"`
	Coord geocode.Coordinate `json:"coord"`
}

// MockOptimizeResponse is the success body for the mock POST /optimize.
// The route keeps the input order unchanged.
type MockOptimizeResponse struct {
	Route   []MockRoutePoint `json:"route"`
	Summary string           `json:"summary"`
}
