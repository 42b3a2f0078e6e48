// Package routing provides optimized multi-stop route computation backed by
// an external routing provider.
package routing

import (
	"context"
	"encoding/json"
	"errors"
)

// Sentinel errors for routing operations.
var (
	// ErrProviderUnavailable indicates the routing provider is unreachable,
	// timed out, or the circuit breaker is open.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrNoRouteFound indicates the provider returned no routes for the request.
	ErrNoRouteFound = errors.New("no route found")
	// ErrInvalidInput indicates the request is missing required locations.
	ErrInvalidInput = errors.New("invalid route input")
	// ErrInvalidDuration indicates the provider returned a duration string
	// that is not of the form "<integer>s".
	ErrInvalidDuration = errors.New("invalid duration string")
	// ErrInvalidWaypointOrder indicates the provider returned a waypoint
	// index array that is not a permutation of 0..n-1.
	ErrInvalidWaypointOrder = errors.New("invalid waypoint order")
)

// Provider computes an optimized route from an ordered set of locations.
type Provider interface {
	// OptimizeRoute computes the optimized visiting order for the request.
	OptimizeRoute(ctx context.Context, req OptimizeRequest) (*RouteResult, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// OptimizeRequest describes a route to optimize. Locations are raw address
// strings or "lat,lng" pairs; resolution is delegated to the provider.
type OptimizeRequest struct {
	Start       string
	Destination string
	Waypoints   []string
}

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoutePoint is one stop in the final ordered route. Coord is nil unless the
// provider returned leg endpoint coordinates.
type RoutePoint struct {
	Input string      `json:"input"`
	Coord *Coordinate `json:"coord"`
}

// LegDetail describes one travel segment between consecutive route points.
type LegDetail struct {
	Step        int     `json:"step"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKM  float64 `json:"distance_km"`
	TimeMinutes float64 `json:"time_minutes"`
}

// RouteResult is the reshaped provider response. The first and last points
// are always the request's start and destination; interior points are a
// permutation of the request waypoints.
type RouteResult struct {
	Points           []RoutePoint
	Legs             []LegDetail
	TotalTimeMinutes float64
	TotalDistanceKM  float64

	// Raw is the unmodified provider payload, kept for clients that render
	// the route themselves.
	Raw json.RawMessage
}

// Sequence returns the ordered location strings of the route.
func (r *RouteResult) Sequence() []string {
	seq := make([]string, len(r.Points))
	for i, p := range r.Points {
		seq[i] = p.Input
	}
	return seq
}

// Error provides detailed error information from the routing provider.
type Error struct {
	Provider string          // Provider that generated the error
	Code     string          // Error code for the failure class
	Message  string          // Human-readable error message
	Details  json.RawMessage // Raw upstream error body, if any
	Err      error           // Underlying sentinel error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
