package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/optimalroute/optimalroute/internal/advisory"
	"github.com/optimalroute/optimalroute/internal/api/middleware"
	"github.com/optimalroute/optimalroute/internal/api/models"
	"github.com/optimalroute/optimalroute/internal/api/response"
	"github.com/optimalroute/optimalroute/internal/routing"
)

// RouteHandler handles the optimize endpoints. Both endpoints share the
// routing service; only the response shaping differs.
type RouteHandler struct {
	routes     *routing.Service
	advisories *advisory.Service
	logger     zerolog.Logger
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routes *routing.Service, advisories *advisory.Service, logger zerolog.Logger) *RouteHandler {
	return &RouteHandler{
		routes:     routes,
		advisories: advisories,
		logger:     logger,
	}
}

// OptimizeRoute handles POST /api/optimize_route - compute an optimized
// route and enrich it with a travel advisory.
func (h *RouteHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	var input models.OptimizeRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	if input.StartLocation == "" || input.FinalDestination == "" {
		response.BadRequest(w, r, "start and final destination are required")
		return
	}

	result, err := h.routes.Optimize(r.Context(), routing.OptimizeRequest{
		Start:       input.StartLocation,
		Destination: input.FinalDestination,
		Waypoints:   input.FriendLocations,
	})
	if err != nil {
		h.writeRoutingError(w, r, err)
		return
	}

	// Advisory failures degrade to a placeholder; they never fail the request.
	adv := h.advisories.Advise(r.Context(), result.Sequence())

	response.JSON(w, r, http.StatusOK, models.OptimizeRouteResponse{
		Status:           "success",
		OptimalSequence:  result.Sequence(),
		TotalTimeMinutes: result.TotalTimeMinutes,
		LLMAnalysis:      adv.Analysis,
		LLMBufferMinutes: adv.BufferMinutes,
		Directions:       result.Raw,
	})
}

// Optimize handles POST /api/optimize - compute an optimized route with a
// per-leg breakdown. The first and last locations are start and destination.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var input models.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	if len(input.Locations) < 2 {
		response.BadRequest(w, r, "provide at least two locations")
		return
	}

	last := len(input.Locations) - 1
	result, err := h.routes.Optimize(r.Context(), routing.OptimizeRequest{
		Start:       input.Locations[0],
		Destination: input.Locations[last],
		Waypoints:   input.Locations[1:last],
	})
	if err != nil {
		h.writeRoutingError(w, r, err)
		return
	}

	legs := result.Legs
	if legs == nil {
		legs = []routing.LegDetail{}
	}

	response.JSON(w, r, http.StatusOK, models.OptimizeResponse{
		Route:            result.Points,
		Legs:             legs,
		Summary:          fmt.Sprintf("Optimized route for %d stops", len(result.Points)),
		TotalDistanceKM:  result.TotalDistanceKM,
		TotalTimeMinutes: result.TotalTimeMinutes,
	})
}

// writeRoutingError maps routing failures to the error envelope. Unexpected
// causes get a fixed opaque message; the raw error is logged with the
// request ID.
func (h *RouteHandler) writeRoutingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, routing.ErrInvalidInput):
		response.BadRequest(w, r, "start and final destination are required")

	case errors.Is(err, routing.ErrNoRouteFound):
		response.InternalError(w, r, "could not calculate the route")

	case errors.Is(err, routing.ErrProviderUnavailable):
		var provErr *routing.Error
		if errors.As(err, &provErr) && provErr.Details != nil {
			response.ErrorWithDetails(w, r, http.StatusInternalServerError,
				"an HTTP error occurred while calling the routing provider", provErr.Details)
			return
		}
		response.InternalError(w, r, "routing provider unavailable")

	case errors.Is(err, routing.ErrInvalidDuration), errors.Is(err, routing.ErrInvalidWaypointOrder):
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("routing provider returned malformed data")
		response.InternalError(w, r, "routing provider returned malformed data")

	default:
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("unexpected routing failure")
		response.InternalError(w, r, "internal server error")
	}
}
