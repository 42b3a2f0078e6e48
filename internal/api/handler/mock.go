package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/optimalroute/optimalroute/internal/api/models"
	"github.com/optimalroute/optimalroute/internal/api/response"
	"github.com/optimalroute/optimalroute/internal/geocode"
)

// MockHandler handles the offline optimize endpoint. It calls no external
// service: coordinates are resolved locally and the input order is kept.
type MockHandler struct{}

// NewMockHandler creates a new MockHandler.
func NewMockHandler() *MockHandler {
	return &MockHandler{}
}

// Optimize handles POST /optimize on the mock service.
func (h *MockHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var input models.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	if len(input.Locations) < 2 {
		response.BadRequest(w, r, "provide at least two locations")
		return
	}

	points := make([]models.MockRoutePoint, 0, len(input.Locations))
	for _, loc := range input.Locations {
		points = append(points, models.MockRoutePoint{
			Input: loc,
			Coord: geocode.Resolve(loc),
		})
	}

	response.JSON(w, r, http.StatusOK, models.MockOptimizeResponse{
		Route:   points,
		Summary: fmt.Sprintf("Mock route for %d points", len(points)),
	})
}
