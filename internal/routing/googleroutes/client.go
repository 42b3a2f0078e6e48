// Package googleroutes provides a client for the Google Routes computeRoutes API.
package googleroutes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimalroute/optimalroute/internal/provider/resilience"
	"github.com/optimalroute/optimalroute/internal/routing"
)

const (
	// ProviderName identifies this routing provider.
	ProviderName = "googleroutes"

	// DefaultBaseURL is the Routes API base URL.
	DefaultBaseURL = "https://routes.googleapis.com"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 10 * time.Second

	computeRoutesPath = "/directions/v2:computeRoutes"

	// fieldMaskBase names the route fields requested from the provider.
	// optimizedIntermediateWaypointIndex is added only when waypoint-order
	// optimization is requested.
	fieldMaskBase      = "routes.duration,routes.distanceMeters,routes.legs"
	fieldMaskOptimized = "routes.optimizedIntermediateWaypointIndex," + fieldMaskBase
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Routes API client.
type ClientConfig struct {
	// APIKey is the Maps Platform API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the Routes API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Google Routes API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Routes API client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// OptimizeRoute computes an optimized route for the given locations.
// Waypoint-order optimization is requested only when waypoints are present.
func (c *Client) OptimizeRoute(ctx context.Context, req routing.OptimizeRequest) (*routing.RouteResult, error) {
	optimize := len(req.Waypoints) > 0

	grReq := computeRoutesRequest{
		Origin:                waypoint{Address: req.Start},
		Destination:           waypoint{Address: req.Destination},
		TravelMode:            "DRIVE",
		OptimizeWaypointOrder: optimize,
	}
	for _, wp := range req.Waypoints {
		grReq.Intermediates = append(grReq.Intermediates, waypoint{Address: wp})
	}

	body, err := json.Marshal(grReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+computeRoutesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	fieldMask := fieldMaskBase
	if optimize {
		fieldMask = fieldMaskOptimized
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", fieldMask)

	c.logger.Debug().
		Str("start", req.Start).
		Str("destination", req.Destination).
		Int("waypoint_count", len(req.Waypoints)).
		Bool("optimize", optimize).
		Msg("requesting route from Routes API")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach routing provider",
			Err:      routing.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, respBody)
	}

	var grResp computeRoutesResponse
	if err := json.Unmarshal(respBody, &grResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(grResp.Routes) == 0 {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "NO_ROUTE",
			Message:  "could not calculate the route using the Routes API",
			Err:      routing.ErrNoRouteFound,
		}
	}

	result, err := c.toRouteResult(req, &grResp.Routes[0], respBody)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("stop_count", len(result.Points)).
		Int("leg_count", len(result.Legs)).
		Msg("received route from Routes API")

	return result, nil
}

// handleErrorResponse maps provider error responses to domain errors. The
// raw body is attached so handlers can forward upstream error details.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	details := json.RawMessage(nil)
	if json.Valid(body) {
		details = json.RawMessage(body)
	}

	message := fmt.Sprintf("routing provider returned status %d", statusCode)
	if statusCode >= 500 {
		message = "routing provider is temporarily unavailable"
	}

	return &routing.Error{
		Provider: ProviderName,
		Code:     fmt.Sprintf("HTTP_%d", statusCode),
		Message:  message,
		Details:  details,
		Err:      routing.ErrProviderUnavailable,
	}
}

// toRouteResult reshapes the provider route into the domain model: applies
// the optimized waypoint permutation, converts duration and distance units,
// and pairs legs with consecutive route points.
func (c *Client) toRouteResult(req routing.OptimizeRequest, r *route, raw []byte) (*routing.RouteResult, error) {
	totalSecs, err := routing.ParseDurationSeconds(r.Duration)
	if err != nil {
		return nil, err
	}

	order := r.OptimizedIntermediateWaypointIndex
	if len(req.Waypoints) == 0 {
		order = nil
	}
	reordered, err := routing.ReorderWaypoints(req.Waypoints, order)
	if err != nil {
		return nil, err
	}

	points := routing.BuildSequence(req.Start, req.Destination, reordered)

	legs := make([]routing.RouteLeg, 0, len(r.Legs))
	for _, l := range r.Legs {
		legSecs, err := routing.ParseDurationSeconds(l.Duration)
		if err != nil {
			return nil, err
		}
		legs = append(legs, routing.RouteLeg{
			DistanceMeters:  l.DistanceMeters,
			DurationSeconds: legSecs,
			Start:           toCoordinate(l.StartLocation),
			End:             toCoordinate(l.EndLocation),
		})
	}

	details, err := routing.AttachLegs(points, legs)
	if err != nil {
		return nil, err
	}

	return &routing.RouteResult{
		Points:           points,
		Legs:             details,
		TotalTimeMinutes: routing.MinutesFromSeconds(totalSecs),
		TotalDistanceKM:  routing.KilometersFromMeters(r.DistanceMeters),
		Raw:              json.RawMessage(raw),
	}, nil
}

func toCoordinate(loc location) *routing.Coordinate {
	if loc.LatLng == nil {
		return nil
	}
	return &routing.Coordinate{Lat: loc.LatLng.Latitude, Lng: loc.LatLng.Longitude}
}
