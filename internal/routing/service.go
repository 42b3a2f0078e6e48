package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRequestTimeout bounds a single provider call. Expiry is reported as
// a transport failure.
const DefaultRequestTimeout = 10 * time.Second

// ServiceConfig holds configuration for the routing service.
type ServiceConfig struct {
	// Provider is the routing computation provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// RequestTimeout bounds each provider call (default: 10s).
	RequestTimeout time.Duration
}

// Service validates requests and delegates optimization to the provider.
// Results are request-scoped; nothing is cached or persisted.
type Service struct {
	provider Provider
	logger   zerolog.Logger
	timeout  time.Duration
}

// NewService creates a new routing service.
func NewService(cfg ServiceConfig) *Service {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		timeout:  timeout,
	}
}

// Optimize computes the optimized route for the request.
// Start and destination are required; waypoints may be empty.
func (s *Service) Optimize(ctx context.Context, req OptimizeRequest) (*RouteResult, error) {
	if req.Start == "" || req.Destination == "" {
		return nil, fmt.Errorf("%w: start and destination are required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.provider.OptimizeRoute(ctx, req)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("provider", s.provider.Name()).
			Int("waypoint_count", len(req.Waypoints)).
			Dur("elapsed", time.Since(start)).
			Msg("route optimization failed")
		return nil, err
	}

	s.logger.Info().
		Str("provider", s.provider.Name()).
		Int("stop_count", len(result.Points)).
		Float64("total_time_minutes", result.TotalTimeMinutes).
		Float64("total_distance_km", result.TotalDistanceKM).
		Dur("elapsed", time.Since(start)).
		Msg("route optimized")

	return result, nil
}
