package advisory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRequestTimeout bounds a single advisory call so a slow provider
// cannot stall route delivery.
const DefaultRequestTimeout = 15 * time.Second

// ServiceConfig holds configuration for the advisory service.
type ServiceConfig struct {
	// Provider is the advisory generation provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// RequestTimeout bounds each provider call (default: 15s).
	RequestTimeout time.Duration
}

// Service generates advisories with a strict best-effort policy: any
// provider failure degrades to a placeholder result, never an error.
type Service struct {
	provider Provider
	logger   zerolog.Logger
	timeout  time.Duration
}

// NewService creates a new advisory service.
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

// Advise returns an advisory for the route sequence. It never fails: an
// empty sequence yields a fixed placeholder without an external call, and
// any transport or parsing failure yields the unavailable placeholder with
// a zero buffer. The raw cause is logged server-side.
func (s *Service) Advise(ctx context.Context, sequence []string) Result {
	if len(sequence) == 0 {
		return Result{Analysis: PlaceholderEmptyRoute, BufferMinutes: 0}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.provider.GetAdvisory(ctx, sequence)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("provider", s.provider.Name()).
			Dur("elapsed", time.Since(start)).
			Msg("advisory generation failed, degrading to placeholder")
		return Result{Analysis: PlaceholderUnavailable, BufferMinutes: 0}
	}

	if result.BufferMinutes < 0 {
		result.BufferMinutes = 0
	}

	s.logger.Info().
		Str("provider", s.provider.Name()).
		Int("buffer_minutes", result.BufferMinutes).
		Dur("elapsed", time.Since(start)).
		Msg("advisory generated")

	return *result
}
