// Package advisory produces best-effort travel advisories for optimized
// routes via an external language-model provider.
package advisory

import (
	"context"
	"errors"
)

// Placeholder advisories returned when no external call is made or the
// provider fails. Advisory generation never blocks route delivery.
const (
	PlaceholderEmptyRoute  = "No route provided for analysis."
	PlaceholderUnavailable = "Could not retrieve travel advisory at this time."
)

// ErrAdvisoryUnavailable indicates the advisory provider failed or returned
// an unusable reply.
var ErrAdvisoryUnavailable = errors.New("advisory unavailable")

// Provider generates a travel advisory for an ordered route sequence.
type Provider interface {
	// GetAdvisory generates an advisory for the given route sequence.
	GetAdvisory(ctx context.Context, sequence []string) (*Result, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Result is a travel advisory attached to a computed route.
// BufferMinutes is always non-negative.
type Result struct {
	Analysis      string
	BufferMinutes int
}
