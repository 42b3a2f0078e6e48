// Package api provides the HTTP API for the optimal route service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/optimalroute/optimalroute/internal/advisory"
	"github.com/optimalroute/optimalroute/internal/api/handler"
	"github.com/optimalroute/optimalroute/internal/api/middleware"
	"github.com/optimalroute/optimalroute/internal/provider/resilience"
	"github.com/optimalroute/optimalroute/internal/routing"
)

// RouterConfig holds configuration for the main service router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics

	// RouteService computes optimized routes.
	RouteService *routing.Service

	// AdvisoryService enriches routes with travel advisories.
	AdvisoryService *advisory.Service

	// Registry reports provider health on the status endpoint.
	Registry *resilience.Registry

	// CredentialConfigured is whether the routing provider credential was
	// present at startup; the status endpoint reports it.
	CredentialConfigured bool
}

// NewRouter creates the chi router for the main service.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(allowAllCORS())
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.CredentialConfigured, cfg.Registry)
	routeHandler := handler.NewRouteHandler(cfg.RouteService, cfg.AdvisoryService, cfg.Logger)

	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Route("/api", func(r chi.Router) {
		r.With(standardRateLimit).Get("/status", opsHandler.Status)
		r.With(standardRateLimit).Get("/health", opsHandler.HealthCheck)

		// Optimize endpoints fan out to external providers - strict limit.
		r.With(expensiveRateLimit).Post("/optimize_route", routeHandler.OptimizeRoute)
		r.With(expensiveRateLimit).Post("/optimize", routeHandler.Optimize)
	})

	return r
}

// MockRouterConfig holds configuration for the mock service router.
type MockRouterConfig struct {
	Logger zerolog.Logger
}

// NewMockRouter creates the chi router for the offline mock service.
func NewMockRouter(cfg MockRouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(allowAllCORS())
	r.Use(middleware.ContentTypeJSON)

	mockHandler := handler.NewMockHandler()
	r.Post("/optimize", mockHandler.Optimize)

	return r
}

// allowAllCORS mirrors the permissive CORS posture the service is deployed
// with; restrict origins in production deployments.
func allowAllCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	})
}
