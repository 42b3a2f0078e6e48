// Package main provides the entrypoint for the optimal route API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/optimalroute/optimalroute/internal/advisory"
	"github.com/optimalroute/optimalroute/internal/advisory/openrouter"
	"github.com/optimalroute/optimalroute/internal/api"
	"github.com/optimalroute/optimalroute/internal/api/middleware"
	"github.com/optimalroute/optimalroute/internal/provider/resilience"
	"github.com/optimalroute/optimalroute/internal/routing"
	"github.com/optimalroute/optimalroute/internal/routing/googleroutes"
	"github.com/optimalroute/optimalroute/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "optimalroute-api"

	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting optimal route API")

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        os.Getenv("OTEL_ENABLED") == "true",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Provider clients register with the registry so the status endpoint
	// can report circuit health.
	registry := resilience.NewRegistry()

	mapsAPIKey := os.Getenv("MAPS_API_KEY")
	if mapsAPIKey == "" {
		log.Warn().Msg("MAPS_API_KEY not set - optimize endpoints will fail")
	}

	routingClient := googleroutes.NewClient(googleroutes.ClientConfig{
		APIKey:   mapsAPIKey,
		BaseURL:  os.Getenv("MAPS_BASE_URL"),
		Registry: registry,
		Logger:   log,
	})
	routeService := routing.NewService(routing.ServiceConfig{
		Provider: routingClient,
		Logger:   log,
	})
	log.Info().Msg("routing service initialized")

	openRouterKey := os.Getenv("OPENROUTER_API_KEY")
	if openRouterKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY not set - advisories will degrade to placeholders")
	}

	advisoryClient := openrouter.NewClient(openrouter.ClientConfig{
		APIKey:   openRouterKey,
		BaseURL:  os.Getenv("OPENROUTER_BASE_URL"),
		Model:    os.Getenv("OPENROUTER_MODEL"),
		Registry: registry,
		Logger:   log,
	})
	advisoryService := advisory.NewService(advisory.ServiceConfig{
		Provider: advisoryClient,
		Logger:   log,
	})
	log.Info().Msg("advisory service initialized")

	router := api.NewRouter(api.RouterConfig{
		Version:              Version,
		BuildTime:            BuildTime,
		Logger:               log,
		Metrics:              metrics,
		RouteService:         routeService,
		AdvisoryService:      advisoryService,
		Registry:             registry,
		CredentialConfigured: mapsAPIKey != "",
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
