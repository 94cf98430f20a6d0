package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ravenmoor/taxbridge/internal"
	"github.com/ravenmoor/taxbridge/internal/handler/webhook"
	"github.com/ravenmoor/taxbridge/internal/middleware"
	"github.com/ravenmoor/taxbridge/internal/provider"
	"github.com/ravenmoor/taxbridge/internal/router"
	"github.com/ravenmoor/taxbridge/internal/routes"
	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	// Initialize business metrics
	telemetry.InitBusinessMetrics("taxbridge")

	// Load tax code matches
	matches, err := taxes.LoadTaxCodeMatches(cfg.TaxCodeMatchesPath)
	if err != nil {
		return fmt.Errorf("failed to load tax code matches: %w", err)
	}
	logger.Info("Tax code matches loaded", "count", len(matches), "path", cfg.TaxCodeMatchesPath)

	// Initialize tax provider
	logger.Info("Initializing tax provider...", "provider", cfg.TaxProvider)
	factory := provider.MustNewDefaultFactory(provider.NewDefaultValidator())
	taxProvider, err := factory.CreateTaxProvider(&provider.Config{
		Name: provider.ProviderName(cfg.TaxProvider),
		ShipFrom: taxes.MerchantAddress{
			Line1:      cfg.ShipFrom.Line1,
			City:       cfg.ShipFrom.City,
			State:      cfg.ShipFrom.State,
			PostalCode: cfg.ShipFrom.PostalCode,
			Country:    cfg.ShipFrom.Country,
		},
		AvaTax: provider.AvaTaxSettings{
			Username:                   cfg.AvaTax.Username,
			Password:                   cfg.AvaTax.Password,
			IsSandbox:                  cfg.AvaTax.IsSandbox,
			CompanyCode:                cfg.AvaTax.CompanyCode,
			IsAutocommit:               cfg.AvaTax.IsAutocommit,
			IsDocumentRecordingEnabled: cfg.AvaTax.IsDocumentRecordingEnabled,
			ShippingTaxCode:            cfg.AvaTax.ShippingTaxCode,
		},
		TaxJar: provider.TaxJarSettings{
			APIToken:  cfg.TaxJar.APIToken,
			IsSandbox: cfg.TaxJar.IsSandbox,
		},
	}, matches, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tax provider: %w", err)
	}
	logger.Info("Tax provider initialized", "provider", cfg.TaxProvider)

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	taxesHandler := webhook.NewTaxesHandler(taxProvider, logger)

	webhookDeps := routes.WebhookDeps{
		TaxesHandler: taxesHandler,
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("taxbridge")

	apiDeps := routes.APIDeps{
		Provider:       taxProvider,
		MetricsHandler: metrics.Handler(),
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		telemetry.SentryMiddleware(),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	routes.RegisterWebhookRoutes(r, webhookDeps)
	routes.RegisterAPIRoutes(r, apiDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting webhook server", "address", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
