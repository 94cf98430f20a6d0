package routes

import (
	"net/http"

	"github.com/ravenmoor/taxbridge/internal/handler/webhook"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// WebhookDeps contains dependencies for webhook routes
type WebhookDeps struct {
	TaxesHandler *webhook.TaxesHandler
}

// APIDeps contains dependencies for operational routes
type APIDeps struct {
	// Provider is pinged by the readiness endpoint to verify credentials
	// and connectivity with the configured tax backend.
	Provider taxes.Provider

	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}
