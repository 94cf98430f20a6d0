package routes

import (
	"github.com/ravenmoor/taxbridge/internal/middleware"
	"github.com/ravenmoor/taxbridge/internal/router"
)

// RegisterWebhookRoutes registers all webhook routes.
// These routes handle incoming events from the commerce platform.
//
// Note: Webhook routes do NOT have authentication middleware here; the
// deployment fronts this service with the platform's webhook signature
// verification proxy.
func RegisterWebhookRoutes(r *router.Router, deps WebhookDeps) {
	hooks := r.Group(
		middleware.MaxBodySize(middleware.SmallMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
	)

	hooks.Post("/webhooks/checkout-calculate-taxes", deps.TaxesHandler.CheckoutCalculateTaxes)
	hooks.Post("/webhooks/order-calculate-taxes", deps.TaxesHandler.OrderCalculateTaxes)
	hooks.Post("/webhooks/order-confirmed", deps.TaxesHandler.OrderConfirmed)
	hooks.Post("/webhooks/order-refunded", deps.TaxesHandler.OrderRefunded)
	hooks.Post("/webhooks/order-cancelled", deps.TaxesHandler.OrderCancelled)
}
