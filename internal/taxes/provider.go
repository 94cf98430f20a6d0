package taxes

import (
	"context"

	"github.com/ravenmoor/taxbridge/internal/domain"
)

// Provider defines the interface for tax provider backends.
// Implementations: avatax.Provider, taxjar.Provider, MockProvider.
// The backend is selected per merchant configuration; all methods are
// single synchronous round trips with no retry or batching.
type Provider interface {
	// CalculateTaxes produces a tax quote for a checkout or order.
	// It must never record a transaction on the provider side.
	CalculateTaxes(ctx context.Context, payload *domain.CalculateTaxesPayload) (*domain.CalculateTaxesResponse, error)

	// ConfirmOrder records a confirmed order with the provider and
	// returns the provider transaction code.
	ConfirmOrder(ctx context.Context, payload *domain.OrderConfirmedPayload) (*domain.ConfirmOrderResult, error)

	// RefundOrder refunds a previously recorded transaction.
	RefundOrder(ctx context.Context, payload *domain.OrderRefundedPayload) error

	// CancelOrder voids a previously recorded transaction.
	CancelOrder(ctx context.Context, payload *domain.OrderCancelledPayload) error

	// Ping verifies connectivity and credentials.
	Ping(ctx context.Context) error
}

// MerchantAddress is the merchant's ship-from address, supplied by
// configuration. It is the "from" half of every provider address pair.
type MerchantAddress struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}
