package avatax

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

// defaultCompanyCode is used when the merchant has not configured one.
const defaultCompanyCode = "DEFAULT"

// Config contains the merchant's AvaTax connection and behavior settings.
// All of it is externally supplied; this layer never mutates it.
type Config struct {
	Username  string
	Password  string
	IsSandbox bool

	// CompanyCode scopes transactions to an AvaTax company.
	CompanyCode string

	// IsAutocommit commits transactions immediately after creation.
	// Refunds require the original transaction to have been committed.
	IsAutocommit bool

	// IsDocumentRecordingEnabled controls whether confirmed orders are
	// recorded as invoices. When false every document goes out as a
	// SalesOrder, which suppresses any ledger effect on the provider side.
	IsDocumentRecordingEnabled bool

	// ShippingTaxCode is applied to the synthetic shipping line.
	ShippingTaxCode string

	// Address is the merchant ship-from address.
	Address taxes.MerchantAddress
}

// Provider implements taxes.Provider against AvaTax.
type Provider struct {
	client  *Client
	config  Config
	matches taxes.TaxCodeMatches
	logger  *slog.Logger

	// entities is the entity-use-code lookup used by the transformers.
	// Defaults to the client; tests substitute a stub.
	entities entityUseCodeLister
}

var _ taxes.Provider = (*Provider)(nil)

// NewProvider creates the AvaTax backend.
func NewProvider(config Config, matches taxes.TaxCodeMatches, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := NewClient(ClientConfig{
		Username:  config.Username,
		Password:  config.Password,
		IsSandbox: config.IsSandbox,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	if config.CompanyCode == "" {
		config.CompanyCode = defaultCompanyCode
	}
	if matches == nil {
		matches = taxes.TaxCodeMatches{}
	}

	return &Provider{
		client:   client,
		config:   config,
		matches:  matches,
		logger:   logger,
		entities: client,
	}, nil
}

// CalculateTaxes builds an estimate-only transaction from a tax base and
// maps the provider's line results back to the platform response contract.
func (p *Provider) CalculateTaxes(ctx context.Context, payload *domain.CalculateTaxesPayload) (*domain.CalculateTaxesResponse, error) {
	model, err := p.transformCalculateTaxes(ctx, payload)
	if err != nil {
		return nil, err
	}

	transaction, err := p.client.CreateTransaction(ctx, *model)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("avatax taxes calculated",
		"transaction_code", transaction.Code,
		"total_tax", transaction.TotalTax,
	)

	return mapResponse(transaction), nil
}

// ConfirmOrder records a confirmed order with the provider and returns
// the transaction code for storage in order metadata.
func (p *Provider) ConfirmOrder(ctx context.Context, payload *domain.OrderConfirmedPayload) (*domain.ConfirmOrderResult, error) {
	model, err := p.transformOrderConfirmed(ctx, &payload.Order)
	if err != nil {
		return nil, err
	}

	transaction, err := p.client.CreateTransaction(ctx, *model)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("avatax order confirmed",
		"order_id", payload.Order.ID,
		"transaction_code", transaction.Code,
	)
	if telemetry.Business != nil {
		telemetry.Business.OrdersConfirmed.WithLabelValues("avatax").Inc()
	}

	return &domain.ConfirmOrderResult{TransactionCode: transaction.Code}, nil
}

// RefundOrder refunds the transaction recorded for an order. AvaTax can
// only refund committed transactions, so the autocommit precondition is
// checked before any provider call.
func (p *Provider) RefundOrder(ctx context.Context, payload *domain.OrderRefundedPayload) error {
	if !p.config.IsAutocommit {
		return taxes.NewConfigurationError("Unable to refund transaction. AvaTax can only refund committed transactions.")
	}

	transactionCode, model, err := p.transformOrderRefunded(payload)
	if err != nil {
		return err
	}

	if _, err := p.client.RefundTransaction(ctx, p.config.CompanyCode, transactionCode, model); err != nil {
		return err
	}

	p.logger.Debug("avatax transaction refunded", "transaction_code", transactionCode)
	if telemetry.Business != nil {
		telemetry.Business.OrdersRefunded.WithLabelValues("avatax").Inc()
	}
	return nil
}

// CancelOrder voids the transaction recorded for an order.
func (p *Provider) CancelOrder(ctx context.Context, payload *domain.OrderCancelledPayload) error {
	transactionCode := resolveDocumentCode(payload.Order.AvataxDocumentCode, payload.Order.ID)
	if transactionCode == "" {
		return taxes.NewMissingFieldError("order.id")
	}

	if _, err := p.client.VoidTransaction(ctx, p.config.CompanyCode, transactionCode); err != nil {
		return err
	}

	p.logger.Debug("avatax transaction voided", "transaction_code", transactionCode)
	if telemetry.Business != nil {
		telemetry.Business.OrdersCancelled.WithLabelValues("avatax").Inc()
	}
	return nil
}

// Ping verifies connectivity and that the configured credentials are
// accepted.
func (p *Provider) Ping(ctx context.Context) error {
	result, err := p.client.Ping(ctx)
	if err != nil {
		return err
	}
	if !result.Authenticated {
		return taxes.NewProviderError(fmt.Errorf("authenticated=false"), "AvaTax rejected the configured credentials")
	}
	return nil
}

// resolveCustomerCode derives the provider customer code: the platform
// user identifier when present, falling back to the email address.
// During checkout the customer id is not always available yet.
func resolveCustomerCode(userID, email *string) (string, error) {
	if userID != nil && *userID != "" {
		return *userID, nil
	}
	if email != nil && *email != "" {
		return *email, nil
	}
	return "", taxes.NewMissingFieldError("customer code (user id or email)")
}

func discountAmounts(discounts []domain.Discount) []float64 {
	amounts := make([]float64, 0, len(discounts))
	for _, d := range discounts {
		amounts = append(amounts, d.Amount.Amount)
	}
	return amounts
}
