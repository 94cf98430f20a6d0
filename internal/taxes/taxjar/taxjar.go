package taxjar

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
	"github.com/ravenmoor/taxbridge/internal/telemetry"
)

const apiDateFormat = "2006-01-02T15:04:05Z"

// Config contains the merchant's TaxJar connection settings.
type Config struct {
	APIToken  string
	IsSandbox bool

	// Address is the merchant ship-from address.
	Address taxes.MerchantAddress
}

// Provider implements taxes.Provider against TaxJar. Order refund and
// cancellation are not supported by this backend and report an explicit
// not-implemented error.
type Provider struct {
	client  *Client
	config  Config
	matches taxes.TaxCodeMatches
	logger  *slog.Logger
}

var _ taxes.Provider = (*Provider)(nil)

// NewProvider creates the TaxJar backend.
func NewProvider(config Config, matches taxes.TaxCodeMatches, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := NewClient(ClientConfig{
		APIToken:  config.APIToken,
		IsSandbox: config.IsSandbox,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	if matches == nil {
		matches = taxes.TaxCodeMatches{}
	}

	return &Provider{
		client:  client,
		config:  config,
		matches: matches,
		logger:  logger,
	}, nil
}

// CalculateTaxes quotes taxes for a checkout or order. TaxJar quotes are
// always estimate-only; nothing is recorded.
func (p *Provider) CalculateTaxes(ctx context.Context, payload *domain.CalculateTaxesPayload) (*domain.CalculateTaxesResponse, error) {
	params, err := p.transformCalculateTaxes(&payload.TaxBase)
	if err != nil {
		return nil, err
	}

	result, err := p.client.TaxForOrder(ctx, *params)
	if err != nil {
		return nil, err
	}

	return mapTaxForOrderResponse(&payload.TaxBase, &result.Tax), nil
}

// ConfirmOrder records the completed order transaction with TaxJar.
func (p *Provider) ConfirmOrder(ctx context.Context, payload *domain.OrderConfirmedPayload) (*domain.ConfirmOrderResult, error) {
	order := &payload.Order

	if order.ShippingAddress == nil {
		return nil, taxes.NewMissingFieldError("order shipping address")
	}

	salesTax := taxes.RoundTwoDecimals(order.Total.Gross.Amount - order.Total.Net.Amount)

	params := OrderTransactionParams{
		TransactionID:   order.ID,
		TransactionDate: order.Created.UTC().Format(apiDateFormat),
		FromCountry:     p.config.Address.Country,
		FromZip:         p.config.Address.PostalCode,
		FromState:       p.config.Address.State,
		ToCountry:       order.ShippingAddress.Country,
		ToZip:           order.ShippingAddress.PostalCode,
		ToState:         order.ShippingAddress.CountryArea,
		ToCity:          order.ShippingAddress.City,
		ToStreet:        order.ShippingAddress.StreetAddress1,
		Amount:          order.Total.Net.Amount,
		Shipping:        order.ShippingPrice.Amount,
		SalesTax:        salesTax,
		LineItems:       p.orderLineItems(order),
	}

	result, err := p.client.CreateOrderTransaction(ctx, params)
	if err != nil {
		return nil, err
	}

	if telemetry.Business != nil {
		telemetry.Business.OrdersConfirmed.WithLabelValues("taxjar").Inc()
	}

	return &domain.ConfirmOrderResult{TransactionCode: result.Order.TransactionID}, nil
}

// RefundOrder is not supported by the TaxJar backend.
func (p *Provider) RefundOrder(ctx context.Context, payload *domain.OrderRefundedPayload) error {
	return taxes.NewNotImplementedError("refund order")
}

// CancelOrder is not supported by the TaxJar backend.
func (p *Provider) CancelOrder(ctx context.Context, payload *domain.OrderCancelledPayload) error {
	return taxes.NewNotImplementedError("cancel order")
}

// Ping verifies connectivity and credentials with a cheap definitions
// call; TaxJar has no dedicated ping endpoint.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := p.client.Categories(ctx)
	return err
}

// transformCalculateTaxes builds a tax-for-order request from a tax base.
func (p *Provider) transformCalculateTaxes(base *domain.TaxBase) (*TaxForOrderParams, error) {
	if base.Address == nil {
		return nil, taxes.NewMissingFieldError("address")
	}

	lineItems := make([]TaxLineItem, 0, len(base.Lines))
	amount := 0.0
	for i, line := range base.Lines {
		unitPrice := 0.0
		if line.Quantity > 0 {
			unitPrice = line.TotalPrice.Amount / float64(line.Quantity)
		}
		lineItems = append(lineItems, TaxLineItem{
			ID:             strconv.Itoa(i),
			Quantity:       line.Quantity,
			ProductTaxCode: p.matches.Get(line.TaxClassID),
			UnitPrice:      unitPrice,
		})
		amount += line.TotalPrice.Amount
	}

	discount := taxes.SumDiscounts(discountAmounts(base.Discounts))

	return &TaxForOrderParams{
		FromCountry: p.config.Address.Country,
		FromZip:     p.config.Address.PostalCode,
		FromState:   p.config.Address.State,
		FromCity:    p.config.Address.City,
		FromStreet:  p.config.Address.Line1,
		ToCountry:   base.Address.Country,
		ToZip:       base.Address.PostalCode,
		ToState:     base.Address.CountryArea,
		ToCity:      base.Address.City,
		ToStreet:    base.Address.StreetAddress1,
		Amount:      amount - discount,
		Shipping:    base.ShippingPrice.Amount,
		LineItems:   lineItems,
	}, nil
}

// mapTaxForOrderResponse converts a tax-for-order result into the
// platform response contract. Response lines follow the source line
// order; the breakdown is keyed by the line IDs assigned in the request.
func mapTaxForOrderResponse(base *domain.TaxBase, tax *Tax) *domain.CalculateTaxesResponse {
	response := &domain.CalculateTaxesResponse{
		ShippingPriceGrossAmount: base.ShippingPrice.Amount,
		ShippingPriceNetAmount:   base.ShippingPrice.Amount,
		ShippingTaxRate:          0,
		Lines:                    make([]domain.CalculateTaxesLine, 0, len(base.Lines)),
	}

	byID := map[string]BreakdownLineItem{}
	if tax.Breakdown != nil {
		for _, item := range tax.Breakdown.LineItems {
			byID[item.ID] = item
		}

		if tax.Breakdown.Shipping != nil && tax.FreightTaxable {
			shipping := tax.Breakdown.Shipping
			response.ShippingPriceGrossAmount = taxes.RoundTwoDecimals(shipping.TaxableAmount + shipping.TaxCollectable)
			response.ShippingPriceNetAmount = shipping.TaxableAmount
		}
	}

	for i, line := range base.Lines {
		item, ok := byID[strconv.Itoa(i)]
		if !ok {
			// Out of nexus: no tax collected for this line.
			response.Lines = append(response.Lines, domain.CalculateTaxesLine{
				TotalGrossAmount: line.TotalPrice.Amount,
				TotalNetAmount:   line.TotalPrice.Amount,
				TaxRate:          0,
			})
			continue
		}

		response.Lines = append(response.Lines, domain.CalculateTaxesLine{
			TotalGrossAmount: taxes.RoundTwoDecimals(item.TaxableAmount + item.TaxCollectable),
			TotalNetAmount:   item.TaxableAmount,
			TaxRate:          item.CombinedTaxRate,
		})
	}

	return response
}

func (p *Provider) orderLineItems(order *domain.Order) []TaxLineItem {
	lineItems := make([]TaxLineItem, 0, len(order.Lines))
	for i, line := range order.Lines {
		unitPrice := 0.0
		if line.Quantity > 0 {
			unitPrice = line.TotalPrice.Amount / float64(line.Quantity)
		}

		id := strconv.Itoa(i)
		if line.ProductSKU != nil && *line.ProductSKU != "" {
			id = *line.ProductSKU
		}

		lineItems = append(lineItems, TaxLineItem{
			ID:             id,
			Quantity:       line.Quantity,
			ProductTaxCode: p.matches.Get(line.TaxClassID),
			UnitPrice:      unitPrice,
		})
	}
	return lineItems
}

func discountAmounts(discounts []domain.Discount) []float64 {
	amounts := make([]float64, 0, len(discounts))
	for _, d := range discounts {
		amounts = append(amounts, d.Amount.Amount)
	}
	return amounts
}
