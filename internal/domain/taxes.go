package domain

import "time"

// Source object type names as delivered by the platform.
const (
	SourceObjectCheckout = "Checkout"
	SourceObjectOrder    = "Order"
)

// Money is a platform monetary value. The currency travels on the
// enclosing object; amounts are never converted by this service.
type Money struct {
	Amount float64 `json:"amount"`
}

// TaxedMoney is a platform monetary value carrying both gross and net
// sides.
type TaxedMoney struct {
	Gross Money `json:"gross"`
	Net   Money `json:"net"`
}

// Address is a platform postal address. Free-text fields are passed
// through untouched; normalization is left to the tax provider.
type Address struct {
	StreetAddress1 string `json:"streetAddress1"`
	StreetAddress2 string `json:"streetAddress2"`
	City           string `json:"city"`
	CountryArea    string `json:"countryArea"`
	Country        string `json:"country"`
	PostalCode     string `json:"postalCode"`
}

// Discount is a single order/checkout level discount.
type Discount struct {
	Amount Money `json:"amount"`
}

// TaxBaseLine is one taxable line of a checkout or order.
type TaxBaseLine struct {
	Quantity   int     `json:"quantity"`
	TotalPrice Money   `json:"totalPrice"`
	TaxClassID string  `json:"taxClassId"`
	ProductSKU *string `json:"productSku"`
}

// SourceObject identifies the checkout or order a tax base was built from,
// together with the customer identity fields used for customer-code
// resolution and any provider-specific metadata the merchant attached.
type SourceObject struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	UserID *string `json:"userId"`
	Email  *string `json:"email"`

	// AvataxEntityCode is an optional tax-exemption entity code from
	// the object's metadata.
	AvataxEntityCode *string `json:"avataxEntityCode"`
}

// TaxBase is the taxable view of a checkout or order, as delivered by
// the platform's calculate-taxes webhooks.
type TaxBase struct {
	Currency             string        `json:"currency"`
	PricesEnteredWithTax bool          `json:"pricesEnteredWithTax"`
	ShippingPrice        Money         `json:"shippingPrice"`
	Address              *Address      `json:"address"`
	Discounts            []Discount    `json:"discounts"`
	Lines                []TaxBaseLine `json:"lines"`
	SourceObject         SourceObject  `json:"sourceObject"`
}

// CalculateTaxesPayload is the payload of the checkout-calculate-taxes
// and order-calculate-taxes webhooks.
type CalculateTaxesPayload struct {
	TaxBase TaxBase `json:"taxBase"`
}

// CalculateTaxesLine is the per-line result in the platform's
// calculate-taxes response contract.
type CalculateTaxesLine struct {
	TotalGrossAmount float64 `json:"total_gross_amount"`
	TotalNetAmount   float64 `json:"total_net_amount"`
	TaxRate          float64 `json:"tax_rate"`
}

// CalculateTaxesResponse is the platform's calculate-taxes response
// contract. Field names and numeric semantics (gross >= net) are part of
// the platform API and must be preserved exactly.
type CalculateTaxesResponse struct {
	ShippingPriceGrossAmount float64              `json:"shipping_price_gross_amount"`
	ShippingPriceNetAmount   float64              `json:"shipping_price_net_amount"`
	ShippingTaxRate          float64              `json:"shipping_tax_rate"`
	Lines                    []CalculateTaxesLine `json:"lines"`
}

// OrderLine is one line of a confirmed or refunded order.
type OrderLine struct {
	Quantity   int     `json:"quantity"`
	TotalPrice Money   `json:"totalPrice"`
	TaxClassID string  `json:"taxClassId"`
	ProductSKU *string `json:"productSku"`
}

// Order carries the order fields consumed by the order-confirmed,
// order-refunded and order-cancelled webhooks. Provider-specific metadata
// fields are optional overrides attached by the merchant.
type Order struct {
	ID                   string      `json:"id"`
	Created              time.Time   `json:"created"`
	Currency             string      `json:"currency"`
	PricesEnteredWithTax bool        `json:"pricesEnteredWithTax"`
	UserID               *string     `json:"userId"`
	UserEmail            *string     `json:"userEmail"`
	ShippingAddress      *Address    `json:"shippingAddress"`
	ShippingPrice        Money       `json:"shippingPrice"`
	Total                TaxedMoney  `json:"total"`
	Discounts            []Discount  `json:"discounts"`
	Lines                []OrderLine `json:"lines"`

	// AvataxID is the provider transaction code recorded in order
	// metadata when the order was confirmed. Required for refund/void.
	AvataxID *string `json:"avataxId"`

	// AvataxEntityCode is an optional tax-exemption entity code.
	AvataxEntityCode *string `json:"avataxEntityCode"`

	// AvataxDocumentCode overrides the provider document code. Falls
	// back to the order ID when absent.
	AvataxDocumentCode *string `json:"avataxDocumentCode"`

	// AvataxTaxCalculationDate overrides the tax calculation date
	// (RFC 3339). Falls back to the order creation timestamp.
	AvataxTaxCalculationDate *string `json:"avataxTaxCalculationDate"`
}

// OrderConfirmedPayload is the payload of the order-confirmed webhook.
type OrderConfirmedPayload struct {
	Order Order `json:"order"`
}

// OrderRefundedPayload is the payload of the order-refunded webhook.
type OrderRefundedPayload struct {
	Order Order `json:"order"`
}

// OrderCancelledPayload is the payload of the order-cancelled webhook.
type OrderCancelledPayload struct {
	Order Order `json:"order"`
}

// ConfirmOrderResult is returned after recording an order with the tax
// provider. The transaction code is stored back in order metadata so
// later refund/void calls can reference the provider transaction.
type ConfirmOrderResult struct {
	TransactionCode string `json:"id"`
}
