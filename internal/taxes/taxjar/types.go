package taxjar

// Wire shapes for the TaxJar SmartCalcs API.

// TaxLineItem is one line of a tax-for-order request.
type TaxLineItem struct {
	ID             string  `json:"id"`
	Quantity       int     `json:"quantity"`
	ProductTaxCode string  `json:"product_tax_code,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	Discount       float64 `json:"discount,omitempty"`
}

// TaxForOrderParams is the tax-for-order request body.
type TaxForOrderParams struct {
	FromCountry string        `json:"from_country,omitempty"`
	FromZip     string        `json:"from_zip,omitempty"`
	FromState   string        `json:"from_state,omitempty"`
	FromCity    string        `json:"from_city,omitempty"`
	FromStreet  string        `json:"from_street,omitempty"`
	ToCountry   string        `json:"to_country"`
	ToZip       string        `json:"to_zip,omitempty"`
	ToState     string        `json:"to_state,omitempty"`
	ToCity      string        `json:"to_city,omitempty"`
	ToStreet    string        `json:"to_street,omitempty"`
	Amount      float64       `json:"amount"`
	Shipping    float64       `json:"shipping"`
	LineItems   []TaxLineItem `json:"line_items"`
}

// BreakdownLineItem is the per-line tax breakdown of a tax-for-order
// response.
type BreakdownLineItem struct {
	ID              string  `json:"id"`
	TaxableAmount   float64 `json:"taxable_amount"`
	TaxCollectable  float64 `json:"tax_collectable"`
	CombinedTaxRate float64 `json:"combined_tax_rate"`
}

// ShippingBreakdown is the shipping tax breakdown.
type ShippingBreakdown struct {
	TaxableAmount  float64 `json:"taxable_amount"`
	TaxCollectable float64 `json:"tax_collectable"`
}

// Breakdown carries per-line and shipping tax details.
type Breakdown struct {
	Shipping  *ShippingBreakdown  `json:"shipping"`
	LineItems []BreakdownLineItem `json:"line_items"`
}

// Tax is the body of a tax-for-order response.
type Tax struct {
	OrderTotalAmount float64    `json:"order_total_amount"`
	Shipping         float64    `json:"shipping"`
	TaxableAmount    float64    `json:"taxable_amount"`
	AmountToCollect  float64    `json:"amount_to_collect"`
	Rate             float64    `json:"rate"`
	FreightTaxable   bool       `json:"freight_taxable"`
	Breakdown        *Breakdown `json:"breakdown"`
}

// TaxForOrderResult is the tax-for-order response envelope.
type TaxForOrderResult struct {
	Tax Tax `json:"tax"`
}

// OrderTransactionParams is the create-order-transaction request body.
type OrderTransactionParams struct {
	TransactionID   string        `json:"transaction_id"`
	TransactionDate string        `json:"transaction_date"`
	FromCountry     string        `json:"from_country,omitempty"`
	FromZip         string        `json:"from_zip,omitempty"`
	FromState       string        `json:"from_state,omitempty"`
	ToCountry       string        `json:"to_country"`
	ToZip           string        `json:"to_zip,omitempty"`
	ToState         string        `json:"to_state,omitempty"`
	ToCity          string        `json:"to_city,omitempty"`
	ToStreet        string        `json:"to_street,omitempty"`
	Amount          float64       `json:"amount"`
	Shipping        float64       `json:"shipping"`
	SalesTax        float64       `json:"sales_tax"`
	LineItems       []TaxLineItem `json:"line_items"`
}

// OrderTransaction is a recorded order transaction.
type OrderTransaction struct {
	TransactionID string `json:"transaction_id"`
}

// OrderTransactionResult is the create-order-transaction response
// envelope.
type OrderTransactionResult struct {
	Order OrderTransaction `json:"order"`
}

// Category is one TaxJar product tax category.
type Category struct {
	Name           string `json:"name"`
	ProductTaxCode string `json:"product_tax_code"`
	Description    string `json:"description"`
}

// CategoriesResult is the categories response envelope.
type CategoriesResult struct {
	Categories []Category `json:"categories"`
}

// errorResult is TaxJar's error envelope.
type errorResult struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
