package avatax

// Wire shapes for the AvaTax REST v2 API. Only the fields this service
// reads or writes are modeled; unknown response fields are ignored by
// the JSON decoder.

// DocumentType classifies a transaction as quote-only or ledger-affecting.
type DocumentType string

const (
	// DocumentTypeSalesOrder is an estimate-only document. It never
	// records a transaction on the provider side.
	DocumentTypeSalesOrder DocumentType = "SalesOrder"

	// DocumentTypeSalesInvoice is a recording (ledger-affecting) document.
	DocumentTypeSalesInvoice DocumentType = "SalesInvoice"

	// DocumentTypeReturnInvoice records a refund of a previous invoice.
	DocumentTypeReturnInvoice DocumentType = "ReturnInvoice"
)

// RefundType selects between refunding the full transaction or a subset
// of its lines.
type RefundType string

const (
	RefundTypeFull    RefundType = "Full"
	RefundTypePartial RefundType = "Partial"
)

// voidReasonDocVoided is the fixed reason code used for every void.
const voidReasonDocVoided = "DocVoided"

// AddressLocationInfo is the provider's address shape.
type AddressLocationInfo struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// AddressesModel pairs the merchant ship-from address with the customer
// ship-to address.
type AddressesModel struct {
	ShipFrom *AddressLocationInfo `json:"shipFrom,omitempty"`
	ShipTo   *AddressLocationInfo `json:"shipTo,omitempty"`
}

// LineItemModel is one line of a create-transaction request. Shipping is
// a regular line carrying a reserved item code, not a separate entity.
type LineItemModel struct {
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
	TaxCode     string  `json:"taxCode"`
	TaxIncluded bool    `json:"taxIncluded"`
	ItemCode    string  `json:"itemCode,omitempty"`
}

// CreateTransactionModel is the create/adjust transaction request body.
type CreateTransactionModel struct {
	Code          string          `json:"code,omitempty"`
	Type          DocumentType    `json:"type"`
	CompanyCode   string          `json:"companyCode"`
	CustomerCode  string          `json:"customerCode"`
	Commit        bool            `json:"commit"`
	EntityUseCode string          `json:"entityUseCode,omitempty"`
	CurrencyCode  string          `json:"currencyCode"`
	Email         string          `json:"email,omitempty"`
	Addresses     *AddressesModel `json:"addresses,omitempty"`
	Lines         []LineItemModel `json:"lines"`
	Date          string          `json:"date"`
	Discount      float64         `json:"discount,omitempty"`
}

// createOrAdjustTransactionModel wraps CreateTransactionModel for the
// create-or-adjust endpoint.
type createOrAdjustTransactionModel struct {
	CreateTransactionModel CreateTransactionModel `json:"createTransactionModel"`
}

// TransactionLineModel is one line of a transaction response.
type TransactionLineModel struct {
	ItemCode      string  `json:"itemCode"`
	IsItemTaxable bool    `json:"isItemTaxable"`
	LineAmount    float64 `json:"lineAmount"`
	TaxableAmount float64 `json:"taxableAmount"`
	TaxCalculated float64 `json:"taxCalculated"`
}

// TransactionModel is the provider's transaction response.
type TransactionModel struct {
	ID       int64                  `json:"id"`
	Code     string                 `json:"code"`
	Status   string                 `json:"status"`
	TotalTax float64                `json:"totalTax"`
	Lines    []TransactionLineModel `json:"lines"`
}

// commitTransactionModel is the commit request body.
type commitTransactionModel struct {
	Commit bool `json:"commit"`
}

// voidTransactionModel is the void request body.
type voidTransactionModel struct {
	Code string `json:"code"`
}

// RefundTransactionModel is the refund request body. RefundLines is only
// consulted for partial refunds.
type RefundTransactionModel struct {
	RefundTransactionCode string     `json:"refundTransactionCode,omitempty"`
	RefundType            RefundType `json:"refundType"`
	RefundDate            string     `json:"refundDate"`
	RefundLines           []string   `json:"refundLines,omitempty"`
}

// EntityUseCodeModel is one entry of the entity-use-code definitions list.
type EntityUseCodeModel struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FetchResult is the provider's paginated list envelope.
type FetchResult[T any] struct {
	Count int `json:"@recordsetCount"`
	Value []T `json:"value"`
}

// PingResultModel reports connectivity and credential validity.
type PingResultModel struct {
	Version       string `json:"version"`
	Authenticated bool   `json:"authenticated"`
}

// ValidatedAddressInfo is one candidate from address resolution.
type ValidatedAddressInfo struct {
	AddressType string `json:"addressType"`
	Line1       string `json:"line1"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	PostalCode  string `json:"postalCode"`
}

// AddressResolutionModel is the address validation response.
type AddressResolutionModel struct {
	Address            *AddressLocationInfo   `json:"address"`
	ValidatedAddresses []ValidatedAddressInfo `json:"validatedAddresses"`
	ResolutionQuality  string                 `json:"resolutionQuality"`
}

// errorResult is the provider's error envelope.
type errorResult struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
