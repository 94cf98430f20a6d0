package avatax

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
)

func confirmedOrder() *domain.Order {
	return &domain.Order{
		ID:                   "order-1",
		Created:              time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Currency:             "USD",
		PricesEnteredWithTax: false,
		UserID:               strPtr("42"),
		UserEmail:            strPtr("a@b.com"),
		ShippingAddress: &domain.Address{
			StreetAddress1: "100 Main St",
			City:           "Seattle",
			CountryArea:    "WA",
			Country:        "US",
			PostalCode:     "98101",
		},
		ShippingPrice: domain.Money{Amount: 10},
		Lines: []domain.OrderLine{
			{Quantity: 1, TotalPrice: domain.Money{Amount: 40}, TaxClassID: "standard", ProductSKU: strPtr("SKU-1")},
		},
	}
}

func TestTransformOrderConfirmed(t *testing.T) {
	p := testProvider(&stubEntityLister{})
	p.config.IsDocumentRecordingEnabled = true

	model, err := p.transformOrderConfirmed(context.Background(), confirmedOrder())
	require.NoError(t, err)

	assert.Equal(t, "order-1", model.Code, "document code falls back to order id")
	assert.Equal(t, DocumentTypeSalesInvoice, model.Type)
	assert.Equal(t, "ACME", model.CompanyCode)
	assert.Equal(t, "42", model.CustomerCode)
	assert.True(t, model.Commit)
	assert.Equal(t, "a@b.com", model.Email)
	assert.Equal(t, "2025-06-01", model.Date)

	require.Len(t, model.Lines, 2)
	assert.Equal(t, ShippingItemCode, model.Lines[1].ItemCode)
}

func TestTransformOrderConfirmed_MetadataOverrides(t *testing.T) {
	p := testProvider(&stubEntityLister{})

	order := confirmedOrder()
	order.AvataxDocumentCode = strPtr("custom-doc")
	order.AvataxTaxCalculationDate = strPtr("2025-07-15T09:30:00Z")

	model, err := p.transformOrderConfirmed(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "custom-doc", model.Code)
	assert.Equal(t, "2025-07-15", model.Date)
}

func TestTransformOrderConfirmed_RecordingDisabled(t *testing.T) {
	p := testProvider(&stubEntityLister{})
	p.config.IsDocumentRecordingEnabled = false

	model, err := p.transformOrderConfirmed(context.Background(), confirmedOrder())
	require.NoError(t, err)

	assert.Equal(t, DocumentTypeSalesOrder, model.Type)
}

func TestTransformOrderConfirmed_NoEmail(t *testing.T) {
	p := testProvider(&stubEntityLister{})

	order := confirmedOrder()
	order.UserEmail = nil

	model, err := p.transformOrderConfirmed(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "42", model.CustomerCode)
	assert.Equal(t, "", model.Email)
}
