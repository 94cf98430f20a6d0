package avatax

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func testProvider(entities entityUseCodeLister) *Provider {
	return &Provider{
		config: Config{
			CompanyCode:     "ACME",
			IsAutocommit:    true,
			ShippingTaxCode: "FR000000",
			Address: taxes.MerchantAddress{
				Line1:      "1 Warehouse Way",
				City:       "Portland",
				State:      "OR",
				PostalCode: "97201",
				Country:    "US",
			},
		},
		matches:  taxes.TaxCodeMatches{"standard": "P0000000"},
		logger:   discardLogger(),
		entities: entities,
	}
}

func calculateTaxesPayload() *domain.CalculateTaxesPayload {
	return &domain.CalculateTaxesPayload{
		TaxBase: domain.TaxBase{
			Currency:             "USD",
			PricesEnteredWithTax: false,
			ShippingPrice:        domain.Money{Amount: 10},
			Address: &domain.Address{
				StreetAddress1: "100 Main St",
				City:           "Seattle",
				CountryArea:    "WA",
				Country:        "US",
				PostalCode:     "98101",
			},
			Discounts: []domain.Discount{
				{Amount: domain.Money{Amount: 5}},
				{Amount: domain.Money{Amount: 2.5}},
			},
			Lines: []domain.TaxBaseLine{
				{Quantity: 2, TotalPrice: domain.Money{Amount: 40}, TaxClassID: "standard", ProductSKU: strPtr("SKU-1")},
			},
			SourceObject: domain.SourceObject{
				Type:   domain.SourceObjectCheckout,
				ID:     "checkout-1",
				UserID: strPtr("42"),
				Email:  strPtr("a@b.com"),
			},
		},
	}
}

func TestTransformCalculateTaxes(t *testing.T) {
	stub := &stubEntityLister{}
	p := testProvider(stub)

	model, err := p.transformCalculateTaxes(context.Background(), calculateTaxesPayload())
	require.NoError(t, err)

	assert.Equal(t, DocumentTypeSalesOrder, model.Type)
	assert.Equal(t, "ACME", model.CompanyCode)
	assert.Equal(t, "42", model.CustomerCode)
	assert.True(t, model.Commit)
	assert.Equal(t, "", model.EntityUseCode)
	assert.Equal(t, "USD", model.CurrencyCode)
	assert.Equal(t, 7.5, model.Discount)
	assert.NotEmpty(t, model.Date)

	require.NotNil(t, model.Addresses)
	assert.Equal(t, "Portland", model.Addresses.ShipFrom.City)
	assert.Equal(t, "Seattle", model.Addresses.ShipTo.City)
	assert.Equal(t, "WA", model.Addresses.ShipTo.Region)

	require.Len(t, model.Lines, 2)
	assert.Equal(t, "P0000000", model.Lines[0].TaxCode)
	assert.Equal(t, ShippingItemCode, model.Lines[1].ItemCode)
	assert.Equal(t, "FR000000", model.Lines[1].TaxCode)
}

func TestTransformCalculateTaxes_EntityUseCode(t *testing.T) {
	stub := &stubEntityLister{
		result: &FetchResult[EntityUseCodeModel]{
			Count: 1,
			Value: []EntityUseCodeModel{{Code: "G"}},
		},
	}
	p := testProvider(stub)

	payload := calculateTaxesPayload()
	payload.TaxBase.SourceObject.AvataxEntityCode = strPtr("G")

	model, err := p.transformCalculateTaxes(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "G", model.EntityUseCode)
	assert.Equal(t, 1, stub.calls)
}

func TestTransformCalculateTaxes_MissingCustomer(t *testing.T) {
	p := testProvider(&stubEntityLister{})

	payload := calculateTaxesPayload()
	payload.TaxBase.SourceObject.UserID = nil
	payload.TaxBase.SourceObject.Email = nil

	_, err := p.transformCalculateTaxes(context.Background(), payload)
	assert.True(t, taxes.IsMissingFieldError(err))
}

func TestTransformCalculateTaxes_EntityLookupFailure(t *testing.T) {
	p := testProvider(&stubEntityLister{err: errors.New("status 503")})

	payload := calculateTaxesPayload()
	payload.TaxBase.SourceObject.AvataxEntityCode = strPtr("G")

	_, err := p.transformCalculateTaxes(context.Background(), payload)
	assert.Error(t, err)
}

func TestTransformCalculateTaxes_NilAddressPassesThrough(t *testing.T) {
	p := testProvider(&stubEntityLister{})

	payload := calculateTaxesPayload()
	payload.TaxBase.Address = nil

	model, err := p.transformCalculateTaxes(context.Background(), payload)
	require.NoError(t, err)
	require.NotNil(t, model.Addresses)
	assert.Nil(t, model.Addresses.ShipTo)
	assert.NotNil(t, model.Addresses.ShipFrom)
}
