package avatax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func strPtr(s string) *string { return &s }

func TestMapTaxBaseLines_AppendsShippingLast(t *testing.T) {
	base := &domain.TaxBase{
		PricesEnteredWithTax: true,
		ShippingPrice:        domain.Money{Amount: 10},
		Lines: []domain.TaxBaseLine{
			{Quantity: 2, TotalPrice: domain.Money{Amount: 40}, TaxClassID: "standard", ProductSKU: strPtr("SKU-1")},
			{Quantity: 1, TotalPrice: domain.Money{Amount: 15}, TaxClassID: "books", ProductSKU: nil},
		},
	}
	config := Config{ShippingTaxCode: "FR000000"}
	matches := taxes.TaxCodeMatches{"standard": "P0000000"}

	lines := mapTaxBaseLines(base, config, matches)

	require.Len(t, lines, 3)

	assert.Equal(t, 40.0, lines[0].Amount)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "P0000000", lines[0].TaxCode)
	assert.True(t, lines[0].TaxIncluded)
	assert.Equal(t, "SKU-1", lines[0].ItemCode)

	// Unmatched tax class goes out with an empty code.
	assert.Equal(t, "", lines[1].TaxCode)
	assert.Equal(t, "", lines[1].ItemCode)

	shipping := lines[2]
	assert.Equal(t, ShippingItemCode, shipping.ItemCode)
	assert.Equal(t, 10.0, shipping.Amount)
	assert.Equal(t, 1, shipping.Quantity)
	assert.Equal(t, "FR000000", shipping.TaxCode)
	assert.True(t, shipping.TaxIncluded)
}

func TestMapTaxBaseLines_NoShippingLineWhenZero(t *testing.T) {
	base := &domain.TaxBase{
		ShippingPrice: domain.Money{Amount: 0},
		Lines: []domain.TaxBaseLine{
			{Quantity: 1, TotalPrice: domain.Money{Amount: 15}, TaxClassID: "standard"},
		},
	}

	lines := mapTaxBaseLines(base, Config{}, taxes.TaxCodeMatches{})

	require.Len(t, lines, 1)
	assert.NotEqual(t, ShippingItemCode, lines[0].ItemCode)
}

func TestMapOrderLines(t *testing.T) {
	order := &domain.Order{
		PricesEnteredWithTax: false,
		ShippingPrice:        domain.Money{Amount: 7.95},
		Lines: []domain.OrderLine{
			{Quantity: 3, TotalPrice: domain.Money{Amount: 30}, TaxClassID: "standard", ProductSKU: strPtr("SKU-9")},
		},
	}
	matches := taxes.TaxCodeMatches{"standard": "P0000000"}

	lines := mapOrderLines(order, Config{ShippingTaxCode: "FR000000"}, matches)

	require.Len(t, lines, 2)
	assert.Equal(t, "SKU-9", lines[0].ItemCode)
	assert.False(t, lines[0].TaxIncluded)
	assert.Equal(t, ShippingItemCode, lines[1].ItemCode)
	assert.Equal(t, 7.95, lines[1].Amount)
}
