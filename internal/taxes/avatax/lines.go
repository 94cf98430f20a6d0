package avatax

import (
	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// ShippingItemCode is the reserved item code marking the synthetic
// shipping line. Shipping is a regular line item in AvaTax, so the
// response mapper locates it by this code, not by position.
const ShippingItemCode = "Shipping"

// mapTaxBaseLines converts checkout/order tax-base lines into provider
// line models: all product lines in source order, then at most one
// shipping line, appended only when the shipping amount is non-zero.
func mapTaxBaseLines(base *domain.TaxBase, config Config, matches taxes.TaxCodeMatches) []LineItemModel {
	lines := make([]LineItemModel, 0, len(base.Lines)+1)

	for _, line := range base.Lines {
		lines = append(lines, LineItemModel{
			Amount:      line.TotalPrice.Amount,
			Quantity:    line.Quantity,
			TaxCode:     matches.Get(line.TaxClassID),
			TaxIncluded: base.PricesEnteredWithTax,
			ItemCode:    skuOrEmpty(line.ProductSKU),
		})
	}

	if base.ShippingPrice.Amount != 0 {
		lines = append(lines, shippingLine(base.ShippingPrice.Amount, base.PricesEnteredWithTax, config))
	}

	return lines
}

// mapOrderLines converts confirmed-order lines the same way as tax-base
// lines; the shapes differ only in their platform envelope.
func mapOrderLines(order *domain.Order, config Config, matches taxes.TaxCodeMatches) []LineItemModel {
	lines := make([]LineItemModel, 0, len(order.Lines)+1)

	for _, line := range order.Lines {
		lines = append(lines, LineItemModel{
			Amount:      line.TotalPrice.Amount,
			Quantity:    line.Quantity,
			TaxCode:     matches.Get(line.TaxClassID),
			TaxIncluded: order.PricesEnteredWithTax,
			ItemCode:    skuOrEmpty(line.ProductSKU),
		})
	}

	if order.ShippingPrice.Amount != 0 {
		lines = append(lines, shippingLine(order.ShippingPrice.Amount, order.PricesEnteredWithTax, config))
	}

	return lines
}

func shippingLine(amount float64, taxIncluded bool, config Config) LineItemModel {
	return LineItemModel{
		Amount:      amount,
		Quantity:    1,
		TaxCode:     config.ShippingTaxCode,
		TaxIncluded: taxIncluded,
		ItemCode:    ShippingItemCode,
	}
}

func skuOrEmpty(sku *string) string {
	if sku == nil {
		return ""
	}
	return *sku
}
