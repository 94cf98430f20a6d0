package avatax

import (
	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

// mapResponse converts a provider transaction into the platform's
// calculate-taxes response contract. Rounding to two decimals happens
// only here, never on the request path.
func mapResponse(transaction *TransactionModel) *domain.CalculateTaxesResponse {
	gross, net, rate := mapShippingLine(transaction)

	return &domain.CalculateTaxesResponse{
		ShippingPriceGrossAmount: gross,
		ShippingPriceNetAmount:   net,
		ShippingTaxRate:          rate,
		Lines:                    mapProductLines(transaction),
	}
}

// mapShippingLine locates the shipping line by its reserved item code.
// Absence is valid: zero-shipping orders produce no shipping line, and
// the response reports zero amounts for it.
func mapShippingLine(transaction *TransactionModel) (gross, net, rate float64) {
	var shipping *TransactionLineModel
	for i := range transaction.Lines {
		if transaction.Lines[i].ItemCode == ShippingItemCode {
			shipping = &transaction.Lines[i]
			break
		}
	}

	if shipping == nil {
		return 0, 0, 0
	}

	if !shipping.IsItemTaxable {
		return shipping.LineAmount, shipping.LineAmount, 0
	}

	// The provider does not return a combined tax rate, so the rate is
	// reported as zero. Deriving an effective rate from the amounts is a
	// possible later improvement.
	gross = taxes.RoundTwoDecimals(shipping.TaxableAmount + shipping.TaxCalculated)
	return gross, shipping.TaxableAmount, 0
}

// mapProductLines converts every non-shipping line, preserving source
// order.
func mapProductLines(transaction *TransactionModel) []domain.CalculateTaxesLine {
	lines := make([]domain.CalculateTaxesLine, 0, len(transaction.Lines))

	for _, line := range transaction.Lines {
		if line.ItemCode == ShippingItemCode {
			continue
		}

		if !line.IsItemTaxable {
			lines = append(lines, domain.CalculateTaxesLine{
				TotalGrossAmount: line.LineAmount,
				TotalNetAmount:   line.LineAmount,
				TaxRate:          0,
			})
			continue
		}

		lines = append(lines, domain.CalculateTaxesLine{
			TotalGrossAmount: taxes.RoundTwoDecimals(line.TaxableAmount + line.TaxCalculated),
			TotalNetAmount:   line.TaxableAmount,
			TaxRate:          0,
		})
	}

	return lines
}
