package taxes

import "github.com/shopspring/decimal"

// RoundTwoDecimals rounds a monetary amount to two decimal places,
// half away from zero. Applied only at the response-mapping boundary,
// never on the request path.
func RoundTwoDecimals(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// SumDiscounts totals order/checkout discount amounts. Summation happens
// in decimal space so repeated float addition cannot drift the total.
func SumDiscounts(discounts []float64) float64 {
	total := decimal.Zero
	for _, d := range discounts {
		total = total.Add(decimal.NewFromFloat(d))
	}
	sum, _ := total.Float64()
	return sum
}
