package models

// TaxPolicy fixes how the 18% GST relates to line item prices. The whole
// application uses a single policy, chosen once at startup.
type TaxPolicy int

const (
	// TaxInclusive treats line prices as MRP; GST is back-calculated from
	// the total for display.
	TaxInclusive TaxPolicy = iota
	// TaxExclusive adds GST on top of the line item sum.
	TaxExclusive
)

// GSTRate is the Indian GST rate applied to mobile accessories.
const GSTRate = 0.18

// CartSummary is the priced view of a cart shown before and during checkout.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// PriceCart derives all monetary totals for items under the given tax
// policy. It is a pure function of its inputs.
func PriceCart(items []CartItem, policy TaxPolicy) CartSummary {
	sum := 0.0
	count := 0
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
		count += item.Quantity
	}

	summary := CartSummary{Count: count}
	switch policy {
	case TaxExclusive:
		summary.Subtotal = sum
		summary.Tax = sum * GSTRate
		summary.Total = sum + summary.Tax
	default:
		summary.Total = sum
		summary.Tax = sum * GSTRate / (1 + GSTRate)
		summary.Subtotal = summary.Total - summary.Tax
	}
	return summary
}
