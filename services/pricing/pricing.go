package pricing

import "handyhub/models"

// Checkout pricing constants. The fee is flat per booking; tax is estimated
// against the subtotal only.
const (
	ServiceFee = 5.00
	TaxRate    = 0.08
)

// Quote is the price breakdown shown on the cart summary and the checkout
// review step. Both surfaces compute it through ComputeQuote so the figures
// can never diverge.
type Quote struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// ComputeQuote derives the quote from the current cart entries. It is pure
// and recomputed at render time, never cached.
func ComputeQuote(entries []models.CartEntry) Quote {
	subtotal := models.CartTotal(entries)
	tax := subtotal * TaxRate
	return Quote{
		Subtotal:   subtotal,
		ServiceFee: ServiceFee,
		Tax:        tax,
		Total:      subtotal + ServiceFee + tax,
	}
}
