package models

// SelectedItem is a chosen quantity of one service item as held in the cart.
// Name and Price are snapshots taken at selection time; later catalog changes
// never retroactively alter a cart that already contains the item.
type SelectedItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"` // always >= 1; a zero-quantity item is removed, not stored
}

// CartEntry holds one service's selections within the cart. Items is never
// empty: an entry whose last item is removed is dropped from the cart.
type CartEntry struct {
	ServiceID   int            `json:"serviceId"`
	ServiceName string         `json:"serviceName"`
	Category    string         `json:"category"`
	Items       []SelectedItem `json:"items"`
	TotalPrice  float64        `json:"totalPrice"` // derived: sum of Price*Quantity, recomputed on every mutation
}

// Recompute refreshes the derived entry total from its items.
func (e *CartEntry) Recompute() {
	total := 0.0
	for _, it := range e.Items {
		total += it.Price * float64(it.Quantity)
	}
	e.TotalPrice = total
}

// CartTotal sums the entry totals of a cart.
func CartTotal(entries []CartEntry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.TotalPrice
	}
	return total
}
