package models

// Pricing modes determine cart selection semantics: room-tier services take
// exactly one tier per add, per-item services take multiple line items with
// independent quantities.
const (
	PricingModeRoomTier = "room_tier"
	PricingModePerItem  = "per_item"
)

// Service categories used for filtering and display.
const (
	CategoryCleaning     = "cleaning"
	CategoryRepair       = "repair"
	CategoryInstallation = "installation"
	CategoryMaintenance  = "maintenance"
	CategoryMoving       = "moving"
)

// ServiceItem is a purchasable line offered by a Service. Reference data,
// immutable once published.
type ServiceItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // non-negative unit price in dollars
	Unit        string  `json:"unit"`  // pricing basis label, e.g. "per_item", informational only
}

// Service is a category of work containing one or more purchasable items.
type Service struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	BasePrice       float64       `json:"basePrice"`
	PricingMode     string        `json:"pricingMode"`
	DurationMinutes int           `json:"durationMinutes"`
	Items           []ServiceItem `json:"items"`
}

// Item returns the service item with the given id, if present.
func (s Service) Item(itemID int) (ServiceItem, bool) {
	for _, it := range s.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return ServiceItem{}, false
}
