package models

import "time"

// Booking statuses as surfaced on the bookings ledger.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsValidStatus reports whether s is a known ledger status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a finalized booking record, the sole survivor of a
// successful checkout submission.
type Booking struct {
	ID          string      `bson:"id" json:"id"`                     // e.g. "BK-3F9A1C", unique per submission
	ClientID    string      `bson:"client_id" json:"clientId"`       // owning storefront client
	SessionKey  string      `bson:"session_key" json:"-"`            // idempotency token for the submission
	LineItems   []CartEntry `bson:"line_items" json:"lineItems"`     // copied from the staged pending booking
	Date        string      `bson:"date" json:"date"`                // "YYYY-MM-DD"
	Time        string      `bson:"time" json:"time"`                // slot label; arrival is approximate
	Address     Address     `bson:"address" json:"address"`
	Notes       string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Subtotal    float64     `bson:"subtotal" json:"subtotal"`
	ServiceFee  float64     `bson:"service_fee" json:"serviceFee"`
	Tax         float64     `bson:"tax" json:"tax"`
	TotalAmount float64     `bson:"total_amount" json:"totalAmount"`
	Status      string      `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
}
