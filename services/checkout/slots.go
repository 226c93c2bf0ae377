package checkout

import "time"

// TimeSlots is the fixed set of offered arrival slots spanning the business
// day. Arrival is surfaced to the customer as approximate, not a scheduling
// commitment.
var TimeSlots = []string{
	"8:00", "9:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// IsOfferedSlot reports whether t is one of the offered arrival slots.
func IsOfferedSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// dateLayout is the wire format for service dates.
const dateLayout = "2006-01-02"

// ValidateServiceDate checks that date parses as YYYY-MM-DD and is not
// earlier than today. Dates are compared as calendar days in local time;
// there is deliberately no UTC normalization.
func ValidateServiceDate(date string, now time.Time) error {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrDateInPast
	}
	return nil
}
