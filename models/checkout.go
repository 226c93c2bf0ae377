package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidAddress marks structural address validation failures.
var ErrInvalidAddress = errors.New("invalid address")

// CheckoutStep identifies a state of the checkout workflow.
type CheckoutStep string

const (
	StepDateTime     CheckoutStep = "datetime"
	StepAddress      CheckoutStep = "address"
	StepSummary      CheckoutStep = "summary"
	StepConfirmation CheckoutStep = "confirmation"
)

// Address is a structurally validated US service address.
type Address struct {
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required,len=2"`
	ZipCode string `json:"zipCode" binding:"required"`
}

var (
	zipCodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	stateRe   = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Validate checks the structural address rules: street line and city present,
// two-letter state, five-digit or ZIP+4 code.
func (a Address) Validate() error {
	if a.Line1 == "" {
		return fmt.Errorf("%w: address line 1 is required", ErrInvalidAddress)
	}
	if a.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidAddress)
	}
	if !stateRe.MatchString(a.State) {
		return fmt.Errorf("%w: state must be a 2-letter code", ErrInvalidAddress)
	}
	if !zipCodeRe.MatchString(a.ZipCode) {
		return fmt.Errorf("%w: malformed ZIP code", ErrInvalidAddress)
	}
	return nil
}

// MaxNotesLength bounds the special-instructions text.
const MaxNotesLength = 500

// CheckoutSession is the workflow state held between checkout steps. It is
// session-scoped draft state: abandoning the flow discards it, while the
// staged pending booking remains in the durable store.
type CheckoutSession struct {
	ClientID     string       `json:"clientId"`
	SubmitKey    string       `json:"submitKey"` // idempotency token for final submission, stable per flow instance
	Step         CheckoutStep `json:"step"`
	SelectedDate string       `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime string       `json:"selectedTime,omitempty"` // slot label, e.g. "9:00"
	Address      *Address     `json:"address,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Submitting   bool         `json:"submitting"` // set while a final submission is in flight
	CreatedAt    time.Time    `json:"createdAt"`
}

// Draft returns the collected booking details for final submission.
func (s CheckoutSession) Draft() BookingDraft {
	var addr Address
	if s.Address != nil {
		addr = *s.Address
	}
	return BookingDraft{
		Date:    s.SelectedDate,
		Time:    s.SelectedTime,
		Address: addr,
		Notes:   s.Notes,
	}
}

// BookingDraft is the incrementally collected booking data passed to the
// submission backend.
type BookingDraft struct {
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Address Address `json:"address"`
	Notes   string  `json:"notes,omitempty"`
}
