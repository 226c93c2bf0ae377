package checkout

import "errors"

var (
	// ErrEmptyCart is returned when checkout is started with nothing to book.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoPendingBooking is returned when a workflow operation runs without
	// a staged pending booking; handlers answer it with a redirect to the
	// cart view rather than an error display.
	ErrNoPendingBooking = errors.New("no pending booking staged")

	// ErrInvalidTransition is returned when an operation is requested from a
	// step that does not permit it.
	ErrInvalidTransition = errors.New("invalid checkout step transition")

	// ErrSubmitInFlight is returned when a final submission is triggered
	// while one is already in progress.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrDateInPast rejects service dates earlier than today.
	ErrDateInPast = errors.New("service date must not be in the past")

	// ErrInvalidDate rejects malformed service dates.
	ErrInvalidDate = errors.New("invalid service date")

	// ErrInvalidTimeSlot rejects times outside the offered slot set.
	ErrInvalidTimeSlot = errors.New("time is not an offered slot")

	// ErrNotesTooLong rejects special instructions over the length cap.
	ErrNotesTooLong = errors.New("special instructions too long")
)
