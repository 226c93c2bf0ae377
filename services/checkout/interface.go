package checkout

import (
	"context"
	"time"

	"handyhub/models"
	"handyhub/services/cart"

	"go.uber.org/zap"
)

// Service drives the strictly ordered, back-navigable checkout workflow
// that turns a staged pending booking into a finalized booking.
//
// Every operation begins by requiring the staged pending booking; when it
// is absent the operation fails with ErrNoPendingBooking and the handler
// redirects back to the cart — checkout is not a valid entry point on its
// own.
type Service interface {
	// Start snapshots the live cart under the pending-booking key and opens
	// a fresh session at the datetime step. Re-starting overwrites any
	// previously staged booking; an empty cart is rejected.
	Start(ctx context.Context, clientID string) (*models.CheckoutSession, []models.CartEntry, error)

	// Current returns the session and staged entries, opening a fresh
	// session at the datetime step if the draft was lost (drafts carry no
	// resume-after-reload guarantee).
	Current(ctx context.Context, clientID string) (*models.CheckoutSession, []models.CartEntry, error)

	// SubmitDateTime records the service date and arrival slot and advances
	// datetime -> address.
	SubmitDateTime(ctx context.Context, clientID, date, timeSlot string) (*models.CheckoutSession, error)

	// SubmitAddress records the validated address and notes and advances
	// address -> summary.
	SubmitAddress(ctx context.Context, clientID string, addr models.Address, notes string) (*models.CheckoutSession, error)

	// Back steps summary -> address or address -> datetime, discarding
	// nothing already collected.
	Back(ctx context.Context, clientID string) (*models.CheckoutSession, error)

	// Confirm performs the final submission exactly once per flow instance.
	// On success the cart, the staged booking, and the session are cleared
	// and the created booking is returned; on failure everything is
	// preserved and the workflow stays at summary.
	Confirm(ctx context.Context, clientID string) (*models.Booking, error)
}

// DefaultCheckoutService implements Service over the cart stores, a session
// store, and a booking submission backend.
type DefaultCheckoutService struct {
	Carts    cart.Store // live cart (serviceCart keys)
	Stage    cart.Store // staged pending booking (pendingBooking keys)
	Sessions SessionStore
	Backend  BookingBackend
	Logger   *zap.Logger
	Now      func() time.Time // injectable clock; defaults to time.Now
}

func (s *DefaultCheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
