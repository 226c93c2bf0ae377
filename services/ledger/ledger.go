package ledger

import (
	"context"
	"fmt"

	"handyhub/models"
)

// ListBookings returns a client's bookings, newest first, optionally
// filtered by ledger status.
func (s *DefaultLedgerService) ListBookings(ctx context.Context, clientID, status string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByClient(ctx, clientID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking fetches one booking scoped to the owning client.
func (s *DefaultLedgerService) GetBooking(ctx context.Context, clientID, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBooking cancels a booking that is still pending or confirmed.
// Completed and already-cancelled bookings are final.
func (s *DefaultLedgerService) CancelBooking(ctx context.Context, clientID, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, clientID, id)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.StatusPending, models.StatusConfirmed:
	default:
		return nil, ErrNotCancellable
	}

	if err := s.Repo.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.StatusCancelled
	return booking, nil
}
