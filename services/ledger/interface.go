package ledger

import (
	"context"
	"errors"

	"handyhub/database/repository/bookingrepo"
	"handyhub/models"
)

// ErrNotCancellable is returned when a booking's status does not allow
// cancellation.
var ErrNotCancellable = errors.New("booking can no longer be cancelled")

// Service is the read side of the booking ledger: listing, detail, and the
// one customer-initiated status change (cancellation).
type Service interface {
	ListBookings(ctx context.Context, clientID, status string) ([]models.Booking, error)
	GetBooking(ctx context.Context, clientID, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, clientID, id string) (*models.Booking, error)
}

// DefaultLedgerService implements Service over the booking repository.
type DefaultLedgerService struct {
	Repo bookingrepo.BookingRepository
}

// NewService returns the default ledger service.
func NewService(repo bookingrepo.BookingRepository) *DefaultLedgerService {
	return &DefaultLedgerService{Repo: repo}
}
