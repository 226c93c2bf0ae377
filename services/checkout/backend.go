package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"handyhub/cron"
	"handyhub/database/repository/bookingrepo"
	"handyhub/models"
	"handyhub/services/pricing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingBackend is the single submission operation behind the checkout
// workflow. Implementations must be idempotent on retry for the same
// idempotency key: the disable-while-submitting guard is a UI-level
// safeguard, not a server-side one.
type BookingBackend interface {
	CreateBooking(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error)
}

// NewBookingID generates a customer-facing booking reference.
func NewBookingID() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:6])
}

func buildBooking(idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) models.Booking {
	quote := pricing.ComputeQuote(lineItems)
	return models.Booking{
		ID:          NewBookingID(),
		ClientID:    clientID,
		SessionKey:  idempotencyKey,
		LineItems:   lineItems,
		Date:        draft.Date,
		Time:        draft.Time,
		Address:     draft.Address,
		Notes:       draft.Notes,
		Subtotal:    quote.Subtotal,
		ServiceFee:  quote.ServiceFee,
		Tax:         quote.Tax,
		TotalAmount: quote.Total,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
}

// LedgerBackend persists bookings to the MongoDB ledger and schedules the
// post-booking follow-up task.
type LedgerBackend struct {
	Repo   bookingrepo.BookingRepository
	Tasks  *asynq.Client // optional; follow-up is skipped when nil
	Logger *zap.Logger
}

// NewLedgerBackend returns the production submission backend.
func NewLedgerBackend(repo bookingrepo.BookingRepository, tasks *asynq.Client, logger *zap.Logger) *LedgerBackend {
	return &LedgerBackend{Repo: repo, Tasks: tasks, Logger: logger}
}

func (b *LedgerBackend) CreateBooking(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
	booking := buildBooking(idempotencyKey, clientID, lineItems, draft)

	created, err := b.Repo.InsertOnce(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if b.Tasks != nil {
		if err := cron.EnqueueFollowUp(b.Tasks, created.ID); err != nil {
			// The booking itself succeeded; follow-up scheduling is best effort.
			b.Logger.Warn("failed to enqueue booking follow-up",
				zap.String("bookingID", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

// MockBackend simulates the submission call with a fixed delay and no
// persistence, for development without a database.
type MockBackend struct {
	Delay time.Duration
}

// NewMockBackend returns a backend that always succeeds after delay.
func NewMockBackend(delay time.Duration) *MockBackend {
	return &MockBackend{Delay: delay}
}

func (b *MockBackend) CreateBooking(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
	select {
	case <-time.After(b.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	booking := buildBooking(idempotencyKey, clientID, lineItems, draft)
	return &booking, nil
}
