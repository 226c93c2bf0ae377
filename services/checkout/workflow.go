package checkout

import (
	"context"
	"fmt"

	"handyhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start stages the live cart and opens the workflow at the datetime step.
func (s *DefaultCheckoutService) Start(ctx context.Context, clientID string) (*models.CheckoutSession, []models.CartEntry, error) {
	entries, err := s.Carts.Load(ctx, clientID)
	if err != nil {
		s.Logger.Warn("checkout: cart read failed at start",
			zap.String("clientID", clientID), zap.Error(err))
		entries = nil
	}
	if len(entries) == 0 {
		return nil, nil, ErrEmptyCart
	}

	if err := s.Stage.Save(ctx, clientID, entries); err != nil {
		return nil, nil, fmt.Errorf("failed to stage pending booking: %w", err)
	}

	session := s.newSession(clientID)
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to open checkout session: %w", err)
	}
	return session, entries, nil
}

// Current returns the workflow state, re-opening a fresh draft if needed.
func (s *DefaultCheckoutService) Current(ctx context.Context, clientID string) (*models.CheckoutSession, []models.CartEntry, error) {
	entries, err := s.requireStage(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	session, err := s.ensureSession(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	return session, entries, nil
}

// SubmitDateTime validates and records the service date and arrival slot.
func (s *DefaultCheckoutService) SubmitDateTime(ctx context.Context, clientID, date, timeSlot string) (*models.CheckoutSession, error) {
	if _, err := s.requireStage(ctx, clientID); err != nil {
		return nil, err
	}
	session, err := s.ensureSession(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDateTime {
		return nil, ErrInvalidTransition
	}

	if err := ValidateServiceDate(date, s.now()); err != nil {
		return nil, err
	}
	if !IsOfferedSlot(timeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	session.SelectedDate = date
	session.SelectedTime = timeSlot
	session.Step = models.StepAddress
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// SubmitAddress records the validated service address and notes.
func (s *DefaultCheckoutService) SubmitAddress(ctx context.Context, clientID string, addr models.Address, notes string) (*models.CheckoutSession, error) {
	if _, err := s.requireStage(ctx, clientID); err != nil {
		return nil, err
	}
	session, err := s.ensureSession(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepAddress {
		return nil, ErrInvalidTransition
	}

	if err := addr.Validate(); err != nil {
		return nil, err
	}
	if len(notes) > models.MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	session.Address = &addr
	session.Notes = notes
	session.Step = models.StepSummary
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Back steps the workflow one step toward the datetime step. Collected
// draft fields are retained.
func (s *DefaultCheckoutService) Back(ctx context.Context, clientID string) (*models.CheckoutSession, error) {
	if _, err := s.requireStage(ctx, clientID); err != nil {
		return nil, err
	}
	session, err := s.ensureSession(ctx, clientID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepSummary:
		session.Step = models.StepAddress
	case models.StepAddress:
		session.Step = models.StepDateTime
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save checkout session: %w", err)
	}
	return session, nil
}

// Confirm performs the final submission. The submitting mark is written
// through before the backend call so a second trigger while one is in
// flight is rejected; the cart and staged booking are cleared only after
// the backend reports success.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, clientID string) (*models.Booking, error) {
	entries, err := s.requireStage(ctx, clientID)
	if err != nil {
		return nil, err
	}
	session, err := s.ensureSession(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, ErrInvalidTransition
	}
	if session.Submitting {
		return nil, ErrSubmitInFlight
	}

	session.Submitting = true
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to mark submission in flight: %w", err)
	}

	booking, err := s.Backend.CreateBooking(ctx, session.SubmitKey, clientID, entries, session.Draft())
	if err != nil {
		// Roll back to summary; nothing stored is cleared.
		session.Submitting = false
		if putErr := s.Sessions.Put(ctx, session); putErr != nil {
			s.Logger.Error("checkout: failed to clear submitting mark after failure",
				zap.String("clientID", clientID), zap.Error(putErr))
		}
		return nil, fmt.Errorf("booking submission failed: %w", err)
	}

	if err := s.Carts.Delete(ctx, clientID); err != nil {
		s.Logger.Warn("checkout: failed to clear cart after booking",
			zap.String("clientID", clientID), zap.Error(err))
	}
	if err := s.Stage.Delete(ctx, clientID); err != nil {
		s.Logger.Warn("checkout: failed to clear pending booking after booking",
			zap.String("clientID", clientID), zap.Error(err))
	}
	if err := s.Sessions.Delete(ctx, clientID); err != nil {
		s.Logger.Warn("checkout: failed to delete session after booking",
			zap.String("clientID", clientID), zap.Error(err))
	}

	return booking, nil
}

// requireStage loads the staged pending booking, enforcing the workflow's
// entry guard.
func (s *DefaultCheckoutService) requireStage(ctx context.Context, clientID string) ([]models.CartEntry, error) {
	entries, err := s.Stage.Load(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending booking: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoPendingBooking
	}
	return entries, nil
}

// ensureSession fetches the current draft session, opening a fresh one at
// the datetime step when none exists.
func (s *DefaultCheckoutService) ensureSession(ctx context.Context, clientID string) (*models.CheckoutSession, error) {
	session, err := s.Sessions.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = s.newSession(clientID)
		if err := s.Sessions.Put(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to open checkout session: %w", err)
		}
	}
	return session, nil
}

func (s *DefaultCheckoutService) newSession(clientID string) *models.CheckoutSession {
	return &models.CheckoutSession{
		ClientID:  clientID,
		SubmitKey: uuid.New().String(),
		Step:      models.StepDateTime,
		CreatedAt: s.now(),
	}
}
