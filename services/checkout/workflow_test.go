package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"handyhub/models"

	"go.uber.org/zap"
)

// memKV is an in-memory cart.Store for the live cart and the staged
// pending booking.
type memKV struct {
	mu   sync.Mutex
	data map[string][]models.CartEntry
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]models.CartEntry)}
}

func (s *memKV) Load(ctx context.Context, clientID string) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[clientID], nil
}

func (s *memKV) Save(ctx context.Context, clientID string, entries []models.CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[clientID] = entries
	return nil
}

func (s *memKV) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, clientID)
	return nil
}

func (s *memKV) has(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data[clientID]) > 0
}

// memSessions stores sessions by value, the way a serializing store would.
type memSessions struct {
	mu   sync.Mutex
	data map[string]models.CheckoutSession
}

func newMemSessions() *memSessions {
	return &memSessions{data: make(map[string]models.CheckoutSession)}
}

func (s *memSessions) Get(ctx context.Context, clientID string) (*models.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.data[clientID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *memSessions) Put(ctx context.Context, session *models.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ClientID] = *session
	return nil
}

func (s *memSessions) Delete(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, clientID)
	return nil
}

// fakeBackend is a BookingBackend with an injectable create func.
type fakeBackend struct {
	mu     sync.Mutex
	create func(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error)
	keys   []string
}

func (b *fakeBackend) CreateBooking(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
	b.mu.Lock()
	b.keys = append(b.keys, idempotencyKey)
	b.mu.Unlock()
	return b.create(ctx, idempotencyKey, clientID, lineItems, draft)
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

func okBackend() *fakeBackend {
	return &fakeBackend{
		create: func(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
			return &models.Booking{ID: "BK-TEST01", ClientID: clientID, Status: models.StatusPending}, nil
		},
	}
}

type testHarness struct {
	svc      *DefaultCheckoutService
	carts    *memKV
	stage    *memKV
	sessions *memSessions
	backend  *fakeBackend
}

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

func newHarness(backend *fakeBackend) *testHarness {
	h := &testHarness{
		carts:    newMemKV(),
		stage:    newMemKV(),
		sessions: newMemSessions(),
		backend:  backend,
	}
	h.svc = &DefaultCheckoutService{
		Carts:    h.carts,
		Stage:    h.stage,
		Sessions: h.sessions,
		Backend:  backend,
		Logger:   zap.NewNop(),
		Now:      func() time.Time { return testNow },
	}
	return h
}

func (h *testHarness) fillCart(t *testing.T, clientID string) {
	t.Helper()
	err := h.carts.Save(context.Background(), clientID, []models.CartEntry{
		{
			ServiceID:   1,
			ServiceName: "House Cleaning",
			Category:    models.CategoryCleaning,
			Items:       []models.SelectedItem{{ID: 2, Name: "1 Bedroom", Price: 120, Quantity: 1}},
			TotalPrice:  120,
		},
	})
	if err != nil {
		t.Fatalf("failed to seed cart: %v", err)
	}
}

var validAddress = models.Address{
	Line1:   "123 Main St",
	City:    "Springfield",
	State:   "IL",
	ZipCode: "62704",
}

// advance drives the workflow from a staged start to the summary step.
func (h *testHarness) advanceToSummary(t *testing.T, clientID string) {
	t.Helper()
	ctx := context.Background()
	if _, _, err := h.svc.Start(ctx, clientID); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := h.svc.SubmitDateTime(ctx, clientID, "2025-06-20", "9:00"); err != nil {
		t.Fatalf("SubmitDateTime failed: %v", err)
	}
	if _, err := h.svc.SubmitAddress(ctx, clientID, validAddress, "ring the bell"); err != nil {
		t.Fatalf("SubmitAddress failed: %v", err)
	}
}

func TestStartRequiresNonEmptyCart(t *testing.T) {
	h := newHarness(okBackend())

	_, _, err := h.svc.Start(context.Background(), "c1")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if h.stage.has("c1") {
		t.Error("expected nothing staged for an empty cart")
	}
}

func TestStartStagesCartAndOpensSession(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")

	session, entries, err := h.svc.Start(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if session.Step != models.StepDateTime {
		t.Errorf("expected workflow to open at datetime, got %q", session.Step)
	}
	if session.SubmitKey == "" {
		t.Error("expected a submit key on the fresh session")
	}
	if len(entries) != 1 || entries[0].ServiceID != 1 {
		t.Errorf("expected staged entries returned, got %+v", entries)
	}
	if !h.stage.has("c1") {
		t.Error("expected pending booking staged")
	}
	// The live cart is untouched until confirmation.
	if !h.carts.has("c1") {
		t.Error("expected live cart preserved at start")
	}
}

func TestOperationsRequireStagedBooking(t *testing.T) {
	h := newHarness(okBackend())
	ctx := context.Background()

	checks := map[string]error{}
	_, _, err := h.svc.Current(ctx, "c1")
	checks["Current"] = err
	_, err = h.svc.SubmitDateTime(ctx, "c1", "2025-06-20", "9:00")
	checks["SubmitDateTime"] = err
	_, err = h.svc.SubmitAddress(ctx, "c1", validAddress, "")
	checks["SubmitAddress"] = err
	_, err = h.svc.Back(ctx, "c1")
	checks["Back"] = err
	_, err = h.svc.Confirm(ctx, "c1")
	checks["Confirm"] = err

	for op, err := range checks {
		if !errors.Is(err, ErrNoPendingBooking) {
			t.Errorf("%s: expected ErrNoPendingBooking, got %v", op, err)
		}
	}
}

func TestSubmitDateTimeValidation(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	ctx := context.Background()

	if _, _, err := h.svc.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := h.svc.SubmitDateTime(ctx, "c1", "2025-06-14", "9:00"); !errors.Is(err, ErrDateInPast) {
		t.Errorf("expected ErrDateInPast, got %v", err)
	}
	if _, err := h.svc.SubmitDateTime(ctx, "c1", "junk", "9:00"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := h.svc.SubmitDateTime(ctx, "c1", "2025-06-20", "9:30"); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Errorf("expected ErrInvalidTimeSlot, got %v", err)
	}

	// Rejections leave the workflow at the datetime step.
	session, _, err := h.svc.Current(ctx, "c1")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if session.Step != models.StepDateTime {
		t.Errorf("expected step to stay at datetime, got %q", session.Step)
	}

	session, err = h.svc.SubmitDateTime(ctx, "c1", "2025-06-20", "9:00")
	if err != nil {
		t.Fatalf("SubmitDateTime failed: %v", err)
	}
	if session.Step != models.StepAddress {
		t.Errorf("expected advance to address, got %q", session.Step)
	}
	if session.SelectedDate != "2025-06-20" || session.SelectedTime != "9:00" {
		t.Errorf("expected draft to record the slot, got %+v", session)
	}
}

func TestStepOrderIsEnforced(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	ctx := context.Background()

	if _, _, err := h.svc.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Address before datetime.
	if _, err := h.svc.SubmitAddress(ctx, "c1", validAddress, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for address at datetime step, got %v", err)
	}
	// Confirm before summary.
	if _, err := h.svc.Confirm(ctx, "c1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for confirm at datetime step, got %v", err)
	}
	// Back at the first step.
	if _, err := h.svc.Back(ctx, "c1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for back at datetime step, got %v", err)
	}
	// Re-submitting datetime after advancing is equally invalid.
	if _, err := h.svc.SubmitDateTime(ctx, "c1", "2025-06-20", "9:00"); err != nil {
		t.Fatalf("SubmitDateTime failed: %v", err)
	}
	if _, err := h.svc.SubmitDateTime(ctx, "c1", "2025-06-21", "10:00"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for repeated datetime submit, got %v", err)
	}
}

func TestSubmitAddressValidation(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	ctx := context.Background()

	if _, _, err := h.svc.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := h.svc.SubmitDateTime(ctx, "c1", "2025-06-20", "9:00"); err != nil {
		t.Fatalf("SubmitDateTime failed: %v", err)
	}

	bad := validAddress
	bad.ZipCode = "1234"
	if _, err := h.svc.SubmitAddress(ctx, "c1", bad, ""); !errors.Is(err, models.ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress for short zip, got %v", err)
	}

	longNotes := strings.Repeat("x", models.MaxNotesLength+1)
	if _, err := h.svc.SubmitAddress(ctx, "c1", validAddress, longNotes); !errors.Is(err, ErrNotesTooLong) {
		t.Errorf("expected ErrNotesTooLong, got %v", err)
	}

	session, err := h.svc.SubmitAddress(ctx, "c1", validAddress, "gate code 4411")
	if err != nil {
		t.Fatalf("SubmitAddress failed: %v", err)
	}
	if session.Step != models.StepSummary {
		t.Errorf("expected advance to summary, got %q", session.Step)
	}
	if session.Address == nil || session.Address.City != "Springfield" {
		t.Errorf("expected address recorded, got %+v", session.Address)
	}
}

func TestBackRetainsDraft(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	h.advanceToSummary(t, "c1")
	ctx := context.Background()

	session, err := h.svc.Back(ctx, "c1")
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if session.Step != models.StepAddress {
		t.Fatalf("expected summary -> address, got %q", session.Step)
	}
	if session.Address == nil || session.Notes != "ring the bell" {
		t.Errorf("expected address draft retained, got %+v", session)
	}

	session, err = h.svc.Back(ctx, "c1")
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if session.Step != models.StepDateTime {
		t.Fatalf("expected address -> datetime, got %q", session.Step)
	}
	if session.SelectedDate != "2025-06-20" {
		t.Errorf("expected date draft retained, got %+v", session)
	}

	if _, err := h.svc.Back(ctx, "c1"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition past the first step, got %v", err)
	}
}

func TestConfirmClearsEverything(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	h.advanceToSummary(t, "c1")
	ctx := context.Background()

	booking, err := h.svc.Confirm(ctx, "c1")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if booking.ID != "BK-TEST01" {
		t.Errorf("expected backend booking returned, got %+v", booking)
	}

	if h.carts.has("c1") {
		t.Error("expected live cart cleared after success")
	}
	if h.stage.has("c1") {
		t.Error("expected pending booking cleared after success")
	}
	if session, _ := h.sessions.Get(ctx, "c1"); session != nil {
		t.Errorf("expected session deleted after success, got %+v", session)
	}
}

func TestConfirmFailurePreservesState(t *testing.T) {
	backendErr := errors.New("ledger unavailable")
	failing := &fakeBackend{}
	failing.create = func(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
		if failing.callCount() == 1 {
			return nil, backendErr
		}
		return &models.Booking{ID: "BK-TEST02", ClientID: clientID, Status: models.StatusPending}, nil
	}

	h := newHarness(failing)
	h.fillCart(t, "c1")
	h.advanceToSummary(t, "c1")
	ctx := context.Background()

	_, err := h.svc.Confirm(ctx, "c1")
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error surfaced, got %v", err)
	}

	// Nothing stored is cleared and the workflow stays at summary.
	if !h.carts.has("c1") || !h.stage.has("c1") {
		t.Error("expected cart and pending booking preserved on failure")
	}
	session, _, err := h.svc.Current(ctx, "c1")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if session.Step != models.StepSummary {
		t.Errorf("expected workflow to stay at summary, got %q", session.Step)
	}
	if session.Submitting {
		t.Error("expected submitting mark cleared after failure")
	}

	// A retry succeeds and reuses the same idempotency key.
	if _, err := h.svc.Confirm(ctx, "c1"); err != nil {
		t.Fatalf("retry Confirm failed: %v", err)
	}
	if failing.keys[0] != failing.keys[1] {
		t.Errorf("expected the retry to reuse the submit key: %q vs %q", failing.keys[0], failing.keys[1])
	}
}

func TestConfirmRejectsSecondSubmitInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := &fakeBackend{
		create: func(ctx context.Context, idempotencyKey, clientID string, lineItems []models.CartEntry, draft models.BookingDraft) (*models.Booking, error) {
			close(entered)
			<-release
			return &models.Booking{ID: "BK-TEST03", ClientID: clientID, Status: models.StatusPending}, nil
		},
	}

	h := newHarness(blocking)
	h.fillCart(t, "c1")
	h.advanceToSummary(t, "c1")
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := h.svc.Confirm(ctx, "c1")
		done <- err
	}()

	<-entered
	if _, err := h.svc.Confirm(ctx, "c1"); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight while submission in flight, got %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("first Confirm failed: %v", err)
	}
	if blocking.callCount() != 1 {
		t.Errorf("expected exactly one backend call, got %d", blocking.callCount())
	}
}

func TestCurrentReopensLostSession(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	ctx := context.Background()

	if _, _, err := h.svc.Start(ctx, "c1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	// The session expires but the staged booking survives.
	if err := h.sessions.Delete(ctx, "c1"); err != nil {
		t.Fatalf("failed to drop session: %v", err)
	}

	session, entries, err := h.svc.Current(ctx, "c1")
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if session.Step != models.StepDateTime {
		t.Errorf("expected reopened session at datetime, got %q", session.Step)
	}
	if len(entries) != 1 {
		t.Errorf("expected staged entries returned, got %+v", entries)
	}
}

func TestRestartOverwritesStagedBooking(t *testing.T) {
	h := newHarness(okBackend())
	h.fillCart(t, "c1")
	h.advanceToSummary(t, "c1")
	ctx := context.Background()

	// The client goes back to the cart and changes the order.
	if err := h.carts.Save(ctx, "c1", []models.CartEntry{
		{
			ServiceID:   5,
			ServiceName: "Handyman Services",
			Category:    models.CategoryRepair,
			Items:       []models.SelectedItem{{ID: 9, Name: "TV Mounting", Price: 75, Quantity: 1}},
			TotalPrice:  75,
		},
	}); err != nil {
		t.Fatalf("failed to reseed cart: %v", err)
	}

	session, entries, err := h.svc.Start(ctx, "c1")
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if session.Step != models.StepDateTime {
		t.Errorf("expected restart at datetime, got %q", session.Step)
	}
	if len(entries) != 1 || entries[0].ServiceID != 5 {
		t.Errorf("expected restaged entries to reflect the new cart, got %+v", entries)
	}
}
