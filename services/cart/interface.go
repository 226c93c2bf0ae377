package cart

import (
	"context"

	"handyhub/models"

	"go.uber.org/zap"
)

// Engine maintains the authoritative per-client cart and keeps it durable
// across page loads. Every mutating operation writes through to the store
// before returning.
type Engine interface {
	// Get returns the client's current cart. Storage failures degrade to an
	// empty cart; they are logged, never returned.
	Get(ctx context.Context, clientID string) []models.CartEntry

	// AddOrReplaceSelection inserts a cart entry for the service, replacing
	// any existing entry with the same service id. Items must be non-empty
	// with quantities >= 1; callers filter zero-quantity choices first.
	AddOrReplaceSelection(ctx context.Context, clientID string, service models.Service, items []models.SelectedItem) []models.CartEntry

	// ChangeQuantity adjusts one item's quantity by delta, floored at zero.
	// An item driven to zero is removed; an entry left without items is
	// removed from the cart entirely.
	ChangeQuantity(ctx context.Context, clientID string, serviceID, itemID, delta int) []models.CartEntry

	// RemoveService deletes the entry for the service outright.
	RemoveService(ctx context.Context, clientID string, serviceID int) []models.CartEntry

	// Total sums the entry totals. Pure, no side effect.
	Total(entries []models.CartEntry) float64
}

// DefaultEngine implements Engine over a Store.
type DefaultEngine struct {
	Store  Store
	Logger *zap.Logger
}

// NewEngine returns the default cart engine.
func NewEngine(store Store, logger *zap.Logger) *DefaultEngine {
	return &DefaultEngine{Store: store, Logger: logger}
}
