package cart

import (
	"context"

	"handyhub/models"

	"go.uber.org/zap"
)

// load fetches the client's cart, degrading to an empty cart on any storage
// failure. Read errors never reach the caller.
func (e *DefaultEngine) load(ctx context.Context, clientID string) []models.CartEntry {
	entries, err := e.Store.Load(ctx, clientID)
	if err != nil {
		e.Logger.Warn("cart: store read failed, starting empty",
			zap.String("clientID", clientID), zap.Error(err))
		return nil
	}
	return entries
}

// persist writes the cart through to the store. Write failures are logged
// and the in-memory result is still returned to the caller.
func (e *DefaultEngine) persist(ctx context.Context, clientID string, entries []models.CartEntry) {
	if err := e.Store.Save(ctx, clientID, entries); err != nil {
		e.Logger.Warn("cart: store write failed, keeping in-memory state",
			zap.String("clientID", clientID), zap.Error(err))
	}
}

// Get returns the client's current cart.
func (e *DefaultEngine) Get(ctx context.Context, clientID string) []models.CartEntry {
	return e.load(ctx, clientID)
}

// AddOrReplaceSelection inserts or replaces the entry for the service.
// Selecting a different tier for a room-tier service replaces the prior tier
// through the same rule: at most one entry per service id.
func (e *DefaultEngine) AddOrReplaceSelection(ctx context.Context, clientID string, service models.Service, items []models.SelectedItem) []models.CartEntry {
	selected := make([]models.SelectedItem, 0, len(items))
	for _, it := range items {
		if it.Quantity >= 1 {
			selected = append(selected, it)
		}
	}
	if len(selected) == 0 {
		return e.load(ctx, clientID)
	}

	entry := models.CartEntry{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Category:    service.Category,
		Items:       selected,
	}
	entry.Recompute()

	entries := e.load(ctx, clientID)
	replaced := false
	for i := range entries {
		if entries[i].ServiceID == service.ID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	e.persist(ctx, clientID, entries)
	return entries
}

// ChangeQuantity adjusts the named item's quantity by delta, floored at
// zero. Repeated decrements past zero have no further effect.
func (e *DefaultEngine) ChangeQuantity(ctx context.Context, clientID string, serviceID, itemID, delta int) []models.CartEntry {
	entries := e.load(ctx, clientID)

	updated := entries[:0]
	changed := false
	for _, entry := range entries {
		if entry.ServiceID == serviceID {
			items := make([]models.SelectedItem, 0, len(entry.Items))
			for _, it := range entry.Items {
				if it.ID == itemID {
					q := it.Quantity + delta
					if q < 0 {
						q = 0
					}
					if q != it.Quantity {
						changed = true
					}
					if q == 0 {
						continue
					}
					it.Quantity = q
				}
				items = append(items, it)
			}
			if len(items) == 0 {
				continue
			}
			entry.Items = items
			entry.Recompute()
		}
		updated = append(updated, entry)
	}

	if !changed && len(updated) == len(entries) {
		return updated
	}
	e.persist(ctx, clientID, updated)
	return updated
}

// RemoveService deletes the entry for the service regardless of contents.
func (e *DefaultEngine) RemoveService(ctx context.Context, clientID string, serviceID int) []models.CartEntry {
	entries := e.load(ctx, clientID)

	updated := entries[:0]
	for _, entry := range entries {
		if entry.ServiceID != serviceID {
			updated = append(updated, entry)
		}
	}

	e.persist(ctx, clientID, updated)
	return updated
}

// Total sums the entry totals.
func (e *DefaultEngine) Total(entries []models.CartEntry) float64 {
	return models.CartTotal(entries)
}
