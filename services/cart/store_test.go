package cart

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"

	"handyhub/models"
)

var roomTierEntry = models.CartEntry{
	ServiceID:   1,
	ServiceName: "House Cleaning",
	Category:    models.CategoryCleaning,
	Items: []models.SelectedItem{
		{ID: 2, Name: "2 Bedrooms", Price: 120, Quantity: 1},
	},
	TotalPrice: 120,
}

var perItemEntry = models.CartEntry{
	ServiceID:   5,
	ServiceName: "Handyman Services",
	Category:    models.CategoryRepair,
	Items: []models.SelectedItem{
		{ID: 9, Name: "TV Wall Mount", Price: 75, Quantity: 2},
		{ID: 11, Name: "Picture Hanging", Price: 25, Quantity: 3},
	},
	TotalPrice: 75*2 + 25*3,
}

// The store keeps one JSON document per client; what goes in must come
// back structurally identical across carts of any size and pricing mode.
func TestCartPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.CartEntry
	}{
		{"empty cart", nil},
		{"single room-tier entry", []models.CartEntry{roomTierEntry}},
		{"mixed entries", []models.CartEntry{roomTierEntry, perItemEntry}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.entries)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			var reloaded []models.CartEntry
			if err := json.Unmarshal(data, &reloaded); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual(reloaded, tt.entries) {
				t.Errorf("round trip changed the cart:\n got  %+v\n want %+v", reloaded, tt.entries)
			}
		})
	}
}

// The stored document shape is a compatibility surface; renaming a field
// would orphan every cart already persisted.
func TestCartPayloadFieldNames(t *testing.T) {
	data, err := json.Marshal([]models.CartEntry{perItemEntry})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected one entry, got %d", len(raw))
	}

	assertKeys(t, "entry", raw[0], []string{"category", "items", "serviceId", "serviceName", "totalPrice"})

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw[0]["items"], &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	for _, item := range items {
		assertKeys(t, "item", item, []string{"id", "name", "price", "quantity"})
	}
}

func assertKeys(t *testing.T, label string, obj map[string]json.RawMessage, want []string) {
	t.Helper()
	got := make([]string, 0, len(obj))
	for k := range obj {
		got = append(got, k)
	}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s keys: got %v, want %v", label, got, want)
	}
}
