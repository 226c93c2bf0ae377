package models

import (
	"errors"
	"testing"
)

func TestAddressValidate(t *testing.T) {
	valid := Address{
		Line1:   "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}

	plusFour := valid
	plusFour.ZipCode = "62704-1234"
	if err := plusFour.Validate(); err != nil {
		t.Errorf("expected ZIP+4 accepted, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(a *Address)
	}{
		{"missing line1", func(a *Address) { a.Line1 = "" }},
		{"missing city", func(a *Address) { a.City = "" }},
		{"lowercase state", func(a *Address) { a.State = "il" }},
		{"long state", func(a *Address) { a.State = "ILL" }},
		{"short zip", func(a *Address) { a.ZipCode = "1234" }},
		{"alpha zip", func(a *Address) { a.ZipCode = "ABCDE" }},
		{"bad plus-four", func(a *Address) { a.ZipCode = "62704-12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			if err := a.Validate(); !errors.Is(err, ErrInvalidAddress) {
				t.Errorf("expected ErrInvalidAddress, got %v", err)
			}
		})
	}
}

func TestCartEntryRecompute(t *testing.T) {
	e := CartEntry{
		Items: []SelectedItem{
			{ID: 1, Price: 80, Quantity: 2},
			{ID: 2, Price: 25, Quantity: 3},
		},
	}
	e.Recompute()
	if e.TotalPrice != 80*2+25*3 {
		t.Errorf("expected total %v, got %v", float64(80*2+25*3), e.TotalPrice)
	}

	e.Items = nil
	e.Recompute()
	if e.TotalPrice != 0 {
		t.Errorf("expected zero total for empty items, got %v", e.TotalPrice)
	}
}
