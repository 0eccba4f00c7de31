package packing

import (
	"errors"
	"testing"
)

func TestNewItemValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   float64
		width    float64
		height   float64
		quantity int
		wantErr  error
	}{
		{name: "Valid", length: 1.3, width: 0.88, height: 0.8, quantity: 8},
		{name: "ZeroLength", length: 0, width: 1, height: 1, quantity: 1, wantErr: ErrInvalidDimensions},
		{name: "NegativeWidth", length: 1, width: -2, height: 1, quantity: 1, wantErr: ErrInvalidDimensions},
		{name: "ZeroHeight", length: 1, width: 1, height: 0, quantity: 1, wantErr: ErrInvalidDimensions},
		{name: "ZeroQuantity", length: 1, width: 1, height: 1, quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "NegativeQuantity", length: 1, width: 1, height: 1, quantity: -3, wantErr: ErrInvalidQuantity},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem("cargo", "c-1", tc.length, tc.width, tc.height, tc.quantity)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestOrientations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dims      Dimensions
		wantCount int
	}{
		{name: "AllDistinct", dims: Dimensions{1, 2, 3}, wantCount: 6},
		{name: "TwoEqual", dims: Dimensions{1, 1, 2}, wantCount: 3},
		{name: "Cube", dims: Dimensions{2, 2, 2}, wantCount: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			item, err := NewItem("cargo", "c-1", tc.dims.Length, tc.dims.Width, tc.dims.Height, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := item.Orientations()
			if len(got) != tc.wantCount {
				t.Fatalf("expected %d orientations, got %d: %v", tc.wantCount, len(got), got)
			}

			seen := make(map[Dimensions]struct{}, len(got))
			for _, d := range got {
				if _, dup := seen[d]; dup {
					t.Fatalf("duplicate orientation %v", d)
				}
				seen[d] = struct{}{}
				if d.Volume() != tc.dims.Volume() {
					t.Fatalf("orientation %v changed volume", d)
				}
			}
		})
	}
}

func TestOrientationsFixedOrder(t *testing.T) {
	t.Parallel()

	item, err := NewItem("cargo", "c-1", 1, 2, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Dimensions{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}
	got := item.Orientations()
	if len(got) != len(want) {
		t.Fatalf("expected %d orientations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orientation %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestOrientationsFirstSeenDedup(t *testing.T) {
	t.Parallel()

	// (1,1,2): the six permutations collapse to three, keeping first occurrences.
	item, err := NewItem("cargo", "c-1", 1, 1, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Dimensions{
		{1, 1, 2},
		{1, 2, 1},
		{2, 1, 1},
	}
	got := item.Orientations()
	if len(got) != len(want) {
		t.Fatalf("expected %d orientations, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orientation %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
