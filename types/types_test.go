package types

import (
	"errors"
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		str      string
		label    string
	}{
		{All, "all", "All"},
		{Desserts, "desserts", "Desserts"},
		{Drinks, "drinks", "Drinks"},
		{Food, "food", "Food"},
		{Category(42), "unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.category.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.category.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{"", All, false},
		{"all", All, false},
		{"  Desserts ", Desserts, false},
		{"DRINKS", Drinks, false},
		{"food", Food, false},
		{"snacks", All, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestItemCategoriesExcludeAll(t *testing.T) {
	for _, c := range ItemCategories {
		if c == All {
			t.Fatal("All must not be an item category")
		}
		if !c.Valid() {
			t.Errorf("category %d is not valid", c)
		}
	}
	if Category(-1).Valid() || Category(4).Valid() {
		t.Error("out of range categories reported as valid")
	}
}

func TestItemGetters(t *testing.T) {
	item := NewItem(1, "Delicious Delight", Desserts, 4.9, "1.jpg", "Sweet perfection")

	if item.ID() != 1 || item.Name() != "Delicious Delight" || item.Category() != Desserts {
		t.Fatalf("unexpected item identity: %+v", item)
	}
	if item.Rating() != 4.9 || item.Image() != "1.jpg" || item.Description() != "Sweet perfection" {
		t.Fatalf("unexpected item details: %+v", item)
	}
	if item.Title() != item.Name() {
		t.Errorf("Title() = %q, want name", item.Title())
	}
	if item.FilterValue() != "Delicious Delight Sweet perfection" {
		t.Errorf("FilterValue() = %q", item.FilterValue())
	}
}
