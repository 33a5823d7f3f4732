package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// ErrUnknownCategory is returned by ParseCategory for values outside the enumeration.
var ErrUnknownCategory = errors.New("unknown category")

// Category represents a gallery category filter
type Category int

const (
	All Category = iota
	Desserts
	Drinks
	Food
)

// Categories lists the filter values in tab order
var Categories = []Category{All, Desserts, Drinks, Food}

// ItemCategories lists the categories an item may belong to
var ItemCategories = []Category{Desserts, Drinks, Food}

// String returns the identifier used in data files and tool arguments
func (c Category) String() string {
	switch c {
	case All:
		return "all"
	case Desserts:
		return "desserts"
	case Drinks:
		return "drinks"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Label returns the display name shown on the category tabs
func (c Category) Label() string {
	switch c {
	case All:
		return "All"
	case Desserts:
		return "Desserts"
	case Drinks:
		return "Drinks"
	case Food:
		return "Food"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the enumerated values
func (c Category) Valid() bool {
	return c >= All && c <= Food
}

// ParseCategory parses a category identifier. Matching ignores case and
// surrounding space; the empty string means All.
func ParseCategory(raw string) (Category, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if v == "" {
		return All, nil
	}
	for _, c := range Categories {
		if c.String() == v {
			return c, nil
		}
	}
	return All, fmt.Errorf("%w %q; expected all|desserts|drinks|food", ErrUnknownCategory, raw)
}

// Item represents a single dish in the gallery
type Item struct {
	id          int
	name        string
	category    Category
	rating      float64
	image       string
	description string
}

// NewItem creates a new Item with the given fields
func NewItem(id int, name string, category Category, rating float64, image, description string) Item {
	return Item{
		id:          id,
		name:        name,
		category:    category,
		rating:      rating,
		image:       image,
		description: description,
	}
}

// Getters for Item fields
func (i Item) ID() int             { return i.id }
func (i Item) Name() string        { return i.name }
func (i Item) Category() Category  { return i.category }
func (i Item) Rating() float64     { return i.rating }
func (i Item) Image() string       { return i.image }
func (i Item) Description() string { return i.description }

// list.Item interface implementation
func (i Item) Title() string       { return i.name }
func (i Item) FilterValue() string { return i.name + " " + i.description }

// Compile-time check that Item implements list.Item
var _ list.Item = Item{}

// ItemSource is the read-only view of a catalog.
// Implementations never mutate the returned slice's backing items.
type ItemSource interface {
	Items() []Item
	Item(id int) (Item, bool)
}
