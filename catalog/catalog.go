// Package catalog holds the fixed, ordered list of gallery items and the
// decoders that build it at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/qyinm/bites/types"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Catalog is an immutable, insertion-ordered set of items.
type Catalog struct {
	items []types.Item
	byID  map[int]int
}

// Compile-time interface check
var _ types.ItemSource = (*Catalog)(nil)

// New validates items and returns a catalog preserving their order.
func New(items []types.Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]types.Item, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for _, item := range items {
		if err := validate(item); err != nil {
			return nil, err
		}
		if _, ok := c.byID[item.ID()]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID())
		}
		c.byID[item.ID()] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

func validate(item types.Item) error {
	if strings.TrimSpace(item.Name()) == "" {
		return fmt.Errorf("item %d: %w", item.ID(), ErrEmptyName)
	}
	if item.Category() == types.All || !item.Category().Valid() {
		return fmt.Errorf("item %d: %w %q", item.ID(), ErrInvalidCategory, item.Category())
	}
	if item.Rating() < 0 || item.Rating() > 5 {
		return fmt.Errorf("item %d: %w: %.1f not in [0, 5]", item.ID(), ErrRatingOutOfRange, item.Rating())
	}
	return nil
}

// Default returns the built-in gallery.
func Default() *Catalog {
	defaultOnce.Do(func() {
		items, err := DecodeYAML(bytes.NewReader(defaultYAML))
		if err == nil {
			defaultCatalog, err = New(items)
		}
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
		}
	})
	return defaultCatalog
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []types.Item {
	out := make([]types.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks an item up by id.
func (c *Catalog) Item(id int) (types.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return types.Item{}, false
	}
	return c.items[idx], true
}

func (c *Catalog) Len() int { return len(c.items) }

// AverageRating is the mean rating over the whole catalog, 0 when empty.
func (c *Catalog) AverageRating() float64 {
	if len(c.items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range c.items {
		sum += item.Rating()
	}
	return sum / float64(len(c.items))
}
