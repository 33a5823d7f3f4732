// Package gallery derives the visible view of a catalog from the current
// selection: category filter, search text and liked items.
package gallery

import (
	"sort"
	"strings"

	"github.com/qyinm/bites/types"
)

// VisibleItems returns the items matching category and term, in catalog
// order. An item matches when category is All or equal to the item's, and
// term is empty or a case-insensitive substring of its name or description.
// The result is never nil.
func VisibleItems(items []types.Item, category types.Category, term string) []types.Item {
	needle := strings.ToLower(term)
	out := make([]types.Item, 0, len(items))
	for _, item := range items {
		if category != types.All && item.Category() != category {
			continue
		}
		if needle != "" && !matches(item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item types.Item, needle string) bool {
	return strings.Contains(strings.ToLower(item.Name()), needle) ||
		strings.Contains(strings.ToLower(item.Description()), needle)
}

// CountByCategory counts items per category; the All entry is the total.
func CountByCategory(items []types.Item) map[types.Category]int {
	counts := make(map[types.Category]int, len(types.Categories))
	for _, c := range types.Categories {
		counts[c] = 0
	}
	for _, item := range items {
		counts[item.Category()]++
	}
	counts[types.All] = len(items)
	return counts
}

// LikedSet is a set of item ids.
type LikedSet map[int]struct{}

// NewLikedSet builds a set from ids, dropping duplicates.
func NewLikedSet(ids ...int) LikedSet {
	s := make(LikedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LikedSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s LikedSet) Len() int { return len(s) }

// IDs returns the members in ascending order.
func (s LikedSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Equal reports whether both sets hold the same ids.
func (s LikedSet) Equal(other LikedSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// ToggleLike returns a copy of liked with id removed if present and added
// otherwise. liked itself is left untouched.
func ToggleLike(liked LikedSet, id int) LikedSet {
	next := make(LikedSet, len(liked)+1)
	for k := range liked {
		next[k] = struct{}{}
	}
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}
