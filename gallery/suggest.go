package gallery

import (
	"github.com/qyinm/bites/types"
	"github.com/sahilm/fuzzy"
)

// Suggest returns up to n item names that fuzzily match term, best first.
// It is meant for the empty state, when VisibleItems found nothing.
func Suggest(items []types.Item, term string, n int) []string {
	if term == "" || n <= 0 {
		return nil
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}

	matches := fuzzy.Find(term, names)
	out := make([]string, 0, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
