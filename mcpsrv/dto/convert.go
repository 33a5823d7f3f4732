package dto

import (
	"math"

	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/types"
)

func FromItem(i types.Item) Item {
	return Item{
		ID:          i.ID(),
		Name:        i.Name(),
		Category:    i.Category().String(),
		Rating:      i.Rating(),
		Image:       i.Image(),
		Description: i.Description(),
	}
}

func FromItems(items []types.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}

func FromItemDetail(i types.Item, liked bool) ItemDetail {
	return ItemDetail{Item: FromItem(i), Liked: liked}
}

// FromCategoryCounts lists every filter value in tab order, including
// categories with no items.
func FromCategoryCounts(counts map[types.Category]int) []Category {
	out := make([]Category, 0, len(types.Categories))
	for _, c := range types.Categories {
		out = append(out, Category{Name: c.String(), Label: c.Label(), Count: counts[c]})
	}
	return out
}

func FromStats(s gallery.Stats) Stats {
	return Stats{
		Visible:       s.Visible,
		Liked:         s.Liked,
		Total:         s.Total,
		AverageRating: roundRating(s.AverageRating),
	}
}

// roundRating keeps two decimals so clients don't see float noise.
func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
