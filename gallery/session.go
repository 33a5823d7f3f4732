package gallery

import "github.com/qyinm/bites/types"

// State is the selection driving which items are visible and liked.
type State struct {
	Category types.Category
	Search   string
	Liked    LikedSet
}

// NewState returns the initial selection: all categories, no search, no likes.
func NewState() State {
	return State{
		Category: types.All,
		Search:   "",
		Liked:    LikedSet{},
	}
}

// Stats are the counters shown next to the gallery.
type Stats struct {
	Visible       int
	Liked         int
	Total         int
	AverageRating float64
}

type averageRater interface {
	AverageRating() float64
}

// Session owns one selection state over a catalog. It has a single writer;
// callers sharing a Session across goroutines must serialize access.
type Session struct {
	source types.ItemSource
	state  State
}

// NewSession starts a session in the initial state.
func NewSession(source types.ItemSource) *Session {
	return &Session{source: source, state: NewState()}
}

// State returns the current selection.
func (s *Session) State() State { return s.state }

// SelectCategory sets the active category filter.
func (s *Session) SelectCategory(c types.Category) {
	next := s.state
	next.Category = c
	s.state = next
}

// SetSearch replaces the search text.
func (s *Session) SetSearch(term string) {
	next := s.state
	next.Search = term
	s.state = next
}

// ToggleLike flips the liked flag of id and reports whether it is now liked.
func (s *Session) ToggleLike(id int) bool {
	next := s.state
	next.Liked = ToggleLike(s.state.Liked, id)
	s.state = next
	return next.Liked.Has(id)
}

// ResetLikes clears every liked item.
func (s *Session) ResetLikes() {
	next := s.state
	next.Liked = LikedSet{}
	s.state = next
}

func (s *Session) IsLiked(id int) bool { return s.state.Liked.Has(id) }

// Visible derives the items shown for the current selection.
func (s *Session) Visible() []types.Item {
	return VisibleItems(s.source.Items(), s.state.Category, s.state.Search)
}

// Liked returns the liked items in catalog order.
func (s *Session) Liked() []types.Item {
	items := s.source.Items()
	out := make([]types.Item, 0, s.state.Liked.Len())
	for _, item := range items {
		if s.state.Liked.Has(item.ID()) {
			out = append(out, item)
		}
	}
	return out
}

// Stats recomputes the display counters from the current state.
func (s *Session) Stats() Stats {
	items := s.source.Items()
	stats := Stats{
		Visible: len(VisibleItems(items, s.state.Category, s.state.Search)),
		Liked:   s.state.Liked.Len(),
		Total:   len(items),
	}
	if ar, ok := s.source.(averageRater); ok {
		stats.AverageRating = ar.AverageRating()
	} else {
		stats.AverageRating = averageRating(items)
	}
	return stats
}

func averageRating(items []types.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += item.Rating()
	}
	return sum / float64(len(items))
}
