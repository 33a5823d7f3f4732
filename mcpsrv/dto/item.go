package dto

type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type ItemDetail struct {
	Item
	Liked bool `json:"liked"`
}

type Category struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Stats struct {
	Visible       int     `json:"visible"`
	Liked         int     `json:"liked"`
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"`
}
