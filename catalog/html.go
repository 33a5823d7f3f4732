package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qyinm/bites/types"
)

// DecodeHTML parses a rendered gallery page. Each card is an element
// carrying data-item-id; the card holds an <img>, an <h3> name and a <p>
// description. Category and rating come from data-category and data-rating,
// with the rating badge text as fallback.
func DecodeHTML(r io.Reader) ([]types.Item, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	items := make([]types.Item, 0)
	var parseErr error
	doc.Find("[data-item-id]").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		item, err := parseCard(card)
		if err != nil {
			parseErr = err
			return false
		}
		items = append(items, item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return items, nil
}

func parseCard(card *goquery.Selection) (types.Item, error) {
	rawID, _ := card.Attr("data-item-id")
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return types.Item{}, fmt.Errorf("card %q: parse id: %w", rawID, err)
	}

	category, _ := card.Attr("data-category")
	if category == "" {
		category = strings.TrimSpace(card.Find("[data-field='category']").First().Text())
	}

	rawRating, ok := card.Attr("data-rating")
	if !ok {
		rawRating = card.Find("[data-field='rating']").First().Text()
	}
	rating, err := parseRating(strings.Trim(strings.TrimSpace(rawRating), "★ "))
	if err != nil {
		return types.Item{}, fmt.Errorf("card %d: parse rating: %w", id, err)
	}

	image, _ := card.Find("img").First().Attr("src")

	name := strings.TrimSpace(card.Find("h3").First().Text())
	if name == "" {
		name, _ = card.Find("img").First().Attr("alt")
	}

	rec := record{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Category:    category,
		Rating:      rating,
		Image:       strings.TrimSpace(image),
		Description: strings.TrimSpace(card.Find("p").First().Text()),
	}
	return rec.toItem()
}
