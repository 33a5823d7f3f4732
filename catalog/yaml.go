package catalog

import (
	"fmt"
	"io"

	"github.com/qyinm/bites/types"
	"gopkg.in/yaml.v3"
)

type document struct {
	Items []record `yaml:"items"`
}

type record struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Rating      float64 `yaml:"rating"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
}

func (r record) toItem() (types.Item, error) {
	category, err := types.ParseCategory(r.Category)
	if err != nil {
		return types.Item{}, fmt.Errorf("item %d: %w", r.ID, err)
	}
	return types.NewItem(r.ID, r.Name, category, r.Rating, r.Image, r.Description), nil
}

func fromItem(item types.Item) record {
	return record{
		ID:          item.ID(),
		Name:        item.Name(),
		Category:    item.Category().String(),
		Rating:      item.Rating(),
		Image:       item.Image(),
		Description: item.Description(),
	}
}

// DecodeYAML reads an `items:` document. JSON input is accepted too since
// yaml.v3 parses JSON objects.
func DecodeYAML(r io.Reader) ([]types.Item, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []types.Item{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	items := make([]types.Item, 0, len(doc.Items))
	for _, rec := range doc.Items {
		item, err := rec.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeYAML writes items in the layout DecodeYAML reads.
func EncodeYAML(w io.Writer, items []types.Item) error {
	doc := document{Items: make([]record, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, fromItem(item))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
