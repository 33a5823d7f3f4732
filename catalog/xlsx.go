package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qyinm/bites/types"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

var columns = []string{"id", "name", "category", "rating", "image", "description"}

// DecodeXLSX reads items from the first sheet of a workbook. The first row
// is a header; column lookup ignores case and order.
func DecodeXLSX(r io.Reader) ([]types.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []types.Item{}, nil
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return []types.Item{}, nil
	}

	headers := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headers[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, c := range columns {
		if _, ok := headers[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	items := make([]types.Item, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(name string) string {
			i := headers[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		if blankRow(row) {
			continue
		}

		line := n + 2
		id, err := strconv.Atoi(cell("id"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse id: %w", line, err)
		}
		rating, err := parseRating(cell("rating"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse rating: %w", line, err)
		}
		rec := record{
			ID:          id,
			Name:        cell("name"),
			Category:    cell("category"),
			Rating:      rating,
			Image:       cell("image"),
			Description: cell("description"),
		}
		item, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteXLSX writes items as a single-sheet workbook readable by DecodeXLSX.
func WriteXLSX(w io.Writer, items []types.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, item := range items {
		row := []interface{}{
			item.ID(), item.Name(), item.Category().String(), item.Rating(), item.Image(), item.Description(),
		}
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cellAddr, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func parseRating(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
