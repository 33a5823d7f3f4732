package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/mcpsrv/dto"
	"github.com/spf13/cobra"
)

const nameColumnWidth = 24

type listOutput struct {
	Category string     `json:"category"`
	Search   string     `json:"search"`
	Items    []dto.Item `json:"items"`
	Liked    []int      `json:"liked"`
	Stats    dto.Stats  `json:"stats"`
}

func newListCmd(flags *galleryFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the items visible for the selected category and search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := flags.session(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			return printItems(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newCategoriesCmd(flags *galleryFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print each category with its item count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := flags.session(cmd.Context())
			if err != nil {
				return err
			}
			for _, category := range dto.FromCategoryCounts(gallery.CountByCategory(c.Items())) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", category.Label, category.Count); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// printItems writes one line per visible item followed by the counters.
func printItems(w io.Writer, s *gallery.Session) error {
	visible := s.Visible()
	if len(visible) == 0 {
		if _, err := fmt.Fprintln(w, "No items found. Try adjusting your search or filters."); err != nil {
			return err
		}
	}
	for _, item := range visible {
		heart := "♡"
		if s.IsLiked(item.ID()) {
			heart = "♥"
		}
		name := runewidth.FillRight(runewidth.Truncate(item.Name(), nameColumnWidth, "…"), nameColumnWidth)
		if _, err := fmt.Fprintf(w, "%3d  ★ %.1f  %s %s  %-8s  %s\n",
			item.ID(), item.Rating(), name, heart, item.Category(), item.Description()); err != nil {
			return err
		}
	}

	stats := s.Stats()
	_, err := fmt.Fprintf(w, "\nShowing %d of %d dishes · %.1f★ avg rating · %d favorites\n",
		stats.Visible, stats.Total, stats.AverageRating, stats.Liked)
	return err
}

func writeJSON(w io.Writer, s *gallery.Session) error {
	state := s.State()
	liked := state.Liked.IDs()
	if liked == nil {
		liked = []int{}
	}
	out := listOutput{
		Category: state.Category.String(),
		Search:   state.Search,
		Items:    dto.FromItems(s.Visible()),
		Liked:    liked,
		Stats:    dto.FromStats(s.Stats()),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
