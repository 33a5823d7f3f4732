package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/qyinm/bites/types"
)

// imagePlaceholder stands in for an image that does not resolve.
const imagePlaceholder = "Image"

// ItemDelegate renders gallery items in the list
type ItemDelegate struct {
	liked     func(id int) bool
	assetsDir string
}

// Height returns the height of a list item (2 lines)
func (d ItemDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between list items
func (d ItemDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for items)
func (d ItemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single gallery item. The highlighted row also shows the
// description and image reference.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(types.Item)
	if !ok {
		return
	}
	isSelected := index == m.Index()

	// Line 1: cursor + rating badge + name + heart
	cursor := "  "
	if isSelected {
		cursor = "▌ "
	}
	badge := fmt.Sprintf("★ %.1f", item.Rating())
	heart := HeartStyle.Render("♡")
	if d.liked != nil && d.liked(item.ID()) {
		heart = LikedHeartStyle.Render("♥")
	}

	// "▌ ★ 4.9  Name ... ♥"
	nameWidth := m.Width() - runewidth.StringWidth(cursor) - runewidth.StringWidth(badge) - 2 - 2
	if nameWidth < 0 {
		nameWidth = 0
	}
	name := runewidth.FillRight(runewidth.Truncate(item.Name(), nameWidth, "…"), nameWidth)

	nameStyle := ItemNameStyle
	if isSelected {
		nameStyle = SelectedItemNameStyle
	}
	line1 := cursor + RatingBadgeStyle.Render(badge) + "  " + nameStyle.Render(name) + " " + heart

	// Line 2: category tag, plus description and image on the highlighted row
	indent := "    "
	detail := CategoryTagStyle.Render(item.Category().String())
	if isSelected {
		label := imageLabel(d.assetsDir, item.Image())
		available := m.Width() - runewidth.StringWidth(indent) - runewidth.StringWidth(item.Category().String()) -
			runewidth.StringWidth(label) - 6
		if available < 0 {
			available = 0
		}
		detail += " · " + ItemDescriptionStyle.Render(runewidth.Truncate(item.Description(), available, "…")) +
			" · " + styleImageLabel(label, ItemDescriptionStyle)
	}
	line2 := indent + detail

	fmt.Fprint(w, line1+"\n"+line2)
}

// styleImageLabel renders label with base, or dimmed when it is the
// placeholder.
func styleImageLabel(label string, base lipgloss.Style) string {
	if label == imagePlaceholder {
		return ImagePlaceholderStyle.Render(label)
	}
	return base.Render(label)
}

// imageLabel returns the image reference to show for an item. When an
// assets directory is configured and the image does not resolve under it,
// the placeholder label is returned instead.
func imageLabel(assetsDir, image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return imagePlaceholder
	}
	if assetsDir == "" {
		return image
	}
	info, err := os.Stat(filepath.Join(assetsDir, image))
	if err != nil || info.IsDir() {
		return imagePlaceholder
	}
	return image
}
