package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/bites/catalog"
)

// CatalogLoader produces the catalog shown by the gallery. It runs once,
// off the update loop.
type CatalogLoader func() (*catalog.Catalog, error)

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

// loadCatalog returns a tea.Cmd that loads the catalog asynchronously
func loadCatalog(load CatalogLoader) tea.Cmd {
	return func() tea.Msg {
		c, err := load()
		return catalogLoadedMsg{catalog: c, err: err}
	}
}
