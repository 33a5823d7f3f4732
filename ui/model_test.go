package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/types"
)

func quietOptions(opts Options) Options {
	opts.Logger = logging.New("ui-test", logging.Config{Stderr: "never"})
	return opts
}

func defaultLoader() (*catalog.Catalog, error) {
	return catalog.Default(), nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want ui.Model", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func loadedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(defaultLoader, quietOptions(opts))
	m, _ = update(t, m, catalogLoadedMsg{catalog: catalog.Default()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func visibleIDs(m Model) []int {
	var ids []int
	for _, it := range m.list.Items() {
		ids = append(ids, it.(types.Item).ID())
	}
	return ids
}

func TestLoadCatalogCommand(t *testing.T) {
	msg := loadCatalog(defaultLoader)()
	loaded, ok := msg.(catalogLoadedMsg)
	if !ok {
		t.Fatalf("loadCatalog produced %T, want catalogLoadedMsg", msg)
	}
	if loaded.err != nil || loaded.catalog.Len() != 16 {
		t.Fatalf("unexpected load result: %+v", loaded)
	}

	m := NewModel(defaultLoader, quietOptions(Options{}))
	if m.Init() == nil {
		t.Fatal("Init must start loading the catalog")
	}
	if !strings.Contains(m.View(), "Loading gallery") {
		t.Errorf("loading view = %q", m.View())
	}
}

func TestInitialView(t *testing.T) {
	m := loadedModel(t, Options{})

	if got := len(m.list.Items()); got != 16 {
		t.Fatalf("visible items = %d, want 16", got)
	}
	view := m.View()
	for _, want := range []string{
		"Delicious Bites",
		"16 Dishes",
		"4.8★ Avg Rating",
		"0 Favorites",
		"All 16", "Desserts 7", "Drinks 2", "Food 7",
		"Showing 16 delicious items",
		"Delicious Delight",
		"Sweet perfection",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCategoryKeys(t *testing.T) {
	m := loadedModel(t, Options{})

	m = press(t, m, "tab")
	if m.session.State().Category != types.Desserts {
		t.Fatalf("category after tab = %v, want desserts", m.session.State().Category)
	}
	if got := len(m.list.Items()); got != 7 {
		t.Errorf("desserts visible = %d, want 7", got)
	}

	m = press(t, m, "3")
	if got := visibleIDs(m); len(got) != 2 || got[0] != 9 || got[1] != 17 {
		t.Errorf("drinks visible = %v, want [9 17]", got)
	}

	m = press(t, m, "shift+tab")
	if m.session.State().Category != types.Desserts {
		t.Errorf("category after shift+tab = %v, want desserts", m.session.State().Category)
	}

	m = press(t, m, "shift+tab", "shift+tab")
	if m.session.State().Category != types.Food {
		t.Errorf("shift+tab must wrap around, got %v", m.session.State().Category)
	}

	m = press(t, m, "1")
	if got := len(m.list.Items()); got != 16 {
		t.Errorf("all visible = %d, want 16", got)
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	m := loadedModel(t, Options{})

	m = press(t, m, "/")
	if !m.searching {
		t.Fatal("expected search input to be focused")
	}
	m = typeText(t, m, "del")
	if got := visibleIDs(m); len(got) != 2 || got[0] != 1 || got[1] != 9 {
		t.Fatalf("visible after 'del' = %v, want [1 9]", got)
	}
	m = typeText(t, m, "ight")
	if got := visibleIDs(m); len(got) != 1 || got[0] != 1 {
		t.Fatalf("visible after 'delight' = %v, want [1]", got)
	}
	if !strings.Contains(m.View(), "Showing 1 delicious items") {
		t.Errorf("results line not updated")
	}

	m = press(t, m, "enter")
	if m.searching {
		t.Fatal("enter must leave the search input")
	}
	if m.session.State().Search != "delight" {
		t.Errorf("search = %q, want delight", m.session.State().Search)
	}

	m = press(t, m, "esc")
	if m.session.State().Search != "" || len(m.list.Items()) != 16 {
		t.Errorf("esc on the list must clear the search; search=%q visible=%d", m.session.State().Search, len(m.list.Items()))
	}
}

func TestSearchInputConsumesQuitKey(t *testing.T) {
	m := loadedModel(t, Options{})
	m = press(t, m, "/")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Fatal("typing q in the search input must not quit")
		}
	}
	if m.search.Value() != "q" {
		t.Errorf("search value = %q, want q", m.search.Value())
	}
}

func TestQuitKey(t *testing.T) {
	m := loadedModel(t, Options{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestLikeToggle(t *testing.T) {
	m := loadedModel(t, Options{})

	m = press(t, m, "f")
	if !m.session.IsLiked(1) {
		t.Fatal("expected item 1 to be liked")
	}
	if !strings.Contains(m.View(), "1 Favorites") {
		t.Error("favorites counter not updated")
	}
	if !strings.Contains(m.View(), "♥") {
		t.Error("liked heart not rendered")
	}

	m = press(t, m, "down", "f")
	if m.session.Stats().Liked != 2 || !m.session.IsLiked(2) {
		t.Fatalf("liked = %v, want [1 2]", m.session.State().Liked.IDs())
	}

	m = press(t, m, "f")
	if m.session.Stats().Liked != 1 || m.session.IsLiked(2) {
		t.Fatalf("second toggle must remove the like, liked = %v", m.session.State().Liked.IDs())
	}
}

func TestEmptyState(t *testing.T) {
	m := loadedModel(t, Options{})
	m = press(t, m, "/")
	m = typeText(t, m, "zzz")

	view := m.View()
	for _, want := range []string{"Showing 0 delicious items", "No items found", "Try adjusting your search or filters"} {
		if !strings.Contains(view, want) {
			t.Errorf("empty view missing %q", want)
		}
	}
}

func TestEmptyStateSuggestions(t *testing.T) {
	m := loadedModel(t, Options{Search: "dlight"})
	if len(m.list.Items()) != 0 {
		t.Fatalf("expected no visible items, got %v", visibleIDs(m))
	}
	if !strings.Contains(m.View(), "Did you mean: Delicious Delight") {
		t.Errorf("missing suggestion in view:\n%s", m.View())
	}
}

func TestCursorFollowsItemAcrossFilters(t *testing.T) {
	m := loadedModel(t, Options{})
	m = press(t, m, "down", "down") // item 3, Sweet Sensation (desserts)

	m = press(t, m, "2")
	selected, ok := m.list.SelectedItem().(types.Item)
	if !ok || selected.ID() != 3 {
		t.Fatalf("selected after filter = %v, want item 3", m.list.SelectedItem())
	}
}

func TestDetailView(t *testing.T) {
	m := loadedModel(t, Options{})

	m = press(t, m, "enter")
	if m.state != DetailView {
		t.Fatal("enter must open the detail view")
	}
	view := m.View()
	if !strings.Contains(view, "Image: 1.jpg") || !strings.Contains(view, "Not a favorite") {
		t.Errorf("detail view missing item fields:\n%s", view)
	}

	m = press(t, m, "f")
	if !m.session.IsLiked(1) || !strings.Contains(m.View(), "♥ Favorite") {
		t.Error("favorite toggle in detail view not applied")
	}

	m = press(t, m, "esc")
	if m.state != ListView {
		t.Fatal("esc must return to the list")
	}
}

func TestInitialOptions(t *testing.T) {
	m := loadedModel(t, Options{Category: types.Drinks, Search: "DIVINE", Liked: []int{9, 999, 9}})

	if got := visibleIDs(m); len(got) != 1 || got[0] != 9 {
		t.Fatalf("visible = %v, want [9]", got)
	}
	if m.session.Stats().Liked != 1 {
		t.Errorf("liked count = %d, want 1 (unknown and repeated ids ignored)", m.session.Stats().Liked)
	}
	if m.search.Value() != "DIVINE" {
		t.Errorf("search input = %q", m.search.Value())
	}
}

func TestLoadError(t *testing.T) {
	m := NewModel(defaultLoader, quietOptions(Options{}))
	m, _ = update(t, m, catalogLoadedMsg{err: errors.New("boom")})

	if !strings.Contains(m.View(), "boom") {
		t.Errorf("error view = %q", m.View())
	}
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q must quit after a load error")
	}
}

func TestImageLabel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tests := []struct {
		name   string
		assets string
		image  string
		want   string
	}{
		{"no assets dir", "", "1.jpg", "1.jpg"},
		{"resolves", dir, "1.jpg", "1.jpg"},
		{"missing file", dir, "2.jpg", imagePlaceholder},
		{"directory", dir, ".", imagePlaceholder},
		{"empty reference", "", " ", imagePlaceholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageLabel(tt.assets, tt.image); got != tt.want {
				t.Errorf("imageLabel(%q, %q) = %q, want %q", tt.assets, tt.image, got, tt.want)
			}
		})
	}
}

func TestStyleImageLabel(t *testing.T) {
	if got, want := styleImageLabel(imagePlaceholder, ItemDescriptionStyle), ImagePlaceholderStyle.Render(imagePlaceholder); got != want {
		t.Errorf("placeholder rendered as %q, want %q", got, want)
	}
	if got, want := styleImageLabel("1.jpg", ItemDescriptionStyle), ItemDescriptionStyle.Render("1.jpg"); got != want {
		t.Errorf("image rendered as %q, want %q", got, want)
	}
}

func TestDetailViewPlaceholder(t *testing.T) {
	m := loadedModel(t, Options{AssetsDir: t.TempDir()})

	m = press(t, m, "enter")
	view := m.View()
	if !strings.Contains(view, "Image: "+imagePlaceholder) || strings.Contains(view, "1.jpg") {
		t.Errorf("detail view should show the placeholder for a missing image:\n%s", view)
	}
}
