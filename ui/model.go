package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/bites/catalog"
	"github.com/qyinm/bites/gallery"
	"github.com/qyinm/bites/logging"
	"github.com/qyinm/bites/types"
	"github.com/sirupsen/logrus"
)

// ViewState represents the current view mode
type ViewState int

const (
	ListView ViewState = iota
	DetailView
)

const maxSuggestions = 3

// Options seed the gallery's initial selection.
type Options struct {
	// AssetsDir, when set, is where item images are resolved; missing
	// images are shown with a placeholder.
	AssetsDir string
	Category  types.Category
	Search    string
	// Liked ids that are not in the catalog are ignored.
	Liked  []int
	Logger *logrus.Entry
}

// Model is the main TUI model
type Model struct {
	load      CatalogLoader
	opts      Options
	catalog   *catalog.Catalog
	session   *gallery.Session
	list      list.Model
	search    textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	state     ViewState
	detailID  int
	searching bool
	width     int
	height    int
	loading   bool
	err       error
	statusMsg string
	log       *logrus.Entry
}

// NewModel creates a new Model that shows the catalog produced by load
func NewModel(load CatalogLoader, opts Options) Model {
	l := list.New([]list.Item{}, ItemDelegate{assetsDir: opts.AssetsDir}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search for delicious treats..."
	ti.PromptStyle = SearchPromptStyle
	ti.PlaceholderStyle = SearchIdleStyle
	ti.SetValue(opts.Search)

	s := spinner.New()
	s.Spinner = spinner.Dot

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("ui")
	}

	return Model{
		load:      load,
		opts:      opts,
		list:      l,
		search:    ti,
		viewport:  viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		state:     ListView,
		loading:   true,
		statusMsg: "Loading gallery",
		log:       logger,
	}
}

// Init starts loading the catalog
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(m.load))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMsg = "Failed to load catalog"
			m.log.WithError(msg.err).Error("load catalog")
			return m, nil
		}
		cmd := m.startSession(msg.catalog)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) startSession(c *catalog.Catalog) tea.Cmd {
	m.catalog = c
	m.session = gallery.NewSession(c)
	m.session.SelectCategory(m.opts.Category)
	m.session.SetSearch(m.opts.Search)
	for _, id := range m.opts.Liked {
		if _, ok := c.Item(id); ok && !m.session.IsLiked(id) {
			m.session.ToggleLike(id)
		}
	}
	m.list.SetDelegate(ItemDelegate{liked: m.session.IsLiked, assetsDir: m.opts.AssetsDir})
	m.statusMsg = fmt.Sprintf("Loaded %d dishes", c.Len())
	m.log.WithField("items", c.Len()).Info("catalog loaded")
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.session == nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.searching {
		return m.updateSearch(msg)
	}
	if m.state == DetailView {
		return m.updateDetail(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextCategory):
		cmd := m.selectCategory(m.nextCategory(1))
		return m, cmd
	case key.Matches(msg, m.keys.PrevCategory):
		cmd := m.selectCategory(m.nextCategory(-1))
		return m, cmd
	}

	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)
	if m.search.Value() == m.session.State().Search {
		return m, inputCmd
	}
	m.session.SetSearch(m.search.Value())
	refreshCmd := m.refresh()
	return m, tea.Batch(inputCmd, refreshCmd)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NextCategory):
		cmd := m.selectCategory(m.nextCategory(1))
		return m, cmd
	case key.Matches(msg, m.keys.PrevCategory):
		cmd := m.selectCategory(m.nextCategory(-1))
		return m, cmd
	case key.Matches(msg, m.keys.All):
		cmd := m.selectCategory(types.All)
		return m, cmd
	case key.Matches(msg, m.keys.Desserts):
		cmd := m.selectCategory(types.Desserts)
		return m, cmd
	case key.Matches(msg, m.keys.Drinks):
		cmd := m.selectCategory(types.Drinks)
		return m, cmd
	case key.Matches(msg, m.keys.Food):
		cmd := m.selectCategory(types.Food)
		return m, cmd
	case key.Matches(msg, m.keys.Like):
		if item, ok := m.list.SelectedItem().(types.Item); ok {
			m.toggleLike(item)
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.list.SelectedItem().(types.Item); ok {
			m.openDetail(item)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		m.session.SetSearch("")
		m.statusMsg = "Search cleared"
		cmd := m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.state = ListView
		return m, nil
	case key.Matches(msg, m.keys.Like):
		if item, ok := m.catalog.Item(m.detailID); ok {
			m.toggleLike(item)
			m.viewport.SetContent(m.renderDetail(item))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) selectCategory(c types.Category) tea.Cmd {
	if c == m.session.State().Category {
		return nil
	}
	m.session.SelectCategory(c)
	m.statusMsg = "Showing " + strings.ToLower(c.Label())
	return m.refresh()
}

func (m *Model) nextCategory(step int) types.Category {
	n := len(types.Categories)
	current := m.session.State().Category
	for i, c := range types.Categories {
		if c == current {
			return types.Categories[((i+step)%n+n)%n]
		}
	}
	return types.All
}

func (m *Model) toggleLike(item types.Item) {
	liked := m.session.ToggleLike(item.ID())
	if liked {
		m.statusMsg = fmt.Sprintf("Added %s to favorites", item.Name())
	} else {
		m.statusMsg = fmt.Sprintf("Removed %s from favorites", item.Name())
	}
	m.log.WithFields(logrus.Fields{"id": item.ID(), "liked": liked}).Debug("favorite toggled")
}

func (m *Model) openDetail(item types.Item) {
	m.detailID = item.ID()
	m.state = DetailView
	m.viewport.SetContent(m.renderDetail(item))
	m.viewport.GotoTop()
}

// refresh re-derives the visible items and keeps the cursor on the same
// item when it is still visible.
func (m *Model) refresh() tea.Cmd {
	selectedID, hasSelected := 0, false
	if item, ok := m.list.SelectedItem().(types.Item); ok {
		selectedID, hasSelected = item.ID(), true
	}

	visible := m.session.Visible()
	items := make([]list.Item, len(visible))
	index := 0
	for i, item := range visible {
		items[i] = item
		if hasSelected && item.ID() == selectedID {
			index = i
		}
	}
	cmd := m.list.SetItems(items)
	m.list.Select(index)
	return cmd
}

// View renders the current view
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s Loading gallery...\n", m.spinner.View())
	}
	if m.session == nil {
		msg := "no catalog"
		if m.err != nil {
			msg = m.err.Error()
		}
		return "\n  " + ErrorStyle.Render("Error: "+msg) + "\n\n  Press q to quit.\n"
	}

	sections := []string{
		m.heroView(),
		m.tabsView(),
		m.search.View(),
		m.resultsView(),
	}
	switch {
	case m.state == DetailView:
		sections = append(sections, m.viewport.View())
	case len(m.list.Items()) == 0:
		sections = append(sections, m.emptyView())
	default:
		sections = append(sections, m.list.View())
	}
	sections = append(sections, m.statusView(), m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) heroView() string {
	stats := m.session.Stats()
	title := HeroTitleStyle.Render("Delicious Bites") + "  " +
		HeroSubtitleStyle.Render("Discover culinary perfection in every frame")
	line := fmt.Sprintf("%s Dishes   %s Avg Rating   %s Favorites",
		HeroStatStyle.Render(fmt.Sprintf("%d", stats.Total)),
		HeroStatStyle.Render(fmt.Sprintf("%.1f★", stats.AverageRating)),
		HeroStatStyle.Render(fmt.Sprintf("%d", stats.Liked)),
	)
	return title + "\n" + line
}

func (m Model) tabsView() string {
	counts := gallery.CountByCategory(m.catalog.Items())
	active := m.session.State().Category
	tabs := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		label := fmt.Sprintf("%s %d", c.Label(), counts[c])
		if c == active {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) resultsView() string {
	return ResultsStyle.Render("Showing ") +
		ResultsCountStyle.Render(fmt.Sprintf("%d", m.session.Stats().Visible)) +
		ResultsStyle.Render(" delicious items")
}

func (m Model) emptyView() string {
	lines := []string{
		"",
		EmptyTitleStyle.Render("No items found"),
		EmptyHintStyle.Render("Try adjusting your search or filters"),
	}
	state := m.session.State()
	inCategory := gallery.VisibleItems(m.catalog.Items(), state.Category, "")
	if suggestions := gallery.Suggest(inCategory, state.Search, maxSuggestions); len(suggestions) > 0 {
		lines = append(lines, EmptyHintStyle.Render("Did you mean: "+strings.Join(suggestions, ", ")+"?"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusView() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	return StatusBarStyle.Render(m.statusMsg)
}

func (m Model) renderDetail(item types.Item) string {
	heart := HeartStyle.Render("♡ Not a favorite")
	if m.session.IsLiked(item.ID()) {
		heart = LikedHeartStyle.Render("♥ Favorite")
	}
	lines := []string{
		DetailTitleStyle.Render(item.Name()),
		RatingBadgeStyle.Render(fmt.Sprintf("★ %.1f", item.Rating())) + "  " +
			CategoryTagStyle.Render(item.Category().Label()) + "  " + heart,
		"",
		ItemDescriptionStyle.Render(item.Description()),
		"",
		DetailLabelStyle.Render("Image: ") + styleImageLabel(imageLabel(m.opts.AssetsDir, item.Image()), lipgloss.NewStyle()),
		DetailLabelStyle.Render(fmt.Sprintf("ID: %d", item.ID())),
	}
	return strings.Join(lines, "\n")
}

// resizePanes adjusts the dimensions of list and viewport based on window size
func (m *Model) resizePanes() {
	// hero (2) + tabs + search + results + status
	chrome := 6
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	availableHeight := m.height - chrome - helpHeight

	if availableHeight < 0 {
		availableHeight = 0
	}

	m.list.SetSize(m.width, availableHeight)
	m.viewport.Width = m.width
	m.viewport.Height = availableHeight
	m.search.Width = m.width - lipgloss.Width(m.search.Prompt) - 1
	m.help.Width = m.width
}
