package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	All          key.Binding
	Desserts     key.Binding
	Drinks       key.Binding
	Food         key.Binding
	Search       key.Binding
	Like         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
	All:          key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	Desserts:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "desserts")),
	Drinks:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "drinks")),
	Food:         key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "food")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Like:         key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space/f", "favorite")),
	Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.Like, k.Enter, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.NextCategory, k.PrevCategory, k.All, k.Desserts, k.Drinks, k.Food},
		{k.Search, k.Like},
		{k.Help, k.Quit},
	}
}
