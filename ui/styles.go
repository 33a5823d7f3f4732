package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "8", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaYellow     = lipgloss.AdaptiveColor{Light: "11", Dark: "11"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Hero
	HeroTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange).
			Bold(true)
	HeroSubtitleStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Italic(true)
	HeroStatStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)

	// Category tabs
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)

	// Search
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Bold(true)
	SearchIdleStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Results line
	ResultsStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	ResultsCountStyle = lipgloss.NewStyle().
				Foreground(DraculaOrange).
				Bold(true)

	// Item rows
	RatingBadgeStyle = lipgloss.NewStyle().
				Foreground(DraculaYellow).
				Bold(true)
	LikedHeartStyle = lipgloss.NewStyle().
			Foreground(DraculaRed).
			Bold(true)
	HeartStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ItemNameStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan)
	SelectedItemNameStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	CategoryTagStyle = lipgloss.NewStyle().
				Foreground(DraculaPurple)
	ItemDescriptionStyle = lipgloss.NewStyle().
				Foreground(DraculaForeground).
				Italic(true)
	ImagePlaceholderStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)

	// Detail view
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)

	// Empty state
	EmptyTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Bold(true)
	EmptyHintStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
)
