package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: deep night background, hot pink and gold accents
var (
	Primary   = lipgloss.Color("#FF3B6C") // Hot Pink
	Secondary = lipgloss.Color("#FFD85A") // Gold
	Success   = lipgloss.Color("#FFD85A") // Gold
	Error     = lipgloss.Color("#FF3B6C") // Hot Pink
	Info      = lipgloss.Color("#4C8DFF") // Blue
	Calm      = lipgloss.Color("#3DDC84") // Green
	Text      = lipgloss.Color("#FFFFFF") // White
	TextDim   = lipgloss.Color("#CECED5") // White at 80%
	BgDark    = lipgloss.Color("#0B0C2A") // Night
	BgCard    = lipgloss.Color("#23243F") // White at 10% over Night
	Border    = lipgloss.Color("#3C3D55") // Slate
)

// PatternColors are the four pads of the memory challenge, in index order.
var PatternColors = []color.Color{Primary, Secondary, Info, Calm}

// PatternNames label the pads for keyboard play.
var PatternNames = []string{"Pink", "Gold", "Blue", "Green"}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Chrome
var (
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Progress bar glyphs
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
