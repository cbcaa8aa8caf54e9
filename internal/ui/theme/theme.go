package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm night blues with a sky-blue accent
var (
	Primary = lipgloss.Color("#4FC3F7") // Sky Blue
	Accent  = lipgloss.Color("#FFD54F") // Star Yellow
	Success = lipgloss.Color("#4CAF50") // Green
	Error   = lipgloss.Color("#E57373") // Soft Red
	Text    = lipgloss.Color("#FFFFFF") // White
	TextDim = lipgloss.Color("#AAAAAA") // Grey
	BgDark  = lipgloss.Color("#1E273A") // Night Blue
	BgCard  = lipgloss.Color("#2C3A52") // Card Blue
	Border  = lipgloss.Color("#44526F") // Border Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
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

// Components
var (
	StarCount = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
