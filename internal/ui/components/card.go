package components

import (
	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered card
// sections, so stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// WordCard renders the big flashcard face: icon, the German word, and the
// Arabic translation underneath.
func WordCard(icon, word, translation string, cw int) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		icon,
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(word),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(translation),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.BgCard).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(body)
}

// PromptCard wraps a question prompt in a rounded-border card at the given
// content width.
func PromptCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
