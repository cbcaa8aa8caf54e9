package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/ui/theme"
)

// Dots renders slide pagination: one dot per page, the current one filled.
func Dots(total, current int) string {
	parts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i == current {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return strings.Join(parts, " ")
}
