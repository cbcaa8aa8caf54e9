package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/ui/theme"
)

// GridOption is one selectable tile in an option grid.
type GridOption struct {
	Key   string
	Label string
	Icon  string
}

// OptionGrid lays answer options out as a 2x2 grid of tiles. The grid only
// tracks cursor movement; locking in an answer and its outcome belong to the
// owning screen, which calls Lock once the answer is accepted.
type OptionGrid struct {
	Options    []GridOption
	CorrectKey string
	Selected   int
	Locked     bool
	ChosenKey  string
}

const gridColumns = 2

// NewOptionGrid creates a grid over the given options.
func NewOptionGrid(options []GridOption, correctKey string) OptionGrid {
	return OptionGrid{
		Options:    options,
		CorrectKey: correctKey,
	}
}

// Update handles cursor movement. Ignored once locked.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	if g.Locked {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Selected%gridColumns > 0 {
			g.Selected--
		}
	case "right", "l":
		if g.Selected%gridColumns < gridColumns-1 && g.Selected+1 < len(g.Options) {
			g.Selected++
		}
	case "up", "k":
		if g.Selected >= gridColumns {
			g.Selected -= gridColumns
		}
	case "down", "j":
		if g.Selected+gridColumns < len(g.Options) {
			g.Selected += gridColumns
		}
	}

	return g, nil
}

// SelectedKey returns the key under the cursor.
func (g OptionGrid) SelectedKey() string {
	if g.Selected < 0 || g.Selected >= len(g.Options) {
		return ""
	}
	return g.Options[g.Selected].Key
}

// Lock freezes the grid with the accepted answer. The view then shows the
// correct tile green and a wrong chosen tile red.
func (g *OptionGrid) Lock(chosenKey string) {
	g.Locked = true
	g.ChosenKey = chosenKey
}

// View renders the grid.
func (g OptionGrid) View() string {
	tileWidth := 22

	var rows []string
	for start := 0; start < len(g.Options); start += gridColumns {
		end := start + gridColumns
		if end > len(g.Options) {
			end = len(g.Options)
		}

		var tiles []string
		for i := start; i < end; i++ {
			tiles = append(tiles, g.renderTile(i, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g OptionGrid) renderTile(i, width int) string {
	opt := g.Options[i]
	content := opt.Icon + "  " + opt.Label

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(1, 1).
		Margin(0, 1)

	if g.Locked {
		switch {
		case opt.Key == g.CorrectKey:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
		case opt.Key == g.ChosenKey:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
		default:
			style = style.Foreground(theme.TextDim)
		}
	} else if i == g.Selected {
		style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
	}

	return style.Render(content)
}
