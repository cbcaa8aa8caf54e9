package categories

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	onboard "github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/screens/flashcards"
	"github.com/karimf/wortspatz/internal/screens/qa"
	"github.com/karimf/wortspatz/internal/screens/quiz"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// gateCheckMsg carries the profile recheck result.
type gateCheckMsg struct {
	HasProfile bool
}

// CategoriesScreen lists the learning categories for one activity. Entering
// it rechecks that the profile still exists; if it was wiped underneath the
// app, the screen hands control back to onboarding.
type CategoriesScreen struct {
	catalog *content.Catalog
	gate    *onboard.Gate
	typ     activity.Type
	title   string

	menu              components.Menu
	onboardingFactory func() screen.Screen
	checked           bool
}

var _ screen.Screen = (*CategoriesScreen)(nil)

// New creates the category selection screen for the given activity.
func New(catalog *content.Catalog, ledg *ledger.Ledger, gate *onboard.Gate, player audio.Player, typ activity.Type, title string, onboardingFactory func() screen.Screen) *CategoriesScreen {
	items := make([]components.MenuItem, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		cat := cat
		items = append(items, components.MenuItem{
			Label: cat.Title,
			Icon:  cat.Icon,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: activityScreen(typ, catalog, ledg, player, cat),
					}
				}
			},
		})
	}

	return &CategoriesScreen{
		catalog:           catalog,
		gate:              gate,
		typ:               typ,
		title:             title,
		menu:              components.NewMenu(items),
		onboardingFactory: onboardingFactory,
	}
}

// activityScreen builds the session screen for the chosen activity and
// category.
func activityScreen(typ activity.Type, catalog *content.Catalog, ledg *ledger.Ledger, player audio.Player, cat content.Category) screen.Screen {
	switch typ {
	case activity.TypeFlashcards:
		return flashcards.New(catalog, ledg, player, cat)
	case activity.TypeQA:
		return qa.New(catalog, cat)
	default:
		return quiz.New(catalog, ledg, cat)
	}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	if c.gate == nil {
		return nil
	}
	return func() tea.Msg {
		p, _ := c.gate.Resolve(context.Background())
		return gateCheckMsg{HasProfile: p != nil}
	}
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gateCheckMsg:
		c.checked = true
		if !msg.HasProfile {
			ob := c.onboardingFactory()
			return c, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: ob}
			}
		}
		return c, nil

	default:
		var cmd tea.Cmd
		c.menu, cmd = c.menu.Update(msg)
		return c, cmd
	}
}

func (c *CategoriesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := theme.Title.Render("اختر فئة")
	menuBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(c.menu.View())

	content := strings.Join([]string{header, "", menuBox}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CategoriesScreen) Title() string {
	return c.title
}
