package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	onboard "github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/screens/categories"
	"github.com/karimf/wortspatz/internal/screens/placeholder"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// DashboardScreen is the main menu shown once a profile exists.
type DashboardScreen struct {
	profile *profile.Profile
	menu    components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for the given profile. onboardingFactory rebuilds
// the onboarding flow when a deeper screen discovers the profile is gone.
func New(p *profile.Profile, catalog *content.Catalog, ledg *ledger.Ledger, gate *onboard.Gate, player audio.Player, onboardingFactory func() screen.Screen) *DashboardScreen {
	pushCategories := func(typ activity.Type, title string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: categories.New(catalog, ledg, gate, player, typ, title, onboardingFactory),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "البطاقات التعليمية", Icon: "🃏", Action: pushCategories(activity.TypeFlashcards, "البطاقات التعليمية")},
		{Label: "الاختبار", Icon: "❓", Action: pushCategories(activity.TypeQuiz, "الاختبار")},
		{Label: "سؤال وجواب", Icon: "💬", Action: pushCategories(activity.TypeQA, "سؤال وجواب")},
		{Label: "قصص", Icon: "📖", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New("قصص")}
			}
		}},
		{Label: "المكافآت", Icon: "🎁", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New("المكافآت")}
			}
		}},
		{Label: "خروج", Icon: "👋", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &DashboardScreen{
		profile: p,
		menu:    components.NewMenu(items),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if su, ok := msg.(screen.StarsUpdatedMsg); ok {
		d.profile.Stars = su.Total
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	greeting := theme.Title.Render(fmt.Sprintf("مرحبًا يا %s! %s", d.profile.Name, profile.AvatarIcon(d.profile.AvatarKey)))
	sections = append(sections, greeting)

	sections = append(sections, renderStatsBar(d.profile, cw))

	menuBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(d.menu.View())
	sections = append(sections, menuBox)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DashboardScreen) Title() string {
	return "الرئيسية"
}

// renderStatsBar shows level, stars, and badges side by side.
func renderStatsBar(p *profile.Profile, cw int) string {
	cell := func(label, value string) string {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value),
		)
	}

	cells := lipgloss.JoinHorizontal(
		lipgloss.Top,
		cell("المستوى", fmt.Sprintf("%d", p.Level.DisplayValue())),
		strings.Repeat(" ", 6),
		cell("النجوم", theme.StarCount.Render(fmt.Sprintf("★ %d", p.Stars))),
		strings.Repeat(" ", 6),
		cell("الأوسمة", fmt.Sprintf("🏅 %d", p.Badges)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(cells)
}
