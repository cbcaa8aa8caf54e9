package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	onboard "github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/screens/dashboard"
	onboardscreen "github.com/karimf/wortspatz/internal/screens/onboarding"
	"github.com/karimf/wortspatz/internal/ui/layout"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// Options carries the wired services the app runs on.
type Options struct {
	Gate    *onboard.Gate
	Ledger  *ledger.Ledger
	Catalog *content.Catalog
	Player  audio.Player
	Logger  *zap.Logger
}

// profileResolvedMsg carries the startup routing decision.
type profileResolvedMsg struct {
	Profile *profile.Profile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	avatarKey string
	stars     int
}

// newAppModel creates the root model. The initial screen is decided in Init
// once the stored profile has been resolved.
func newAppModel(opts Options) AppModel {
	if opts.Player == nil {
		opts.Player = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return AppModel{opts: opts}
}

func (m AppModel) Init() tea.Cmd {
	gate := m.opts.Gate
	return func() tea.Msg {
		// A storage failure routes to onboarding the same as a fresh
		// install; the gate has already logged the difference.
		p, _ := gate.Resolve(context.Background())
		return profileResolvedMsg{Profile: p}
	}
}

// newOnboarding and newDashboard are mutually recursive: finishing onboarding
// replaces it with a dashboard, and a dashboard descendant that loses its
// profile replaces itself with onboarding.
func (m AppModel) newOnboarding() screen.Screen {
	return onboardscreen.New(m.opts.Gate, m.newDashboard)
}

func (m AppModel) newDashboard(p *profile.Profile) screen.Screen {
	return dashboard.New(p, m.opts.Catalog, m.opts.Ledger, m.opts.Gate, m.opts.Player, m.newOnboarding)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileResolvedMsg:
		if msg.Profile != nil {
			m.avatarKey = msg.Profile.AvatarKey
			m.stars = msg.Profile.Stars
			m.router = router.New(m.newDashboard(msg.Profile))
		} else {
			m.router = router.New(m.newOnboarding())
		}
		return m, m.router.Active().Init()

	case screen.ProfileChangedMsg:
		m.avatarKey = msg.AvatarKey
		m.stars = msg.Stars
		return m, nil

	case screen.StarsUpdatedMsg:
		m.stars = msg.Total
		if m.router != nil {
			return m, m.router.Broadcast(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router != nil && m.router.Depth() > 1 {
				// Session screens consume esc themselves; only fall back to
				// a plain pop for screens without live state.
				active := m.router.Active()
				if _, handles := active.(screen.Teardowner); !handles {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			}
		}
	}

	if m.router == nil {
		return m, nil
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.router == nil {
		v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("…")))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, profile.AvatarIcon(m.avatarKey), m.stars, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "رجوع"},
			{Key: "Ctrl+C", Description: "خروج"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "تنقّل"},
		{Key: "Enter", Description: "اختيار"},
		{Key: "Ctrl+C", Description: "خروج"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
