package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/karimf/wortspatz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Teardowner is an optional interface for screens holding live state, such
// as an activity session with a pending auto-advance timer. The router calls
// Teardown when the screen leaves the stack.
type Teardowner interface {
	Teardown()
}

// StarsUpdatedMsg announces a new star balance after an award. The app model
// updates the header from it and broadcasts it down the screen stack so
// screens below the active one refresh their counters too.
type StarsUpdatedMsg struct {
	Total int
}

// ProfileChangedMsg announces the active learner after onboarding completes,
// so the app chrome can show the avatar and star balance.
type ProfileChangedMsg struct {
	Name      string
	AvatarKey string
	Stars     int
}
