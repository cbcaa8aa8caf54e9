package flashcards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/layout"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// audioDoneMsg reports a pronunciation playback attempt.
type audioDoneMsg struct {
	Err error
}

// awardFailedMsg reports a reward write that did not land.
type awardFailedMsg struct {
	Err error
}

// FlashcardsScreen walks through one category's card deck. Each advance earns
// a star; finishing the deck earns the set bonus instead.
type FlashcardsScreen struct {
	ledg      *ledger.Ledger
	player    audio.Player
	category  content.Category
	cards     []content.Flashcard
	sess      *activity.Session
	sessionID string

	starsEarned   int
	audioDisabled bool
	errMsg        string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.Teardowner = (*FlashcardsScreen)(nil)

// New creates a flashcard session for the category.
func New(catalog *content.Catalog, ledg *ledger.Ledger, player audio.Player, category content.Category) *FlashcardsScreen {
	if player == nil {
		player = audio.NopPlayer{}
	}
	return &FlashcardsScreen{
		ledg:      ledg,
		player:    player,
		category:  category,
		cards:     catalog.Flashcards(category.Key),
		sess:      activity.New(catalog.Resolve(activity.TypeFlashcards, category.Key)),
		sessionID: uuid.New().String(),
	}
}

func (f *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardsScreen) Title() string {
	return fmt.Sprintf("بطاقات: %s", f.category.Title)
}

func (f *FlashcardsScreen) Teardown() {
	f.sess.Teardown()
}

func (f *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if f.sess.Phase() == activity.PhaseCompleted {
		return []layout.KeyHint{{Key: "Enter", Description: "رجوع"}}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "التالي"},
	}
	if !f.audioDisabled {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "استمع"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "رجوع"})
	return hints
}

func (f *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case audioDoneMsg:
		if msg.Err != nil {
			// Sound stays off for the rest of the session; the cards keep
			// working without it.
			f.audioDisabled = true
		}
		return f, nil

	case awardFailedMsg:
		f.errMsg = msg.Err.Error()
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}
	return f, nil
}

func (f *FlashcardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if f.errMsg != "" {
		return f, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if f.sess.Phase() == activity.PhaseCompleted {
		if key == "enter" || key == "esc" {
			return f, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return f, nil
	}

	switch key {
	case "esc":
		return f, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter", "space", " ", "right", "l":
		return f.advance()
	case "r":
		if f.audioDisabled {
			return f, nil
		}
		return f, f.playCmd()
	}
	return f, nil
}

// advance awards the per-card star (or the set bonus on the last card) and
// moves to the next card.
func (f *FlashcardsScreen) advance() (screen.Screen, tea.Cmd) {
	isLast := f.sess.Index() == f.sess.Len()-1
	award := ledger.ApplyFlashcardAdvance(isLast)

	if _, ok := f.sess.Advance(); !ok {
		return f, nil
	}

	f.starsEarned += award.StarsAwarded
	return f, f.awardCmd(award.StarsAwarded, isLast)
}

func (f *FlashcardsScreen) awardCmd(count int, isLast bool) tea.Cmd {
	reason := "card_viewed"
	if isLast {
		reason = "set_completed"
	}
	meta := ledger.AwardMeta{
		SessionID: f.sessionID,
		Activity:  string(activity.TypeFlashcards),
		Category:  f.category.Key,
		Reason:    reason,
	}

	return func() tea.Msg {
		p, err := f.ledg.AwardStars(context.Background(), count, meta)
		if err != nil {
			return awardFailedMsg{Err: err}
		}
		return screen.StarsUpdatedMsg{Total: p.Stars}
	}
}

func (f *FlashcardsScreen) playCmd() tea.Cmd {
	idx := f.sess.Index()
	if idx >= len(f.cards) {
		return nil
	}
	clip := f.cards[idx].AudioFile
	if clip == "" {
		return nil
	}
	return func() tea.Msg {
		return audioDoneMsg{Err: f.player.Play(context.Background(), clip)}
	}
}

func (f *FlashcardsScreen) View(width, height int) string {
	if f.errMsg != "" {
		content := theme.Incorrect.Render("حدث خطأ") + "\n\n" +
			theme.Subtitle.Render(f.errMsg) + "\n\n" +
			theme.Hint.Render("اضغط أي زر للرجوع")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	if f.sess.Phase() == activity.PhaseCompleted {
		return f.viewCompleted(width, height)
	}
	return f.viewCard(width, height)
}

func (f *FlashcardsScreen) viewCard(width, height int) string {
	cw := components.ContentWidth(width)
	card := f.cards[f.sess.Index()]

	var sections []string

	counter := theme.Subtitle.Render(fmt.Sprintf("%d / %d", f.sess.Index()+1, f.sess.Len()))
	sections = append(sections, counter)

	sections = append(sections, components.WordCard(card.Icon, card.Word, card.Translation, cw))

	bar := components.NewProgressBar("", float64(f.sess.Index())/float64(f.sess.Len()), false, cw)
	sections = append(sections, bar.View())

	if f.audioDisabled {
		sections = append(sections, theme.Hint.Render("الصوت غير متاح"))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (f *FlashcardsScreen) viewCompleted(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("🎉 أكملت المجموعة!"))
	sections = append(sections, "")
	sections = append(sections, theme.StarCount.Render(fmt.Sprintf("★ %d نجمة في هذه الجولة", f.starsEarned)))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Enter للرجوع"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
