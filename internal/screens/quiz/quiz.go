package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/layout"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// advanceMsg fires when the post-answer hold expires. The token ties it to
// the lock that scheduled it; a stale one is dropped by the session.
type advanceMsg struct {
	Token activity.AdvanceToken
}

// awardFailedMsg reports a reward write that did not land.
type awardFailedMsg struct {
	Err error
}

// QuizScreen runs a multiple-choice quiz over one category. Answers lock on
// first selection, show feedback, and auto-advance after a short hold.
type QuizScreen struct {
	ledg      *ledger.Ledger
	category  content.Category
	questions []content.Question
	sess      *activity.Session
	sessionID string

	grid        components.OptionGrid
	starsEarned int
	bonusShown  bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Teardowner = (*QuizScreen)(nil)

// New creates a quiz session for the category. An empty question set yields
// an immediately completed session with zero stars.
func New(catalog *content.Catalog, ledg *ledger.Ledger, category content.Category) *QuizScreen {
	questions := catalog.Questions(activity.TypeQuiz, category.Key)
	q := &QuizScreen{
		ledg:      ledg,
		category:  category,
		questions: questions,
		sess:      activity.New(catalog.Resolve(activity.TypeQuiz, category.Key)),
		sessionID: uuid.New().String(),
	}
	q.loadGrid()
	return q
}

// loadGrid rebuilds the option grid for the current question.
func (q *QuizScreen) loadGrid() {
	idx := q.sess.Index()
	if q.sess.Phase() == activity.PhaseCompleted || idx >= len(q.questions) {
		return
	}
	question := q.questions[idx]
	options := make([]components.GridOption, 0, len(question.Options))
	for _, o := range question.Options {
		options = append(options, components.GridOption{Key: o.Key, Label: o.Label, Icon: o.Icon})
	}
	q.grid = components.NewOptionGrid(options, question.CorrectKey)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return fmt.Sprintf("اختبار: %s", q.category.Title)
}

func (q *QuizScreen) Teardown() {
	q.sess.Teardown()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.sess.Phase() {
	case activity.PhaseCompleted:
		return []layout.KeyHint{{Key: "Enter", Description: "رجوع"}}
	case activity.PhaseLocked:
		return nil
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "اختر"},
		{Key: "Enter", Description: "تأكيد"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return q.handleAdvance(msg)
	case awardFailedMsg:
		q.errMsg = msg.Err.Error()
		return q, nil
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if !q.sess.AdvanceDue(msg.Token) {
		return q, nil
	}
	q.bonusShown = false
	q.loadGrid()
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.sess.Phase() == activity.PhaseCompleted {
		if key == "enter" || key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	switch key {
	case "esc":
		// Leaving mid-session tears the session down; a pending
		// auto-advance timer then fires into a dead session.
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return q.submit(q.grid.SelectedKey())
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.grid.Options) {
			q.grid.Selected = idx
			return q.submit(q.grid.Options[idx].Key)
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.grid, cmd = q.grid.Update(msg)
	return q, cmd
}

// submit locks in the answer, applies the reward rules, and schedules the
// auto-advance. A second submit for the same question is rejected by the
// session, so the ledger is hit at most once per question.
func (q *QuizScreen) submit(key string) (screen.Screen, tea.Cmd) {
	res, ok := q.sess.Select(key)
	if !ok {
		return q, nil
	}

	q.grid.Lock(key)

	out := ledger.ApplyQuizOutcome(res.Correct, q.sess.Streak())
	q.sess.SetStreak(out.StreakAfter)
	q.bonusShown = out.BonusTriggered

	cmds := []tea.Cmd{
		tea.Tick(activity.AdvanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{Token: res.Token}
		}),
	}

	if out.StarsAwarded > 0 {
		q.starsEarned += out.StarsAwarded
		cmds = append(cmds, q.awardCmd(out))
	}

	return q, tea.Batch(cmds...)
}

func (q *QuizScreen) awardCmd(out ledger.QuizOutcome) tea.Cmd {
	reason := "correct_answer"
	if out.BonusTriggered {
		reason = "streak_bonus"
	}
	meta := ledger.AwardMeta{
		SessionID: q.sessionID,
		Activity:  string(activity.TypeQuiz),
		Category:  q.category.Key,
		Reason:    reason,
	}
	count := out.StarsAwarded

	return func() tea.Msg {
		p, err := q.ledg.AwardStars(context.Background(), count, meta)
		if err != nil {
			return awardFailedMsg{Err: err}
		}
		return screen.StarsUpdatedMsg{Total: p.Stars}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return renderError(width, height, q.errMsg)
	}
	if q.sess.Phase() == activity.PhaseCompleted {
		return q.viewCompleted(width, height)
	}
	return q.viewQuestion(width, height)
}

func (q *QuizScreen) viewQuestion(width, height int) string {
	cw := components.ContentWidth(width)
	question := q.questions[q.sess.Index()]

	var sections []string

	lesson := theme.Subtitle.Render(fmt.Sprintf("Lektion %d / %d", q.sess.Index()+1, q.sess.Len()))
	sections = append(sections, lesson)

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.Prompt)
	sections = append(sections, components.PromptCard(prompt, cw))

	sections = append(sections, q.grid.View())

	if q.sess.Phase() == activity.PhaseLocked {
		sections = append(sections, q.feedbackLine(question))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) feedbackLine(question content.Question) string {
	if q.sess.Outcome() == activity.OutcomeCorrect {
		line := theme.Correct.Render(fmt.Sprintf("✓ صحيح! +%d ★", ledger.QuizCorrectStars))
		if q.bonusShown {
			line += "\n" + theme.Correct.Render(fmt.Sprintf("🎉 سلسلة رائعة! +%d ★", ledger.StreakBonusStars))
		}
		return line
	}

	correct := ""
	for _, o := range question.Options {
		if o.Key == question.CorrectKey {
			correct = o.Label
			break
		}
	}
	return theme.Incorrect.Render(fmt.Sprintf("✗ الإجابة الصحيحة: %s", correct))
}

func (q *QuizScreen) viewCompleted(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("🎉 أحسنت!"))
	sections = append(sections, "")
	sections = append(sections, theme.StarCount.Render(fmt.Sprintf("★ %d نجمة في هذه الجولة", q.starsEarned)))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Enter للرجوع"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderError(width, height int, msg string) string {
	content := theme.Incorrect.Render("حدث خطأ") + "\n\n" +
		theme.Subtitle.Render(msg) + "\n\n" +
		theme.Hint.Render("اضغط أي زر للرجوع")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
