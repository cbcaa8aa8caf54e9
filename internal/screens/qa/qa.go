package qa

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/ui/components"
	"github.com/karimf/wortspatz/internal/ui/layout"
	"github.com/karimf/wortspatz/internal/ui/theme"
)

// advanceMsg fires when the post-answer hold expires.
type advanceMsg struct {
	Token activity.AdvanceToken
}

// QAScreen runs the question-and-answer practice for one category. It uses
// the same lock-and-hold flow as the quiz but awards nothing; it is practice,
// not assessment.
type QAScreen struct {
	category  content.Category
	questions []content.Question
	sess      *activity.Session

	grid components.OptionGrid
}

var _ screen.Screen = (*QAScreen)(nil)
var _ screen.KeyHintProvider = (*QAScreen)(nil)
var _ screen.Teardowner = (*QAScreen)(nil)

// New creates a Q&A session for the category.
func New(catalog *content.Catalog, category content.Category) *QAScreen {
	questions := catalog.Questions(activity.TypeQA, category.Key)
	q := &QAScreen{
		category:  category,
		questions: questions,
		sess:      activity.New(catalog.Resolve(activity.TypeQA, category.Key)),
	}
	q.loadGrid()
	return q
}

func (q *QAScreen) loadGrid() {
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

func (q *QAScreen) Init() tea.Cmd {
	return nil
}

func (q *QAScreen) Title() string {
	return fmt.Sprintf("سؤال وجواب: %s", q.category.Title)
}

func (q *QAScreen) Teardown() {
	q.sess.Teardown()
}

func (q *QAScreen) KeyHints() []layout.KeyHint {
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

func (q *QAScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if q.sess.AdvanceDue(msg.Token) {
			q.loadGrid()
		}
		return q, nil
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QAScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.sess.Phase() == activity.PhaseCompleted {
		if key == "enter" || key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	switch key {
	case "esc":
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

func (q *QAScreen) submit(key string) (screen.Screen, tea.Cmd) {
	res, ok := q.sess.Select(key)
	if !ok {
		return q, nil
	}

	q.grid.Lock(key)

	return q, tea.Tick(activity.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{Token: res.Token}
	})
}

func (q *QAScreen) View(width, height int) string {
	if q.sess.Phase() == activity.PhaseCompleted {
		return q.viewCompleted(width, height)
	}

	cw := components.ContentWidth(width)
	question := q.questions[q.sess.Index()]

	var sections []string

	counter := theme.Subtitle.Render(fmt.Sprintf("%d / %d", q.sess.Index()+1, q.sess.Len()))
	sections = append(sections, counter)

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.Prompt)
	sections = append(sections, components.PromptCard(prompt, cw))

	sections = append(sections, q.grid.View())

	if q.sess.Phase() == activity.PhaseLocked {
		sections = append(sections, q.feedbackLine(question))
	}

	// Voice answers are not wired up yet; the control is shown disabled.
	sections = append(sections, theme.Hint.Render("🎤 الإجابة الصوتية قريبًا"))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QAScreen) feedbackLine(question content.Question) string {
	if q.sess.Outcome() == activity.OutcomeCorrect {
		return theme.Correct.Render("✓ صحيح!")
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

func (q *QAScreen) viewCompleted(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("أحسنت!"))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("أكملت جميع الأسئلة"))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Enter للرجوع"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
