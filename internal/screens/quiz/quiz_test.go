package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
	"github.com/karimf/wortspatz/internal/store"
)

type mockProfileRepo struct {
	p *profile.Profile
}

func (m *mockProfileRepo) Load(context.Context) (*profile.Profile, error) { return m.p, nil }
func (m *mockProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	m.p = p
	return nil
}
func (m *mockProfileRepo) Clear(context.Context) error {
	m.p = nil
	return nil
}

type mockEventRepo struct {
	events []store.StarEventData
}

func (m *mockEventRepo) Append(_ context.Context, data store.StarEventData) error {
	m.events = append(m.events, data)
	return nil
}
func (m *mockEventRepo) Totals(context.Context) (*store.StarTotals, error) { return nil, nil }
func (m *mockEventRepo) Recent(context.Context, int) ([]store.StarEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuiz(t *testing.T) (*QuizScreen, *mockProfileRepo, *mockEventRepo) {
	t.Helper()
	catalog, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	profiles := &mockProfileRepo{p: profile.New("Layla", profile.LevelBeginner, "avatar3")}
	events := &mockEventRepo{}
	ledg := ledger.New(profiles, events, nil)

	cat, _ := catalog.Category("food")
	return New(catalog, ledg, cat), profiles, events
}

func TestFirstAnswerLocks(t *testing.T) {
	q, _, _ := testQuiz(t)

	// The first food question's correct answer is the apple.
	scr, cmd := q.Update(keyPress('1'))
	qq := scr.(*QuizScreen)

	if qq.sess.Phase() != activity.PhaseLocked {
		t.Error("first answer should lock the question")
	}
	if !qq.grid.Locked {
		t.Error("grid should be frozen after lock")
	}
	if cmd == nil {
		t.Error("expected advance timer + award commands")
	}
}

func TestSecondAnswerIgnoredWhileLocked(t *testing.T) {
	q, _, _ := testQuiz(t)

	scr, _ := q.Update(keyPress('2'))
	qq := scr.(*QuizScreen)
	earned := qq.starsEarned

	// Switching to the correct answer after locking must not award again.
	scr, cmd := qq.Update(keyPress('1'))
	qq = scr.(*QuizScreen)

	if qq.starsEarned != earned {
		t.Errorf("starsEarned changed on second answer: %d -> %d", earned, qq.starsEarned)
	}
	if qq.grid.ChosenKey != "banana" {
		t.Errorf("chosen key = %q, want the first pick to stand", qq.grid.ChosenKey)
	}
	if cmd != nil {
		t.Error("second answer must not schedule anything")
	}
}

func TestCorrectAnswerEarnsStars(t *testing.T) {
	q, _, _ := testQuiz(t)

	scr, _ := q.Update(keyPress('1'))
	qq := scr.(*QuizScreen)

	if qq.starsEarned != ledger.QuizCorrectStars {
		t.Errorf("starsEarned = %d, want %d", qq.starsEarned, ledger.QuizCorrectStars)
	}
}

func TestIncorrectAnswerEarnsNothingAndResetsStreak(t *testing.T) {
	q, _, _ := testQuiz(t)
	q.sess.SetStreak(2)

	scr, _ := q.Update(keyPress('2'))
	qq := scr.(*QuizScreen)

	if qq.starsEarned != 0 {
		t.Errorf("starsEarned = %d, want 0", qq.starsEarned)
	}
	if qq.sess.Streak() != 0 {
		t.Errorf("streak = %d, want reset to 0", qq.sess.Streak())
	}
}

func TestStreakBonus(t *testing.T) {
	q, _, _ := testQuiz(t)
	q.sess.SetStreak(2)

	scr, _ := q.Update(keyPress('1'))
	qq := scr.(*QuizScreen)

	want := ledger.QuizCorrectStars + ledger.StreakBonusStars
	if qq.starsEarned != want {
		t.Errorf("starsEarned = %d, want %d with streak bonus", qq.starsEarned, want)
	}
	if !qq.bonusShown {
		t.Error("bonus toast should be shown")
	}
	if qq.sess.Streak() != 0 {
		t.Error("streak must reset after the bonus")
	}
}

func TestAwardCmdWritesLedger(t *testing.T) {
	q, profiles, events := testQuiz(t)

	out := ledger.ApplyQuizOutcome(true, 0)
	msg := q.awardCmd(out)()

	su, ok := msg.(screen.StarsUpdatedMsg)
	if !ok {
		t.Fatalf("awardCmd msg = %T, want StarsUpdatedMsg", msg)
	}
	if su.Total != ledger.QuizCorrectStars {
		t.Errorf("total = %d, want %d", su.Total, ledger.QuizCorrectStars)
	}
	if profiles.p.Stars != ledger.QuizCorrectStars {
		t.Errorf("persisted stars = %d, want %d", profiles.p.Stars, ledger.QuizCorrectStars)
	}
	if len(events.events) != 1 {
		t.Fatalf("star events = %d, want 1", len(events.events))
	}
	if events.events[0].Activity != "quiz" {
		t.Errorf("event activity = %q, want quiz", events.events[0].Activity)
	}
}

func TestAwardCmdNoProfileSurfacesError(t *testing.T) {
	q, profiles, _ := testQuiz(t)
	profiles.p = nil

	out := ledger.ApplyQuizOutcome(true, 0)
	msg := q.awardCmd(out)()

	if _, ok := msg.(awardFailedMsg); !ok {
		t.Fatalf("awardCmd msg = %T, want awardFailedMsg", msg)
	}
}

func TestAdvanceMovesToNextQuestion(t *testing.T) {
	q, _, _ := testQuiz(t)

	scr, _ := q.Update(keyPress('1'))
	qq := scr.(*QuizScreen)

	scr, _ = qq.Update(advanceMsg{Token: 1})
	qq = scr.(*QuizScreen)

	if qq.sess.Index() != 1 {
		t.Errorf("index = %d, want 1", qq.sess.Index())
	}
	if qq.sess.Phase() != activity.PhaseDisplaying {
		t.Error("next question should be displaying")
	}
	if qq.grid.Locked {
		t.Error("grid must be rebuilt unlocked for the next question")
	}
}

func TestStaleAdvanceIgnoredAfterTeardown(t *testing.T) {
	q, _, _ := testQuiz(t)

	scr, _ := q.Update(keyPress('1'))
	qq := scr.(*QuizScreen)

	qq.Teardown()

	scr, _ = qq.Update(advanceMsg{Token: 1})
	qq = scr.(*QuizScreen)

	if qq.sess.Index() != 0 {
		t.Error("timer firing after teardown must not advance")
	}
}

func TestCompletionAndReturn(t *testing.T) {
	q, _, _ := testQuiz(t)

	// Answer and advance through both food questions.
	var scr screen.Screen = q
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(advanceMsg{Token: 1})
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(advanceMsg{Token: 2})
	qq := scr.(*QuizScreen)

	if qq.sess.Phase() != activity.PhaseCompleted {
		t.Fatal("session should be completed")
	}
	if qq.View(80, 24) == "" {
		t.Error("completed view should render")
	}

	_, cmd := qq.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on completion should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEmptyCategoryCompletesImmediately(t *testing.T) {
	catalog, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	ledg := ledger.New(&mockProfileRepo{}, &mockEventRepo{}, nil)

	q := New(catalog, ledg, content.Category{Key: "geography", Title: "جغرافيا"})

	if q.sess.Phase() != activity.PhaseCompleted {
		t.Error("unknown category should complete immediately")
	}
	if q.starsEarned != 0 {
		t.Error("no stars for an empty session")
	}
	if q.View(80, 24) == "" {
		t.Error("completed view should render")
	}
}
