package qa

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karimf/wortspatz/internal/activity"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/router"
	"github.com/karimf/wortspatz/internal/screen"
)

func testQA(t *testing.T) *QAScreen {
	t.Helper()
	catalog, err := content.Load()
	if err != nil {
		t.Fatal(err)
	}
	cat, _ := catalog.Category("animals")
	return New(catalog, cat)
}

func TestAnswerLocksWithoutAward(t *testing.T) {
	q := testQA(t)

	scr, cmd := q.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	qq := scr.(*QAScreen)

	if qq.sess.Phase() != activity.PhaseLocked {
		t.Error("answer should lock the question")
	}
	if cmd == nil {
		t.Fatal("expected only the advance timer")
	}
}

func TestAdvanceByToken(t *testing.T) {
	q := testQA(t)

	scr, _ := q.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	qq := scr.(*QAScreen)

	scr, _ = qq.Update(advanceMsg{Token: 1})
	qq = scr.(*QAScreen)

	if qq.sess.Index() != 1 {
		t.Errorf("index = %d, want 1", qq.sess.Index())
	}

	// A replay of the same token is a no-op.
	scr, _ = qq.Update(advanceMsg{Token: 1})
	qq = scr.(*QAScreen)
	if qq.sess.Index() != 1 {
		t.Error("stale token must not advance again")
	}
}

func TestCompletionPopsOnEnter(t *testing.T) {
	q := testQA(t)

	var scr screen.Screen = q
	scr, _ = scr.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	scr, _ = scr.Update(advanceMsg{Token: 1})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	scr, _ = scr.Update(advanceMsg{Token: 2})
	qq := scr.(*QAScreen)

	if qq.sess.Phase() != activity.PhaseCompleted {
		t.Fatal("both questions answered, session should be completed")
	}

	_, cmd := qq.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on completion should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
