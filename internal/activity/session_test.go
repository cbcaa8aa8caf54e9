package activity

import "testing"

func quizItems() []Item {
	return []Item{
		{Key: "q1", CorrectKey: "apple", OptionKeys: []string{"apple", "banana", "pear", "orange"}},
		{Key: "q2", CorrectKey: "banana", OptionKeys: []string{"apple", "banana", "pear", "orange"}},
	}
}

func TestSelectLocksAndReportsOutcome(t *testing.T) {
	s := New(quizItems())

	res, ok := s.Select("apple")
	if !ok {
		t.Fatal("first select should lock")
	}
	if !res.Correct {
		t.Error("selecting the correct key should report correct")
	}
	if s.Phase() != PhaseLocked {
		t.Errorf("phase = %v, want PhaseLocked", s.Phase())
	}
	if s.Outcome() != OutcomeCorrect {
		t.Errorf("outcome = %v, want OutcomeCorrect", s.Outcome())
	}
	if s.SelectedKey() != "apple" {
		t.Errorf("selected = %q, want apple", s.SelectedKey())
	}
}

func TestSelectIncorrect(t *testing.T) {
	s := New(quizItems())

	res, ok := s.Select("pear")
	if !ok {
		t.Fatal("select should lock")
	}
	if res.Correct {
		t.Error("wrong key should report incorrect")
	}
	if s.Outcome() != OutcomeIncorrect {
		t.Errorf("outcome = %v, want OutcomeIncorrect", s.Outcome())
	}
}

func TestSecondSelectWhileLockedIsRejected(t *testing.T) {
	s := New(quizItems())

	if _, ok := s.Select("pear"); !ok {
		t.Fatal("first select should lock")
	}

	// Switching to the correct answer after locking must be a no-op, so the
	// reward path runs exactly once per item.
	if _, ok := s.Select("apple"); ok {
		t.Error("second select while locked should be rejected")
	}
	if s.SelectedKey() != "pear" {
		t.Errorf("selected = %q, want the first pick to stand", s.SelectedKey())
	}
	if s.Outcome() != OutcomeIncorrect {
		t.Error("outcome must not change after lock")
	}
}

func TestAdvanceDueMovesToNextItem(t *testing.T) {
	s := New(quizItems())

	res, _ := s.Select("apple")
	if !s.AdvanceDue(res.Token) {
		t.Fatal("advance with live token should apply")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Phase() != PhaseDisplaying {
		t.Errorf("phase = %v, want PhaseDisplaying", s.Phase())
	}
	if s.SelectedKey() != "" || s.Outcome() != OutcomeUnset {
		t.Error("selection state must reset for the next item")
	}
}

func TestAdvanceDuePastLastItemCompletes(t *testing.T) {
	s := New(quizItems()[:1])

	res, _ := s.Select("apple")
	if !s.AdvanceDue(res.Token) {
		t.Fatal("advance should apply")
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", s.Phase())
	}
	if _, ok := s.Current(); ok {
		t.Error("completed session has no current item")
	}
}

func TestStaleAdvanceTokenIgnored(t *testing.T) {
	s := New(quizItems())

	res, _ := s.Select("apple")
	stale := res.Token
	s.AdvanceDue(stale)

	// Lock the second item; the first item's timer fires late.
	s.Select("banana")
	if s.AdvanceDue(stale) {
		t.Error("stale token must not advance the session")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
}

func TestAdvanceDueWithoutLockIgnored(t *testing.T) {
	s := New(quizItems())
	if s.AdvanceDue(1) {
		t.Error("advance without a lock should be ignored")
	}
}

func TestTeardownMakesSessionInert(t *testing.T) {
	s := New(quizItems())
	res, _ := s.Select("apple")

	s.Teardown()

	if s.AdvanceDue(res.Token) {
		t.Error("timer firing after teardown must not mutate the session")
	}
	if _, ok := s.Select("banana"); ok {
		t.Error("select after teardown must be rejected")
	}
	if _, ok := s.Advance(); ok {
		t.Error("advance after teardown must be rejected")
	}
}

func TestEmptyItemsCompletesImmediately(t *testing.T) {
	s := New(nil)

	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want PhaseCompleted for empty set", s.Phase())
	}
	if _, ok := s.Current(); ok {
		t.Error("empty session has no current item")
	}
	if _, ok := s.Select("anything"); ok {
		t.Error("select on an empty session must be rejected")
	}
	if _, ok := s.Advance(); ok {
		t.Error("advance on an empty session must be rejected")
	}
}

func TestFlashcardAdvance(t *testing.T) {
	items := []Item{{Key: "cat"}, {Key: "dog"}, {Key: "bird"}}
	s := New(items)

	finished, ok := s.Advance()
	if !ok || finished {
		t.Fatalf("first advance: finished=%v ok=%v, want false/true", finished, ok)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}

	s.Advance()
	finished, ok = s.Advance()
	if !ok || !finished {
		t.Fatalf("final advance: finished=%v ok=%v, want true/true", finished, ok)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", s.Phase())
	}

	if _, ok := s.Advance(); ok {
		t.Error("advance after completion must be rejected")
	}
}

func TestStreakStorage(t *testing.T) {
	s := New(quizItems())

	s.SetStreak(2)
	if s.Streak() != 2 {
		t.Errorf("streak = %d, want 2", s.Streak())
	}
	s.SetStreak(-1)
	if s.Streak() != 0 {
		t.Errorf("streak = %d, want clamped to 0", s.Streak())
	}
}
