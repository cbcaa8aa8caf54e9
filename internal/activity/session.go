package activity

import "time"

// AdvanceDelay is how long a locked item stays on screen before the session
// auto-advances.
const AdvanceDelay = 1500 * time.Millisecond

// Phase is the session display phase for the current item.
type Phase int

const (
	// PhaseDisplaying shows the current item, awaiting a selection.
	PhaseDisplaying Phase = iota
	// PhaseLocked holds the current item with its outcome feedback until the
	// auto-advance fires.
	PhaseLocked
	// PhaseCompleted is terminal: the index has passed the last item.
	PhaseCompleted
)

// Outcome is the correctness result for the current item.
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// AdvanceToken guards a scheduled auto-advance. Each lock hands out a fresh
// token; a timer callback carrying a stale token (or firing after teardown)
// is ignored, so a disposed session is never mutated by a late timer.
type AdvanceToken int

// SelectResult reports what a successful Select did.
type SelectResult struct {
	Correct bool
	Token   AdvanceToken
}

// Session is the per-screen activity state machine. It is ephemeral: created
// when a session screen is entered, torn down when the screen exits, and
// never persisted. All reward side effects belong to the caller; the session
// only reports transitions.
type Session struct {
	items    []Item
	index    int
	selected string
	outcome  Outcome
	phase    Phase
	streak   int
	token    AdvanceToken
	torndown bool
}

// New creates a session over the given ordered items. An empty set yields a
// session that is already completed; callers must not run reward logic
// against it.
func New(items []Item) *Session {
	s := &Session{items: items}
	if len(items) == 0 {
		s.phase = PhaseCompleted
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the current item index. Meaningless once completed.
func (s *Session) Index() int { return s.index }

// Len returns the number of items in the session.
func (s *Session) Len() int { return len(s.items) }

// Current returns the item on display, or false once the session completed.
func (s *Session) Current() (Item, bool) {
	if s.phase == PhaseCompleted {
		return Item{}, false
	}
	return s.items[s.index], true
}

// SelectedKey returns the locked-in option key, or "" before a selection.
func (s *Session) SelectedKey() string { return s.selected }

// Outcome returns the correctness of the locked-in selection.
func (s *Session) Outcome() Outcome { return s.outcome }

// Streak returns the consecutive-correct count carried across quiz items.
func (s *Session) Streak() int { return s.streak }

// SetStreak stores the streak computed by the reward rules for the next item.
func (s *Session) SetStreak(n int) {
	if n < 0 {
		n = 0
	}
	s.streak = n
}

// Select locks in an answer for the current item. It reports ok=false — and
// changes nothing — when the session is locked, completed, or torn down, so
// a double-tap can never produce two reward invocations for one item. On
// success the returned token must be used to schedule the auto-advance.
func (s *Session) Select(key string) (SelectResult, bool) {
	if s.torndown || s.phase != PhaseDisplaying {
		return SelectResult{}, false
	}

	s.selected = key
	if key == s.items[s.index].CorrectKey {
		s.outcome = OutcomeCorrect
	} else {
		s.outcome = OutcomeIncorrect
	}
	s.phase = PhaseLocked
	s.token++

	return SelectResult{
		Correct: s.outcome == OutcomeCorrect,
		Token:   s.token,
	}, true
}

// AdvanceDue applies a scheduled auto-advance. It reports false and changes
// nothing unless tok is the token from the lock that scheduled it and the
// session is still live. Moving past the last item completes the session.
func (s *Session) AdvanceDue(tok AdvanceToken) bool {
	if s.torndown || s.phase != PhaseLocked || tok != s.token {
		return false
	}

	s.selected = ""
	s.outcome = OutcomeUnset
	if s.index >= len(s.items)-1 {
		s.phase = PhaseCompleted
		return true
	}
	s.index++
	s.phase = PhaseDisplaying
	return true
}

// Advance is the flashcard variant's explicit "next" control: no selection,
// no delay, no correctness. finished reports whether this advance moved past
// the final card and completed the session.
func (s *Session) Advance() (finished bool, ok bool) {
	if s.torndown || s.phase != PhaseDisplaying {
		return false, false
	}
	if s.index >= len(s.items)-1 {
		s.phase = PhaseCompleted
		return true, true
	}
	s.index++
	return false, true
}

// Teardown marks the session disposed. Every later call is inert; a pending
// auto-advance timer that fires afterwards is dropped by the token check.
func (s *Session) Teardown() {
	s.torndown = true
}
