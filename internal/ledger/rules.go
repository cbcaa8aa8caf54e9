package ledger

// Reward rule constants. These mirror the star values the app has always
// awarded; changing them changes every activity screen at once.
const (
	// QuizCorrectStars is awarded for each correct quiz answer.
	QuizCorrectStars = 2

	// StreakBonusStars is the extra award when the streak threshold is hit.
	StreakBonusStars = 5

	// StreakBonusThreshold is the consecutive-correct count that triggers
	// the bonus; the streak resets to zero afterwards.
	StreakBonusThreshold = 3

	// CardStars is awarded for viewing a flashcard (any non-final advance).
	CardStars = 1

	// SetBonusStars replaces CardStars on the advance past the final card.
	SetBonusStars = 5
)

// QuizOutcome is the result of applying one quiz answer to the reward rules.
type QuizOutcome struct {
	StarsAwarded   int
	StreakAfter    int
	BonusTriggered bool
}

// ApplyQuizOutcome computes the reward delta for a single quiz answer. Pure;
// the caller invokes AwardStars when StarsAwarded > 0 and carries StreakAfter
// into the next answer.
func ApplyQuizOutcome(correct bool, streakBefore int) QuizOutcome {
	if !correct {
		return QuizOutcome{StarsAwarded: 0, StreakAfter: 0, BonusTriggered: false}
	}

	out := QuizOutcome{
		StarsAwarded: QuizCorrectStars,
		StreakAfter:  streakBefore + 1,
	}
	if out.StreakAfter >= StreakBonusThreshold {
		out.StarsAwarded += StreakBonusStars
		out.BonusTriggered = true
		out.StreakAfter = 0
	}
	return out
}

// FlashcardAward is the result of applying one flashcard advance.
type FlashcardAward struct {
	StarsAwarded int
}

// ApplyFlashcardAdvance computes the reward for advancing a flashcard set.
// The final advance earns the set bonus instead of the per-card star.
func ApplyFlashcardAdvance(isLastCard bool) FlashcardAward {
	if isLastCard {
		return FlashcardAward{StarsAwarded: SetBonusStars}
	}
	return FlashcardAward{StarsAwarded: CardStars}
}
