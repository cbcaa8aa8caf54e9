package activity

// Type names an activity variant. It doubles as the navigation parameter
// screens pass when routing into a session.
type Type string

const (
	TypeFlashcards Type = "flashcards"
	TypeQuiz       Type = "quiz"
	TypeQA         Type = "qa"
)

// Item is one entry in a session's ordered content set. Quiz and Q&A items
// carry selectable option keys and the correct one; flashcard items carry
// neither and advance on an explicit control instead.
type Item struct {
	Key        string
	CorrectKey string
	OptionKeys []string
}
