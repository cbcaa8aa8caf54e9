package content

// Category is one learning topic shown on the category selection screen.
type Category struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Flashcard is a single word card: the German word on the front, the Arabic
// translation underneath.
type Flashcard struct {
	Key         string `json:"key"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Icon        string `json:"icon"`
	AudioFile   string `json:"audioFile,omitempty"`
}

// Option is one selectable answer in a quiz or Q&A question.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Question is a prompt with a fixed option set, exactly one of which is
// correct.
type Question struct {
	Key        string   `json:"key"`
	Prompt     string   `json:"prompt"`
	CorrectKey string   `json:"correctKey"`
	Options    []Option `json:"options"`
}

// catalogData is the on-disk shape of the embedded catalog.
type catalogData struct {
	Categories []Category             `json:"categories"`
	Flashcards map[string][]Flashcard `json:"flashcards"`
	Quiz       map[string][]Question  `json:"quiz"`
	QA         map[string][]Question  `json:"qa"`
}
