package content

import (
	"testing"

	"github.com/karimf/wortspatz/internal/activity"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cats := c.Categories()
	if len(cats) != 5 {
		t.Fatalf("len(Categories()) = %d, want 5", len(cats))
	}
	if cats[0].Key != "animals" || cats[0].Title != "حيوانات" {
		t.Errorf("first category = %+v, want animals/حيوانات", cats[0])
	}
}

func TestCategoryLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	cat, ok := c.Category("food")
	if !ok {
		t.Fatal("food category should exist")
	}
	if cat.Title != "طعام" {
		t.Errorf("title = %q, want طعام", cat.Title)
	}

	if _, ok := c.Category("geography"); ok {
		t.Error("unknown category should not resolve")
	}
}

func TestQuestionsCarryCorrectKeyFromOptions(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, typ := range []activity.Type{activity.TypeQuiz, activity.TypeQA} {
		for _, cat := range c.Categories() {
			for _, q := range c.Questions(typ, cat.Key) {
				found := false
				for _, o := range q.Options {
					if o.Key == q.CorrectKey {
						found = true
					}
				}
				if !found {
					t.Errorf("%s/%s/%s: correctKey %q not among options", typ, cat.Key, q.Key, q.CorrectKey)
				}
			}
		}
	}
}

func TestResolveQuiz(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	items := c.Resolve(activity.TypeQuiz, "food")
	if len(items) == 0 {
		t.Fatal("food quiz should have items")
	}
	first := items[0]
	if first.CorrectKey != "apple" {
		t.Errorf("correct key = %q, want apple", first.CorrectKey)
	}
	if len(first.OptionKeys) != 4 {
		t.Errorf("len(OptionKeys) = %d, want 4", len(first.OptionKeys))
	}
}

func TestResolveFlashcardsHaveNoOptions(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	items := c.Resolve(activity.TypeFlashcards, "animals")
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}
	for _, it := range items {
		if it.CorrectKey != "" || len(it.OptionKeys) != 0 {
			t.Errorf("flashcard item %q carries option data", it.Key)
		}
	}
}

func TestResolveUnknownCategoryIsEmptyNotError(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, typ := range []activity.Type{activity.TypeFlashcards, activity.TypeQuiz, activity.TypeQA} {
		if items := c.Resolve(typ, "geography"); len(items) != 0 {
			t.Errorf("%s: unknown category resolved %d items, want 0", typ, len(items))
		}
	}

	// A session over an empty set is already completed.
	s := activity.New(c.Resolve(activity.TypeQuiz, "geography"))
	if s.Phase() != activity.PhaseCompleted {
		t.Error("empty resolution should yield a completed session")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing sections", `{"categories": []}`},
		{"empty categories", `{"categories": [], "flashcards": {}, "quiz": {}, "qa": {}}`},
		{
			"question without options",
			`{"categories": [{"key": "a", "title": "t", "icon": ""}],
			  "flashcards": {}, "qa": {},
			  "quiz": {"a": [{"key": "q", "prompt": "p", "correctKey": "x", "options": []}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse([]byte(tt.raw)); err == nil {
				t.Error("parse() should reject invalid catalog")
			}
		})
	}
}

func TestFlashcardLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	card, ok := c.Flashcard("animals", "cat")
	if !ok {
		t.Fatal("animals/cat should exist")
	}
	if card.Word != "die Katze" || card.Translation != "قطة" {
		t.Errorf("card = %+v, want die Katze / قطة", card)
	}
}
