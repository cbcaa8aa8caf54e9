package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/karimf/wortspatz/internal/activity"
)

//go:embed data/content.json
var dataFS embed.FS

// Catalog is the read-only learning content: categories and, per category,
// the flashcard deck and question sets. Built once at startup; activity
// sessions never mutate it.
type Catalog struct {
	categories []Category
	flashcards map[string][]Flashcard
	quiz       map[string][]Question
	qa         map[string][]Question
}

// Load parses and validates the embedded catalog. A schema violation in the
// shipped content is a build defect, so the error is fatal to startup.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/content.json")
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalog, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, err
	}

	var data catalogData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		categories: data.Categories,
		flashcards: data.Flashcards,
		quiz:       data.Quiz,
		qa:         data.QA,
	}
	if c.flashcards == nil {
		c.flashcards = map[string][]Flashcard{}
	}
	if c.quiz == nil {
		c.quiz = map[string][]Question{}
	}
	if c.qa == nil {
		c.qa = map[string][]Question{}
	}
	return c, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category looks up a category by key.
func (c *Catalog) Category(key string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Flashcards returns the deck for a category. Unknown categories yield an
// empty deck, never an error.
func (c *Catalog) Flashcards(category string) []Flashcard {
	return c.flashcards[category]
}

// Questions returns the question set for the given activity and category.
// Unknown combinations yield an empty set.
func (c *Catalog) Questions(typ activity.Type, category string) []Question {
	switch typ {
	case activity.TypeQuiz:
		return c.quiz[category]
	case activity.TypeQA:
		return c.qa[category]
	}
	return nil
}

// Question looks up a question by key within an activity's set for a
// category.
func (c *Catalog) Question(typ activity.Type, category, key string) (Question, bool) {
	for _, q := range c.Questions(typ, category) {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Flashcard looks up a card by key within a category's deck.
func (c *Catalog) Flashcard(category, key string) (Flashcard, bool) {
	for _, f := range c.flashcards[category] {
		if f.Key == key {
			return f, true
		}
	}
	return Flashcard{}, false
}

// Resolve builds the ordered item set for an activity session. A category
// with no content for the requested activity resolves to an empty set; the
// session then completes immediately without running any reward logic.
func (c *Catalog) Resolve(typ activity.Type, category string) []activity.Item {
	switch typ {
	case activity.TypeFlashcards:
		cards := c.flashcards[category]
		items := make([]activity.Item, 0, len(cards))
		for _, card := range cards {
			items = append(items, activity.Item{Key: card.Key})
		}
		return items
	case activity.TypeQuiz, activity.TypeQA:
		qs := c.Questions(typ, category)
		items := make([]activity.Item, 0, len(qs))
		for _, q := range qs {
			keys := make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				keys = append(keys, o.Key)
			}
			items = append(items, activity.Item{
				Key:        q.Key,
				CorrectKey: q.CorrectKey,
				OptionKeys: keys,
			})
		}
		return items
	}
	return []activity.Item{}
}
