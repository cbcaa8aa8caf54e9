package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema constrains the embedded catalog: every question must carry a
// correct key and at least two options, every flashcard a word and a
// translation.
const catalogSchema = `{
	"type": "object",
	"required": ["categories", "flashcards", "quiz", "qa"],
	"properties": {
		"categories": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["key", "title", "icon"],
				"properties": {
					"key": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1},
					"icon": {"type": "string"}
				}
			}
		},
		"flashcards": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["key", "word", "translation"],
					"properties": {
						"key": {"type": "string", "minLength": 1},
						"word": {"type": "string", "minLength": 1},
						"translation": {"type": "string", "minLength": 1},
						"icon": {"type": "string"},
						"audioFile": {"type": "string"}
					}
				}
			}
		},
		"quiz": {"$ref": "#/$defs/questionSets"},
		"qa": {"$ref": "#/$defs/questionSets"}
	},
	"$defs": {
		"questionSets": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["key", "prompt", "correctKey", "options"],
					"properties": {
						"key": {"type": "string", "minLength": 1},
						"prompt": {"type": "string", "minLength": 1},
						"correctKey": {"type": "string", "minLength": 1},
						"options": {
							"type": "array",
							"minItems": 2,
							"items": {
								"type": "object",
								"required": ["key", "label"],
								"properties": {
									"key": {"type": "string", "minLength": 1},
									"label": {"type": "string", "minLength": 1},
									"icon": {"type": "string"}
								}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog checks raw catalog JSON against the schema before it is
// decoded into Go types.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledCatalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://catalog.json")
	})
	return compiledSchema, compileErr
}
