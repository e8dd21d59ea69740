package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the import file shape before decoding, so
// errors name the offending structure instead of surfacing as zero
// values after unmarshal.
var documentSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"icon": map[string]any{"type": "string"},
			"subtopics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"name", "subtopics"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func validateDocument(raw []byte) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://curriculum.json", documentSchema); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile("schema://curriculum.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile curriculum schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("curriculum file: %w", err)
	}
	return nil
}
