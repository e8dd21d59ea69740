package forge

import "github.com/mathsinbites/bitesmith/internal/llm"

// LessonSchema is the JSON schema for a full lesson with its
// quick-check questions.
var LessonSchema = &llm.Schema{
	Name:        "lesson",
	Description: "A complete lesson with worked examples and quick-check questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Lesson title (3-8 words)",
			},
			"introduction": map[string]any{
				"type":        "string",
				"description": "2-3 sentence friendly intro connecting the concept to real life",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "3-4 paragraph explanation with **bold** key terms, paragraphs separated by blank lines",
			},
			"examples": map[string]any{
				"type":        "array",
				"description": "Two worked examples",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"problem": map[string]any{"type": "string"},
						"steps": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "problem", "steps"},
					"additionalProperties": false,
				},
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly three quick-check questions",
				"items":       questionDefinition,
			},
		},
		"required":             []any{"title", "introduction", "explanation", "examples", "questions"},
		"additionalProperties": false,
	},
}

// PracticeBatchSchema is the JSON schema for a batch of extended
// practice questions.
var PracticeBatchSchema = &llm.Schema{
	Name:        "practice-batch",
	Description: "A batch of multiple-choice practice questions for one subtopic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// questionDefinition is the shared shape of one multiple-choice
// question. The answer is a 0-based index into the four options.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"answer": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 3,
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct option is correct",
		},
	},
	"required":             []any{"question", "options", "answer", "explanation"},
	"additionalProperties": false,
}
