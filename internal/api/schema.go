package api

// JSON schemas for question-bearing responses. Validation happens before
// decoding so a malformed server payload surfaces as one typed error.

// questionDefinition describes a single question on the wire.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"questionText": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type":                 "object",
			"minProperties":        2,
			"additionalProperties": map[string]any{"type": "string"},
		},
		"source": map[string]any{
			"type": "string",
			"enum": []any{"AI", "PreviousYear"},
		},
		"difficulty": map[string]any{
			"type": "integer",
		},
	},
	"required": []any{"id", "questionText", "options", "source"},
}

// completeSessionSchema validates the session-completion response. The
// questions array is optional; cached is not. testId accompanies a
// non-empty question set, identifying the attempt the server minted.
var completeSessionSchema = &payloadSchema{
	Name: "complete-session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"testId": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
			"cached": map[string]any{
				"type": "boolean",
			},
		},
		"required": []any{"cached"},
	},
}

// startTestSchema validates the test-start response.
var startTestSchema = &payloadSchema{
	Name: "start-test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"testId": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required": []any{"testId", "questions"},
	},
}
