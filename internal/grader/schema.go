package grader

import "github.com/ankivoice/ankivoice/internal/llm"

// VerdictSchema defines the JSON schema for answer evaluation responses.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Strict evaluation of a learner's answer against the expected answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates genuine understanding",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How certain the evaluation is, 0.0-1.0",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Brief feedback explaining the evaluation",
			},
			"suggestions": map[string]any{
				"type":        "string",
				"description": "How to improve if incorrect; empty string if correct",
			},
		},
		"required":             []any{"is_correct", "confidence", "feedback"},
		"additionalProperties": false,
	},
}
