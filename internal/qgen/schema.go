package qgen

import "github.com/ankivoice/ankivoice/internal/llm"

// QuestionsSchema defines the JSON schema for question generation responses.
var QuestionsSchema = &llm.Schema{
	Name:        "study-questions",
	Description: "A batch of study questions generated from one piece of learning material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Brief, concise expected answer (under 200 words)",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Self-assessed difficulty from 1 (very easy) to 5 (very hard)",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"standard", "multiple_choice", "fill_blank", "true_false"},
							"description": "Question style",
						},
					},
					"required":             []any{"question", "answer", "difficulty", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
