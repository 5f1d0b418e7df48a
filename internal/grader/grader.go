// Package grader evaluates free-form answers against the expected
// answer. Obvious non-answers are rejected locally; everything else
// goes to the LLM with a strict evaluation prompt.
package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ankivoice/ankivoice/internal/llm"
)

// nonAnswers are phrases that fail immediately without an LLM call.
var nonAnswers = []string{
	"i forgot",
	"i don't know",
	"no idea",
	"not sure",
	"dunno",
	"idk",
	"???",
}

// Input is one answer to evaluate.
type Input struct {
	Question       string
	ExpectedAnswer string
	UserAnswer     string

	// Context is the card content the question was generated from,
	// included in the prompt when available.
	Context string
}

// Verdict is the evaluation result.
type Verdict struct {
	IsCorrect   bool    `json:"is_correct"`
	Confidence  float64 `json:"confidence"`
	Feedback    string  `json:"feedback"`
	Suggestions string  `json:"suggestions"`
}

// Grader evaluates answers.
type Grader struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// New creates a Grader using the given provider. Evaluation runs at
// low temperature for consistent verdicts.
func New(provider llm.Provider) *Grader {
	return &Grader{
		provider:    provider,
		maxTokens:   500,
		temperature: 0.3,
	}
}

// Grade evaluates the user's answer. Empty answers, answers under
// three characters, and known non-answer phrases are marked incorrect
// with high confidence before any LLM call.
func (g *Grader) Grade(ctx context.Context, in Input) (Verdict, error) {
	if v, ok := precheck(in.UserAnswer); ok {
		return v, nil
	}

	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return Verdict{}, fmt.Errorf("answer evaluation failed: %w", err)
	}

	var v Verdict
	if err := json.Unmarshal(resp.Content, &v); err != nil {
		return Verdict{}, fmt.Errorf("parse evaluation response: %w", err)
	}

	if v.Confidence < 0 {
		v.Confidence = 0
	}
	if v.Confidence > 1 {
		v.Confidence = 1
	}
	return v, nil
}

// precheck rejects obvious non-answers locally. Returns the verdict
// and true when the answer should not reach the LLM.
func precheck(answer string) (Verdict, bool) {
	trimmed := strings.TrimSpace(answer)
	lower := strings.ToLower(trimmed)

	reject := trimmed == "" || len(trimmed) < 3
	if !reject {
		for _, phrase := range nonAnswers {
			if strings.Contains(lower, phrase) {
				reject = true
				break
			}
		}
	}
	if !reject {
		return Verdict{}, false
	}

	return Verdict{
		IsCorrect:   false,
		Confidence:  0.95,
		Feedback:    "No valid answer provided. Please try to answer based on your understanding of the concept.",
		Suggestions: "Review the study material and provide a substantive answer that demonstrates your knowledge.",
	}, true
}
