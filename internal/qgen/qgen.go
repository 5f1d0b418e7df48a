// Package qgen turns a card's study material into a set of questions
// via the LLM provider.
package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ankivoice/ankivoice/internal/llm"
)

// maxTextLen caps question and answer text so oversized model output
// never violates the 2000-char storage limit.
const maxTextLen = 1800

// Options controls one generation call.
type Options struct {
	// NumQuestions is how many questions to request per card.
	NumQuestions int

	// DifficultyMin and DifficultyMax bound the requested difficulty (1-5).
	DifficultyMin int
	DifficultyMax int

	// Types lists the question styles the model may use.
	Types []string

	// IncludeWorldKnowledge allows the model to draw on context beyond
	// the statement itself.
	IncludeWorldKnowledge bool

	// MaxTokens and Temperature are passed through to the provider.
	MaxTokens   int
	Temperature float64
}

// DefaultOptions returns the generation settings the original app ships with.
func DefaultOptions() Options {
	return Options{
		NumQuestions:          3,
		DifficultyMin:         2,
		DifficultyMax:         4,
		Types:                 []string{"standard"},
		IncludeWorldKnowledge: true,
		MaxTokens:             2000,
		Temperature:           0.7,
	}
}

// Question is one generated question/answer pair, validated and ready
// to store.
type Question struct {
	QuestionText string
	AnswerText   string
	Difficulty   int
	Type         string
}

// Generator produces questions for cards.
type Generator struct {
	provider llm.Provider
}

// New creates a Generator using the given provider.
func New(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// questionsOutput mirrors the schema'd LLM response.
type questionsOutput struct {
	Questions []struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Difficulty int    `json:"difficulty"`
		Type       string `json:"type"`
	} `json:"questions"`
}

// Generate produces up to opts.NumQuestions questions for the given
// card content. Items missing question or answer text are dropped; an
// error is returned only when nothing usable came back.
func (g *Generator) Generate(ctx context.Context, content string, opts Options) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if opts.NumQuestions <= 0 {
		opts.NumQuestions = 1
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(content, opts)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	questions := make([]Question, 0, opts.NumQuestions)
	for _, item := range raw.Questions {
		if len(questions) == opts.NumQuestions {
			break
		}
		q := Question{
			QuestionText: truncate(item.Question),
			AnswerText:   truncate(item.Answer),
			Difficulty:   clampDifficulty(item.Difficulty),
			Type:         normalizeType(item.Type),
		}
		if q.QuestionText == "" || q.AnswerText == "" {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question generation: no usable questions in response")
	}
	return questions, nil
}

func truncate(s string) string {
	if len(s) > maxTextLen {
		return s[:maxTextLen] + "..."
	}
	return s
}

func clampDifficulty(d int) int {
	if d < 1 || d > 5 {
		return 3
	}
	return d
}

var validTypes = map[string]bool{
	"standard":        true,
	"multiple_choice": true,
	"fill_blank":      true,
	"true_false":      true,
}

func normalizeType(t string) string {
	if validTypes[t] {
		return t
	}
	return "standard"
}
