package grader

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ankivoice/ankivoice/internal/llm"
)

func verdictResponse(t *testing.T, v Verdict) llm.MockResponse {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal verdict: %v", err)
	}
	return llm.MockResponse{Content: data}
}

func TestPrecheckRejectsNonAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "ab"},
		{"i forgot", "I forgot"},
		{"i dont know", "i don't know"},
		{"no idea", "No idea at all"},
		{"not sure", "not sure really"},
		{"dunno", "dunno"},
		{"idk", "idk tbh"},
		{"question marks", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider() // would error if called
			g := New(mock)

			v, err := g.Grade(context.Background(), Input{
				Question:       "What is photosynthesis?",
				ExpectedAnswer: "Conversion of light to chemical energy",
				UserAnswer:     tt.answer,
			})
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if v.IsCorrect {
				t.Error("non-answer marked correct")
			}
			if v.Confidence != 0.95 {
				t.Errorf("confidence = %v, want 0.95", v.Confidence)
			}
			if mock.CallCount() != 0 {
				t.Errorf("LLM called %d times, want 0", mock.CallCount())
			}
		})
	}
}

func TestGradeCorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse(t, Verdict{
		IsCorrect:  true,
		Confidence: 0.9,
		Feedback:   "Good explanation of the energy conversion.",
	}))
	g := New(mock)

	v, err := g.Grade(context.Background(), Input{
		Question:       "What is photosynthesis?",
		ExpectedAnswer: "Conversion of light to chemical energy",
		UserAnswer:     "Plants turn sunlight into chemical energy",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !v.IsCorrect {
		t.Error("expected correct verdict")
	}
	if v.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", v.Confidence)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM calls = %d, want 1", mock.CallCount())
	}
}

func TestGradeIncorrectAnswerWithSuggestions(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse(t, Verdict{
		IsCorrect:   false,
		Confidence:  0.85,
		Feedback:    "The answer confuses respiration with photosynthesis.",
		Suggestions: "Review the difference between energy capture and energy release.",
	}))
	g := New(mock)

	v, err := g.Grade(context.Background(), Input{
		Question:       "What is photosynthesis?",
		ExpectedAnswer: "Conversion of light to chemical energy",
		UserAnswer:     "Cells breaking down glucose for energy",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if v.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if v.Suggestions == "" {
		t.Error("expected suggestions for incorrect answer")
	}
}

func TestGradeClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "confidence": 1.7, "feedback": "ok"}`),
	})
	g := New(mock)

	v, err := g.Grade(context.Background(), Input{
		Question:       "q",
		ExpectedAnswer: "a",
		UserAnswer:     "a real attempt",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if v.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", v.Confidence)
	}
}

func TestGradePromptCarriesQuestionAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(verdictResponse(t, Verdict{
		IsCorrect: true, Confidence: 0.8, Feedback: "ok",
	}))
	g := New(mock)

	_, err := g.Grade(context.Background(), Input{
		Question:       "What organelle produces ATP?",
		ExpectedAnswer: "The mitochondria",
		UserAnswer:     "mitochondria make ATP",
		Context:        "The mitochondria is the powerhouse of the cell",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"What organelle produces ATP?",
		"The mitochondria",
		"mitochondria make ATP",
		"powerhouse",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != VerdictSchema {
		t.Error("request should carry the verdict schema")
	}
}

func TestGradePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock)

	_, err := g.Grade(context.Background(), Input{
		Question:       "q",
		ExpectedAnswer: "a",
		UserAnswer:     "a genuine attempt",
	})
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
