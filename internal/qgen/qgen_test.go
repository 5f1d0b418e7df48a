package qgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ankivoice/ankivoice/internal/llm"
)

func mockResponse(t *testing.T, v any) llm.MockResponse {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal mock response: %v", err)
	}
	return llm.MockResponse{Content: data}
}

func TestGenerateParsesQuestions(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{
			{"question": "What organelle produces ATP?", "answer": "The mitochondria", "difficulty": 2, "type": "standard"},
			{"question": "True or false: mitochondria produce ATP.", "answer": "True", "difficulty": 1, "type": "true_false"},
		},
	}))
	g := New(mock)

	qs, err := g.Generate(context.Background(), "The mitochondria produces ATP", DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].QuestionText != "What organelle produces ATP?" {
		t.Errorf("question = %q", qs[0].QuestionText)
	}
	if qs[1].Type != "true_false" {
		t.Errorf("type = %q, want true_false", qs[1].Type)
	}
}

func TestGenerateCapsAtRequestedCount(t *testing.T) {
	items := make([]map[string]any, 5)
	for i := range items {
		items[i] = map[string]any{
			"question": "q", "answer": "a", "difficulty": 3, "type": "standard",
		}
	}
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{"questions": items}))
	g := New(mock)

	opts := DefaultOptions()
	opts.NumQuestions = 2
	qs, err := g.Generate(context.Background(), "content", opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("questions = %d, want 2", len(qs))
	}
}

func TestGenerateDropsIncompleteItems(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{
			{"question": "", "answer": "orphan answer", "difficulty": 3, "type": "standard"},
			{"question": "valid question?", "answer": "valid answer", "difficulty": 3, "type": "standard"},
		},
	}))
	g := New(mock)

	qs, err := g.Generate(context.Background(), "content", DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1", len(qs))
	}
	if qs[0].QuestionText != "valid question?" {
		t.Errorf("kept question = %q", qs[0].QuestionText)
	}
}

func TestGenerateErrorsWhenNothingUsable(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{},
	}))
	g := New(mock)

	_, err := g.Generate(context.Background(), "content", DefaultOptions())
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestGenerateNormalizesDifficultyAndType(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{
			{"question": "q?", "answer": "a", "difficulty": 99, "type": "essay"},
		},
	}))
	g := New(mock)

	qs, err := g.Generate(context.Background(), "content", DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if qs[0].Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", qs[0].Difficulty)
	}
	if qs[0].Type != "standard" {
		t.Errorf("type = %q, want standard", qs[0].Type)
	}
}

func TestGenerateTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", 3000)
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{
			{"question": long, "answer": "a", "difficulty": 3, "type": "standard"},
		},
	}))
	g := New(mock)

	qs, err := g.Generate(context.Background(), "content", DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := len(qs[0].QuestionText); got != maxTextLen+3 {
		t.Errorf("truncated length = %d, want %d", got, maxTextLen+3)
	}
	if !strings.HasSuffix(qs[0].QuestionText, "...") {
		t.Error("truncated text should end with ellipsis")
	}
}

func TestGeneratePromptMentionsContentAndCount(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, map[string]any{
		"questions": []map[string]any{
			{"question": "q?", "answer": "a", "difficulty": 3, "type": "standard"},
		},
	}))
	g := New(mock)

	opts := DefaultOptions()
	opts.NumQuestions = 4
	_, err := g.Generate(context.Background(), "photosynthesis fixes carbon", opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "photosynthesis fixes carbon") {
		t.Error("prompt missing card content")
	}
	if !strings.Contains(prompt, "Generate 4 different questions") {
		t.Error("prompt missing question count")
	}
	if mock.Calls[0].Schema != QuestionsSchema {
		t.Error("request should carry the questions schema")
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock)

	_, err := g.Generate(context.Background(), "content", DefaultOptions())
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
