package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ankivoice/ankivoice/internal/grader"
	"github.com/ankivoice/ankivoice/internal/session"
	"github.com/ankivoice/ankivoice/internal/srs"
	"github.com/ankivoice/ankivoice/internal/store"
)

func testSession(items ...session.Item) *session.Session {
	return &session.Session{
		ID:        "test-session",
		Mode:      "review",
		StartedAt: time.Now(),
		Items:     items,
	}
}

func testItem(content string) session.Item {
	return session.Item{
		Card:  &store.Card{ID: 1, Content: content},
		State: srs.NewState(srs.DefaultParams()),
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSessionReadyEntersAnswering(t *testing.T) {
	m := New(nil)

	updated, _ := m.Update(sessionReadyMsg{Session: testSession(testItem("a card"))})
	got := updated.(Model)

	if got.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", got.phase)
	}
	if got.sess == nil {
		t.Fatal("session not stored")
	}
}

func TestEmptySessionFinishesImmediately(t *testing.T) {
	m := New(nil)

	updated, cmd := m.Update(sessionReadyMsg{Session: testSession()})
	got := updated.(Model)

	if cmd == nil {
		t.Fatal("expected finish command for empty session")
	}
	if got.phase != phaseLoading {
		t.Errorf("phase = %d, want loading until summary arrives", got.phase)
	}
}

func TestEnterWithEmptyInputIgnored(t *testing.T) {
	m := New(nil)
	updated, _ := m.Update(sessionReadyMsg{Session: testSession(testItem("a card"))})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Error("empty answer should not submit")
	}
	if got.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", got.phase)
	}
}

func TestEnterSubmitsTypedAnswer(t *testing.T) {
	m := New(nil)
	updated, _ := m.Update(sessionReadyMsg{Session: testSession(testItem("a card"))})
	m = updated.(Model)

	for _, r := range "atp" {
		updated, _ = m.Update(keyPress(r))
		m = updated.(Model)
	}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	got := updated.(Model)

	if got.phase != phaseGrading {
		t.Errorf("phase = %d, want grading", got.phase)
	}
	if cmd == nil {
		t.Error("expected submit command")
	}
}

func TestVerdictShowsFeedback(t *testing.T) {
	m := New(nil)
	updated, _ := m.Update(sessionReadyMsg{Session: testSession(testItem("a card"))})
	m = updated.(Model)

	res := &session.Result{
		Verdict: grader.Verdict{IsCorrect: true, Confidence: 0.9, Feedback: "nice"},
		Quality: 5,
	}
	updated, _ = m.Update(verdictMsg{Result: res})
	got := updated.(Model)

	if got.phase != phaseFeedback {
		t.Errorf("phase = %d, want feedback", got.phase)
	}
	if got.result != res {
		t.Error("result not stored")
	}
}

func TestSummaryThenKeyQuits(t *testing.T) {
	m := New(nil)
	updated, _ := m.Update(summaryMsg{Summary: &session.Summary{CardsReviewed: 1, Correct: 1}})
	m = updated.(Model)

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestSessionErrorGoesToSummary(t *testing.T) {
	m := New(nil)

	updated, _ := m.Update(sessionReadyMsg{Err: errTest})
	got := updated.(Model)

	if got.phase != phaseSummary {
		t.Errorf("phase = %d, want summary", got.phase)
	}
	if got.err == nil {
		t.Error("error not stored")
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }
