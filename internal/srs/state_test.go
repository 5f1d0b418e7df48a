package srs

import (
	"testing"
	"time"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState(DefaultParams())
	if s.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", s.EaseFactor)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.Phase() != PhaseNew {
		t.Errorf("Phase = %q, want %q", s.Phase(), PhaseNew)
	}
}

func TestIsDue_NeverScheduled(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := State{}
	if !s.IsDue(now) {
		t.Error("card with no scheduled review should be due")
	}
}

func TestIsDue_BeforeAndAfter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	future := State{NextReview: now.Add(time.Hour)}
	if future.IsDue(now) {
		t.Error("expected not due before review date")
	}

	onDate := State{NextReview: now}
	if !onDate.IsDue(now) {
		t.Error("expected due exactly on review date")
	}

	past := State{NextReview: now.Add(-time.Hour)}
	if !past.IsDue(now) {
		t.Error("expected due after review date")
	}
}

func TestOverdueDays(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := State{NextReview: reviewDate}

	if got := s.OverdueDays(reviewDate.AddDate(0, 0, -1)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}

	got := s.OverdueDays(reviewDate.Add(3 * 24 * time.Hour))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays = %v, want ~3.0", got)
	}

	if got := (State{}).OverdueDays(reviewDate); got != 0 {
		t.Errorf("OverdueDays for unscheduled card = %v, want 0", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// 4.5 days out rounds up to 5.
	s := State{NextReview: now.Add(108 * time.Hour)}
	if got := s.DaysUntil(now); got != 5 {
		t.Errorf("DaysUntil = %d, want 5", got)
	}

	due := State{NextReview: now.AddDate(0, 0, -2)}
	if got := due.DaysUntil(now); got != 0 {
		t.Errorf("DaysUntil for overdue card = %d, want 0", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := (State{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy with no reviews = %v, want 0", got)
	}

	s := State{TotalReviews: 8, CorrectReviews: 6}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"new", State{}, PhaseNew},
		{"learning first rep", State{TotalReviews: 1, Repetitions: 1}, PhaseLearning},
		{"learning after lapse", State{TotalReviews: 5, Repetitions: 0}, PhaseLearning},
		{"reviewing", State{TotalReviews: 5, Repetitions: 3}, PhaseReviewing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Phase(); got != tt.want {
				t.Errorf("Phase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"zero state", State{}, true},
		{"healthy", State{TotalReviews: 5, CorrectReviews: 3, Streak: 2}, true},
		{"negative totals", State{TotalReviews: -1}, false},
		{"correct exceeds total", State{TotalReviews: 2, CorrectReviews: 3}, false},
		{"negative streak", State{Streak: -2}, false},
		{"negative repetitions", State{Repetitions: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
