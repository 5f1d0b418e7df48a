package srs

import "time"

// Phase describes where a card sits in its learning lifecycle.
type Phase string

const (
	PhaseNew       Phase = "new"       // never reviewed
	PhaseLearning  Phase = "learning"  // repetitions 1-2, fixed intervals
	PhaseReviewing Phase = "reviewing" // repetitions >= 3, ease-driven growth
)

// State holds the spaced repetition state for a single card.
// It is a value type: Update returns a modified copy and never
// mutates the caller's record.
type State struct {
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	Repetitions    int       `json:"repetitions"`
	TotalReviews   int       `json:"total_reviews"`
	CorrectReviews int       `json:"correct_reviews"`
	Streak         int       `json:"streak"`
	LastReview     time.Time `json:"last_review,omitzero"`
	NextReview     time.Time `json:"next_review,omitzero"`
}

// NewState returns the state for a card that has never been reviewed.
func NewState(p Params) State {
	return State{
		EaseFactor:   p.EaseDefault,
		IntervalDays: p.InitialInterval,
	}
}

// Accuracy returns the lifetime fraction of correct reviews in [0,1].
// Returns 0 for a card with no reviews.
func (s State) Accuracy() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.CorrectReviews) / float64(s.TotalReviews)
}

// IsDue reports whether the card should be shown at or before now.
// A card with no scheduled review is always due.
func (s State) IsDue(now time.Time) bool {
	if s.NextReview.IsZero() {
		return true
	}
	return !now.Before(s.NextReview)
}

// OverdueDays returns how many days past its review date the card is.
// Returns 0 when the card is not yet due or has never been scheduled.
func (s State) OverdueDays(now time.Time) float64 {
	if s.NextReview.IsZero() || now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Hours() / 24.0
}

// DaysUntil returns whole days until the next review, 0 if already due.
func (s State) DaysUntil(now time.Time) int {
	if s.IsDue(now) {
		return 0
	}
	return int(s.NextReview.Sub(now).Hours()/24.0) + 1
}

// Phase returns the lifecycle phase implied by the counters.
func (s State) Phase() Phase {
	switch {
	case s.TotalReviews == 0:
		return PhaseNew
	case s.Repetitions >= 3:
		return PhaseReviewing
	default:
		return PhaseLearning
	}
}

// Valid reports whether a loaded state satisfies the invariants the
// updater relies on. The store treats a false result as corrupt data.
func (s State) Valid() bool {
	return s.TotalReviews >= 0 &&
		s.CorrectReviews >= 0 &&
		s.CorrectReviews <= s.TotalReviews &&
		s.Repetitions >= 0 &&
		s.Streak >= 0
}
