package session

import "time"

// Summary holds the figures shown when a session ends.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	CardsReviewed  int
	Correct        int
	Accuracy       float64
	AvgResponseSec float64
	Completed      bool
}

// buildSummary derives the summary from the session counters.
func buildSummary(s *Session, now time.Time) *Summary {
	var accuracy float64
	if s.answered > 0 {
		accuracy = float64(s.correct) / float64(s.answered)
	}
	var avgResponse float64
	if s.responseSeen > 0 {
		avgResponse = s.responseSum / float64(s.responseSeen)
	}

	return &Summary{
		SessionID:      s.ID,
		Duration:       now.Sub(s.StartedAt),
		CardsReviewed:  s.answered,
		Correct:        s.correct,
		Accuracy:       accuracy,
		AvgResponseSec: avgResponse,
		Completed:      s.answered == len(s.Items),
	}
}
