package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ankivoice/ankivoice/internal/srs"
)

// Overview summarizes the state of the whole collection for the stats
// command.
type Overview struct {
	TotalCards     int
	NewCards       int
	LearningCards  int
	ReviewingCards int
	DueCards       int
	OverdueCards   int
	AvgEase        float64
	RecentReviews  int
	RecentAccuracy float64
}

// Overview computes collection-wide counts as of now. Recent figures
// cover the trailing seven days of review logs.
func (s *Store) Overview(ctx context.Context, def srs.State, now time.Time) (Overview, error) {
	entries, err := s.Progress().ActiveEntries(ctx, def)
	if err != nil {
		return Overview{}, fmt.Errorf("overview: %w", err)
	}

	var o Overview
	var easeSum float64
	for _, e := range entries {
		o.TotalCards++
		easeSum += e.State.EaseFactor

		switch e.State.Phase() {
		case srs.PhaseNew:
			o.NewCards++
		case srs.PhaseLearning:
			o.LearningCards++
		case srs.PhaseReviewing:
			o.ReviewingCards++
		}

		if e.State.IsDue(now) {
			o.DueCards++
			if e.State.OverdueDays(now) >= 1 {
				o.OverdueCards++
			}
		}
	}
	if o.TotalCards > 0 {
		o.AvgEase = easeSum / float64(o.TotalCards)
	}

	reviews, err := s.Sessions().ReviewsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return Overview{}, fmt.Errorf("overview: %w", err)
	}
	correct := 0
	for _, r := range reviews {
		o.RecentReviews++
		if r.Correct {
			correct++
		}
	}
	if o.RecentReviews > 0 {
		o.RecentAccuracy = float64(correct) / float64(o.RecentReviews)
	}

	return o, nil
}
