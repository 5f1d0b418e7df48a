package srs

import (
	"math"
	"sort"
	"time"
)

// Entry pairs a card identifier with its scheduling state for ranking.
type Entry struct {
	CardID int
	State  State
}

// Planner orders a pool of cards for a study session.
type Planner struct {
	updater *Updater
}

// NewPlanner creates a Planner that uses the updater's retention estimator.
func NewPlanner(u *Updater) *Planner {
	return &Planner{updater: u}
}

// Rank returns the entries ordered by study priority, most urgent first.
// The sort is stable: entries with equal priority keep their input order.
// Inputs are not mutated; the returned slice is freshly allocated.
func (p *Planner) Rank(entries []Entry, now time.Time) []Entry {
	type scored struct {
		entry Entry
		score float64
	}

	items := make([]scored, len(entries))
	for i, e := range entries {
		items[i] = scored{entry: e, score: p.priority(e.State, now)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]Entry, len(items))
	for i, it := range items {
		ranked[i] = it.entry
	}
	return ranked
}

// priority computes the study priority for one card. Three additive terms:
// overdue days (10 points per day, capped at 100), estimated forgetting
// ((1-retention) * 50), and a fading-streak boost (20 minus streak, floored
// at 0). A card that is not yet due contributes nothing on the overdue term.
func (p *Planner) priority(s State, now time.Time) float64 {
	overdue := math.Min(math.Floor(s.OverdueDays(now))*10, 100)
	retention := (1.0 - p.updater.EstimateRetention(s, now)) * 50
	streak := math.Max(0, 20-float64(s.Streak))
	return overdue + retention + streak
}
