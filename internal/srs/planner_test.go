package srs

import (
	"testing"
	"time"
)

func newTestPlanner() *Planner {
	return NewPlanner(NewUpdater(DefaultParams()))
}

// overdueState builds a state whose review date is the given number of
// days before now, with identical retention inputs across cards.
func overdueState(now time.Time, daysOverdue int) State {
	return State{
		TotalReviews:   4,
		CorrectReviews: 2,
		LastReview:     now.AddDate(0, 0, -daysOverdue-1),
		NextReview:     now.AddDate(0, 0, -daysOverdue),
	}
}

func TestRank_MostOverdueFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	entries := []Entry{
		{CardID: 1, State: overdueState(now, 0)},
		{CardID: 2, State: overdueState(now, 5)},
		{CardID: 3, State: overdueState(now, 2)},
	}

	ranked := p.Rank(entries, now)

	want := []int{2, 3, 1}
	for i, id := range want {
		if ranked[i].CardID != id {
			t.Fatalf("position %d: got card %d, want %d (full order %v)",
				i, ranked[i].CardID, id, cardIDs(ranked))
		}
	}
}

func TestRank_StablePreservesInputOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	// Identical states produce identical scores.
	entries := []Entry{
		{CardID: 7, State: overdueState(now, 3)},
		{CardID: 8, State: overdueState(now, 3)},
		{CardID: 9, State: overdueState(now, 3)},
	}

	ranked := p.Rank(entries, now)

	want := []int{7, 8, 9}
	for i, id := range want {
		if ranked[i].CardID != id {
			t.Fatalf("stability violated: got order %v, want %v", cardIDs(ranked), want)
		}
	}
}

func TestRank_LowRetentionBeatsHighRetention(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	shaky := State{
		TotalReviews:   10,
		CorrectReviews: 2,
		LastReview:     now.AddDate(0, 0, -1),
		NextReview:     now,
	}
	solid := State{
		TotalReviews:   10,
		CorrectReviews: 10,
		LastReview:     now.AddDate(0, 0, -1),
		NextReview:     now,
	}

	ranked := p.Rank([]Entry{
		{CardID: 1, State: solid},
		{CardID: 2, State: shaky},
	}, now)

	if ranked[0].CardID != 2 {
		t.Errorf("expected low-retention card first, got order %v", cardIDs(ranked))
	}
}

func TestRank_LowStreakBeatsHighStreak(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	// Same accuracy and schedule; only the streak differs. The streak
	// term favors the struggling card, the streak bonus inside retention
	// favors it too (lower streak -> lower retention -> higher score).
	lowStreak := State{TotalReviews: 10, CorrectReviews: 5, Streak: 0, LastReview: now, NextReview: now}
	highStreak := State{TotalReviews: 10, CorrectReviews: 5, Streak: 15, LastReview: now, NextReview: now}

	ranked := p.Rank([]Entry{
		{CardID: 1, State: highStreak},
		{CardID: 2, State: lowStreak},
	}, now)

	if ranked[0].CardID != 2 {
		t.Errorf("expected low-streak card first, got order %v", cardIDs(ranked))
	}
}

func TestRank_NeverReviewedContributesNoOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	// A brand new card is due now but not overdue. An overdue card with
	// the same (zero) retention profile must outrank it.
	fresh := State{}
	overdue := State{NextReview: now.AddDate(0, 0, -4)}

	ranked := p.Rank([]Entry{
		{CardID: 1, State: fresh},
		{CardID: 2, State: overdue},
	}, now)

	if ranked[0].CardID != 2 {
		t.Errorf("expected overdue card before new card, got order %v", cardIDs(ranked))
	}
}

func TestRank_OverdueScoreCapped(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	// 10 and 300 days overdue both hit the 100-point cap; identical
	// retention inputs, so the tie resolves by input order.
	lastReview := now.AddDate(0, 0, -301)
	entries := []Entry{
		{CardID: 1, State: State{TotalReviews: 4, CorrectReviews: 2, LastReview: lastReview, NextReview: now.AddDate(0, 0, -10)}},
		{CardID: 2, State: State{TotalReviews: 4, CorrectReviews: 2, LastReview: lastReview, NextReview: now.AddDate(0, 0, -300)}},
	}

	ranked := p.Rank(entries, now)
	if ranked[0].CardID != 1 {
		t.Errorf("expected cap to equalize scores and keep input order, got %v", cardIDs(ranked))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := newTestPlanner()

	entries := []Entry{
		{CardID: 1, State: overdueState(now, 0)},
		{CardID: 2, State: overdueState(now, 5)},
	}

	p.Rank(entries, now)

	if entries[0].CardID != 1 || entries[1].CardID != 2 {
		t.Error("Rank reordered its input slice")
	}
}

func TestRank_Empty(t *testing.T) {
	p := newTestPlanner()
	ranked := p.Rank(nil, time.Now())
	if len(ranked) != 0 {
		t.Errorf("expected empty result, got %d entries", len(ranked))
	}
}

func cardIDs(entries []Entry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.CardID
	}
	return ids
}
