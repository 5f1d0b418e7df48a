package srs

import (
	"math"
	"testing"
	"time"
)

func ptr(f float64) *float64 { return &f }

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestMapQuality_Incorrect(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       int
	}{
		{"blackout", 0.2, 0},
		{"low boundary", 0.0, 0},
		{"partial recall", 0.3, 1},
		{"almost", 0.59, 1},
		{"close miss", 0.6, 2},
		{"confident miss", 0.95, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapQuality(false, tt.confidence, nil)
			if got != tt.want {
				t.Errorf("MapQuality(false, %v, nil) = %d, want %d", tt.confidence, got, tt.want)
			}
		})
	}
}

func TestMapQuality_Correct(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		respTime   *float64
		want       int
	}{
		{"confident and fast", 0.95, ptr(2.0), 5},
		{"confident no timing", 0.95, nil, 5},
		{"confident but slow", 0.95, ptr(10.0), 4},
		{"moderate confidence", 0.85, nil, 4},
		{"moderate fast", 0.85, ptr(1.0), 5},
		{"low confidence", 0.5, nil, 3},
		{"low confidence slow", 0.5, ptr(30.0), 3}, // never below 3 when correct
		{"normal pace no bonus", 0.5, ptr(5.0), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapQuality(true, tt.confidence, tt.respTime)
			if got != tt.want {
				t.Errorf("MapQuality(true, %v, %v) = %d, want %d", tt.confidence, tt.respTime, got, tt.want)
			}
		})
	}
}

func TestUpdate_FirstReview(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := NewState(DefaultParams())

	got, next := u.Update(s, 4, nil, testNow)

	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
	wantNext := testNow.AddDate(0, 0, 1)
	if !next.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", next, wantNext)
	}
	if got.TotalReviews != 1 || got.CorrectReviews != 1 || got.Streak != 1 {
		t.Errorf("counters = (%d, %d, %d), want (1, 1, 1)",
			got.TotalReviews, got.CorrectReviews, got.Streak)
	}
}

func TestUpdate_SecondReview(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := NewState(DefaultParams())

	s, _ = u.Update(s, 4, nil, testNow)
	s, next := u.Update(s, 4, nil, testNow.AddDate(0, 0, 1))

	if s.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", s.Repetitions)
	}
	if s.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", s.IntervalDays)
	}
	wantNext := testNow.AddDate(0, 0, 7)
	if !next.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", next, wantNext)
	}
}

func TestUpdate_ThirdReviewEaseDriven(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2}

	s, _ = u.Update(s, 4, nil, testNow)

	// Ease stays 2.5 at quality 4; interval = floor(6 * 2.5) = 15.
	if s.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", s.Repetitions)
	}
	if s.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", s.IntervalDays)
	}
}

func TestUpdate_LapseResetsSchedule(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{
		EaseFactor:     2.5,
		IntervalDays:   42,
		Repetitions:    5,
		TotalReviews:   10,
		CorrectReviews: 9,
		Streak:         5,
	}

	for quality := 0; quality < 3; quality++ {
		got, _ := u.Update(s, quality, nil, testNow)
		if got.Repetitions != 0 {
			t.Errorf("quality %d: Repetitions = %d, want 0", quality, got.Repetitions)
		}
		if got.IntervalDays != 1 {
			t.Errorf("quality %d: IntervalDays = %d, want 1", quality, got.IntervalDays)
		}
		if got.Streak != 0 {
			t.Errorf("quality %d: Streak = %d, want 0", quality, got.Streak)
		}
		if got.CorrectReviews != s.CorrectReviews {
			t.Errorf("quality %d: CorrectReviews = %d, want unchanged %d",
				quality, got.CorrectReviews, s.CorrectReviews)
		}
	}
}

func TestUpdate_EaseStaysInBounds(t *testing.T) {
	u := NewUpdater(DefaultParams())

	for quality := 0; quality <= 5; quality++ {
		for ease := 1.3; ease <= 4.0; ease += 0.1 {
			s := State{EaseFactor: ease, IntervalDays: 10, Repetitions: 3}
			got, _ := u.Update(s, quality, nil, testNow)
			if got.EaseFactor < 1.3 || got.EaseFactor > 4.0 {
				t.Fatalf("quality %d, ease %.2f: new ease %.4f out of [1.3, 4.0]",
					quality, ease, got.EaseFactor)
			}
		}
	}
}

func TestUpdate_IntervalNeverBelowOne(t *testing.T) {
	u := NewUpdater(DefaultParams())

	respTimes := []*float64{nil, ptr(0.1), ptr(100.0)}
	for quality := 0; quality <= 5; quality++ {
		for _, rt := range respTimes {
			s := State{EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0}
			got, _ := u.Update(s, quality, rt, testNow)
			if got.IntervalDays < 1 {
				t.Fatalf("quality %d: IntervalDays = %d, want >= 1", quality, got.IntervalDays)
			}
		}
	}
}

func TestUpdate_IntervalCappedAtMax(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{EaseFactor: 4.0, IntervalDays: 300, Repetitions: 8}

	got, _ := u.Update(s, 5, nil, testNow)
	if got.IntervalDays != 365 {
		t.Errorf("IntervalDays = %d, want capped at 365", got.IntervalDays)
	}
}

func TestUpdate_QualityClamped(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := NewState(DefaultParams())

	// Out-of-range quality is clamped, never rejected.
	got, _ := u.Update(s, 99, nil, testNow)
	if got.Streak != 1 || got.Repetitions != 1 {
		t.Errorf("quality 99 should clamp to 5: streak=%d reps=%d", got.Streak, got.Repetitions)
	}

	got, _ = u.Update(s, -3, nil, testNow)
	if got.Streak != 0 || got.IntervalDays != 1 {
		t.Errorf("quality -3 should clamp to 0: streak=%d interval=%d", got.Streak, got.IntervalDays)
	}
}

func TestUpdate_ResponseTimeAdjustment(t *testing.T) {
	// Quality 5 expects 2.0s. The multiplier bands, applied to a 10-day
	// interval grown from {ease=2.5, interval=4, reps=3}:
	// update first grows 4 -> floor(4*2.6) = 10, then scales.
	tests := []struct {
		name     string
		respTime float64
		want     int
	}{
		{"very fast", 0.9, 12}, // < 1.0s: x1.2
		{"fast", 1.5, 11},      // < 2.0s: x1.1
		{"expected", 2.0, 10},  // x1.0
		{"slow", 3.0, 9},       // > 2.0s: x0.9
		{"very slow", 5.0, 8},  // > 4.0s: x0.8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUpdater(DefaultParams())
			s := State{EaseFactor: 2.5, IntervalDays: 4, Repetitions: 3}
			got, _ := u.Update(s, 5, ptr(tt.respTime), testNow)
			if got.IntervalDays != tt.want {
				t.Errorf("respTime %.1fs: IntervalDays = %d, want %d",
					tt.respTime, got.IntervalDays, tt.want)
			}
		})
	}
}

func TestUpdate_StreakGrowth(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := NewState(DefaultParams())

	now := testNow
	for i := 1; i <= 4; i++ {
		s, _ = u.Update(s, 4, nil, now)
		if s.Streak != i {
			t.Fatalf("after %d correct reviews: Streak = %d, want %d", i, s.Streak, i)
		}
		now = now.AddDate(0, 0, s.IntervalDays)
	}

	s, _ = u.Update(s, 2, nil, now)
	if s.Streak != 0 {
		t.Errorf("after lapse: Streak = %d, want 0", s.Streak)
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2, Streak: 2}
	before := s

	u.Update(s, 5, ptr(1.0), testNow)

	if s != before {
		t.Error("Update mutated its input state")
	}
}

func TestEstimateRetention_NoReviews(t *testing.T) {
	u := NewUpdater(DefaultParams())
	got := u.EstimateRetention(State{}, testNow)
	if got != 0 {
		t.Errorf("retention for unreviewed card = %v, want 0", got)
	}
}

func TestEstimateRetention_JustReviewed(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{
		TotalReviews:   10,
		CorrectReviews: 8,
		Streak:         2,
		LastReview:     testNow,
	}

	// recency = 1, so retention = 0.8*(0.8 + 0.2) + 0.2 = 1.0... streak bonus 0.2.
	want := 0.8*1.0 + 0.2
	got := u.EstimateRetention(s, testNow)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("retention = %v, want %v", got, want)
	}
}

func TestEstimateRetention_DecaysWithTime(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{TotalReviews: 10, CorrectReviews: 8, LastReview: testNow}

	fresh := u.EstimateRetention(s, testNow)
	stale := u.EstimateRetention(s, testNow.AddDate(0, 0, 60))
	if stale >= fresh {
		t.Errorf("retention should decay: fresh=%v stale=%v", fresh, stale)
	}
}

func TestEstimateRetention_Clamped(t *testing.T) {
	u := NewUpdater(DefaultParams())
	s := State{
		TotalReviews:   10,
		CorrectReviews: 10,
		Streak:         50,
		LastReview:     testNow,
	}

	got := u.EstimateRetention(s, testNow)
	if got > 1.0 {
		t.Errorf("retention = %v, want <= 1.0", got)
	}
}

func TestDifficultyAdjustment(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.3},
		{2, 1.1},
		{3, 1.0},
		{4, 0.9},
		{5, 0.7},
		{0, 1.0},
		{9, 1.0},
	}

	for _, tt := range tests {
		if got := DifficultyAdjustment(tt.level); got != tt.want {
			t.Errorf("DifficultyAdjustment(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
