package srs

import (
	"math"
	"time"
)

// Params are the scheduling tunables. Zero values are replaced with the
// documented defaults, so an empty Params is safe to use.
type Params struct {
	InitialInterval    int     // days before the first review (default 1)
	EaseMin            float64 // lower ease factor bound (default 1.3)
	EaseMax            float64 // upper ease factor bound (default 4.0)
	EaseDefault        float64 // ease factor for new cards (default 2.5)
	IntervalMultiplier float64 // informational; growth is ease-driven (default 2.5)
	MaxInterval        int     // interval ceiling in days (default 365)
}

// DefaultParams returns the standard SM-2 tunables.
func DefaultParams() Params {
	return Params{
		InitialInterval:    1,
		EaseMin:            1.3,
		EaseMax:            4.0,
		EaseDefault:        2.5,
		IntervalMultiplier: 2.5,
		MaxInterval:        365,
	}
}

// normalized fills unset fields with defaults.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.InitialInterval <= 0 {
		p.InitialInterval = d.InitialInterval
	}
	if p.EaseMin <= 0 {
		p.EaseMin = d.EaseMin
	}
	if p.EaseMax <= 0 {
		p.EaseMax = d.EaseMax
	}
	if p.EaseDefault <= 0 {
		p.EaseDefault = d.EaseDefault
	}
	if p.IntervalMultiplier <= 0 {
		p.IntervalMultiplier = d.IntervalMultiplier
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = d.MaxInterval
	}
	return p
}

// Updater applies review outcomes to card state. All operations are pure:
// time is an explicit argument and the input state is never mutated.
type Updater struct {
	params Params
}

// NewUpdater creates an Updater with the given tunables.
func NewUpdater(p Params) *Updater {
	return &Updater{params: p.normalized()}
}

// expectedResponseTimes maps a quality level to the response time (seconds)
// a learner at that level is expected to need.
var expectedResponseTimes = map[int]float64{
	5: 2.0,
	4: 4.0,
	3: 8.0,
	2: 15.0,
	1: 20.0,
	0: 30.0,
}

// MapQuality converts a grading verdict into an SM-2 quality score (0-5).
//
// Incorrect answers score 0-2 by how close the grader judged them:
// below 0.3 confidence is a blackout, below 0.6 shows partial recall.
// Correct answers start at 3 and earn bonuses for confidence (>=0.9: +2,
// >=0.8: +1) and speed (<=3s: +1, <=6s: 0, slower: -1); the result is
// clamped so a correct answer never scores below 3.
func MapQuality(correct bool, confidence float64, responseTime *float64) int {
	if !correct {
		switch {
		case confidence < 0.3:
			return 0
		case confidence < 0.6:
			return 1
		default:
			return 2
		}
	}

	quality := 3
	switch {
	case confidence >= 0.9:
		quality += 2
	case confidence >= 0.8:
		quality++
	}

	if responseTime != nil {
		switch {
		case *responseTime <= 3.0:
			quality++
		case *responseTime <= 6.0:
			// expected pace, no adjustment
		default:
			quality--
		}
	}

	return clampInt(quality, 3, 5)
}

// Update applies one review outcome and returns the new state together
// with the next review time. It never fails: out-of-range inputs are
// clamped, not rejected.
func (u *Updater) Update(s State, quality int, responseTime *float64, now time.Time) (State, time.Time) {
	quality = clampInt(quality, 0, 5)

	s.TotalReviews++
	s.LastReview = now

	if quality >= 3 {
		s.CorrectReviews++
		s.Streak++
	} else {
		s.Streak = 0
	}

	s.EaseFactor = u.nextEase(s.EaseFactor, quality)

	if quality < 3 {
		// Lapse: scheduling starts over, ease keeps the penalty.
		s.Repetitions = 0
		s.IntervalDays = 1
	} else {
		s.Repetitions++
		switch s.Repetitions {
		case 1:
			s.IntervalDays = u.params.InitialInterval
		case 2:
			s.IntervalDays = 6
		default:
			grown := int(float64(s.IntervalDays) * s.EaseFactor)
			s.IntervalDays = min(grown, u.params.MaxInterval)
		}
	}

	if responseTime != nil {
		s.IntervalDays = u.adjustForResponseTime(s.IntervalDays, *responseTime, quality)
	}

	s.NextReview = s.LastReview.AddDate(0, 0, s.IntervalDays)
	return s, s.NextReview
}

// nextEase applies the SM-2 ease update and clamps to the configured bounds.
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
func (u *Updater) nextEase(ease float64, quality int) float64 {
	q := float64(quality)
	next := ease + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	return math.Min(u.params.EaseMax, math.Max(u.params.EaseMin, next))
}

// adjustForResponseTime scales the interval by how the actual response
// time compares to the expected time for the achieved quality. A fast
// answer means the card is easier than the score suggests; a slow one
// means it is still shaky.
func (u *Updater) adjustForResponseTime(intervalDays int, responseTime float64, quality int) int {
	expected, ok := expectedResponseTimes[quality]
	if !ok {
		expected = 8.0
	}

	var factor float64
	switch {
	case responseTime < expected*0.5:
		factor = 1.2
	case responseTime < expected:
		factor = 1.1
	case responseTime > expected*2:
		factor = 0.8
	case responseTime > expected:
		factor = 0.9
	default:
		factor = 1.0
	}

	adjusted := int(float64(intervalDays) * factor)
	return clampInt(adjusted, 1, u.params.MaxInterval)
}

// EstimateRetention estimates how likely the learner is to still recall
// the card at now, in [0,1]. It combines lifetime accuracy, a 30-day
// recency decay, and a streak bonus capped at 0.2. The estimate is a
// ranking signal only and is never persisted or used for scheduling.
func (u *Updater) EstimateRetention(s State, now time.Time) float64 {
	if s.TotalReviews == 0 {
		return 0
	}

	baseRate := s.Accuracy()

	recency := 0.0
	if !s.LastReview.IsZero() {
		daysSince := now.Sub(s.LastReview).Hours() / 24.0
		recency = math.Exp(-daysSince / 30.0)
	}

	streakBonus := math.Min(float64(s.Streak)/10.0, 0.2)

	retention := baseRate*(0.8+0.2*recency) + streakBonus
	return math.Min(1.0, math.Max(0.0, retention))
}

// DifficultyAdjustment returns an interval scale factor for a learner's
// own 1-5 difficulty rating of a card (1 = very easy, 5 = very hard).
// Unknown levels get no adjustment.
func DifficultyAdjustment(level int) float64 {
	switch level {
	case 1:
		return 1.3
	case 2:
		return 1.1
	case 3:
		return 1.0
	case 4:
		return 0.9
	case 5:
		return 0.7
	default:
		return 1.0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
