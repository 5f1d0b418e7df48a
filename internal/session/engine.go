// Package session drives one study run: plan which cards to show,
// grade each answer, advance the schedule, and record the results.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ankivoice/ankivoice/internal/grader"
	"github.com/ankivoice/ankivoice/internal/srs"
	"github.com/ankivoice/ankivoice/internal/store"
)

// QuestionSource is the slice of the card repository the engine needs.
type QuestionSource interface {
	QuestionsFor(ctx context.Context, cardID int) ([]*store.Question, error)
}

// AnswerGrader evaluates one answer.
type AnswerGrader interface {
	Grade(ctx context.Context, in grader.Input) (grader.Verdict, error)
}

// Item is one card queued for review, with the question chosen for
// this pass. Question is nil when the card has no generated questions;
// the card content itself is asked then.
type Item struct {
	Card     *store.Card
	Question *store.Question
	State    srs.State
}

// Prompt returns the text shown to the learner for this item.
func (it *Item) Prompt() string {
	if it.Question != nil {
		return it.Question.QuestionText
	}
	return "Recall this statement: " + it.Card.Content
}

// expectedAnswer is what the grader compares against.
func (it *Item) expectedAnswer() string {
	if it.Question != nil {
		return it.Question.AnswerText
	}
	return it.Card.Content
}

// Result reports what one answer did to the card's schedule.
type Result struct {
	Verdict    grader.Verdict
	Quality    int
	State      srs.State
	NextReview time.Time
}

// Session is one running study sitting.
type Session struct {
	ID        string
	Mode      string
	StartedAt time.Time
	Items     []Item

	index        int
	correct      int
	answered     int
	responseSum  float64
	responseSeen int
}

// Current returns the item up for review, or nil when the session is
// exhausted.
func (s *Session) Current() *Item {
	if s.index >= len(s.Items) {
		return nil
	}
	return &s.Items[s.index]
}

// Remaining returns how many items are left including the current one.
func (s *Session) Remaining() int {
	return len(s.Items) - s.index
}

// Answered returns how many items have been graded so far.
func (s *Session) Answered() int {
	return s.answered
}

// Engine wires the planner, grader, updater, and store together.
type Engine struct {
	questions QuestionSource
	progress  store.ProgressRepo
	sessions  store.SessionRepo
	grader    AnswerGrader
	updater   *srs.Updater
	planner   *srs.Planner
	params    srs.Params
	batchSize int
}

// Config collects the engine's collaborators.
type Config struct {
	Questions QuestionSource
	Progress  store.ProgressRepo
	Sessions  store.SessionRepo
	Grader    AnswerGrader
	Params    srs.Params

	// BatchSize caps cards per session; 0 means no cap.
	BatchSize int
}

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	u := srs.NewUpdater(cfg.Params)
	return &Engine{
		questions: cfg.Questions,
		progress:  cfg.Progress,
		sessions:  cfg.Sessions,
		grader:    cfg.Grader,
		updater:   u,
		planner:   srs.NewPlanner(u),
		params:    cfg.Params,
		batchSize: cfg.BatchSize,
	}
}

// Start plans a session from the cards due at now and records its
// beginning. Returns a session with no items when nothing is due.
func (e *Engine) Start(ctx context.Context, now time.Time) (*Session, error) {
	entries, err := e.progress.ActiveEntries(ctx, srs.NewState(e.params))
	if err != nil {
		return nil, fmt.Errorf("plan session: %w", err)
	}

	due := make([]srs.Entry, 0, len(entries))
	byID := make(map[int]store.CardEntry, len(entries))
	for _, entry := range entries {
		if entry.State.IsDue(now) {
			due = append(due, srs.Entry{CardID: entry.Card.ID, State: entry.State})
			byID[entry.Card.ID] = entry
		}
	}
	ranked := e.planner.Rank(due, now)
	if e.batchSize > 0 && len(ranked) > e.batchSize {
		ranked = ranked[:e.batchSize]
	}

	items := make([]Item, 0, len(ranked))
	for _, entry := range ranked {
		ce := byID[entry.CardID]
		q, err := e.pickQuestion(ctx, ce)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Card: ce.Card, Question: q, State: ce.State})
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Mode:      "review",
		StartedAt: now,
		Items:     items,
	}
	err = e.sessions.Start(ctx, store.SessionRecord{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		StartedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// pickQuestion rotates through a card's questions by review count so
// repeated sittings see different phrasings.
func (e *Engine) pickQuestion(ctx context.Context, ce store.CardEntry) (*store.Question, error) {
	qs, err := e.questions.QuestionsFor(ctx, ce.Card.ID)
	if err != nil {
		return nil, fmt.Errorf("questions for card %d: %w", ce.Card.ID, err)
	}
	if len(qs) == 0 {
		return nil, nil
	}
	return qs[ce.State.TotalReviews%len(qs)], nil
}

// Submit grades the current item's answer, advances the card's
// schedule, logs the review, and moves to the next item.
func (e *Engine) Submit(ctx context.Context, sess *Session, answer string, responseSeconds float64, now time.Time) (*Result, error) {
	item := sess.Current()
	if item == nil {
		return nil, fmt.Errorf("session %s: no item to answer", sess.ID)
	}

	verdict, err := e.grader.Grade(ctx, grader.Input{
		Question:       item.Prompt(),
		ExpectedAnswer: item.expectedAnswer(),
		UserAnswer:     answer,
		Context:        item.Card.Content,
	})
	if err != nil {
		return nil, err
	}

	var rt *float64
	if responseSeconds > 0 {
		rt = &responseSeconds
	}
	quality := srs.MapQuality(verdict.IsCorrect, verdict.Confidence, rt)
	newState, nextReview := e.updater.Update(item.State, quality, rt, now)

	if err := e.progress.Save(ctx, item.Card.ID, newState); err != nil {
		return nil, err
	}

	rec := store.ReviewRecord{
		SessionID:       sess.ID,
		CardID:          item.Card.ID,
		UserAnswer:      answer,
		Correct:         verdict.IsCorrect,
		Confidence:      verdict.Confidence,
		ResponseSeconds: responseSeconds,
		Quality:         quality,
		Feedback:        verdict.Feedback,
		ReviewedAt:      now,
	}
	if item.Question != nil {
		rec.QuestionID = item.Question.ID
	}
	if err := e.sessions.AppendReview(ctx, rec); err != nil {
		return nil, err
	}

	sess.answered++
	if verdict.IsCorrect {
		sess.correct++
	}
	if responseSeconds > 0 {
		sess.responseSum += responseSeconds
		sess.responseSeen++
	}
	sess.index++

	return &Result{
		Verdict:    verdict,
		Quality:    quality,
		State:      newState,
		NextReview: nextReview,
	}, nil
}

// Finish closes the session record and returns the summary. Completed
// is true when every planned item was answered.
func (e *Engine) Finish(ctx context.Context, sess *Session, now time.Time) (*Summary, error) {
	summary := buildSummary(sess, now)

	err := e.sessions.Finish(ctx, store.SessionRecord{
		SessionID:      sess.ID,
		Mode:           sess.Mode,
		StartedAt:      sess.StartedAt,
		EndedAt:        now,
		CardsReviewed:  summary.CardsReviewed,
		CorrectAnswers: summary.Correct,
		AvgResponseSec: summary.AvgResponseSec,
		Completed:      summary.Completed,
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
