package session

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ankivoice/ankivoice/internal/grader"
	"github.com/ankivoice/ankivoice/internal/srs"
	"github.com/ankivoice/ankivoice/internal/store"
)

// stubGrader replays canned verdicts and records what it saw.
type stubGrader struct {
	verdicts []grader.Verdict
	inputs   []grader.Input
}

func (g *stubGrader) Grade(_ context.Context, in grader.Input) (grader.Verdict, error) {
	g.inputs = append(g.inputs, in)
	if len(g.verdicts) == 0 {
		return grader.Verdict{}, fmt.Errorf("stub grader: no verdicts left")
	}
	v := g.verdicts[0]
	g.verdicts = g.verdicts[1:]
	return v, nil
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestEngine(t *testing.T, s *store.Store, g AnswerGrader, batchSize int) *Engine {
	t.Helper()
	return NewEngine(Config{
		Questions: s.Cards(),
		Progress:  s.Progress(),
		Sessions:  s.Sessions(),
		Grader:    g,
		Params:    srs.DefaultParams(),
		BatchSize: batchSize,
	})
}

func addCard(t *testing.T, s *store.Store, content string) int {
	t.Helper()
	id, err := s.Cards().Create(context.Background(), store.Card{Content: content})
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	return id
}

func saveState(t *testing.T, s *store.Store, cardID int, st srs.State) {
	t.Helper()
	if err := s.Progress().Save(context.Background(), cardID, st); err != nil {
		t.Fatalf("save state: %v", err)
	}
}

func TestStartPlansOnlyDueCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	due := addCard(t, s, "due card")
	saveState(t, s, due, srs.State{
		EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
		TotalReviews: 2, CorrectReviews: 2, Streak: 2,
		LastReview: now.AddDate(0, 0, -8), NextReview: now.AddDate(0, 0, -2),
	})

	future := addCard(t, s, "future card")
	saveState(t, s, future, srs.State{
		EaseFactor: 2.5, IntervalDays: 15, Repetitions: 3,
		TotalReviews: 3, CorrectReviews: 3, Streak: 3,
		LastReview: now.AddDate(0, 0, -5), NextReview: now.AddDate(0, 0, 10),
	})

	fresh := addCard(t, s, "never studied")

	e := newTestEngine(t, s, &stubGrader{}, 0)
	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if len(sess.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(sess.Items))
	}
	got := map[int]bool{}
	for _, item := range sess.Items {
		got[item.Card.ID] = true
	}
	if !got[due] || !got[fresh] {
		t.Errorf("planned cards = %v, want due %d and fresh %d", got, due, fresh)
	}
	if got[future] {
		t.Error("future card should not be planned")
	}
}

func TestStartRanksMostOverdueFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Same history, different overdue depth.
	slightly := addCard(t, s, "slightly overdue")
	saveState(t, s, slightly, srs.State{
		EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
		TotalReviews: 4, CorrectReviews: 3, Streak: 1,
		LastReview: now.AddDate(0, 0, -30), NextReview: now.AddDate(0, 0, -1),
	})
	badly := addCard(t, s, "badly overdue")
	saveState(t, s, badly, srs.State{
		EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
		TotalReviews: 4, CorrectReviews: 3, Streak: 1,
		LastReview: now.AddDate(0, 0, -30), NextReview: now.AddDate(0, 0, -7),
	})

	e := newTestEngine(t, s, &stubGrader{}, 0)
	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(sess.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(sess.Items))
	}
	if sess.Items[0].Card.ID != badly {
		t.Errorf("first item = card %d, want %d", sess.Items[0].Card.ID, badly)
	}
}

func TestStartHonorsBatchSize(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		addCard(t, s, fmt.Sprintf("card %d", i))
	}

	e := newTestEngine(t, s, &stubGrader{}, 2)
	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(sess.Items) != 2 {
		t.Errorf("items = %d, want 2", len(sess.Items))
	}
}

func TestStartRecordsSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	addCard(t, s, "a card")
	e := newTestEngine(t, s, &stubGrader{}, 0)
	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("session id should not be empty")
	}

	recent, err := s.Sessions().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].SessionID != sess.ID {
		t.Errorf("recorded sessions = %+v", recent)
	}
	if recent[0].Mode != "review" {
		t.Errorf("mode = %q, want review", recent[0].Mode)
	}
}

func TestSubmitCorrectAnswerAdvancesSchedule(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	id := addCard(t, s, "the krebs cycle produces ATP")
	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.95, Feedback: "solid"},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := e.Submit(ctx, sess, "it makes ATP", 4.0, now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Correct, confident, expected pace: quality 5.
	if res.Quality != 5 {
		t.Errorf("quality = %d, want 5", res.Quality)
	}
	if res.State.Repetitions != 1 || res.State.Streak != 1 {
		t.Errorf("state = %+v", res.State)
	}
	if !res.NextReview.After(now) {
		t.Error("next review should be in the future")
	}

	// Progress persisted.
	st, err := s.Progress().GetOrDefault(ctx, id, srs.NewState(srs.DefaultParams()))
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.TotalReviews != 1 || st.CorrectReviews != 1 {
		t.Errorf("persisted state = %+v", st)
	}

	// Review logged.
	logs, err := s.Sessions().ReviewsSince(ctx, now.Add(-time.Minute))
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(logs))
	}
	if logs[0].CardID != id || !logs[0].Correct || logs[0].Quality != 5 {
		t.Errorf("log = %+v", logs[0])
	}
	if logs[0].SessionID != sess.ID {
		t.Errorf("log session = %q, want %q", logs[0].SessionID, sess.ID)
	}
}

func TestSubmitIncorrectAnswerLapses(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	id := addCard(t, s, "mitochondria make ATP")
	saveState(t, s, id, srs.State{
		EaseFactor: 2.5, IntervalDays: 15, Repetitions: 3,
		TotalReviews: 3, CorrectReviews: 3, Streak: 3,
		LastReview: now.AddDate(0, 0, -16), NextReview: now.AddDate(0, 0, -1),
	})

	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: false, Confidence: 0.9, Feedback: "that is respiration"},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := e.Submit(ctx, sess, "cells split glucose", 5.0, now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Incorrect at 0.9 confidence maps to quality 2: a lapse.
	if res.Quality != 2 {
		t.Errorf("quality = %d, want 2", res.Quality)
	}
	if res.State.Repetitions != 0 || res.State.Streak != 0 {
		t.Errorf("state after lapse = %+v", res.State)
	}
	if res.State.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", res.State.IntervalDays)
	}
}

func TestSubmitUsesGeneratedQuestion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	id := addCard(t, s, "photosynthesis fixes carbon")
	_, err := s.Cards().AddQuestion(ctx, store.Question{
		CardID:       id,
		QuestionText: "What process fixes carbon in plants?",
		AnswerText:   "Photosynthesis",
	})
	if err != nil {
		t.Fatalf("add question: %v", err)
	}

	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.9},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	item := sess.Current()
	if item.Question == nil {
		t.Fatal("expected a generated question on the item")
	}
	if item.Prompt() != "What process fixes carbon in plants?" {
		t.Errorf("prompt = %q", item.Prompt())
	}

	if _, err := e.Submit(ctx, sess, "photosynthesis", 3.0, now); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Grader saw the question's expected answer and the card as context.
	in := g.inputs[0]
	if in.ExpectedAnswer != "Photosynthesis" {
		t.Errorf("expected answer = %q", in.ExpectedAnswer)
	}
	if in.Context != "photosynthesis fixes carbon" {
		t.Errorf("context = %q", in.Context)
	}

	// Review log carries the question id.
	logs, err := s.Sessions().ReviewsSince(ctx, now.Add(-time.Minute))
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if logs[0].QuestionID == 0 {
		t.Error("review log missing question id")
	}
}

func TestSubmitWithoutQuestionsAsksCardContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	addCard(t, s, "entropy never decreases in a closed system")
	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.9},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	item := sess.Current()
	if item.Question != nil {
		t.Fatal("expected no generated question")
	}
	if !strings.Contains(item.Prompt(), "entropy never decreases") {
		t.Errorf("prompt = %q", item.Prompt())
	}
}

func TestSubmitAfterLastItemErrors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	addCard(t, s, "only card")
	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.9},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Submit(ctx, sess, "an answer", 2.0, now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sess.Current() != nil {
		t.Fatal("session should be exhausted")
	}
	if _, err := e.Submit(ctx, sess, "again", 2.0, now); err == nil {
		t.Fatal("expected error submitting past the end")
	}
}

func TestFinishWritesSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	addCard(t, s, "card one")
	addCard(t, s, "card two")
	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.9},
		{IsCorrect: false, Confidence: 0.9},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Submit(ctx, sess, "right", 4.0, now); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if _, err := e.Submit(ctx, sess, "wrong", 8.0, now); err != nil {
		t.Fatalf("submit 2: %v", err)
	}

	end := now.Add(3 * time.Minute)
	summary, err := e.Finish(ctx, sess, end)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if summary.CardsReviewed != 2 || summary.Correct != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", summary.Accuracy)
	}
	if summary.AvgResponseSec != 6.0 {
		t.Errorf("avg response = %v, want 6.0", summary.AvgResponseSec)
	}
	if !summary.Completed {
		t.Error("summary should be completed")
	}
	if summary.Duration != 3*time.Minute {
		t.Errorf("duration = %v", summary.Duration)
	}

	recent, err := s.Sessions().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !recent[0].Completed || recent[0].CardsReviewed != 2 {
		t.Errorf("stored record = %+v", recent[0])
	}
}

func TestFinishPartialSessionNotCompleted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	addCard(t, s, "card one")
	addCard(t, s, "card two")
	g := &stubGrader{verdicts: []grader.Verdict{
		{IsCorrect: true, Confidence: 0.9},
	}}
	e := newTestEngine(t, s, g, 0)

	sess, err := e.Start(ctx, now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Submit(ctx, sess, "only one", 3.0, now); err != nil {
		t.Fatalf("submit: %v", err)
	}

	summary, err := e.Finish(ctx, sess, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if summary.Completed {
		t.Error("partial session should not be completed")
	}
	if summary.CardsReviewed != 1 {
		t.Errorf("cards reviewed = %d, want 1", summary.CardsReviewed)
	}
}
