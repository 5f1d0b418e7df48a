package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ankivoice/ankivoice/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// Each test gets its own named in-memory database so data never
	// bleeds between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCardCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	cards := s.Cards()
	ctx := context.Background()

	id, err := cards.Create(ctx, Card{
		Content: "The mitochondria is the powerhouse of the cell",
		Tags:    []string{"biology"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	c, err := cards.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil {
		t.Fatal("expected card, got nil")
	}
	if c.Content != "The mitochondria is the powerhouse of the cell" {
		t.Errorf("content = %q", c.Content)
	}
	if c.Difficulty != 3 {
		t.Errorf("default difficulty = %d, want 3", c.Difficulty)
	}
	if !c.Active {
		t.Error("new card should be active")
	}
	if len(c.Tags) != 1 || c.Tags[0] != "biology" {
		t.Errorf("tags = %v", c.Tags)
	}
}

func TestCardGetMissing(t *testing.T) {
	s := openTestStore(t)

	c, err := s.Cards().Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil for missing card")
	}
}

func TestCardListFiltersInactive(t *testing.T) {
	s := openTestStore(t)
	cards := s.Cards()
	ctx := context.Background()

	var ids []int
	for i := 0; i < 3; i++ {
		id, err := cards.Create(ctx, Card{Content: fmt.Sprintf("card %d", i)})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	if err := cards.Deactivate(ctx, ids[1]); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := cards.List(ctx, false, 0, 0)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("active cards = %d, want 2", len(active))
	}

	all, err := cards.List(ctx, true, 0, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all cards = %d, want 3", len(all))
	}
}

func TestCardDeleteRemovesQuestions(t *testing.T) {
	s := openTestStore(t)
	cards := s.Cards()
	ctx := context.Background()

	id, err := cards.Create(ctx, Card{Content: "doomed card"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = cards.AddQuestion(ctx, Question{
		CardID:       id,
		QuestionText: "What is doomed?",
		AnswerText:   "this card",
	})
	if err != nil {
		t.Fatalf("add question: %v", err)
	}

	if err := cards.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	c, err := cards.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if c != nil {
		t.Fatal("card should be gone")
	}

	count, err := s.Client().Question.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if count != 0 {
		t.Errorf("remaining questions = %d, want 0", count)
	}
}

func TestQuestionsForAndWithoutQuestions(t *testing.T) {
	s := openTestStore(t)
	cards := s.Cards()
	ctx := context.Background()

	withQ, err := cards.Create(ctx, Card{Content: "has questions"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	bare, err := cards.Create(ctx, Card{Content: "no questions yet"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		_, err := cards.AddQuestion(ctx, Question{
			CardID:       withQ,
			QuestionText: fmt.Sprintf("q%d", i),
			AnswerText:   "a",
			GeneratedBy:  "mock",
		})
		if err != nil {
			t.Fatalf("add question %d: %v", i, err)
		}
	}

	qs, err := cards.QuestionsFor(ctx, withQ)
	if err != nil {
		t.Fatalf("questions for: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].Type != "standard" {
		t.Errorf("default type = %q, want standard", qs[0].Type)
	}

	missing, err := cards.WithoutQuestions(ctx)
	if err != nil {
		t.Fatalf("without questions: %v", err)
	}
	if len(missing) != 1 || missing[0].ID != bare {
		t.Errorf("cards without questions = %v, want [%d]", missing, bare)
	}
}

func TestProgressGetOrDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Cards().Create(ctx, Card{Content: "fresh card"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	def := srs.NewState(srs.DefaultParams())
	state, err := s.Progress().GetOrDefault(ctx, id, def)
	if err != nil {
		t.Fatalf("get or default: %v", err)
	}
	if state != def {
		t.Errorf("state = %+v, want default %+v", state, def)
	}
}

func TestProgressSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Cards().Create(ctx, Card{Content: "studied card"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	want := srs.State{
		EaseFactor:     2.36,
		IntervalDays:   6,
		Repetitions:    2,
		TotalReviews:   5,
		CorrectReviews: 4,
		Streak:         2,
		LastReview:     now,
		NextReview:     now.AddDate(0, 0, 6),
	}
	if err := s.Progress().Save(ctx, id, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Progress().GetOrDefault(ctx, id, srs.NewState(srs.DefaultParams()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.EaseFactor != want.EaseFactor {
		t.Errorf("ease = %v, want %v", got.EaseFactor, want.EaseFactor)
	}
	if got.IntervalDays != want.IntervalDays {
		t.Errorf("interval = %d, want %d", got.IntervalDays, want.IntervalDays)
	}
	if !got.LastReview.Equal(want.LastReview) {
		t.Errorf("last review = %v, want %v", got.LastReview, want.LastReview)
	}
	if !got.NextReview.Equal(want.NextReview) {
		t.Errorf("next review = %v, want %v", got.NextReview, want.NextReview)
	}

	// Save again with updated values; must update, not duplicate.
	want.TotalReviews = 6
	if err := s.Progress().Save(ctx, id, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
	got, err = s.Progress().GetOrDefault(ctx, id, srs.NewState(srs.DefaultParams()))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.TotalReviews != 6 {
		t.Errorf("total reviews = %d, want 6", got.TotalReviews)
	}
}

func TestProgressCorruptStateSurfaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Cards().Create(ctx, Card{Content: "corrupt card"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// correct > total violates the state invariant; write it behind the
	// repo's back via the ent client.
	_, err = s.Client().Progress.Create().
		SetCardID(id).
		SetEaseFactor(2.5).
		SetIntervalDays(1).
		SetTotalReviews(1).
		SetCorrectReviews(5).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	_, err = s.Progress().GetOrDefault(ctx, id, srs.NewState(srs.DefaultParams()))
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("err = %v, want ErrCorruptState", err)
	}
}

func TestActiveEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	studied, err := s.Cards().Create(ctx, Card{Content: "studied"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	fresh, err := s.Cards().Create(ctx, Card{Content: "fresh"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive, err := s.Cards().Create(ctx, Card{Content: "retired"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Cards().Deactivate(ctx, inactive); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	saved := srs.State{
		EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
		TotalReviews: 2, CorrectReviews: 2, Streak: 2,
		LastReview: now.AddDate(0, 0, -6), NextReview: now,
	}
	if err := s.Progress().Save(ctx, studied, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	def := srs.NewState(srs.DefaultParams())
	entries, err := s.Progress().ActiveEntries(ctx, def)
	if err != nil {
		t.Fatalf("active entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	byID := map[int]CardEntry{}
	for _, e := range entries {
		byID[e.Card.ID] = e
	}
	if byID[studied].State.Repetitions != 2 {
		t.Errorf("studied repetitions = %d, want 2", byID[studied].State.Repetitions)
	}
	if byID[fresh].State != def {
		t.Errorf("fresh card state = %+v, want default", byID[fresh].State)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	sessions := s.Sessions()
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	rec := SessionRecord{
		SessionID: "sess-1",
		Mode:      "review",
		StartedAt: start,
	}
	if err := sessions.Start(ctx, rec); err != nil {
		t.Fatalf("start: %v", err)
	}

	rec.EndedAt = start.Add(5 * time.Minute)
	rec.CardsReviewed = 4
	rec.CorrectAnswers = 3
	rec.AvgResponseSec = 6.5
	rec.Completed = true
	if err := sessions.Finish(ctx, rec); err != nil {
		t.Fatalf("finish: %v", err)
	}

	recent, err := sessions.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("recent = %d, want 1", len(recent))
	}
	got := recent[0]
	if got.SessionID != "sess-1" || got.CardsReviewed != 4 || !got.Completed {
		t.Errorf("record = %+v", got)
	}
	if got.AvgResponseSec != 6.5 {
		t.Errorf("avg response = %v, want 6.5", got.AvgResponseSec)
	}
}

func TestFinishUnknownSession(t *testing.T) {
	s := openTestStore(t)

	err := s.Sessions().Finish(context.Background(), SessionRecord{SessionID: "ghost"})
	if err == nil {
		t.Fatal("expected error finishing unknown session")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	sessions := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := sessions.Start(ctx, SessionRecord{
			SessionID: fmt.Sprintf("sess-%d", i),
			Mode:      "review",
			StartedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
	}

	recent, err := sessions.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	if recent[0].SessionID != "sess-2" || recent[1].SessionID != "sess-1" {
		t.Errorf("order = %s, %s", recent[0].SessionID, recent[1].SessionID)
	}
}

func TestReviewsSince(t *testing.T) {
	s := openTestStore(t)
	sessions := s.Sessions()
	ctx := context.Background()

	id, err := s.Cards().Create(ctx, Card{Content: "logged card"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	old := ReviewRecord{
		SessionID: "sess-old", CardID: id, UserAnswer: "stale",
		Correct: false, Confidence: 0.8, Quality: 1,
		ReviewedAt: now.AddDate(0, 0, -10),
	}
	fresh := ReviewRecord{
		SessionID: "sess-new", CardID: id, UserAnswer: "fresh",
		Correct: true, Confidence: 0.9, ResponseSeconds: 4.2, Quality: 4,
		Feedback:   "good recall",
		ReviewedAt: now,
	}
	for _, rec := range []ReviewRecord{old, fresh} {
		if err := sessions.AppendReview(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := sessions.ReviewsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("reviews since: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("reviews = %d, want 1", len(got))
	}
	if got[0].UserAnswer != "fresh" || got[0].Quality != 4 {
		t.Errorf("review = %+v", got[0])
	}
	if got[0].ResponseSeconds != 4.2 {
		t.Errorf("response seconds = %v, want 4.2", got[0].ResponseSeconds)
	}
}

func TestLLMEventsRecordAndQuery(t *testing.T) {
	s := openTestStore(t)
	events := s.LLMEvents()
	ctx := context.Background()

	data := []LLMEventData{
		{Provider: "mock", Model: "mock-1", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 120, Success: true},
		{Provider: "mock", Model: "mock-1", Purpose: "question-gen", InputTokens: 90, OutputTokens: 40, LatencyMs: 80, Success: true},
		{Provider: "mock", Model: "mock-1", Purpose: "evaluation", InputTokens: 60, OutputTokens: 20, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for i, d := range data {
		if err := events.AppendLLMEvent(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := events.Query(ctx, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("events = %d, want 3", len(recs))
	}

	usage, err := events.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("purposes = %d, want 2", len(usage))
	}
	// Sorted by purpose: evaluation, question-gen.
	if usage[0].Purpose != "evaluation" || usage[0].Failures != 1 {
		t.Errorf("evaluation = %+v", usage[0])
	}
	if usage[1].Purpose != "question-gen" || usage[1].Requests != 2 {
		t.Errorf("question-gen = %+v", usage[1])
	}
	if usage[1].InputTokens != 190 || usage[1].OutputTokens != 90 {
		t.Errorf("question-gen tokens = %d/%d, want 190/90",
			usage[1].InputTokens, usage[1].OutputTokens)
	}
}

func TestOverview(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	def := srs.NewState(srs.DefaultParams())

	if _, err := s.Cards().Create(ctx, Card{Content: "never studied"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	learning, err := s.Cards().Create(ctx, Card{Content: "learning"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Progress().Save(ctx, learning, srs.State{
		EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1,
		TotalReviews: 1, CorrectReviews: 1, Streak: 1,
		LastReview: now.AddDate(0, 0, -3), NextReview: now.AddDate(0, 0, -2),
	}); err != nil {
		t.Fatalf("save learning: %v", err)
	}

	reviewing, err := s.Cards().Create(ctx, Card{Content: "reviewing"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Progress().Save(ctx, reviewing, srs.State{
		EaseFactor: 2.7, IntervalDays: 15, Repetitions: 3,
		TotalReviews: 3, CorrectReviews: 3, Streak: 3,
		LastReview: now.AddDate(0, 0, -5), NextReview: now.AddDate(0, 0, 10),
	}); err != nil {
		t.Fatalf("save reviewing: %v", err)
	}

	if err := s.Sessions().AppendReview(ctx, ReviewRecord{
		SessionID: "sess", CardID: learning, UserAnswer: "yes",
		Correct: true, Confidence: 0.9, Quality: 4, ReviewedAt: now.AddDate(0, 0, -1),
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}
	if err := s.Sessions().AppendReview(ctx, ReviewRecord{
		SessionID: "sess", CardID: learning, UserAnswer: "no",
		Correct: false, Confidence: 0.9, Quality: 1, ReviewedAt: now.AddDate(0, 0, -1),
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}

	o, err := s.Overview(ctx, def, now)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if o.TotalCards != 3 {
		t.Errorf("total = %d, want 3", o.TotalCards)
	}
	if o.NewCards != 1 || o.LearningCards != 1 || o.ReviewingCards != 1 {
		t.Errorf("phases = %d/%d/%d, want 1/1/1",
			o.NewCards, o.LearningCards, o.ReviewingCards)
	}
	// The never-studied card counts as due (no schedule yet) but not
	// overdue; the learning card is both.
	if o.DueCards != 2 || o.OverdueCards != 1 {
		t.Errorf("due/overdue = %d/%d, want 2/1", o.DueCards, o.OverdueCards)
	}
	if o.RecentReviews != 2 {
		t.Errorf("recent reviews = %d, want 2", o.RecentReviews)
	}
	if o.RecentAccuracy != 0.5 {
		t.Errorf("recent accuracy = %v, want 0.5", o.RecentAccuracy)
	}
}
