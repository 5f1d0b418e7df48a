package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ankivoice/ankivoice/ent"
	entreviewlog "github.com/ankivoice/ankivoice/ent/reviewlog"
	entsession "github.com/ankivoice/ankivoice/ent/studysession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, rec SessionRecord) error {
	_, err := r.client.StudySession.Create().
		SetSessionID(rec.SessionID).
		SetMode(rec.Mode).
		SetStartedAt(rec.StartedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("start session %s: %w", rec.SessionID, err)
	}
	return nil
}

func (r *sessionRepo) Finish(ctx context.Context, rec SessionRecord) error {
	n, err := r.client.StudySession.Update().
		Where(entsession.SessionID(rec.SessionID)).
		SetEndedAt(rec.EndedAt).
		SetCardsReviewed(rec.CardsReviewed).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetAvgResponseSeconds(rec.AvgResponseSec).
		SetCompleted(rec.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finish session %s: %w", rec.SessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("finish session %s: not found", rec.SessionID)
	}
	return nil
}

func (r *sessionRepo) AppendReview(ctx context.Context, rec ReviewRecord) error {
	create := r.client.ReviewLog.Create().
		SetSessionID(rec.SessionID).
		SetCardID(rec.CardID).
		SetUserAnswer(rec.UserAnswer).
		SetCorrect(rec.Correct).
		SetConfidence(rec.Confidence).
		SetResponseSeconds(rec.ResponseSeconds).
		SetQuality(rec.Quality).
		SetFeedback(rec.Feedback).
		SetReviewedAt(rec.ReviewedAt)
	if rec.QuestionID > 0 {
		create = create.SetQuestionID(rec.QuestionID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append review log: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.StudySession.Query().
		Order(ent.Desc(entsession.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	sessions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}

	out := make([]SessionRecord, len(sessions))
	for i, s := range sessions {
		out[i] = SessionRecord{
			SessionID:      s.SessionID,
			Mode:           s.Mode,
			StartedAt:      s.StartedAt,
			EndedAt:        s.EndedAt,
			CardsReviewed:  s.CardsReviewed,
			CorrectAnswers: s.CorrectAnswers,
			AvgResponseSec: s.AvgResponseSeconds,
			Completed:      s.Completed,
		}
	}
	return out, nil
}

func (r *sessionRepo) ReviewsSince(ctx context.Context, cutoff time.Time) ([]ReviewRecord, error) {
	logs, err := r.client.ReviewLog.Query().
		Where(entreviewlog.ReviewedAtGTE(cutoff)).
		Order(ent.Asc(entreviewlog.FieldReviewedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reviews since %s: %w", cutoff, err)
	}

	out := make([]ReviewRecord, len(logs))
	for i, l := range logs {
		out[i] = ReviewRecord{
			SessionID:       l.SessionID,
			CardID:          l.CardID,
			QuestionID:      l.QuestionID,
			UserAnswer:      l.UserAnswer,
			Correct:         l.Correct,
			Confidence:      l.Confidence,
			ResponseSeconds: l.ResponseSeconds,
			Quality:         l.Quality,
			Feedback:        l.Feedback,
			ReviewedAt:      l.ReviewedAt,
		}
	}
	return out, nil
}
