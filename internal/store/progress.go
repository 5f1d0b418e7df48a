package store

import (
	"context"
	"fmt"

	"github.com/ankivoice/ankivoice/ent"
	entcard "github.com/ankivoice/ankivoice/ent/card"
	entprogress "github.com/ankivoice/ankivoice/ent/progress"
	"github.com/ankivoice/ankivoice/internal/srs"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) GetOrDefault(ctx context.Context, cardID int, def srs.State) (srs.State, error) {
	p, err := r.client.Progress.Query().
		Where(entprogress.HasCardWith(entcard.IDEQ(cardID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return def, nil
		}
		return srs.State{}, fmt.Errorf("load progress for card %d: %w", cardID, err)
	}

	state := entProgressToState(p)
	if !state.Valid() {
		return srs.State{}, fmt.Errorf("card %d: %w", cardID, ErrCorruptState)
	}
	return state, nil
}

func (r *progressRepo) Save(ctx context.Context, cardID int, s srs.State) error {
	existing, err := r.client.Progress.Query().
		Where(entprogress.HasCardWith(entcard.IDEQ(cardID))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("load progress for card %d: %w", cardID, err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.Progress.Create().
			SetCardID(cardID).
			SetEaseFactor(s.EaseFactor).
			SetIntervalDays(s.IntervalDays).
			SetRepetitions(s.Repetitions).
			SetTotalReviews(s.TotalReviews).
			SetCorrectReviews(s.CorrectReviews).
			SetStreak(s.Streak).
			SetLastReview(s.LastReview).
			SetNextReview(s.NextReview).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress for card %d: %w", cardID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetEaseFactor(s.EaseFactor).
		SetIntervalDays(s.IntervalDays).
		SetRepetitions(s.Repetitions).
		SetTotalReviews(s.TotalReviews).
		SetCorrectReviews(s.CorrectReviews).
		SetStreak(s.Streak).
		SetLastReview(s.LastReview).
		SetNextReview(s.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress for card %d: %w", cardID, err)
	}
	return nil
}

func (r *progressRepo) ActiveEntries(ctx context.Context, def srs.State) ([]CardEntry, error) {
	cards, err := r.client.Card.Query().
		Where(entcard.Active(true)).
		WithProgress().
		Order(ent.Asc(entcard.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active cards: %w", err)
	}

	entries := make([]CardEntry, 0, len(cards))
	for _, c := range cards {
		state := def
		if p := c.Edges.Progress; p != nil {
			state = entProgressToState(p)
			if !state.Valid() {
				return nil, fmt.Errorf("card %d: %w", c.ID, ErrCorruptState)
			}
		}
		entries = append(entries, CardEntry{
			Card:  entCardToCard(c),
			State: state,
		})
	}
	return entries, nil
}

func entProgressToState(p *ent.Progress) srs.State {
	return srs.State{
		EaseFactor:     p.EaseFactor,
		IntervalDays:   p.IntervalDays,
		Repetitions:    p.Repetitions,
		TotalReviews:   p.TotalReviews,
		CorrectReviews: p.CorrectReviews,
		Streak:         p.Streak,
		LastReview:     p.LastReview,
		NextReview:     p.NextReview,
	}
}
