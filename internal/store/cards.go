package store

import (
	"context"
	"fmt"

	"github.com/ankivoice/ankivoice/ent"
	entcard "github.com/ankivoice/ankivoice/ent/card"
	entprogress "github.com/ankivoice/ankivoice/ent/progress"
	entquestion "github.com/ankivoice/ankivoice/ent/question"
)

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Create(ctx context.Context, c Card) (int, error) {
	if c.Difficulty == 0 {
		c.Difficulty = 3
	}
	created, err := r.client.Card.Create().
		SetContent(c.Content).
		SetSourceMaterial(c.SourceMaterial).
		SetTags(c.Tags).
		SetDifficulty(c.Difficulty).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create card: %w", err)
	}
	return created.ID, nil
}

func (r *cardRepo) Get(ctx context.Context, id int) (*Card, error) {
	c, err := r.client.Card.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card %d: %w", id, err)
	}
	return entCardToCard(c), nil
}

func (r *cardRepo) List(ctx context.Context, includeInactive bool, limit, offset int) ([]*Card, error) {
	q := r.client.Card.Query().
		Order(ent.Desc(entcard.FieldCreatedAt))
	if !includeInactive {
		q = q.Where(entcard.Active(true))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	cards, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	out := make([]*Card, len(cards))
	for i, c := range cards {
		out[i] = entCardToCard(c)
	}
	return out, nil
}

func (r *cardRepo) Update(ctx context.Context, c Card) error {
	_, err := r.client.Card.UpdateOneID(c.ID).
		SetContent(c.Content).
		SetSourceMaterial(c.SourceMaterial).
		SetTags(c.Tags).
		SetDifficulty(c.Difficulty).
		SetActive(c.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update card %d: %w", c.ID, err)
	}
	return nil
}

func (r *cardRepo) Deactivate(ctx context.Context, id int) error {
	_, err := r.client.Card.UpdateOneID(id).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate card %d: %w", id, err)
	}
	return nil
}

func (r *cardRepo) Delete(ctx context.Context, id int) error {
	// Questions and progress hang off the card; remove them first so no
	// orphan rows survive.
	_, err := r.client.Question.Delete().
		Where(entquestion.HasCardWith(entcard.IDEQ(id))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete questions for card %d: %w", id, err)
	}
	_, err = r.client.Progress.Delete().
		Where(entprogress.HasCardWith(entcard.IDEQ(id))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress for card %d: %w", id, err)
	}

	if err := r.client.Card.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	return nil
}

func (r *cardRepo) AddQuestion(ctx context.Context, q Question) (int, error) {
	if q.Difficulty == 0 {
		q.Difficulty = 3
	}
	if q.Type == "" {
		q.Type = "standard"
	}
	created, err := r.client.Question.Create().
		SetCardID(q.CardID).
		SetQuestionText(q.QuestionText).
		SetAnswerText(q.AnswerText).
		SetQuestionType(entquestion.QuestionType(q.Type)).
		SetDifficulty(q.Difficulty).
		SetGeneratedBy(q.GeneratedBy).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("add question for card %d: %w", q.CardID, err)
	}
	return created.ID, nil
}

func (r *cardRepo) QuestionsFor(ctx context.Context, cardID int) ([]*Question, error) {
	questions, err := r.client.Question.Query().
		Where(entquestion.HasCardWith(entcard.IDEQ(cardID))).
		Order(ent.Asc(entquestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("questions for card %d: %w", cardID, err)
	}

	out := make([]*Question, len(questions))
	for i, q := range questions {
		out[i] = entQuestionToQuestion(q, cardID)
	}
	return out, nil
}

func (r *cardRepo) WithoutQuestions(ctx context.Context) ([]*Card, error) {
	cards, err := r.client.Card.Query().
		Where(
			entcard.Active(true),
			entcard.Not(entcard.HasQuestions()),
		).
		Order(ent.Asc(entcard.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("cards without questions: %w", err)
	}

	out := make([]*Card, len(cards))
	for i, c := range cards {
		out[i] = entCardToCard(c)
	}
	return out, nil
}

func entCardToCard(c *ent.Card) *Card {
	return &Card{
		ID:             c.ID,
		Content:        c.Content,
		SourceMaterial: c.SourceMaterial,
		Tags:           c.Tags,
		Difficulty:     c.Difficulty,
		Active:         c.Active,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func entQuestionToQuestion(q *ent.Question, cardID int) *Question {
	return &Question{
		ID:           q.ID,
		CardID:       cardID,
		QuestionText: q.QuestionText,
		AnswerText:   q.AnswerText,
		Type:         string(q.QuestionType),
		Difficulty:   q.Difficulty,
		GeneratedBy:  q.GeneratedBy,
	}
}
