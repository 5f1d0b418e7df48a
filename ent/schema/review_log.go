package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewLog is the immutable record of a single answer attempt within a
// session. Progress rows are derived state; review logs are the ground truth.
type ReviewLog struct {
	ent.Schema
}

func (ReviewLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to StudySession.session_id"),
		field.Int("card_id"),
		field.Int("question_id").
			Optional(),
		field.String("user_answer"),
		field.Bool("correct"),
		field.Float("confidence").
			Comment("Grader confidence in [0,1]"),
		field.Float("response_seconds").
			Optional(),
		field.Int("quality").
			Min(0).
			Max(5).
			Comment("SM-2 quality score derived from the verdict"),
		field.String("feedback").
			Optional().
			Comment("Grader feedback shown to the learner"),
		field.Time("reviewed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("card_id"),
		index.Fields("reviewed_at"),
	}
}
