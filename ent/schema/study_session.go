package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records one sitting: when it ran, how many cards were
// reviewed and how well it went.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Client-generated UUID"),
		field.String("mode").
			Default("review"),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional(),
		field.Int("cards_reviewed").
			Default(0).
			Min(0),
		field.Int("correct_answers").
			Default(0).
			Min(0),
		field.Float("avg_response_seconds").
			Optional(),
		field.Bool("completed").
			Default(false),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
