package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Question is a generated prompt/answer pair for a card. A card can have
// several questions probing the same fact from different angles.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_text").
			NotEmpty().
			MaxLen(2000),
		field.String("answer_text").
			NotEmpty().
			MaxLen(2000),
		field.Enum("question_type").
			Values("standard", "multiple_choice", "fill_blank", "true_false").
			Default("standard"),
		field.Int("difficulty").
			Default(3).
			Min(1).
			Max(5),
		field.String("generated_by").
			Optional().
			Comment("Model that generated this question"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("card", Card.Type).
			Ref("questions").
			Unique().
			Required(),
	}
}
