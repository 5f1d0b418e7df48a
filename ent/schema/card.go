package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a piece of study material the learner wants to retain.
type Card struct {
	ent.Schema
}

func (Card) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("content").
			NotEmpty().
			MaxLen(2000).
			Comment("The statement or fact to learn"),
		field.String("source_material").
			Optional().
			Comment("Where the content came from, if imported"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form labels for filtering"),
		field.Int("difficulty").
			Default(3).
			Min(1).
			Max(5).
			Comment("Author-assigned difficulty, 1 (very easy) to 5 (very hard)"),
		field.Bool("active").
			Default(true).
			Comment("Inactive cards are excluded from study sessions"),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
		edge.To("progress", Progress.Type).
			Unique(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
