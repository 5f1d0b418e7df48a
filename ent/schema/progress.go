package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress holds the scheduling state for one card. Exactly one row per
// studied card; the scheduler owns every field except the timestamps.
type Progress struct {
	ent.Schema
}

func (Progress) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, clamped to [1.3, 4.0] by the scheduler"),
		field.Int("interval_days").
			Default(1).
			Min(1),
		field.Int("repetitions").
			Default(0).
			Min(0).
			Comment("Consecutive successful reviews since the last lapse"),
		field.Int("total_reviews").
			Default(0).
			Min(0),
		field.Int("correct_reviews").
			Default(0).
			Min(0),
		field.Int("streak").
			Default(0).
			Min(0).
			Comment("Consecutive correct reviews"),
		field.Time("last_review").
			Optional(),
		field.Time("next_review").
			Optional().
			Comment("Absent means never reviewed: due immediately"),
	}
}

func (Progress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("card", Card.Type).
			Ref("progress").
			Unique().
			Required(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
	}
}
