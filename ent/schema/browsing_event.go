package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BrowsingEvent records one page-view observation from the tab tracker.
// Append-only; rows are never updated.
type BrowsingEvent struct {
	ent.Schema
}

func (BrowsingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BrowsingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the event"),
		field.String("url").
			Optional().
			MaxLen(2048),
		field.String("domain").
			Optional().
			MaxLen(255),
		field.String("title").
			Optional().
			MaxLen(512),
		field.Int("duration_seconds").
			Default(0).
			Comment("Dwell time; clamped non-negative at ingest"),
		field.Bool("distraction").
			Default(false).
			Comment("Verdict at ingest time"),
		field.Float("distraction_score").
			Default(0).
			Comment("Propensity score at ingest time"),
		field.String("category").
			Optional().
			MaxLen(100).
			Comment("study, distraction, or neutral"),
		field.String("session_id").
			Optional().
			Comment("Study session the event belongs to, if any"),
	}
}

func (BrowsingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "timestamp"),
		index.Fields("domain"),
	}
}
