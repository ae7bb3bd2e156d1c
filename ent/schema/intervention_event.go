package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterventionEvent is the append-only log of fired interventions. The
// user_response fields are annotated after the fact when the UI reports
// how the user reacted; everything else is immutable.
type InterventionEvent struct {
	ent.Schema
}

func (InterventionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterventionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("intervention_id").
			Unique().
			NotEmpty().
			Comment("UUID handed to the UI for response correlation"),
		field.String("user_id").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("nudge, warn, soft_block, or hard_block"),
		field.String("trigger_domain").
			Optional().
			MaxLen(255),
		field.String("trigger_url").
			Optional().
			MaxLen(2048),
		field.Int("duration_on_distraction_seconds").
			Default(0),
		field.Float("distraction_score").
			Default(0),
		field.String("session_id").
			Optional(),
		field.String("user_response").
			Optional().
			Comment("complied, dismissed, or overrode"),
		field.Bool("effective").
			Optional().
			Nillable().
			Comment("Set with user_response; true when the user complied"),
	}
}

func (InterventionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("intervention_id"),
	}
}
