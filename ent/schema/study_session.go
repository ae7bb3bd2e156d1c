package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is a declared focus period. Lifecycle rows, not events:
// ended_at is filled in when the session closes.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID grouping events and interventions"),
		field.String("user_id").
			NotEmpty(),
		field.String("topic").
			Optional().
			MaxLen(255),
		field.Time("started_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("planned_duration_minutes").
			Default(45),
		field.Bool("active").
			Default(true),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "active"),
	}
}
