package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatternSnapshot captures one user's full rolling behavioral state,
// enabling fast restore without replaying the event log. Only the most
// recent snapshots per user are kept; older ones are pruned.
type PatternSnapshot struct {
	ent.Schema
}

func (PatternSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Serialized pattern.State"),
	}
}

func (PatternSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("sequence"),
	}
}
