package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records study session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Positive().
			Comment("Server-assigned session id"),
		field.Int("topic_id").
			Positive().
			Comment("Topic the session was studied for"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("planned_mins").
			Default(0).
			Comment("Planned study duration in minutes"),
		field.Int("actual_mins").
			Default(0).
			Comment("Reported study duration in minutes (on end only)"),
		field.String("outcome").
			Default("").
			Comment("completed or failed (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
	}
}
