package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SeenQuestion is one delivered question id in the per-topic recency
// registry. Rows are append-only; the (topic, question) pair is unique so
// re-delivery of a question never duplicates it.
type SeenQuestion struct {
	ent.Schema
}

func (SeenQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Positive().
			Immutable().
			Comment("Topic the question was delivered for"),
		field.Int("question_id").
			Positive().
			Immutable().
			Comment("Server-assigned question id"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable().
			Comment("When the question was first delivered locally"),
	}
}

func (SeenQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "question_id").Unique(),
		index.Fields("topic_id"),
	}
}
