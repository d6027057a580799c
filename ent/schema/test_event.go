package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestEvent records one submitted mock test attempt and its server-scored
// result.
type TestEvent struct {
	ent.Schema
}

func (TestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("test_id").
			Positive().
			Comment("Server-assigned test id"),
		field.Int("session_id").
			Default(0).
			Comment("Originating study session, if any (0 = standalone)"),
		field.Int("topic_id").
			Positive().
			Comment("Topic the test covered"),
		field.Int("question_count").
			Default(0).
			Comment("Number of questions in the attempt"),
		field.Int("correct_count").
			Default(0),
		field.Int("incorrect_count").
			Default(0),
		field.Float("score").
			Default(0).
			Comment("Server-computed score percentage"),
		field.Bool("star_earned").
			Default(false).
			Comment("Whether the server-owned star threshold was cleared"),
		field.Int("total_time_secs").
			Default(0).
			Comment("Stopwatch time reported on submission"),
	}
}

func (TestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("topic_id"),
	}
}
