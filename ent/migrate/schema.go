// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SeenQuestionsColumns holds the columns for the "seen_questions" table.
	SeenQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "first_seen", Type: field.TypeTime},
	}
	// SeenQuestionsTable holds the schema information for the "seen_questions" table.
	SeenQuestionsTable = &schema.Table{
		Name:       "seen_questions",
		Columns:    SeenQuestionsColumns,
		PrimaryKey: []*schema.Column{SeenQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "seenquestion_topic_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{SeenQuestionsColumns[1], SeenQuestionsColumns[2]},
			},
			{
				Name:    "seenquestion_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SeenQuestionsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "planned_mins", Type: field.TypeInt, Default: 0},
		{Name: "actual_mins", Type: field.TypeInt, Default: 0},
		{Name: "outcome", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// TestEventsColumns holds the columns for the "test_events" table.
	TestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeInt, Default: 0},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "star_earned", Type: field.TypeBool, Default: false},
		{Name: "total_time_secs", Type: field.TypeInt, Default: 0},
	}
	// TestEventsTable holds the schema information for the "test_events" table.
	TestEventsTable = &schema.Table{
		Name:       "test_events",
		Columns:    TestEventsColumns,
		PrimaryKey: []*schema.Column{TestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[1]},
			},
			{
				Name:    "testevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[2]},
			},
			{
				Name:    "testevent_test_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[3]},
			},
			{
				Name:    "testevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SeenQuestionsTable,
		SessionEventsTable,
		TestEventsTable,
	}
)

func init() {
}
