// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/seenquestion"
)

// SeenQuestion is the model entity for the SeenQuestion schema.
type SeenQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic the question was delivered for
	TopicID int `json:"topic_id,omitempty"`
	// Server-assigned question id
	QuestionID int `json:"question_id,omitempty"`
	// When the question was first delivered locally
	FirstSeen    time.Time `json:"first_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SeenQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seenquestion.FieldID, seenquestion.FieldTopicID, seenquestion.FieldQuestionID:
			values[i] = new(sql.NullInt64)
		case seenquestion.FieldFirstSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SeenQuestion fields.
func (_m *SeenQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seenquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case seenquestion.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case seenquestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		case seenquestion.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SeenQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *SeenQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SeenQuestion.
// Note that you need to call SeenQuestion.Unwrap() before calling this method if this SeenQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SeenQuestion) Update() *SeenQuestionUpdateOne {
	return NewSeenQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SeenQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SeenQuestion) Unwrap() *SeenQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SeenQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SeenQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("SeenQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SeenQuestions is a parsable slice of SeenQuestion.
type SeenQuestions []*SeenQuestion
