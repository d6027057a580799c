// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/testevent"
)

// TestEvent is the model entity for the TestEvent schema.
type TestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-assigned test id
	TestID int `json:"test_id,omitempty"`
	// Originating study session, if any (0 = standalone)
	SessionID int `json:"session_id,omitempty"`
	// Topic the test covered
	TopicID int `json:"topic_id,omitempty"`
	// Number of questions in the attempt
	QuestionCount int `json:"question_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// Server-computed score percentage
	Score float64 `json:"score,omitempty"`
	// Whether the server-owned star threshold was cleared
	StarEarned bool `json:"star_earned,omitempty"`
	// Stopwatch time reported on submission
	TotalTimeSecs int `json:"total_time_secs,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testevent.FieldStarEarned:
			values[i] = new(sql.NullBool)
		case testevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case testevent.FieldID, testevent.FieldSequence, testevent.FieldTestID, testevent.FieldSessionID, testevent.FieldTopicID, testevent.FieldQuestionCount, testevent.FieldCorrectCount, testevent.FieldIncorrectCount, testevent.FieldTotalTimeSecs:
			values[i] = new(sql.NullInt64)
		case testevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestEvent fields.
func (_m *TestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case testevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case testevent.FieldTestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = int(value.Int64)
			}
		case testevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = int(value.Int64)
			}
		case testevent.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case testevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case testevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case testevent.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				_m.IncorrectCount = int(value.Int64)
			}
		case testevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case testevent.FieldStarEarned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field star_earned", values[i])
			} else if value.Valid {
				_m.StarEarned = value.Bool
			}
		case testevent.FieldTotalTimeSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_secs", values[i])
			} else if value.Valid {
				_m.TotalTimeSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestEvent.
// Note that you need to call TestEvent.Unwrap() before calling this method if this TestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestEvent) Update() *TestEventUpdateOne {
	return NewTestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestEvent) Unwrap() *TestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncorrectCount))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("star_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.StarEarned))
	builder.WriteString(", ")
	builder.WriteString("total_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSecs))
	builder.WriteByte(')')
	return builder.String()
}

// TestEvents is a parsable slice of TestEvent.
type TestEvents []*TestEvent
