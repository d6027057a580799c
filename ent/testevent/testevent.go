// Code generated by ent, DO NOT EDIT.

package testevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testevent type in the database.
	Label = "test_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStarEarned holds the string denoting the star_earned field in the database.
	FieldStarEarned = "star_earned"
	// FieldTotalTimeSecs holds the string denoting the total_time_secs field in the database.
	FieldTotalTimeSecs = "total_time_secs"
	// Table holds the table name of the testevent in the database.
	Table = "test_events"
)

// Columns holds all SQL columns for testevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTestID,
	FieldSessionID,
	FieldTopicID,
	FieldQuestionCount,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldScore,
	FieldStarEarned,
	FieldTotalTimeSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	TestIDValidator func(int) error
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID int
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(int) error
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultStarEarned holds the default value on creation for the "star_earned" field.
	DefaultStarEarned bool
	// DefaultTotalTimeSecs holds the default value on creation for the "total_time_secs" field.
	DefaultTotalTimeSecs int
)

// OrderOption defines the ordering options for the TestEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStarEarned orders the results by the star_earned field.
func ByStarEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStarEarned, opts...).ToFunc()
}

// ByTotalTimeSecs orders the results by the total_time_secs field.
func ByTotalTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSecs, opts...).ToFunc()
}
