// Code generated by ent, DO NOT EDIT.

package testevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTestID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSessionID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTopicID, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldIncorrectCount, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldScore, v))
}

// StarEarned applies equality check predicate on the "star_earned" field. It's identical to StarEarnedEQ.
func StarEarned(v bool) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldStarEarned, v))
}

// TotalTimeSecs applies equality check predicate on the "total_time_secs" field. It's identical to TotalTimeSecsEQ.
func TotalTimeSecs(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTestID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSessionID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTopicID, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldIncorrectCount, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldScore, v))
}

// StarEarnedEQ applies the EQ predicate on the "star_earned" field.
func StarEarnedEQ(v bool) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldStarEarned, v))
}

// StarEarnedNEQ applies the NEQ predicate on the "star_earned" field.
func StarEarnedNEQ(v bool) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldStarEarned, v))
}

// TotalTimeSecsEQ applies the EQ predicate on the "total_time_secs" field.
func TotalTimeSecsEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsNEQ applies the NEQ predicate on the "total_time_secs" field.
func TotalTimeSecsNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTotalTimeSecs, v))
}

// TotalTimeSecsIn applies the In predicate on the "total_time_secs" field.
func TotalTimeSecsIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsNotIn applies the NotIn predicate on the "total_time_secs" field.
func TotalTimeSecsNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTotalTimeSecs, vs...))
}

// TotalTimeSecsGT applies the GT predicate on the "total_time_secs" field.
func TotalTimeSecsGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsGTE applies the GTE predicate on the "total_time_secs" field.
func TotalTimeSecsGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLT applies the LT predicate on the "total_time_secs" field.
func TotalTimeSecsLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTotalTimeSecs, v))
}

// TotalTimeSecsLTE applies the LTE predicate on the "total_time_secs" field.
func TotalTimeSecsLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTotalTimeSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.NotPredicates(p))
}
