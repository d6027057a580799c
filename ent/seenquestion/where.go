// Code generated by ent, DO NOT EDIT.

package seenquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldTopicID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldFirstSeen, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLTE(FieldTopicID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLTE(FieldQuestionID, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.FieldLTE(FieldFirstSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SeenQuestion) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SeenQuestion) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SeenQuestion) predicate.SeenQuestion {
	return predicate.SeenQuestion(sql.NotPredicates(p))
}
