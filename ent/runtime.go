// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepdeck/ent/schema"
	"github.com/abhisek/prepdeck/ent/seenquestion"
	"github.com/abhisek/prepdeck/ent/sessionevent"
	"github.com/abhisek/prepdeck/ent/testevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	seenquestionFields := schema.SeenQuestion{}.Fields()
	_ = seenquestionFields
	// seenquestionDescTopicID is the schema descriptor for topic_id field.
	seenquestionDescTopicID := seenquestionFields[0].Descriptor()
	// seenquestion.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	seenquestion.TopicIDValidator = seenquestionDescTopicID.Validators[0].(func(int) error)
	// seenquestionDescQuestionID is the schema descriptor for question_id field.
	seenquestionDescQuestionID := seenquestionFields[1].Descriptor()
	// seenquestion.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	seenquestion.QuestionIDValidator = seenquestionDescQuestionID.Validators[0].(func(int) error)
	// seenquestionDescFirstSeen is the schema descriptor for first_seen field.
	seenquestionDescFirstSeen := seenquestionFields[2].Descriptor()
	// seenquestion.DefaultFirstSeen holds the default value on creation for the first_seen field.
	seenquestion.DefaultFirstSeen = seenquestionDescFirstSeen.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(int) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[1].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(int) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPlannedMins is the schema descriptor for planned_mins field.
	sessioneventDescPlannedMins := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPlannedMins holds the default value on creation for the planned_mins field.
	sessionevent.DefaultPlannedMins = sessioneventDescPlannedMins.Default.(int)
	// sessioneventDescActualMins is the schema descriptor for actual_mins field.
	sessioneventDescActualMins := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultActualMins holds the default value on creation for the actual_mins field.
	sessionevent.DefaultActualMins = sessioneventDescActualMins.Default.(int)
	// sessioneventDescOutcome is the schema descriptor for outcome field.
	sessioneventDescOutcome := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultOutcome holds the default value on creation for the outcome field.
	sessionevent.DefaultOutcome = sessioneventDescOutcome.Default.(string)
	testeventMixin := schema.TestEvent{}.Mixin()
	testeventMixinFields0 := testeventMixin[0].Fields()
	_ = testeventMixinFields0
	testeventFields := schema.TestEvent{}.Fields()
	_ = testeventFields
	// testeventDescTimestamp is the schema descriptor for timestamp field.
	testeventDescTimestamp := testeventMixinFields0[1].Descriptor()
	// testevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	testevent.DefaultTimestamp = testeventDescTimestamp.Default.(func() time.Time)
	// testeventDescTestID is the schema descriptor for test_id field.
	testeventDescTestID := testeventFields[0].Descriptor()
	// testevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	testevent.TestIDValidator = testeventDescTestID.Validators[0].(func(int) error)
	// testeventDescSessionID is the schema descriptor for session_id field.
	testeventDescSessionID := testeventFields[1].Descriptor()
	// testevent.DefaultSessionID holds the default value on creation for the session_id field.
	testevent.DefaultSessionID = testeventDescSessionID.Default.(int)
	// testeventDescTopicID is the schema descriptor for topic_id field.
	testeventDescTopicID := testeventFields[2].Descriptor()
	// testevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	testevent.TopicIDValidator = testeventDescTopicID.Validators[0].(func(int) error)
	// testeventDescQuestionCount is the schema descriptor for question_count field.
	testeventDescQuestionCount := testeventFields[3].Descriptor()
	// testevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	testevent.DefaultQuestionCount = testeventDescQuestionCount.Default.(int)
	// testeventDescCorrectCount is the schema descriptor for correct_count field.
	testeventDescCorrectCount := testeventFields[4].Descriptor()
	// testevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	testevent.DefaultCorrectCount = testeventDescCorrectCount.Default.(int)
	// testeventDescIncorrectCount is the schema descriptor for incorrect_count field.
	testeventDescIncorrectCount := testeventFields[5].Descriptor()
	// testevent.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	testevent.DefaultIncorrectCount = testeventDescIncorrectCount.Default.(int)
	// testeventDescScore is the schema descriptor for score field.
	testeventDescScore := testeventFields[6].Descriptor()
	// testevent.DefaultScore holds the default value on creation for the score field.
	testevent.DefaultScore = testeventDescScore.Default.(float64)
	// testeventDescStarEarned is the schema descriptor for star_earned field.
	testeventDescStarEarned := testeventFields[7].Descriptor()
	// testevent.DefaultStarEarned holds the default value on creation for the star_earned field.
	testevent.DefaultStarEarned = testeventDescStarEarned.Default.(bool)
	// testeventDescTotalTimeSecs is the schema descriptor for total_time_secs field.
	testeventDescTotalTimeSecs := testeventFields[8].Descriptor()
	// testevent.DefaultTotalTimeSecs holds the default value on creation for the total_time_secs field.
	testevent.DefaultTotalTimeSecs = testeventDescTotalTimeSecs.Default.(int)
}
