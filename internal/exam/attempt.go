// Package exam manages one mock test attempt: question navigation, answer
// selection, and the guarded single submission.
package exam

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/api"
)

// ErrNoQuestions is the hard-empty case: an authoritative source returned
// zero questions. The caller shows an explicit dead-end screen, never an
// empty answerable test.
var ErrNoQuestions = errors.New("question set is empty")

// ErrSubmitted is returned when a mutation reaches an already-submitted
// attempt.
var ErrSubmitted = errors.New("attempt already submitted")

// Attempt is one answerable instance of a question set. It becomes
// read-only exactly once, on successful submission.
type Attempt struct {
	testID    int
	sessionID int
	questions []api.Question
	answers   map[int]string // questionID → chosen option label
	index     int
	elapsed   int // stopwatch seconds, distinct from the study countdown

	// submitting is the single-flight guard: a second submit while one is
	// in flight is refused. submitted is the permanent latch.
	submitting bool
	submitted  bool

	idempotencyKey string
	result         *api.TestResult
}

// NewAttempt binds a question set to a fresh attempt. An empty set is
// rejected with ErrNoQuestions.
func NewAttempt(testID, sessionID int, questions []api.Question) (*Attempt, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Attempt{
		testID:         testID,
		sessionID:      sessionID,
		questions:      questions,
		answers:        make(map[int]string),
		idempotencyKey: uuid.New().String(),
	}, nil
}

// Select records an answer. Re-selecting overwrites the previous choice and
// never auto-advances the index.
func (a *Attempt) Select(questionID int, label string) error {
	if a.submitted {
		return ErrSubmitted
	}
	q := a.question(questionID)
	if q == nil {
		return fmt.Errorf("question %d is not part of this attempt", questionID)
	}
	if !q.HasOption(label) {
		return fmt.Errorf("question %d has no option %q", questionID, label)
	}
	a.answers[questionID] = label
	return nil
}

// Answer returns the currently selected option label for a question.
func (a *Attempt) Answer(questionID int) (string, bool) {
	label, ok := a.answers[questionID]
	return label, ok
}

// Next moves to the following question. Bounded: false at the last index.
func (a *Attempt) Next() bool {
	if a.index >= len(a.questions)-1 {
		return false
	}
	a.index++
	return true
}

// Previous moves to the preceding question. Bounded: false at index zero.
func (a *Attempt) Previous() bool {
	if a.index <= 0 {
		return false
	}
	a.index--
	return true
}

// Current returns the question at the cursor.
func (a *Attempt) Current() *api.Question {
	return &a.questions[a.index]
}

// AtLast reports whether the cursor is on the final question, where the
// submit action replaces "next".
func (a *Attempt) AtLast() bool {
	return a.index == len(a.questions)-1
}

func (a *Attempt) Index() int { return a.index }
func (a *Attempt) Len() int   { return len(a.questions) }

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int {
	return len(a.answers)
}

// TickSecond advances the stopwatch. Elapsed time is monotonic while the
// attempt is open and frozen after submission.
func (a *Attempt) TickSecond() {
	if !a.submitted {
		a.elapsed++
	}
}

// ElapsedSeconds returns the stopwatch reading.
func (a *Attempt) ElapsedSeconds() int {
	return a.elapsed
}

// BeginSubmit claims the single-flight submission slot and builds the
// payload: one record per question in original order, unanswered questions
// as explicit nulls. Returns ok=false if a submission is already in flight
// or the attempt was submitted.
func (a *Attempt) BeginSubmit() (req api.SubmitTestRequest, idempotencyKey string, ok bool) {
	if a.submitting || a.submitted {
		return api.SubmitTestRequest{}, "", false
	}
	a.submitting = true

	responses := make([]api.AnswerRecord, 0, len(a.questions))
	for _, q := range a.questions {
		record := api.AnswerRecord{QuestionID: q.ID}
		if label, answered := a.answers[q.ID]; answered {
			value := label
			record.Answer = &value
		}
		responses = append(responses, record)
	}

	return api.SubmitTestRequest{
		Responses:        responses,
		TotalTimeSeconds: a.elapsed,
	}, a.idempotencyKey, true
}

// FailSubmit releases the single-flight guard after a failed submission.
// All answers are preserved for a user-initiated retry.
func (a *Attempt) FailSubmit() {
	a.submitting = false
}

// FinishSubmit latches the attempt read-only and stores the server result.
func (a *Attempt) FinishSubmit(result *api.TestResult) {
	a.submitting = false
	a.submitted = true
	a.result = result
}

// Submitted reports whether the attempt is read-only.
func (a *Attempt) Submitted() bool {
	return a.submitted
}

// Result returns the server-scored result, nil before submission succeeds.
func (a *Attempt) Result() *api.TestResult {
	return a.result
}

// TestID returns the server-assigned test id.
func (a *Attempt) TestID() int { return a.testID }

// SessionID returns the originating session id, 0 for standalone tests.
func (a *Attempt) SessionID() int { return a.sessionID }

// Questions returns the ordered question set.
func (a *Attempt) Questions() []api.Question {
	return a.questions
}

// QuestionIDs returns the delivered ids in order, for the recency
// registry write-back.
func (a *Attempt) QuestionIDs() []int {
	ids := make([]int, 0, len(a.questions))
	for _, q := range a.questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func (a *Attempt) question(id int) *api.Question {
	for i := range a.questions {
		if a.questions[i].ID == id {
			return &a.questions[i]
		}
	}
	return nil
}
