package api

import (
	"encoding/json"
	"fmt"
	"sort"
)

// QuestionSource identifies where a question came from.
type QuestionSource string

const (
	SourceAI           QuestionSource = "AI"
	SourcePreviousYear QuestionSource = "PreviousYear"
)

// JobStatus is the state of a server-side generation job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
)

// Done reports whether the generation job has finished.
func (s JobStatus) Done() bool {
	return s == JobCompleted
}

// Option is one answer choice. Options are kept as a slice, ordered by
// label, because the wire format is an unordered JSON object.
type Option struct {
	Label string
	Text  string
}

// Question is a single validated question. The correct answer is never
// present before submission.
type Question struct {
	ID         int
	Text       string
	Options    []Option
	Source     QuestionSource
	Difficulty int // 0 when the server omits it
}

// HasOption reports whether label is a valid option for this question.
func (q *Question) HasOption(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// questionWire is the raw shape questions arrive in.
type questionWire struct {
	ID           int               `json:"id"`
	QuestionText string            `json:"questionText"`
	Options      map[string]string `json:"options"`
	Source       string            `json:"source"`
	Difficulty   *int              `json:"difficulty"`
}

// toQuestion converts a wire question into the validated domain form,
// sorting options by label for a deterministic display order.
func (w questionWire) toQuestion() (Question, error) {
	if w.ID <= 0 {
		return Question{}, fmt.Errorf("question id %d is not positive", w.ID)
	}
	if w.QuestionText == "" {
		return Question{}, fmt.Errorf("question %d has empty text", w.ID)
	}
	if len(w.Options) < 2 {
		return Question{}, fmt.Errorf("question %d has %d options, need at least 2", w.ID, len(w.Options))
	}

	labels := make([]string, 0, len(w.Options))
	for label := range w.Options {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	opts := make([]Option, 0, len(labels))
	for _, label := range labels {
		opts = append(opts, Option{Label: label, Text: w.Options[label]})
	}

	var source QuestionSource
	switch w.Source {
	case string(SourceAI):
		source = SourceAI
	case string(SourcePreviousYear):
		source = SourcePreviousYear
	default:
		return Question{}, fmt.Errorf("question %d has unknown source %q", w.ID, w.Source)
	}

	q := Question{
		ID:      w.ID,
		Text:    w.QuestionText,
		Options: opts,
		Source:  source,
	}
	if w.Difficulty != nil {
		q.Difficulty = *w.Difficulty
	}
	return q, nil
}

func toQuestions(wire []questionWire) ([]Question, error) {
	qs := make([]Question, 0, len(wire))
	for _, w := range wire {
		q, err := w.toQuestion()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// StartSessionRequest begins a study session for one topic. Previously seen
// question ids bias generation away from repeats.
type StartSessionRequest struct {
	TopicID             int   `json:"topicId"`
	DurationMins        int   `json:"durationMins"`
	PreviousQuestionIDs []int `json:"previousQuestionIds"`
}

// StartSessionResponse binds the server-assigned session id.
type StartSessionResponse struct {
	SessionID int `json:"sessionId"`
}

// GenerationStatus is the polled progress of the async generation job.
type GenerationStatus struct {
	Status         JobStatus `json:"status"`
	GeneratedCount int       `json:"generatedCount"`
}

// UnmarshalJSON normalizes the server's status spelling; anything not
// recognized as a terminal state is treated as in progress.
func (g *GenerationStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status         string `json:"status"`
		GeneratedCount int    `json:"generatedCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.GeneratedCount = raw.GeneratedCount
	switch raw.Status {
	case "pending", "Pending":
		g.Status = JobPending
	case "completed", "Completed":
		g.Status = JobCompleted
	default:
		g.Status = JobInProgress
	}
	return nil
}

// CompleteSessionRequest reports the studied duration. ActualDurationMins is
// always >= 1; a session never reports zero minutes studied.
type CompleteSessionRequest struct {
	ActualDurationMins int `json:"actualDurationMins"`
}

// CompleteSessionResponse may carry the finalized question set, already
// bound to a server-minted test id. When Questions is empty the caller
// must fetch questions itself via StartTest; that is a degraded path,
// not a failure.
type CompleteSessionResponse struct {
	TestID    int
	Questions []Question
	Cached    bool
}

// StartTestRequest requests a question set directly, used both for the
// session fallback path and standalone tests. SessionID 0 means standalone.
type StartTestRequest struct {
	TopicID       int `json:"topicId"`
	SessionID     int `json:"sessionId,omitempty"`
	QuestionCount int `json:"questionCount"`
}

// StartTestResponse binds the test id and its question set.
type StartTestResponse struct {
	TestID    int
	Questions []Question
}

// AnswerRecord is one per-question submission entry. Answer is nil for
// unanswered questions; the record is still sent.
type AnswerRecord struct {
	QuestionID int     `json:"questionId"`
	Answer     *string `json:"answer"`
}

// SubmitTestRequest is the guarded one-shot submission payload.
type SubmitTestRequest struct {
	Responses        []AnswerRecord `json:"responses"`
	TotalTimeSeconds int            `json:"totalTimeSeconds"`
}

// QuestionResult is the server's verdict on one question.
type QuestionResult struct {
	QuestionID    int            `json:"questionId"`
	Correct       bool           `json:"correct"`
	Source        QuestionSource `json:"source"`
	CorrectAnswer string         `json:"correctAnswer"`
	GivenAnswer   *string        `json:"givenAnswer"`
}

// TestResult is the server-owned scoring outcome. The star threshold is
// opaque to the client; StarEarned is taken as-is and never recomputed.
type TestResult struct {
	Score          float64          `json:"score"`
	CorrectCount   int              `json:"correctCount"`
	IncorrectCount int              `json:"incorrectCount"`
	StarEarned     bool             `json:"starEarned"`
	PerQuestion    []QuestionResult `json:"perQuestionCorrectness"`
}

// BySource partitions per-question results by question source for display
// grouping.
func (r *TestResult) BySource() map[QuestionSource][]QuestionResult {
	out := make(map[QuestionSource][]QuestionResult)
	for _, qr := range r.PerQuestion {
		out[qr.Source] = append(out[qr.Source], qr)
	}
	return out
}
