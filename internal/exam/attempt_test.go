package exam

import (
	"errors"
	"testing"

	"github.com/abhisek/prepdeck/internal/api"
)

func sampleQuestions(n int) []api.Question {
	qs := make([]api.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, api.Question{
			ID:   i,
			Text: "question",
			Options: []api.Option{
				{Label: "A", Text: "first"},
				{Label: "B", Text: "second"},
				{Label: "C", Text: "third"},
				{Label: "D", Text: "fourth"},
			},
			Source: api.SourcePreviousYear,
		})
	}
	return qs
}

func newTestAttempt(t *testing.T, n int) *Attempt {
	t.Helper()
	a, err := NewAttempt(55, 101, sampleQuestions(n))
	if err != nil {
		t.Fatalf("new attempt: %v", err)
	}
	return a
}

func TestEmptyQuestionSetRejected(t *testing.T) {
	if _, err := NewAttempt(55, 101, nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("error = %v, want ErrNoQuestions", err)
	}
}

func TestSelectOverwrites(t *testing.T) {
	a := newTestAttempt(t, 3)

	if err := a.Select(1, "B"); err != nil {
		t.Fatalf("select B: %v", err)
	}
	if err := a.Select(1, "C"); err != nil {
		t.Fatalf("select C: %v", err)
	}

	label, ok := a.Answer(1)
	if !ok || label != "C" {
		t.Fatalf("answer = %q,%v, want C", label, ok)
	}
	if a.AnsweredCount() != 1 {
		t.Fatalf("answered count = %d, want 1 (overwrite, not append)", a.AnsweredCount())
	}
}

func TestSelectDoesNotAdvance(t *testing.T) {
	a := newTestAttempt(t, 3)
	if err := a.Select(1, "A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if a.Index() != 0 {
		t.Fatalf("index = %d after select, want 0", a.Index())
	}
}

func TestSelectValidation(t *testing.T) {
	a := newTestAttempt(t, 3)

	if err := a.Select(99, "A"); err == nil {
		t.Fatal("selecting an unknown question succeeded")
	}
	if err := a.Select(1, "Z"); err == nil {
		t.Fatal("selecting an unknown option succeeded")
	}
}

func TestNavigationBounded(t *testing.T) {
	a := newTestAttempt(t, 3)

	if a.Previous() {
		t.Fatal("previous from first question succeeded")
	}

	if !a.Next() || !a.Next() {
		t.Fatal("forward navigation failed")
	}
	if !a.AtLast() {
		t.Fatal("not at last after moving to final index")
	}
	if a.Next() {
		t.Fatal("next from last question wrapped around")
	}
	if a.Index() != 2 {
		t.Fatalf("index = %d, want 2", a.Index())
	}
}

func TestSubmitPayloadShape(t *testing.T) {
	a := newTestAttempt(t, 10)

	// Answer 7 of 10, leaving 2, 5, 9 unanswered.
	unanswered := map[int]bool{2: true, 5: true, 9: true}
	for i := 1; i <= 10; i++ {
		if unanswered[i] {
			continue
		}
		if err := a.Select(i, "B"); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}

	for i := 0; i < 612; i++ {
		a.TickSecond()
	}

	req, key, ok := a.BeginSubmit()
	if !ok {
		t.Fatal("BeginSubmit refused")
	}
	if key == "" {
		t.Fatal("empty idempotency key")
	}
	if len(req.Responses) != 10 {
		t.Fatalf("payload has %d records, want one per question", len(req.Responses))
	}
	if req.TotalTimeSeconds != 612 {
		t.Fatalf("totalTimeSeconds = %d, want 612", req.TotalTimeSeconds)
	}

	nulls := 0
	for i, record := range req.Responses {
		if record.QuestionID != i+1 {
			t.Fatalf("record %d has question id %d, original order lost", i, record.QuestionID)
		}
		if record.Answer == nil {
			nulls++
			if !unanswered[record.QuestionID] {
				t.Fatalf("question %d sent as null but was answered", record.QuestionID)
			}
		}
	}
	if nulls != 3 {
		t.Fatalf("%d null records, want 3 explicit nulls", nulls)
	}
}

func TestSubmitSingleFlight(t *testing.T) {
	a := newTestAttempt(t, 2)

	_, _, ok := a.BeginSubmit()
	if !ok {
		t.Fatal("first BeginSubmit refused")
	}
	if _, _, ok := a.BeginSubmit(); ok {
		t.Fatal("second BeginSubmit granted while first in flight")
	}
}

func TestSubmitFailurePreservesAnswers(t *testing.T) {
	a := newTestAttempt(t, 2)
	if err := a.Select(1, "A"); err != nil {
		t.Fatalf("select: %v", err)
	}

	_, key1, _ := a.BeginSubmit()
	a.FailSubmit()

	if a.Submitted() {
		t.Fatal("attempt marked submitted after failure")
	}
	if label, ok := a.Answer(1); !ok || label != "A" {
		t.Fatal("answers lost after failed submission")
	}

	// Retry is granted and reuses the same idempotency key.
	req, key2, ok := a.BeginSubmit()
	if !ok {
		t.Fatal("retry BeginSubmit refused")
	}
	if key1 != key2 {
		t.Fatalf("idempotency key changed across retry: %s vs %s", key1, key2)
	}
	if len(req.Responses) != 2 {
		t.Fatalf("retry payload has %d records, want 2", len(req.Responses))
	}
}

func TestFinishSubmitLatchesReadOnly(t *testing.T) {
	a := newTestAttempt(t, 2)
	if _, _, ok := a.BeginSubmit(); !ok {
		t.Fatal("BeginSubmit refused")
	}

	result := &api.TestResult{Score: 50, CorrectCount: 1, IncorrectCount: 1}
	a.FinishSubmit(result)

	if !a.Submitted() {
		t.Fatal("attempt not submitted")
	}
	if a.Result() != result {
		t.Fatal("result not stored")
	}
	if err := a.Select(1, "B"); !errors.Is(err, ErrSubmitted) {
		t.Fatalf("select after submission = %v, want ErrSubmitted", err)
	}
	if _, _, ok := a.BeginSubmit(); ok {
		t.Fatal("BeginSubmit granted after submission")
	}

	// Stopwatch frozen after submission.
	before := a.ElapsedSeconds()
	a.TickSecond()
	if a.ElapsedSeconds() != before {
		t.Fatal("stopwatch advanced after submission")
	}
}
