package mocktest

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screens/result"
	"github.com/abhisek/prepdeck/internal/store"
)

// mockService implements api.Service for testing.
type mockService struct {
	submitResult *api.TestResult
	submitErr    error

	submitCalls int
	submitKeys  []string
	lastSubmit  api.SubmitTestRequest
}

func (m *mockService) StartSession(_ context.Context, _ api.StartSessionRequest) (*api.StartSessionResponse, error) {
	return nil, nil
}

func (m *mockService) GenerationStatus(_ context.Context, _ int) (*api.GenerationStatus, error) {
	return nil, nil
}

func (m *mockService) CompleteSession(_ context.Context, _ int, _ api.CompleteSessionRequest) (*api.CompleteSessionResponse, error) {
	return nil, nil
}

func (m *mockService) StartTest(_ context.Context, _ api.StartTestRequest) (*api.StartTestResponse, error) {
	return nil, nil
}

func (m *mockService) SubmitTest(_ context.Context, _ int, key string, req api.SubmitTestRequest) (*api.TestResult, error) {
	m.submitCalls++
	m.submitKeys = append(m.submitKeys, key)
	m.lastSubmit = req
	return m.submitResult, m.submitErr
}

func (m *mockService) Results(_ context.Context, _ int) (*api.TestResult, error) {
	return m.submitResult, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	testEvents []store.TestEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) AppendTestEvent(_ context.Context, data store.TestEventData) error {
	m.testEvents = append(m.testEvents, data)
	return nil
}

func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) RecentTests(_ context.Context, _ int) ([]store.TestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) Clear(_ context.Context) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []api.Question {
	opts := []api.Option{
		{Label: "A", Text: "first"},
		{Label: "B", Text: "second"},
		{Label: "C", Text: "third"},
	}
	return []api.Question{
		{ID: 1, Text: "Q1", Source: api.SourceAI, Options: opts},
		{ID: 2, Text: "Q2", Source: api.SourcePreviousYear, Options: opts},
		{ID: 3, Text: "Q3", Source: api.SourceAI, Options: opts},
	}
}

func testScreen(t *testing.T, svc *mockService) (*TestScreen, *exam.Attempt, *mockEventRepo) {
	t.Helper()
	attempt, err := exam.NewAttempt(55, 101, testQuestions())
	if err != nil {
		t.Fatalf("new attempt: %v", err)
	}
	eventRepo := &mockEventRepo{}
	scr := New(Options{
		Service:   svc,
		EventRepo: eventRepo,
		Logger:    zerolog.Nop(),
		TopicID:   7,
		Attempt:   attempt,
	})
	return scr, attempt, eventRepo
}

func TestSelectRecordsAnswer(t *testing.T) {
	scr, attempt, _ := testScreen(t, &mockService{})

	// Move to option B and choose it.
	scr.Update(keyPress('j'))
	scr.Update(specialKey(tea.KeyEnter))

	label, ok := attempt.Answer(1)
	if !ok || label != "B" {
		t.Errorf("answer = %q, %v, want B", label, ok)
	}
	if attempt.Index() != 0 {
		t.Error("selection must not auto-advance")
	}

	// Re-selecting overwrites.
	scr.Update(keyPress('j'))
	scr.Update(specialKey(tea.KeyEnter))
	label, _ = attempt.Answer(1)
	if label != "C" {
		t.Errorf("answer = %q, want C after overwrite", label)
	}
}

func TestNavigationRestoresSelection(t *testing.T) {
	scr, attempt, _ := testScreen(t, &mockService{})

	scr.Update(specialKey(tea.KeyEnter)) // answer Q1 with A
	scr.Update(keyPress('l'))            // to Q2
	if attempt.Index() != 1 {
		t.Fatalf("index = %d, want 1", attempt.Index())
	}
	scr.Update(keyPress('h')) // back to Q1
	if attempt.Index() != 0 {
		t.Fatalf("index = %d, want 0", attempt.Index())
	}
	if scr.options.Chosen != "A" {
		t.Errorf("chosen = %q, want restored A", scr.options.Chosen)
	}

	// Bounded at the edges.
	scr.Update(keyPress('h'))
	if attempt.Index() != 0 {
		t.Error("previous at first question must not move")
	}
	scr.Update(keyPress('l'))
	scr.Update(keyPress('l'))
	if attempt.Index() != 2 {
		t.Errorf("index = %d, want 2", attempt.Index())
	}

	// Next at the final question becomes the finish prompt.
	scr.Update(keyPress('l'))
	if attempt.Index() != 2 {
		t.Errorf("index = %d, want still 2", attempt.Index())
	}
	if scr.confirm == nil {
		t.Error("expected finish prompt at final question")
	}
}

func TestStopwatchFreezesAfterSubmit(t *testing.T) {
	scr, attempt, _ := testScreen(t, &mockService{})

	scr.Update(stopwatchTickMsg(time.Time{}))
	scr.Update(stopwatchTickMsg(time.Time{}))
	if attempt.ElapsedSeconds() != 2 {
		t.Fatalf("elapsed = %d, want 2", attempt.ElapsedSeconds())
	}

	attempt.FinishSubmit(&api.TestResult{})
	_, cmd := scr.Update(stopwatchTickMsg(time.Time{}))
	if cmd != nil {
		t.Error("expected stopwatch to stop after submission")
	}
	if attempt.ElapsedSeconds() != 2 {
		t.Errorf("elapsed = %d, want frozen at 2", attempt.ElapsedSeconds())
	}
}

func TestConfirmIsAdvisoryNotBlocking(t *testing.T) {
	scr, _, _ := testScreen(t, &mockService{})

	// No answers at all; finishing is still allowed.
	scr.Update(keyPress('s'))
	if scr.confirm == nil {
		t.Fatal("expected confirmation dialog")
	}

	// Decline keeps answering.
	scr.Update(keyPress('n'))
	if scr.confirm != nil {
		t.Fatal("expected dialog dismissed")
	}
	if scr.inFlight {
		t.Error("decline must not submit")
	}

	// Accept submits despite unanswered questions.
	scr.Update(keyPress('s'))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if !scr.inFlight {
		t.Error("expected submission in flight")
	}
}

func TestSubmitIsSingleFlight(t *testing.T) {
	scr, attempt, _ := testScreen(t, &mockService{})

	if cmd := scr.submit(); cmd == nil {
		t.Fatal("expected first submit command")
	}
	if cmd := scr.submit(); cmd != nil {
		t.Error("second submit while in flight must be refused")
	}
	_ = attempt
}

func TestSubmitFailurePreservesAnswersForRetry(t *testing.T) {
	scr, attempt, _ := testScreen(t, &mockService{})

	scr.Update(specialKey(tea.KeyEnter)) // answer Q1 with A
	scr.submit()

	scr.Update(submitResultMsg{Err: errors.New("gateway timeout")})
	if scr.submitErr == "" {
		t.Fatal("expected surfaced submit error")
	}
	if attempt.Submitted() {
		t.Error("failed submit must not latch the attempt")
	}
	if label, ok := attempt.Answer(1); !ok || label != "A" {
		t.Errorf("answer = %q, %v, want preserved A", label, ok)
	}

	// R retries.
	_, cmd := scr.Update(keyPress('r'))
	if cmd == nil {
		t.Error("expected retry command")
	}
	if scr.submitErr != "" {
		t.Error("expected error cleared on retry")
	}
}

func TestSubmitSuccessHandsOffToResults(t *testing.T) {
	res := &api.TestResult{
		Score:          90,
		CorrectCount:   9,
		IncorrectCount: 1,
		StarEarned:     true,
	}
	scr, attempt, eventRepo := testScreen(t, &mockService{submitResult: res})

	scr.Update(stopwatchTickMsg(time.Time{}))
	scr.submit()
	_, cmd := scr.Update(submitResultMsg{Result: res})
	if cmd == nil {
		t.Fatal("expected handoff command")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*result.ResultScreen); !ok {
		t.Fatalf("got %T, want *result.ResultScreen", replace.Screen)
	}

	if !attempt.Submitted() {
		t.Error("expected attempt latched read-only")
	}

	if len(eventRepo.testEvents) != 1 {
		t.Fatalf("test events = %d, want 1", len(eventRepo.testEvents))
	}
	ev := eventRepo.testEvents[0]
	if ev.TestID != 55 || ev.SessionID != 101 || ev.TopicID != 7 {
		t.Errorf("event ids = %+v", ev)
	}
	if ev.Score != 90 || !ev.StarEarned || ev.TotalTimeSecs != 1 {
		t.Errorf("event outcome = %+v", ev)
	}
}

func TestViewRendersQuestion(t *testing.T) {
	scr, _, _ := testScreen(t, &mockService{})
	if scr.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	scr.submitErr = "boom"
	if scr.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}
