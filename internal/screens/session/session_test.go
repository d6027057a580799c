package session

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/mocktest"
	sess "github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/store"
)

// mockService implements api.Service for testing.
type mockService struct {
	startSessionResp *api.StartSessionResponse
	startSessionErr  error
	startTestResp    *api.StartTestResponse
	startTestErr     error

	startSessionCalls int
	startTestCalls    int
	lastStartSession  api.StartSessionRequest
	lastStartTest     api.StartTestRequest
}

func (m *mockService) StartSession(_ context.Context, req api.StartSessionRequest) (*api.StartSessionResponse, error) {
	m.startSessionCalls++
	m.lastStartSession = req
	return m.startSessionResp, m.startSessionErr
}

func (m *mockService) GenerationStatus(_ context.Context, _ int) (*api.GenerationStatus, error) {
	return &api.GenerationStatus{Status: api.JobInProgress}, nil
}

func (m *mockService) CompleteSession(_ context.Context, _ int, _ api.CompleteSessionRequest) (*api.CompleteSessionResponse, error) {
	return &api.CompleteSessionResponse{}, nil
}

func (m *mockService) StartTest(_ context.Context, req api.StartTestRequest) (*api.StartTestResponse, error) {
	m.startTestCalls++
	m.lastStartTest = req
	return m.startTestResp, m.startTestErr
}

func (m *mockService) SubmitTest(_ context.Context, _ int, _ string, _ api.SubmitTestRequest) (*api.TestResult, error) {
	return &api.TestResult{}, nil
}

func (m *mockService) Results(_ context.Context, _ int) (*api.TestResult, error) {
	return &api.TestResult{}, nil
}

// mockSeenRepo implements store.SeenQuestionRepo for testing.
type mockSeenRepo struct {
	seen   []int
	marked map[int][]int
}

func (m *mockSeenRepo) Seen(_ context.Context, _ int) ([]int, error) {
	return m.seen, nil
}

func (m *mockSeenRepo) MarkSeen(_ context.Context, topicID int, ids []int) error {
	if m.marked == nil {
		m.marked = make(map[int][]int)
	}
	m.marked[topicID] = append(m.marked[topicID], ids...)
	return nil
}

func (m *mockSeenRepo) Clear(_ context.Context) error { return nil }

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	testEvents    []store.TestEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
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
	return []api.Question{
		{ID: 1, Text: "Q1", Source: api.SourceAI, Options: []api.Option{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}}},
		{ID: 2, Text: "Q2", Source: api.SourcePreviousYear, Options: []api.Option{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}}},
	}
}

func testScreen(svc *mockService) (*SessionScreen, *mockSeenRepo, *mockEventRepo) {
	seenRepo := &mockSeenRepo{}
	eventRepo := &mockEventRepo{}
	s := New(Options{
		Service:       svc,
		SeenRepo:      seenRepo,
		EventRepo:     eventRepo,
		Logger:        zerolog.Nop(),
		TopicID:       7,
		DurationMins:  1,
		PollInterval:  2 * time.Second,
		QuestionCount: 10,
	})
	return s, seenRepo, eventRepo
}

func activate(t *testing.T, s *SessionScreen) {
	t.Helper()
	scr, _ := s.Update(sessionStartedMsg{SessionID: 101})
	if scr.(*SessionScreen).ctrl.State() != sess.StateActive {
		t.Fatal("session did not activate")
	}
}

func TestStartSendsSeenQuestionIDs(t *testing.T) {
	svc := &mockService{startSessionResp: &api.StartSessionResponse{SessionID: 101}}
	s, seenRepo, _ := testScreen(svc)
	seenRepo.seen = []int{3, 5}

	msg := s.startSession()()
	started, ok := msg.(sessionStartedMsg)
	if !ok {
		t.Fatalf("got %T, want sessionStartedMsg", msg)
	}
	if started.SessionID != 101 {
		t.Errorf("session id = %d, want 101", started.SessionID)
	}
	if len(svc.lastStartSession.PreviousQuestionIDs) != 2 {
		t.Errorf("previous ids = %v, want [3 5]", svc.lastStartSession.PreviousQuestionIDs)
	}
	if svc.lastStartSession.TopicID != 7 || svc.lastStartSession.DurationMins != 1 {
		t.Errorf("request = %+v", svc.lastStartSession)
	}
}

func TestStartFailureIsFatal(t *testing.T) {
	svc := &mockService{}
	s, _, eventRepo := testScreen(svc)

	s.Update(sessionStartedMsg{Err: errors.New("boom")})

	if s.ctrl.State() != sess.StateFailed {
		t.Errorf("state = %s, want failed", s.ctrl.State())
	}
	if s.errMsg == "" {
		t.Error("expected error message")
	}
	if len(eventRepo.sessionEvents) != 0 {
		t.Errorf("expected no events on start failure, got %d", len(eventRepo.sessionEvents))
	}
}

func TestStartAppendsStartEvent(t *testing.T) {
	svc := &mockService{}
	s, _, eventRepo := testScreen(svc)

	activate(t, s)

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	ev := eventRepo.sessionEvents[0]
	if ev.Action != "start" || ev.SessionID != 101 || ev.TopicID != 7 {
		t.Errorf("start event = %+v", ev)
	}
}

func TestTimerExpiryEndsExactlyOnce(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)

	// 1 minute planned: the 60th tick completes the countdown.
	var endCmds int
	for i := 0; i < 65; i++ {
		_, cmd := s.Update(timerTickMsg(time.Time{}))
		if s.ctrl.State() == sess.StateEnding && cmd != nil {
			endCmds++
		}
	}

	if s.ctrl.State() != sess.StateEnding {
		t.Errorf("state = %s, want ending", s.ctrl.State())
	}
	if endCmds != 1 {
		t.Errorf("end commands = %d, want exactly 1", endCmds)
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)

	s.Update(timerTickMsg(time.Time{}))
	remaining := s.countdown.Remaining()

	s.Update(keyPress('p'))
	if s.ctrl.State() != sess.StatePaused {
		t.Fatalf("state = %s, want paused", s.ctrl.State())
	}

	for i := 0; i < 10; i++ {
		s.Update(timerTickMsg(time.Time{}))
	}
	if s.countdown.Remaining() != remaining {
		t.Errorf("remaining moved while paused: %d to %d", remaining, s.countdown.Remaining())
	}

	s.Update(keyPress('p'))
	if s.ctrl.State() != sess.StateActive {
		t.Errorf("state = %s, want active after resume", s.ctrl.State())
	}
}

func TestManualEndConfirm(t *testing.T) {
	svc := &mockService{}
	s, _, eventRepo := testScreen(svc)
	activate(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if s.confirm == nil {
		t.Fatal("expected end confirmation dialog")
	}

	// Decline keeps the session running.
	s.Update(keyPress('n'))
	if s.confirm != nil {
		t.Fatal("expected dialog dismissed")
	}
	if s.ctrl.State() != sess.StateActive {
		t.Fatalf("state = %s, want active", s.ctrl.State())
	}

	// Accept ends it.
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected completion command")
	}
	if s.ctrl.State() != sess.StateEnding {
		t.Errorf("state = %s, want ending", s.ctrl.State())
	}

	last := eventRepo.sessionEvents[len(eventRepo.sessionEvents)-1]
	if last.Action != "end" || last.ActualMins != 1 || last.Outcome != "completed" {
		t.Errorf("end event = %+v", last)
	}
}

func TestManualEndAfterTimerExpiryIsNoop(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)

	for i := 0; i < 60; i++ {
		s.Update(timerTickMsg(time.Time{}))
	}
	if s.ctrl.State() != sess.StateEnding {
		t.Fatalf("state = %s, want ending", s.ctrl.State())
	}

	if cmd := s.requestEnd(); cmd != nil {
		t.Error("second end request should lose the guard")
	}
}

func TestGenerationPollStopsWhenDone(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)

	s.Update(generationMsg{Status: api.JobInProgress, Count: 4})
	if s.ctrl.GeneratedCount() != 4 {
		t.Errorf("generated count = %d, want 4", s.ctrl.GeneratedCount())
	}

	_, cmd := s.Update(generationMsg{Status: api.JobCompleted, Count: 10})
	if cmd != nil {
		t.Error("expected polling to stop on completed")
	}

	// Late polls are ignored.
	s.Update(generationMsg{Status: api.JobInProgress, Count: 2})
	if s.ctrl.GeneratedCount() != 10 {
		t.Errorf("generated count = %d, want 10 after completion", s.ctrl.GeneratedCount())
	}

	_, cmd = s.Update(pollTickMsg(time.Time{}))
	if cmd != nil {
		t.Error("expected no further poll scheduling")
	}
}

func TestGenerationPollFailureIsSilent(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)

	_, cmd := s.Update(generationMsg{Err: errors.New("flaky")})
	if cmd == nil {
		t.Error("expected polling to continue after a failed poll")
	}
	if s.errMsg != "" {
		t.Error("poll failure must not surface an error")
	}
}

func TestCachedQuestionsHandOffDirectly(t *testing.T) {
	svc := &mockService{}
	s, seenRepo, _ := testScreen(svc)
	activate(t, s)
	s.ctrl.RequestEnd()

	_, cmd := s.Update(sessionCompletedMsg{TestID: 55, Questions: testQuestions(), Cached: true})
	if cmd == nil {
		t.Fatal("expected handoff command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*mocktest.TestScreen); !ok {
		t.Fatalf("got %T, want *mocktest.TestScreen", replace.Screen)
	}

	// No second fetch on the cached path.
	if svc.startTestCalls != 0 {
		t.Errorf("start-test calls = %d, want 0", svc.startTestCalls)
	}

	// Delivered ids registered for future exclusion.
	if got := seenRepo.marked[7]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("marked ids = %v, want [1 2]", got)
	}
}

func TestEmptyCompletionFallsBackToFetch(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)
	s.ctrl.RequestEnd()

	_, cmd := s.Update(sessionCompletedMsg{Questions: nil, Cached: false})
	if cmd == nil {
		t.Fatal("expected fallback fetch command")
	}
	if !s.fetching {
		t.Error("expected fallback fetch in flight")
	}
}

func TestCompletionFailureFallsBackToFetch(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)
	s.ctrl.RequestEnd()

	_, cmd := s.Update(sessionCompletedMsg{Err: errors.New("timeout")})
	if cmd == nil {
		t.Fatal("expected fallback fetch command")
	}
	if s.errMsg != "" {
		t.Error("completion failure is recoverable, not a surfaced error")
	}
}

func TestFallbackFetchFailureIsRetryable(t *testing.T) {
	svc := &mockService{startTestErr: errors.New("unreachable")}
	s, _, _ := testScreen(svc)
	activate(t, s)
	s.ctrl.RequestEnd()
	s.Update(sessionCompletedMsg{Err: errors.New("timeout")})

	s.Update(testReadyMsg{Err: errors.New("unreachable")})
	if s.errMsg == "" || !s.errRetry {
		t.Fatal("expected retryable error state")
	}

	// R retries the fetch.
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Error("expected retry command")
	}
	if s.errMsg != "" {
		t.Error("expected error cleared on retry")
	}
}

func TestEmptyQuestionSetIsDeadEnd(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)
	activate(t, s)
	s.ctrl.RequestEnd()

	_, cmd := s.Update(testReadyMsg{TestID: 55, Questions: nil})
	if cmd != nil {
		t.Error("expected no handoff for an empty set")
	}
	if !s.noQuestions {
		t.Error("expected the hard-empty dead end")
	}

	var scr screen.Screen
	scr, cmd = s.Update(keyPress('x'))
	_ = scr
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected pop back from the dead end")
	}
}

func TestViewStates(t *testing.T) {
	svc := &mockService{}
	s, _, _ := testScreen(svc)

	if s.View(80, 24) == "" {
		t.Error("expected starting view")
	}

	activate(t, s)
	if s.View(80, 24) == "" {
		t.Error("expected active view")
	}

	s.errMsg = "bad"
	if s.View(80, 24) == "" {
		t.Error("expected error view")
	}
}
