package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/mocktest"
	sess "github.com/abhisek/prepdeck/internal/session"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/timer"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// Options configures a SessionScreen.
type Options struct {
	Service       api.Service
	SeenRepo      store.SeenQuestionRepo
	EventRepo     store.EventRepo
	Logger        zerolog.Logger
	TopicID       int
	DurationMins  int
	PollInterval  time.Duration
	QuestionCount int // fallback fetch size
}

// SessionScreen drives one study session: the countdown, the generation
// poller, and the handoff into the mock test.
type SessionScreen struct {
	svc       api.Service
	seenRepo  store.SeenQuestionRepo
	eventRepo store.EventRepo
	log       zerolog.Logger

	ctrl      *sess.Controller
	countdown *timer.Countdown

	pollInterval  time.Duration
	questionCount int

	spin    components.Spinner
	confirm *components.Confirm

	// fetching is set while the fallback question fetch is in flight, so a
	// failed fetch can be retried without touching the session state.
	fetching bool

	errMsg      string
	errRetry    bool // true when "r" re-runs the fallback fetch
	noQuestions bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen in the starting state.
func New(opts Options) *SessionScreen {
	return &SessionScreen{
		svc:           opts.Service,
		seenRepo:      opts.SeenRepo,
		eventRepo:     opts.EventRepo,
		log:           opts.Logger,
		ctrl:          sess.NewController(opts.TopicID, opts.DurationMins),
		countdown:     timer.New(opts.DurationMins * 60),
		pollInterval:  opts.PollInterval,
		questionCount: opts.QuestionCount,
		spin:          components.NewSpinner("Starting session..."),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startSession(),
		s.spin.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Study Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		if s.errRetry {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Retry"}}, hints...)
		}
		return hints
	}
	if s.noQuestions {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirm != nil {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep studying"},
		}
	}
	switch s.ctrl.State() {
	case sess.StateActive:
		return []layout.KeyHint{
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "End early"},
		}
	case sess.StatePaused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "End early"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case pollTickMsg:
		return s.handlePollTick()

	case generationMsg:
		return s.handleGeneration(msg)

	case sessionCompletedMsg:
		return s.handleCompleted(msg)

	case testReadyMsg:
		return s.handleTestReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return s, cmd
}

// startSession creates the server session, priming generation away from
// previously delivered questions.
func (s *SessionScreen) startSession() tea.Cmd {
	topicID := s.ctrl.TopicID()
	durationMins := s.ctrl.PlannedMins()
	return func() tea.Msg {
		ctx := context.Background()

		seen, err := s.seenRepo.Seen(ctx, topicID)
		if err != nil {
			// The registry is advisory. An unreadable registry degrades to
			// an empty exclusion list, never blocks the session.
			s.log.Warn().Err(err).Int("topic_id", topicID).Msg("seen registry read failed")
			seen = nil
		}

		resp, err := s.svc.StartSession(ctx, api.StartSessionRequest{
			TopicID:             topicID,
			DurationMins:        durationMins,
			PreviousQuestionIDs: seen,
		})
		if err != nil {
			return sessionStartedMsg{Err: err}
		}
		return sessionStartedMsg{SessionID: resp.SessionID}
	}
}

func (s *SessionScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Start failure is fatal to the whole flow.
		s.ctrl.Fail(msg.Err)
		s.errMsg = msg.Err.Error()
		s.log.Error().Err(msg.Err).Int("topic_id", s.ctrl.TopicID()).Msg("start session failed")
		return s, nil
	}

	if err := s.ctrl.Begin(msg.SessionID); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.log.Info().
		Int("session_id", msg.SessionID).
		Int("topic_id", s.ctrl.TopicID()).
		Int("planned_mins", s.ctrl.PlannedMins()).
		Msg("session started")

	s.appendSessionEvent("start", 0, "")

	return s, tea.Batch(tickCmd(), s.pollCmd())
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	state := s.ctrl.State()
	if state != sess.StateActive && state != sess.StatePaused {
		return s, nil
	}

	_, completed := s.countdown.Tick()
	if completed && s.ctrl.RequestEnd() {
		return s, s.completeSession()
	}

	return s, tickCmd()
}

func (s *SessionScreen) handlePollTick() (screen.Screen, tea.Cmd) {
	if s.ctrl.GenerationDone() || s.ctrl.State().Terminal() {
		return s, nil
	}

	sessionID := s.ctrl.SessionID()
	fetch := func() tea.Msg {
		status, err := s.svc.GenerationStatus(context.Background(), sessionID)
		if err != nil {
			return generationMsg{Err: err}
		}
		return generationMsg{Status: status.Status, Count: status.GeneratedCount}
	}

	return s, fetch
}

func (s *SessionScreen) handleGeneration(msg generationMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Poll failures never surface; the next poll may succeed.
		s.log.Warn().Err(msg.Err).Int("session_id", s.ctrl.SessionID()).Msg("generation poll failed")
	} else {
		s.ctrl.UpdateGeneration(msg.Status, msg.Count)
	}

	if s.ctrl.GenerationDone() || s.ctrl.State().Terminal() {
		return s, nil
	}
	return s, s.pollCmd()
}

// requestEnd claims the end transition. Timer expiry and the manual path
// both come through the controller guard, so only one completes.
func (s *SessionScreen) requestEnd() tea.Cmd {
	if !s.ctrl.RequestEnd() {
		return nil
	}
	return s.completeSession()
}

// completeSession reports the studied minutes and collects the question
// set when the server has one ready.
func (s *SessionScreen) completeSession() tea.Cmd {
	s.spin = components.NewSpinner("Wrapping up...")
	sessionID := s.ctrl.SessionID()
	actualMins := s.countdown.ElapsedMinutes()

	s.appendSessionEvent("end", actualMins, "completed")

	return tea.Batch(s.spin.Init(), func() tea.Msg {
		resp, err := s.svc.CompleteSession(context.Background(), sessionID, api.CompleteSessionRequest{
			ActualDurationMins: actualMins,
		})
		if err != nil {
			return sessionCompletedMsg{Err: err}
		}
		return sessionCompletedMsg{Questions: resp.Questions, Cached: resp.Cached, TestID: resp.TestID}
	})
}

func (s *SessionScreen) handleCompleted(msg sessionCompletedMsg) (screen.Screen, tea.Cmd) {
	s.ctrl.Complete()

	if msg.Err != nil {
		// Completion failure is recoverable: the question set is fetched
		// independently.
		s.log.Warn().Err(msg.Err).Int("session_id", s.ctrl.SessionID()).Msg("complete session failed, falling back to direct fetch")
		return s, s.fetchQuestions()
	}

	if len(msg.Questions) == 0 {
		// Valid degraded response. Same fallback.
		s.log.Info().Int("session_id", s.ctrl.SessionID()).Msg("no questions on completion, fetching directly")
		return s, s.fetchQuestions()
	}

	s.log.Info().
		Int("session_id", s.ctrl.SessionID()).
		Int("test_id", msg.TestID).
		Bool("cached", msg.Cached).
		Int("questions", len(msg.Questions)).
		Msg("session completed with question set")

	return s.handoff(msg.TestID, msg.Questions)
}

// fetchQuestions is the fallback path: mint a test directly from the
// topic when completion did not deliver a usable set.
func (s *SessionScreen) fetchQuestions() tea.Cmd {
	if s.fetching {
		return nil
	}
	s.fetching = true
	s.spin = components.NewSpinner("Fetching questions...")

	req := api.StartTestRequest{
		TopicID:       s.ctrl.TopicID(),
		SessionID:     s.ctrl.SessionID(),
		QuestionCount: s.questionCount,
	}
	return tea.Batch(s.spin.Init(), func() tea.Msg {
		resp, err := s.svc.StartTest(context.Background(), req)
		if err != nil {
			return testReadyMsg{Err: err}
		}
		return testReadyMsg{TestID: resp.TestID, Questions: resp.Questions}
	})
}

func (s *SessionScreen) handleTestReady(msg testReadyMsg) (screen.Screen, tea.Cmd) {
	s.fetching = false

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.errRetry = true
		s.log.Error().Err(msg.Err).Int("session_id", s.ctrl.SessionID()).Msg("fallback question fetch failed")
		return s, nil
	}

	s.errMsg = ""
	s.errRetry = false
	return s.handoff(msg.TestID, msg.Questions)
}

// handoff binds the question set to an attempt and replaces this screen
// with the mock test.
func (s *SessionScreen) handoff(testID int, questions []api.Question) (screen.Screen, tea.Cmd) {
	attempt, err := exam.NewAttempt(testID, s.ctrl.SessionID(), questions)
	if err != nil {
		// Zero questions from an authoritative source is a dead end, shown
		// explicitly rather than as an empty test.
		s.noQuestions = true
		s.log.Warn().Int("session_id", s.ctrl.SessionID()).Msg("question set empty, nothing to answer")
		return s, nil
	}

	// Register delivered ids so future sessions bias away from them.
	ids := attempt.QuestionIDs()
	topicID := s.ctrl.TopicID()
	if err := s.seenRepo.MarkSeen(context.Background(), topicID, ids); err != nil {
		s.log.Warn().Err(err).Int("topic_id", topicID).Msg("seen registry write failed")
	}

	next := mocktest.New(mocktest.Options{
		Service:   s.svc,
		EventRepo: s.eventRepo,
		Logger:    s.log,
		TopicID:   topicID,
		Attempt:   attempt,
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if s.errRetry && (key == "r" || key == "R") {
			s.errMsg = ""
			return s, s.fetchQuestions()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.noQuestions {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirm != nil {
		c, _ := s.confirm.Update(msg)
		s.confirm = &c
		if c.Decided() {
			accepted := c.Accepted()
			s.confirm = nil
			if accepted {
				return s, s.requestEnd()
			}
		}
		return s, nil
	}

	switch s.ctrl.State() {
	case sess.StateActive, sess.StatePaused:
		switch key {
		case "p", "P", " ":
			if s.ctrl.State() == sess.StatePaused {
				s.ctrl.Resume()
				s.countdown.Resume()
			} else {
				s.ctrl.Pause()
				s.countdown.Pause()
			}
			return s, nil
		case "esc", "e", "E":
			c := components.NewConfirm("End session early?", "Your mock test will start with whatever is ready.")
			s.confirm = &c
			return s, nil
		}
	}

	return s, nil
}

// appendSessionEvent persists a lifecycle event. Failures are logged and
// swallowed; local history never blocks the session.
func (s *SessionScreen) appendSessionEvent(action string, actualMins int, outcome string) {
	err := s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:   s.ctrl.SessionID(),
		TopicID:     s.ctrl.TopicID(),
		Action:      action,
		PlannedMins: s.ctrl.PlannedMins(),
		ActualMins:  actualMins,
		Outcome:     outcome,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("session event append failed")
	}
}

// pollCmd schedules the next generation-status poll.
func (s *SessionScreen) pollCmd() tea.Cmd {
	return tea.Tick(s.pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
