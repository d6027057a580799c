// Package mocktest implements the test-answering screen: navigation over
// the question set, answer selection, and the guarded submission.
package mocktest

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/result"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// Options configures a TestScreen.
type Options struct {
	Service   api.Service
	EventRepo store.EventRepo
	Logger    zerolog.Logger
	TopicID   int
	Attempt   *exam.Attempt
}

// TestScreen drives one mock test attempt.
type TestScreen struct {
	svc       api.Service
	eventRepo store.EventRepo
	log       zerolog.Logger
	topicID   int

	attempt *exam.Attempt
	options components.OptionList
	confirm *components.Confirm
	spin    components.Spinner

	inFlight  bool
	submitErr string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a TestScreen over a bound attempt.
func New(opts Options) *TestScreen {
	t := &TestScreen{
		svc:       opts.Service,
		eventRepo: opts.EventRepo,
		log:       opts.Logger,
		topicID:   opts.TopicID,
		attempt:   opts.Attempt,
		spin:      components.NewSpinner("Submitting..."),
	}
	t.syncOptions()
	return t
}

func (t *TestScreen) Init() tea.Cmd {
	return tickCmd()
}

func (t *TestScreen) Title() string {
	return "Mock Test"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.submitErr != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry submit"},
			{Key: "Esc", Description: "Keep answering"},
		}
	}
	if t.confirm != nil {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	if t.inFlight {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←/→", Description: "Question"},
	}
	if t.attempt.AtLast() {
		hints = append(hints, layout.KeyHint{Key: "→/S", Description: "Finish"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Finish early"})
	}
	return hints
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stopwatchTickMsg:
		return t.handleTick()

	case submitResultMsg:
		return t.handleSubmitResult(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.inFlight {
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *TestScreen) handleTick() (screen.Screen, tea.Cmd) {
	if t.attempt.Submitted() {
		return t, nil
	}
	t.attempt.TickSecond()
	return t, tickCmd()
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.submitErr != "" {
		switch key {
		case "r", "R":
			t.submitErr = ""
			return t, t.submit()
		case "esc":
			// Answers are intact; keep answering until the next attempt.
			t.submitErr = ""
		}
		return t, nil
	}

	if t.confirm != nil {
		c, _ := t.confirm.Update(msg)
		t.confirm = &c
		if c.Decided() {
			accepted := c.Accepted()
			t.confirm = nil
			if accepted {
				return t, t.submit()
			}
		}
		return t, nil
	}

	if t.inFlight {
		return t, nil
	}

	switch key {
	case "left", "h":
		if t.attempt.Previous() {
			t.syncOptions()
		}
		return t, nil
	case "right", "l":
		if t.attempt.Next() {
			t.syncOptions()
		} else {
			// At the final question "next" becomes finish.
			t.openConfirm()
		}
		return t, nil
	case "s", "S":
		t.openConfirm()
		return t, nil
	}

	before := t.options.Chosen
	t.options, _ = t.options.Update(msg)
	if t.options.Chosen != before && t.options.Chosen != "" {
		t.applySelection(t.options.Chosen)
	}
	return t, nil
}

// applySelection records the chosen label on the attempt. Selection never
// auto-advances.
func (t *TestScreen) applySelection(label string) {
	q := t.attempt.Current()
	if err := t.attempt.Select(q.ID, label); err != nil {
		t.log.Warn().Err(err).Int("question_id", q.ID).Msg("answer selection rejected")
	}
}

// openConfirm shows the advisory pre-submit prompt. Unanswered questions
// never block submission.
func (t *TestScreen) openConfirm() {
	answered := t.attempt.AnsweredCount()
	total := t.attempt.Len()
	detail := ""
	if answered < total {
		detail = fmt.Sprintf("%d of %d questions are unanswered and will count as skipped.", total-answered, total)
	}
	c := components.NewConfirm(
		fmt.Sprintf("Submit test? (%d/%d answered)", answered, total),
		detail,
	)
	t.confirm = &c
}

// submit claims the single-flight slot and sends the answers. A second
// submission while one is in flight is refused by the attempt.
func (t *TestScreen) submit() tea.Cmd {
	req, key, ok := t.attempt.BeginSubmit()
	if !ok {
		return nil
	}
	t.inFlight = true
	t.spin = components.NewSpinner("Submitting...")

	testID := t.attempt.TestID()
	return tea.Batch(t.spin.Init(), func() tea.Msg {
		res, err := t.svc.SubmitTest(context.Background(), testID, key, req)
		if err != nil {
			return submitResultMsg{Err: err}
		}
		return submitResultMsg{Result: res}
	})
}

func (t *TestScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	t.inFlight = false

	if msg.Err != nil {
		// Release the guard; answers stay intact and the same idempotency
		// key covers the retry.
		t.attempt.FailSubmit()
		t.submitErr = msg.Err.Error()
		t.log.Error().Err(msg.Err).Int("test_id", t.attempt.TestID()).Msg("submit failed")
		return t, nil
	}

	t.attempt.FinishSubmit(msg.Result)
	t.log.Info().
		Int("test_id", t.attempt.TestID()).
		Float64("score", msg.Result.Score).
		Bool("star", msg.Result.StarEarned).
		Msg("test scored")

	t.appendTestEvent(msg.Result)

	next := result.New(msg.Result, t.attempt.Len(), t.attempt.ElapsedSeconds())
	return t, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// appendTestEvent persists the scored outcome to local history. Failures
// are logged and swallowed.
func (t *TestScreen) appendTestEvent(res *api.TestResult) {
	err := t.eventRepo.AppendTestEvent(context.Background(), store.TestEventData{
		TestID:         t.attempt.TestID(),
		SessionID:      t.attempt.SessionID(),
		TopicID:        t.topicID,
		QuestionCount:  t.attempt.Len(),
		CorrectCount:   res.CorrectCount,
		IncorrectCount: res.IncorrectCount,
		Score:          res.Score,
		StarEarned:     res.StarEarned,
		TotalTimeSecs:  t.attempt.ElapsedSeconds(),
	})
	if err != nil {
		t.log.Warn().Err(err).Int("test_id", t.attempt.TestID()).Msg("test event append failed")
	}
}

// syncOptions rebuilds the option list for the question at the cursor,
// restoring any previously recorded answer.
func (t *TestScreen) syncOptions() {
	q := t.attempt.Current()
	opts := make([]components.Option, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, components.Option{Label: o.Label, Text: o.Text})
	}
	chosen, _ := t.attempt.Answer(q.ID)
	t.options = components.NewOptionList(opts, chosen)
}

// tickCmd returns a 1-second stopwatch tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return stopwatchTickMsg(ts)
	})
}
