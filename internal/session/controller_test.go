package session

import (
	"errors"
	"testing"

	"github.com/abhisek/prepdeck/internal/api"
)

func activeController(t *testing.T) *Controller {
	t.Helper()
	c := NewController(7, 45)
	if err := c.Begin(101); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return c
}

func TestLifecycleHappyPath(t *testing.T) {
	c := NewController(7, 45)
	if c.State() != StateStarting {
		t.Fatalf("initial state = %s, want starting", c.State())
	}

	if err := c.Begin(101); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if c.State() != StateActive {
		t.Fatalf("state after begin = %s, want active", c.State())
	}
	if c.SessionID() != 101 {
		t.Fatalf("session id = %d, want 101", c.SessionID())
	}

	if !c.RequestEnd() {
		t.Fatal("first RequestEnd returned false")
	}
	if c.State() != StateEnding {
		t.Fatalf("state after end request = %s, want ending", c.State())
	}

	c.Complete()
	if c.State() != StateCompleted {
		t.Fatalf("state after complete = %s, want completed", c.State())
	}
	if !c.State().Terminal() {
		t.Fatal("completed state not terminal")
	}
}

func TestBeginTwiceRejected(t *testing.T) {
	c := activeController(t)
	if err := c.Begin(202); !errors.Is(err, ErrNotStarting) {
		t.Fatalf("second begin error = %v, want ErrNotStarting", err)
	}
	if c.SessionID() != 101 {
		t.Fatalf("session id changed to %d", c.SessionID())
	}
}

func TestPauseResumeToggle(t *testing.T) {
	c := activeController(t)

	c.Pause()
	if c.State() != StatePaused {
		t.Fatalf("state after pause = %s", c.State())
	}

	// Pause is local only and idempotent.
	c.Pause()
	if c.State() != StatePaused {
		t.Fatalf("state after double pause = %s", c.State())
	}

	c.Resume()
	if c.State() != StateActive {
		t.Fatalf("state after resume = %s", c.State())
	}
}

func TestEndingGuardWinsOnce(t *testing.T) {
	c := activeController(t)

	// Timer expiry and manual end racing within one loop cycle: exactly one
	// caller may perform the transition.
	wins := 0
	if c.RequestEnd() {
		wins++
	}
	if c.RequestEnd() {
		wins++
	}
	if wins != 1 {
		t.Fatalf("RequestEnd granted %d transitions, want 1", wins)
	}
}

func TestRequestEndFromPaused(t *testing.T) {
	c := activeController(t)
	c.Pause()
	if !c.RequestEnd() {
		t.Fatal("RequestEnd from paused returned false")
	}
	if c.State() != StateEnding {
		t.Fatalf("state = %s, want ending", c.State())
	}
}

func TestRequestEndBeforeBegin(t *testing.T) {
	c := NewController(7, 45)
	if c.RequestEnd() {
		t.Fatal("RequestEnd granted before the session started")
	}
}

func TestFailIsTerminal(t *testing.T) {
	c := NewController(7, 45)
	cause := errors.New("start-session unavailable")
	c.Fail(cause)

	if c.State() != StateFailed {
		t.Fatalf("state = %s, want failed", c.State())
	}
	if !errors.Is(c.Err(), cause) {
		t.Fatalf("err = %v, want %v", c.Err(), cause)
	}

	// Terminal: later transitions are ignored.
	c.Fail(errors.New("other"))
	if !errors.Is(c.Err(), cause) {
		t.Fatal("terminal failure cause was overwritten")
	}
	if c.RequestEnd() {
		t.Fatal("RequestEnd granted after failure")
	}
}

func TestGenerationImmutableAfterCompletion(t *testing.T) {
	c := activeController(t)

	c.UpdateGeneration(api.JobInProgress, 4)
	if c.GenerationDone() {
		t.Fatal("job done while in progress")
	}
	if c.GeneratedCount() != 4 {
		t.Fatalf("generated count = %d, want 4", c.GeneratedCount())
	}

	c.UpdateGeneration(api.JobCompleted, 10)
	if !c.GenerationDone() {
		t.Fatal("job not done after completed status")
	}

	// A late out-of-order poll must not regress the completed job.
	c.UpdateGeneration(api.JobInProgress, 6)
	if !c.GenerationDone() || c.GeneratedCount() != 10 {
		t.Fatalf("completed job mutated: done=%v count=%d", c.GenerationDone(), c.GeneratedCount())
	}
}
