// Package session implements the study session state machine:
//
//	Starting → Active ⇄ Paused → Ending → Completed | Failed
//
// The controller holds no goroutines and performs no I/O. The owning screen
// drives it from the event loop and makes the network calls; every state
// transition is a plain method call, so the timeout-vs-manual-end race
// collapses into one atomic guard check.
package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/api"
)

// ErrNotStarting is returned when Begin is called outside StateStarting.
var ErrNotStarting = errors.New("session already started")

// Controller owns one study session from start to completion.
type Controller struct {
	topicID     int
	plannedMins int

	state     State
	sessionID int
	err       error

	// ending is the single guard for the → Ending transition. Timer expiry
	// and a manual end tap can race within one event loop cycle; whichever
	// checks first wins, and the loser sees false.
	ending bool

	genStatus api.JobStatus
	genCount  int
}

// NewController creates a controller in StateStarting for one topic.
func NewController(topicID, plannedMins int) *Controller {
	return &Controller{
		topicID:     topicID,
		plannedMins: plannedMins,
		state:       StateStarting,
		genStatus:   api.JobPending,
	}
}

// Begin binds the server-assigned session id and activates the session.
func (c *Controller) Begin(sessionID int) error {
	if c.state != StateStarting {
		return fmt.Errorf("begin in state %s: %w", c.state, ErrNotStarting)
	}
	c.sessionID = sessionID
	c.state = StateActive
	return nil
}

// Fail moves the session to the terminal failed state. Start failure is
// fatal to the whole flow; the screen surfaces err and navigates back.
func (c *Controller) Fail(err error) {
	if c.state.Terminal() {
		return
	}
	c.state = StateFailed
	c.err = err
}

// Pause freezes the session. Local only; the backend is not informed.
func (c *Controller) Pause() {
	if c.state == StateActive {
		c.state = StatePaused
	}
}

// Resume unfreezes a paused session.
func (c *Controller) Resume() {
	if c.state == StatePaused {
		c.state = StateActive
	}
}

// RequestEnd claims the single Active/Paused → Ending transition. It
// returns true for exactly one caller; the timer-expiry path and the
// manual-end path both call it and only the winner issues the
// complete-session request.
func (c *Controller) RequestEnd() bool {
	if c.ending {
		return false
	}
	if c.state != StateActive && c.state != StatePaused {
		return false
	}
	c.ending = true
	c.state = StateEnding
	return true
}

// Complete marks the session terminally completed.
func (c *Controller) Complete() {
	if c.state == StateEnding {
		c.state = StateCompleted
	}
}

// UpdateGeneration records polled generation progress. The job is
// immutable once completed; late or out-of-order polls are ignored.
func (c *Controller) UpdateGeneration(status api.JobStatus, count int) {
	if c.genStatus.Done() {
		return
	}
	c.genStatus = status
	c.genCount = count
}

// GenerationDone reports whether polling should stop.
func (c *Controller) GenerationDone() bool {
	return c.genStatus.Done()
}

// GenerationStatus returns the last observed job status.
func (c *Controller) GenerationStatus() api.JobStatus {
	return c.genStatus
}

// GeneratedCount returns the last observed generated-question count.
func (c *Controller) GeneratedCount() int {
	return c.genCount
}

func (c *Controller) State() State     { return c.state }
func (c *Controller) SessionID() int   { return c.sessionID }
func (c *Controller) TopicID() int     { return c.topicID }
func (c *Controller) PlannedMins() int { return c.plannedMins }

// Err returns the failure cause, nil unless StateFailed.
func (c *Controller) Err() error { return c.err }
