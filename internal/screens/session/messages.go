package session

import (
	"time"

	"github.com/abhisek/prepdeck/internal/api"
)

// sessionStartedMsg is sent when the start-session request resolves.
type sessionStartedMsg struct {
	SessionID int
	Err       error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// pollTickMsg is sent at the configured poll cadence to check generation.
type pollTickMsg time.Time

// generationMsg carries one generation-status poll result. Errors here
// are logged and otherwise ignored; the poller keeps going.
type generationMsg struct {
	Status api.JobStatus
	Count  int
	Err    error
}

// sessionCompletedMsg is sent when the complete-session request resolves.
type sessionCompletedMsg struct {
	TestID    int
	Questions []api.Question
	Cached    bool
	Err       error
}

// testReadyMsg is sent when the fallback question fetch resolves.
type testReadyMsg struct {
	TestID    int
	Questions []api.Question
	Err       error
}
