package mocktest

import (
	"time"

	"github.com/abhisek/prepdeck/internal/api"
)

// stopwatchTickMsg is sent every second to advance the attempt stopwatch.
type stopwatchTickMsg time.Time

// submitResultMsg is sent when the submit request resolves.
type submitResultMsg struct {
	Result *api.TestResult
	Err    error
}
