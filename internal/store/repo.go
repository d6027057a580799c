package store

import (
	"context"
	"time"
)

// SeenQuestionRepo is the per-topic registry of previously delivered
// question ids. Appends are idempotent; the registry only ever grows.
type SeenQuestionRepo interface {
	// Seen returns all question ids delivered for a topic, ascending.
	Seen(ctx context.Context, topicID int) ([]int, error)

	// MarkSeen appends delivered ids for a topic. Already-registered ids
	// are skipped silently.
	MarkSeen(ctx context.Context, topicID int, questionIDs []int) error

	// Clear drops the whole registry.
	Clear(ctx context.Context) error
}

// SessionEventData captures one study session lifecycle event.
type SessionEventData struct {
	SessionID   int
	TopicID     int
	Action      string // "start" or "end"
	PlannedMins int
	ActualMins  int    // on end only
	Outcome     string // "completed" or "failed", on end only
}

// SessionEventRecord is a stored session event with its ordering fields.
type SessionEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// TestEventData captures one submitted mock test and its scored result.
type TestEventData struct {
	TestID         int
	SessionID      int // 0 for standalone tests
	TopicID        int
	QuestionCount  int
	CorrectCount   int
	IncorrectCount int
	Score          float64
	StarEarned     bool
	TotalTimeSecs  int
}

// TestEventRecord is a stored test event with its ordering fields.
type TestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	TestEventData
}

// EventRepo provides append and query access to local history events.
// Appends are best-effort from the caller's perspective: failures are
// logged, never surfaced into the lifecycle.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendTestEvent(ctx context.Context, data TestEventData) error

	// RecentSessions returns the newest session events, descending by
	// sequence. limit <= 0 means no limit.
	RecentSessions(ctx context.Context, limit int) ([]SessionEventRecord, error)

	// RecentTests returns the newest test events, descending by sequence.
	RecentTests(ctx context.Context, limit int) ([]TestEventRecord, error)

	// Clear drops all history events.
	Clear(ctx context.Context) error
}
