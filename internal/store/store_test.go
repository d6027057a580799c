package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeenRegistryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SeenRepo()
	ctx := context.Background()

	ids, err := repo.Seen(ctx, 7)
	if err != nil {
		t.Fatalf("seen on empty registry: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("fresh registry has %d ids", len(ids))
	}

	if err := repo.MarkSeen(ctx, 7, []int{3, 1, 2}); err != nil {
		t.Fatalf("mark seen: %v", err)
	}
	// Re-delivery of already-registered ids is not an error.
	if err := repo.MarkSeen(ctx, 7, []int{2, 3, 4}); err != nil {
		t.Fatalf("mark seen with duplicates: %v", err)
	}

	ids, err = repo.Seen(ctx, 7)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	want := []int{1, 2, 3, 4}
	if len(ids) != len(want) {
		t.Fatalf("seen = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("seen = %v, want %v", ids, want)
		}
	}

	// Registry is per-topic.
	ids, err = repo.Seen(ctx, 8)
	if err != nil {
		t.Fatalf("seen other topic: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("topic 8 registry has %d ids, want 0", len(ids))
	}
}

func TestEventHistoryOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: 101, TopicID: 7, Action: "start", PlannedMins: 45,
	}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: 101, TopicID: 7, Action: "end", PlannedMins: 45, ActualMins: 45, Outcome: "completed",
	}); err != nil {
		t.Fatalf("append end: %v", err)
	}
	if err := repo.AppendTestEvent(ctx, TestEventData{
		TestID: 55, SessionID: 101, TopicID: 7, QuestionCount: 10,
		CorrectCount: 9, IncorrectCount: 1, Score: 90, StarEarned: true, TotalTimeSecs: 612,
	}); err != nil {
		t.Fatalf("append test: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d session events, want 2", len(sessions))
	}
	if sessions[0].Action != "end" {
		t.Fatalf("newest session event action = %q, want end", sessions[0].Action)
	}

	tests, err := repo.RecentTests(ctx, 10)
	if err != nil {
		t.Fatalf("recent tests: %v", err)
	}
	if len(tests) != 1 {
		t.Fatalf("got %d test events, want 1", len(tests))
	}
	if !tests[0].StarEarned || tests[0].Score != 90 {
		t.Fatalf("test event = %+v", tests[0])
	}

	// The test event sequences after both session events.
	if tests[0].Sequence <= sessions[0].Sequence {
		t.Fatalf("test sequence %d not after session sequence %d", tests[0].Sequence, sessions[0].Sequence)
	}
}
