package timer

import "testing"

func TestFullRunCompletesExactlyOnce(t *testing.T) {
	for _, mins := range []int{5, 45, 120} {
		total := mins * 60
		c := New(total)

		fires := 0
		for i := 0; i < total; i++ {
			_, completed := c.Tick()
			if completed {
				fires++
			}
		}

		if c.Remaining() != 0 {
			t.Errorf("%d mins: remaining = %d, want 0", mins, c.Remaining())
		}
		if fires != 1 {
			t.Errorf("%d mins: completion fired %d times, want 1", mins, fires)
		}

		// Extra ticks after completion never re-fire.
		for i := 0; i < 5; i++ {
			if _, completed := c.Tick(); completed {
				t.Errorf("%d mins: completion re-fired after reaching zero", mins)
			}
		}
	}
}

func TestPauseFreezesRemaining(t *testing.T) {
	c := New(60)
	c.Tick()
	c.Tick()

	c.Pause()
	for i := 0; i < 10; i++ {
		remaining, completed := c.Tick()
		if remaining != 58 {
			t.Fatalf("remaining = %d while paused, want 58", remaining)
		}
		if completed {
			t.Fatal("completion fired while paused")
		}
	}

	c.Resume()
	if remaining, _ := c.Tick(); remaining != 57 {
		t.Fatalf("remaining after resume = %d, want 57", remaining)
	}
}

func TestPauseResumeDoesNotChangeElapsedAtCompletion(t *testing.T) {
	run := func(pauseAt, pauseTicks int) int {
		c := New(300)
		ticks := 0
		for !c.Completed() {
			if c.ElapsedSeconds() == pauseAt && !c.Paused() && pauseTicks > 0 {
				c.Pause()
				for i := 0; i < pauseTicks; i++ {
					c.Tick()
				}
				c.Resume()
			}
			c.Tick()
			ticks++
			if ticks > 10000 {
				t.Fatal("countdown never completed")
			}
		}
		return c.ElapsedSeconds()
	}

	uninterrupted := run(0, 0)
	interrupted := run(120, 30)
	if uninterrupted != interrupted {
		t.Errorf("elapsed at completion: uninterrupted %d, with pause %d", uninterrupted, interrupted)
	}
}

func TestPauseAtZeroSuppressesCompletion(t *testing.T) {
	c := New(1)
	c.Pause()

	for i := 0; i < 3; i++ {
		if _, completed := c.Tick(); completed {
			t.Fatal("completion fired while paused at the boundary")
		}
	}

	c.Resume()
	if _, completed := c.Tick(); !completed {
		t.Fatal("completion did not fire after resume")
	}
}

func TestElapsedMinutesNeverZero(t *testing.T) {
	tests := []struct {
		total int
		ticks int
		want  int
	}{
		{2700, 0, 1},    // ended instantly: report 1, never 0
		{2700, 59, 1},   // under a minute
		{2700, 60, 1},   // exactly one minute
		{2700, 120, 2},  // two minutes
		{2700, 2700, 45}, // full run
	}

	for _, tt := range tests {
		c := New(tt.total)
		for i := 0; i < tt.ticks; i++ {
			c.Tick()
		}
		if got := c.ElapsedMinutes(); got != tt.want {
			t.Errorf("total=%d ticks=%d: ElapsedMinutes() = %d, want %d", tt.total, tt.ticks, got, tt.want)
		}
	}
}
