package loop

import (
	"errors"
	"testing"
	"time"
)

func TestRunFramesCountsAndDelta(t *testing.T) {
	l := New(WithFixedStep(16 * time.Millisecond))

	var total time.Duration
	calls := 0
	l.OnFrame(func(dt time.Duration) error {
		total += dt
		calls++
		return nil
	})

	if err := l.RunFrames(10); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if calls != 10 || l.Frames() != 10 {
		t.Errorf("frames: calls=%d Frames()=%d, want 10", calls, l.Frames())
	}
	if total != 160*time.Millisecond {
		t.Errorf("total dt: got %v, want 160ms", total)
	}
}

func TestCallbacksRunInOrder(t *testing.T) {
	l := New()
	var order []string
	l.OnFrame(func(time.Duration) error { order = append(order, "tween"); return nil })
	l.OnFrame(func(time.Duration) error { order = append(order, "render"); return nil })

	if err := l.RunFrames(1); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if len(order) != 2 || order[0] != "tween" || order[1] != "render" {
		t.Errorf("order: got %v", order)
	}
}

func TestStopEndsRun(t *testing.T) {
	l := New(WithFixedStep(time.Millisecond))
	l.OnFrame(func(time.Duration) error {
		if l.Frames() == 4 {
			l.Stop()
		}
		return nil
	})

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 5 {
		t.Errorf("frames: got %d, want 5", l.Frames())
	}
	if !l.Stopped() {
		t.Error("expected Stopped after Stop")
	}
}

func TestRunClearsStop(t *testing.T) {
	l := New()
	l.Stop()

	calls := 0
	l.OnFrame(func(time.Duration) error { calls++; return nil })
	if err := l.RunFrames(3); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if calls != 3 {
		t.Errorf("a stop before Run must not carry over: calls=%d", calls)
	}
}

func TestErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		ret     error
		wantErr error
	}{
		{"stop sentinel", ErrStop, nil},
		{"wrapped stop", errors.Join(ErrStop), nil},
		{"failure", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			second := false
			l.OnFrame(func(time.Duration) error { return tt.ret })
			l.OnFrame(func(time.Duration) error { second = true; return nil })

			err := l.Run()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Run: unexpected error %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Run: got %v, want %v", err, tt.wantErr)
			}
			if second {
				t.Error("callbacks after a failing one must not run")
			}
			if l.Frames() != 1 {
				t.Errorf("frames: got %d, want 1", l.Frames())
			}
		})
	}
}

func TestFPSLimitSleeps(t *testing.T) {
	l := New(WithFPSLimit(50))

	clock := time.Unix(0, 0)
	l.now = func() time.Time { return clock }
	var slept time.Duration
	l.sleep = func(d time.Duration) {
		slept += d
		clock = clock.Add(d)
	}

	l.OnFrame(func(time.Duration) error {
		clock = clock.Add(5 * time.Millisecond)
		return nil
	})

	if err := l.RunFrames(4); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if slept != 4*15*time.Millisecond {
		t.Errorf("slept: got %v, want 60ms", slept)
	}
}

func TestRunFramesNonPositive(t *testing.T) {
	l := New()
	l.OnFrame(func(time.Duration) error {
		t.Fatal("no frame expected")
		return nil
	})
	if err := l.RunFrames(0); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
}
