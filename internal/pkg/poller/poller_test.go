package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTick_DrivesCyclesManually(t *testing.T) {
	var calls atomic.Int32
	task := New("test", time.Hour, func(ctx context.Context) (bool, error) {
		return calls.Add(1) >= 3, nil
	}, zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		done, err := task.Tick(ctx)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if done {
			t.Fatalf("tick %d: finished too early", i)
		}
	}

	done, err := task.Tick(ctx)
	if err != nil {
		t.Fatalf("final tick: %v", err)
	}
	if !done {
		t.Fatal("expected task done after third cycle")
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 cycles, got %d", calls.Load())
	}
}

func TestStart_RunsImmediateCycleAndStopsWhenDone(t *testing.T) {
	var calls atomic.Int32
	task := New("test", time.Hour, func(ctx context.Context) (bool, error) {
		calls.Add(1)
		return true, nil
	}, zerolog.Nop())

	task.Start(context.Background())

	// The first cycle runs immediately and reports done; the loop must exit
	// without waiting for the interval.
	deadline := time.After(2 * time.Second)
	for task.Running() {
		select {
		case <-deadline:
			t.Fatal("task still running after done cycle")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly 1 cycle, got %d", calls.Load())
	}
}

func TestStart_Idempotent(t *testing.T) {
	block := make(chan struct{})
	task := New("test", time.Hour, func(ctx context.Context) (bool, error) {
		select {
		case <-block:
		case <-ctx.Done():
		}
		return false, nil
	}, zerolog.Nop())

	ctx := context.Background()
	task.Start(ctx)
	task.Start(ctx) // second start is a no-op

	if !task.Running() {
		t.Fatal("task should be running")
	}
	close(block)
	task.Stop()
	if task.Running() {
		t.Fatal("task still running after Stop")
	}
}

func TestStop_WhenNeverStarted(t *testing.T) {
	task := New("test", time.Second, func(ctx context.Context) (bool, error) {
		return true, nil
	}, zerolog.Nop())
	task.Stop() // must not panic or block
}

func TestErrorsKeepPolling(t *testing.T) {
	var calls atomic.Int32
	task := New("test", time.Hour, func(ctx context.Context) (bool, error) {
		if calls.Add(1) == 1 {
			return false, errors.New("transient")
		}
		return true, nil
	}, zerolog.Nop())

	ctx := context.Background()
	if done, _ := task.Tick(ctx); done {
		t.Fatal("errored cycle must not finish the task")
	}
	done, err := task.Tick(ctx)
	if err != nil || !done {
		t.Fatalf("expected recovery on next cycle, done=%v err=%v", done, err)
	}
}
