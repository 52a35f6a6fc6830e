// Package poller provides a small periodic task with an explicit start/stop
// lifecycle. Unlike a free-running ticker, a Task can be driven manually via
// Tick, which keeps time out of tests, and its poll function decides when the
// task is finished, so callers can bind the lifecycle to a condition such as
// "at least one job is still running".
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Func performs one poll cycle. Returning done=true stops the task; errors are
// logged and the task keeps polling.
type Func func(ctx context.Context) (done bool, err error)

// Task runs a Func on a fixed interval until it reports done or the context
// is cancelled.
type Task struct {
	name     string
	interval time.Duration
	fn       Func
	logger   zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

// New creates a task. A non-positive interval defaults to 5 seconds.
func New(name string, interval time.Duration, fn Func, logger zerolog.Logger) *Task {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Task{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
	}
}

// Start launches the polling loop in a goroutine. Starting an already running
// task is a no-op, so callers may invoke it on every trigger.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.stopped = make(chan struct{})

	go t.run(ctx)
}

// Stop cancels the loop and waits for it to exit. Safe to call when not
// running.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	stopped := t.stopped
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// Running reports whether the loop is active
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Tick runs a single poll cycle synchronously. It is the deterministic
// equivalent of one ticker firing and is intended for tests and for callers
// that want an immediate cycle without waiting out the interval.
func (t *Task) Tick(ctx context.Context) (bool, error) {
	return t.fn(ctx)
}

func (t *Task) run(ctx context.Context) {
	defer t.finish()

	t.logger.Info().Str("task", t.name).Dur("interval", t.interval).Msg("Polling task started")

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// First cycle runs immediately rather than one interval in.
	if t.cycle(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Str("task", t.name).Msg("Polling task cancelled")
			return
		case <-ticker.C:
			if t.cycle(ctx) {
				return
			}
		}
	}
}

// cycle runs fn once and reports whether the loop should end
func (t *Task) cycle(ctx context.Context) bool {
	done, err := t.fn(ctx)
	if err != nil {
		t.logger.Error().Err(err).Str("task", t.name).Msg("Poll cycle failed")
		return false
	}
	if done {
		t.logger.Info().Str("task", t.name).Msg("Polling task finished")
	}
	return done
}

func (t *Task) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	close(t.stopped)
}
