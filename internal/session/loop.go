package session

import (
	"context"
	"time"

	"k8s.io/utils/clock"

	"bankist/internal/logger"
)

// idleWake bounds how long the loop sleeps when nothing is scheduled.
const idleWake = time.Minute

type request struct {
	fn   func(*Controller) error
	done chan error
}

// Loop gives a Controller a goroutine of its own. Calls submitted with Do
// run one at a time on that goroutine, interleaved with the timer ticks
// and scheduled tasks the controller asks to be woken for.
type Loop struct {
	ctrl     *Controller
	clock    clock.Clock
	requests chan request
	stopped  chan struct{}
}

// NewLoop creates a loop for ctrl. The controller's collaborators must
// read time from the same clock.
func NewLoop(ctrl *Controller, clk clock.Clock) *Loop {
	return &Loop{
		ctrl:     ctrl,
		clock:    clk,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run processes requests until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)
	logger.Get().Debug("session loop started")

	for {
		now := l.clock.Now()
		l.ctrl.Advance(now)

		wait := idleWake
		if at, ok := l.ctrl.NextWake(); ok {
			wait = at.Sub(now)
		}
		t := l.clock.NewTimer(wait)

		select {
		case <-ctx.Done():
			t.Stop()
			logger.Get().Debug("session loop stopped")
			return ctx.Err()
		case req := <-l.requests:
			t.Stop()
			l.ctrl.Advance(l.clock.Now())
			req.done <- req.fn(l.ctrl)
		case <-t.C():
		}
	}
}

// Do runs fn on the loop goroutine and returns its error. It fails with
// the context's error if ctx ends first or if the loop is not running.
func (l *Loop) Do(ctx context.Context, fn func(*Controller) error) error {
	req := request{fn: fn, done: make(chan error, 1)}
	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return context.Canceled
	}
	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch is shorthand for running a single command on the loop.
func (l *Loop) Dispatch(ctx context.Context, cmd Command) error {
	return l.Do(ctx, func(c *Controller) error { return c.Dispatch(cmd) })
}
