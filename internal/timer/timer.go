// Package timer implements the inactivity countdown that ends a session.
//
// A SessionTimer moves Idle -> Running -> Expired. It never sleeps or starts
// goroutines: a driver calls Advance with the current time (or Tick directly)
// and the timer fires whatever ticks are due. That keeps it single-threaded
// and lets tests step a fake clock.
package timer

import (
	"time"

	"k8s.io/utils/clock"

	"bankist/internal/format"
)

// DefaultTicks is the countdown length used when none is configured: five
// minutes at the default one-second interval.
const DefaultTicks = 300

// State is the lifecycle state of a SessionTimer.
type State int

const (
	Idle State = iota
	Running
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Hooks receive the timer's output. Either may be nil.
type Hooks struct {
	// OnTick receives the MM:SS display on every start and tick.
	OnTick func(display string)
	// OnExpire is called once, on the tick that reaches 00:00.
	OnExpire func()
}

// SessionTimer counts down a fixed number of ticks and signals expiry at
// zero. The display shows the time left, so it reads in seconds whatever
// the tick interval.
type SessionTimer struct {
	clock     clock.PassiveClock
	ticks     int
	interval  time.Duration
	hooks     Hooks
	state     State
	remaining int
	nextTick  time.Time
}

// New creates an idle timer that counts down ticks, one per interval.
func New(clk clock.PassiveClock, ticks int, interval time.Duration, hooks Hooks) *SessionTimer {
	if ticks < 1 {
		ticks = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &SessionTimer{
		clock:    clk,
		ticks:    ticks,
		interval: interval,
		hooks:    hooks,
	}
}

// Start discards any countdown in progress and begins a fresh one. The
// full-length display is emitted immediately; the first tick is due one
// interval from now.
func (t *SessionTimer) Start() {
	t.StartAt(t.clock.Now())
}

// StartAt is Start for a countdown that began at the given instant. Drivers
// catching up on overdue events use it so later ticks keep their spacing.
func (t *SessionTimer) StartAt(at time.Time) {
	t.state = Running
	t.remaining = t.ticks
	t.nextTick = at.Add(t.interval)
	t.emit()
}

// Tick advances the countdown by one interval. On the tick that reaches zero
// it displays 00:00, moves to Expired and calls OnExpire. Ticks outside the
// Running state do nothing. It reports whether a tick happened.
func (t *SessionTimer) Tick() bool {
	if t.state != Running {
		return false
	}
	t.remaining--
	t.nextTick = t.nextTick.Add(t.interval)
	t.emit()
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = Expired
		if t.hooks.OnExpire != nil {
			t.hooks.OnExpire()
		}
	}
	return true
}

// Advance fires every tick due at or before now and returns how many fired.
func (t *SessionTimer) Advance(now time.Time) int {
	fired := 0
	for t.state == Running && !now.Before(t.nextTick) {
		t.Tick()
		fired++
	}
	return fired
}

// Stop cancels a running countdown without signalling expiry. Stopping an
// idle or expired timer is a no-op.
func (t *SessionTimer) Stop() {
	if t.state == Running {
		t.state = Idle
	}
}

// State returns the current lifecycle state.
func (t *SessionTimer) State() State { return t.state }

// TicksRemaining returns how many ticks are left before expiry.
func (t *SessionTimer) TicksRemaining() int { return t.remaining }

// SecondsRemaining returns the time left in whole seconds, rounded up so a
// partial second still shows as one.
func (t *SessionTimer) SecondsRemaining() int {
	left := time.Duration(t.remaining) * t.interval
	return int((left + time.Second - 1) / time.Second)
}

// Display returns the current MM:SS text.
func (t *SessionTimer) Display() string { return format.Countdown(t.SecondsRemaining()) }

// NextTickAt returns when the next tick is due; ok is false unless running.
func (t *SessionTimer) NextTickAt() (at time.Time, ok bool) {
	if t.state != Running {
		return time.Time{}, false
	}
	return t.nextTick, true
}

func (t *SessionTimer) emit() {
	if t.hooks.OnTick != nil {
		t.hooks.OnTick(t.Display())
	}
}
