// Package scheduler runs one-shot delayed tasks on the caller's goroutine.
//
// Tasks are queued with a due time taken from the injected clock and run
// only when the owner calls RunDue, so the whole system keeps a single
// logical thread of control. A Scheduler is not safe for concurrent use.
package scheduler

import (
	"sort"
	"time"

	"k8s.io/utils/clock"

	"bankist/internal/uuid"
)

// Task describes a scheduled callback.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	DueAt     time.Time `json:"due_at"`
}

type entry struct {
	task Task
	seq  uint64
	fn   func()
}

// Scheduler holds pending tasks ordered by due time.
type Scheduler struct {
	clock   clock.PassiveClock
	pending []*entry
	seq     uint64
}

// New creates an empty scheduler reading time from clk.
func New(clk clock.PassiveClock) *Scheduler {
	return &Scheduler{clock: clk}
}

// After queues fn to run once delay has elapsed. Owner is a free-form tag
// used to list or cancel related tasks.
func (s *Scheduler) After(delay time.Duration, name, owner string, fn func()) Task {
	now := s.clock.Now()
	s.seq++
	e := &entry{
		task: Task{
			ID:        uuid.New(),
			Name:      name,
			Owner:     owner,
			CreatedAt: now,
			DueAt:     now.Add(delay),
		},
		seq: s.seq,
		fn:  fn,
	}
	s.pending = append(s.pending, e)
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.task.DueAt.Equal(b.task.DueAt) {
			return a.seq < b.seq
		}
		return a.task.DueAt.Before(b.task.DueAt)
	})
	return e.task
}

// Cancel removes a pending task. It reports whether the task was pending;
// cancelling a finished or unknown task is a no-op.
func (s *Scheduler) Cancel(id string) bool {
	for i, e := range s.pending {
		if e.task.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner removes every pending task tagged with owner and returns how many.
func (s *Scheduler) CancelOwner(owner string) int {
	kept := s.pending[:0]
	removed := 0
	for _, e := range s.pending {
		if e.task.Owner == owner {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = kept
	return removed
}

// RunDue runs every task due at or before now, earliest first, and returns
// how many ran. Tasks queued by a running callback wait for the next call.
func (s *Scheduler) RunDue(now time.Time) int {
	n := 0
	for n < len(s.pending) && !s.pending[n].task.DueAt.After(now) {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]*entry, n)
	copy(due, s.pending[:n])
	s.pending = append(s.pending[:0], s.pending[n:]...)

	for _, e := range due {
		e.fn()
	}
	return n
}

// NextDue returns the earliest due time; ok is false when nothing is pending.
func (s *Scheduler) NextDue() (at time.Time, ok bool) {
	if len(s.pending) == 0 {
		return time.Time{}, false
	}
	return s.pending[0].task.DueAt, true
}

// Pending lists pending tasks for owner in due order. An empty owner lists all.
func (s *Scheduler) Pending(owner string) []Task {
	out := []Task{}
	for _, e := range s.pending {
		if owner == "" || e.task.Owner == owner {
			out = append(out, e.task)
		}
	}
	return out
}

// Get returns a pending task by id.
func (s *Scheduler) Get(id string) (Task, bool) {
	for _, e := range s.pending {
		if e.task.ID == id {
			return e.task, true
		}
	}
	return Task{}, false
}
