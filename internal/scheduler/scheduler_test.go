package scheduler

import (
	"testing"
	"time"

	clocktesting "k8s.io/utils/clock/testing"

	"bankist/internal/uuid"
)

func newTestScheduler() (*Scheduler, *clocktesting.FakeClock) {
	clk := clocktesting.NewFakeClock(time.Date(2021, 12, 20, 12, 0, 0, 0, time.UTC))
	return New(clk), clk
}

func TestAfter(t *testing.T) {
	s, clk := newTestScheduler()

	task := s.After(3*time.Second, "loan", "js", func() {})

	if !uuid.IsValid(task.ID) {
		t.Errorf("expected a UUID task id, got %q", task.ID)
	}
	if !task.DueAt.Equal(clk.Now().Add(3 * time.Second)) {
		t.Errorf("expected due in 3s, got %v", task.DueAt)
	}
	at, ok := s.NextDue()
	if !ok || !at.Equal(task.DueAt) {
		t.Errorf("expected next due %v, got %v (%v)", task.DueAt, at, ok)
	}
	if got, ok := s.Get(task.ID); !ok || got.Name != "loan" {
		t.Errorf("expected to find the task, got %+v (%v)", got, ok)
	}
}

func TestRunDue(t *testing.T) {
	t.Run("runs_only_due_tasks_in_order", func(t *testing.T) {
		s, clk := newTestScheduler()
		var order []string
		s.After(5*time.Second, "late", "", func() { order = append(order, "late") })
		s.After(3*time.Second, "first", "", func() { order = append(order, "first") })
		s.After(3*time.Second, "second", "", func() { order = append(order, "second") })

		clk.Step(2 * time.Second)
		if n := s.RunDue(clk.Now()); n != 0 {
			t.Fatalf("expected nothing due after 2s, ran %d", n)
		}

		clk.Step(time.Second)
		if n := s.RunDue(clk.Now()); n != 2 {
			t.Fatalf("expected 2 tasks due after 3s, ran %d", n)
		}
		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("expected [first second], got %v", order)
		}

		clk.Step(time.Minute)
		s.RunDue(clk.Now())
		if len(order) != 3 || order[2] != "late" {
			t.Errorf("expected late task to run last, got %v", order)
		}
		if _, ok := s.NextDue(); ok {
			t.Error("expected nothing pending")
		}
	})

	t.Run("tasks_run_once", func(t *testing.T) {
		s, clk := newTestScheduler()
		calls := 0
		s.After(time.Second, "once", "", func() { calls++ })

		clk.Step(time.Second)
		s.RunDue(clk.Now())
		s.RunDue(clk.Now())
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("callback_can_schedule", func(t *testing.T) {
		s, clk := newTestScheduler()
		calls := 0
		s.After(0, "outer", "", func() {
			s.After(0, "inner", "", func() { calls++ })
		})

		s.RunDue(clk.Now())
		if calls != 0 {
			t.Fatal("expected the inner task to wait for the next run")
		}
		s.RunDue(clk.Now())
		if calls != 1 {
			t.Errorf("expected the inner task to run, got %d", calls)
		}
	})
}

func TestCancel(t *testing.T) {
	s, clk := newTestScheduler()
	ran := false
	task := s.After(time.Second, "loan", "js", func() { ran = true })

	if !s.Cancel(task.ID) {
		t.Fatal("expected cancel of a pending task to succeed")
	}
	if s.Cancel(task.ID) {
		t.Error("expected second cancel to be a no-op")
	}

	clk.Step(time.Second)
	s.RunDue(clk.Now())
	if ran {
		t.Error("cancelled task must not run")
	}
}

func TestCancelOwner(t *testing.T) {
	s, clk := newTestScheduler()
	ran := map[string]bool{}
	s.After(time.Second, "loan", "js", func() { ran["js-1"] = true })
	s.After(2*time.Second, "loan", "aa", func() { ran["aa"] = true })
	s.After(3*time.Second, "loan", "js", func() { ran["js-2"] = true })

	if n := s.CancelOwner("js"); n != 2 {
		t.Fatalf("expected 2 cancelled, got %d", n)
	}
	if got := s.Pending(""); len(got) != 1 || got[0].Owner != "aa" {
		t.Fatalf("expected only the aa task pending, got %+v", got)
	}

	clk.Step(time.Minute)
	s.RunDue(clk.Now())
	if ran["js-1"] || ran["js-2"] || !ran["aa"] {
		t.Errorf("unexpected runs: %v", ran)
	}
}

func TestPending(t *testing.T) {
	s, _ := newTestScheduler()
	s.After(2*time.Second, "loan", "js", func() {})
	s.After(time.Second, "loan", "js", func() {})
	s.After(time.Second, "loan", "aa", func() {})

	js := s.Pending("js")
	if len(js) != 2 {
		t.Fatalf("expected 2 js tasks, got %d", len(js))
	}
	if js[0].DueAt.After(js[1].DueAt) {
		t.Error("expected pending tasks in due order")
	}
	if len(s.Pending("")) != 3 {
		t.Errorf("expected 3 tasks overall, got %d", len(s.Pending("")))
	}
	if got := s.Pending("nobody"); got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non-nil slice, got %v", got)
	}
}
