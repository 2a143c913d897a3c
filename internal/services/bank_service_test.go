package services

import (
	"context"
	"testing"
	"time"

	"k8s.io/utils/clock"

	"bankist/internal/directory"
	"bankist/internal/pagination"
	"bankist/internal/scheduler"
	"bankist/internal/session"
	"bankist/internal/testutil"
	"bankist/internal/view"
)

func newTestBankService(t *testing.T) BankServicer {
	t.Helper()

	accounts, err := directory.DefaultAccounts()
	testutil.AssertNoError(t, err)

	clk := clock.RealClock{}
	sched := scheduler.New(clk)
	dir := directory.New(accounts, sched, clk, time.Hour)
	screen := view.NewScreen()
	ctrl := session.NewController(dir, sched, clk, screen, session.Options{})
	loop := session.NewLoop(ctrl, clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return NewBankService(loop, screen)
}

func TestBankService_Dispatch(t *testing.T) {
	svc := newTestBankService(t)
	ctx := context.Background()

	snap, err := svc.Dispatch(ctx, session.Login{Username: "aa", PIN: 1111})
	testutil.AssertNoError(t, err)
	if !snap.Visible || snap.Welcome != "Welcome back Arul" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	_, err = svc.Dispatch(ctx, session.Close{Username: "js", PIN: 2222})
	testutil.AssertAppError(t, err, "CLOSE_CREDENTIALS_MISMATCH")

	snap, err = svc.Screen(ctx)
	testutil.AssertNoError(t, err)
	if !snap.Visible {
		t.Error("a rejected command must not end the session")
	}
}

func TestBankService_Movements(t *testing.T) {
	svc := newTestBankService(t)
	ctx := context.Background()

	_, err := svc.Movements(ctx, pagination.PageRequest{})
	testutil.AssertAppError(t, err, "NO_ACTIVE_SESSION")

	_, err = svc.Dispatch(ctx, session.Login{Username: "aa", PIN: 1111})
	testutil.AssertNoError(t, err)

	resp, err := svc.Movements(ctx, pagination.PageRequest{Page: 1, PageSize: 3})
	testutil.AssertNoError(t, err)
	if resp.TotalItems != 8 || resp.TotalPages != 3 || len(resp.Data) != 3 {
		t.Fatalf("unexpected page: %+v", resp)
	}
	if resp.Data[0].Index != 8 || resp.Data[0].Amount != "-$30.00" {
		t.Errorf("expected the newest row first, got %+v", resp.Data[0])
	}
}

func TestBankService_PendingLoans(t *testing.T) {
	svc := newTestBankService(t)
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, session.Login{Username: "js", PIN: 2222})
	testutil.AssertNoError(t, err)
	cmd, err := session.ParseLoan("1000")
	testutil.AssertNoError(t, err)
	_, err = svc.Dispatch(ctx, cmd)
	testutil.AssertNoError(t, err)

	tasks, err := svc.PendingLoans(ctx)
	testutil.AssertNoError(t, err)
	if len(tasks) != 1 || tasks[0].Owner == "" || tasks[0].Name != directory.LoanTaskName {
		t.Fatalf("unexpected pending loans: %+v", tasks)
	}

	task, err := svc.PendingLoan(ctx, tasks[0].ID)
	testutil.AssertNoError(t, err)
	if task.ID != tasks[0].ID {
		t.Errorf("expected %s, got %s", tasks[0].ID, task.ID)
	}

	_, err = svc.PendingLoan(ctx, "0193b1a6-6a4e-7c1e-9d2b-4f1f0e7a2c11")
	testutil.AssertAppError(t, err, "TASK_NOT_FOUND")
}
