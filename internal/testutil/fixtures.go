// Package testutil provides test helpers for building seeded directories on
// a fake clock, creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	clocktesting "k8s.io/utils/clock/testing"

	"bankist/internal/directory"
	"bankist/internal/models"
	"bankist/internal/scheduler"
)

// Epoch is the fake clock's starting time in every fixture. It falls a few
// days after the newest seeded movement.
var Epoch = time.Date(2021, 12, 15, 9, 30, 0, 0, time.UTC)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Env bundles a directory with the clock and scheduler driving it.
type Env struct {
	Clock     *clocktesting.FakeClock
	Scheduler *scheduler.Scheduler
	Directory *directory.Directory
}

// NewClock returns a fake clock set to Epoch.
func NewClock() *clocktesting.FakeClock {
	return clocktesting.NewFakeClock(Epoch)
}

// NewSeededEnv builds a directory over the built-in demo accounts.
func NewSeededEnv(t *testing.T) *Env {
	t.Helper()

	accounts, err := directory.DefaultAccounts()
	if err != nil {
		t.Fatalf("failed to load seed accounts: %v", err)
	}
	return NewEnv(t, accounts...)
}

// NewEnv builds a directory over accounts with the default loan delay.
func NewEnv(t *testing.T, accounts ...*models.Account) *Env {
	t.Helper()

	clk := NewClock()
	sched := scheduler.New(clk)
	return &Env{
		Clock:     clk,
		Scheduler: sched,
		Directory: directory.New(accounts, sched, clk, directory.DefaultLoanDelay),
	}
}

// Step advances the fake clock and runs any scheduled tasks that became due.
func (e *Env) Step(d time.Duration) int {
	e.Clock.Step(d)
	return e.Scheduler.RunDue(e.Clock.Now())
}

// ownerFor spells n as one capitalised word per decimal digit so that every
// fixture owner has distinct initials: 12 -> "Test Bob Cid" -> "tbc".
func ownerFor(n int64) string {
	names := [...]string{"Ann", "Bob", "Cid", "Dee", "Eve", "Fay", "Gus", "Hal", "Ivy", "Jo"}
	owner := "Test"
	for _, d := range fmt.Sprint(n) {
		owner += " " + names[d-'0']
	}
	return owner
}

// CreateTestAccount returns an account with a unique owner, PIN 1234, a 1%
// rate and the given movement amounts dated one day apart before Epoch.
func CreateTestAccount(t *testing.T, amounts ...string) *models.Account {
	t.Helper()

	n := nextID()
	acc := &models.Account{
		Owner:        ownerFor(n),
		PIN:          1234,
		InterestRate: decimal.NewFromInt(1),
		Currency:     "USD",
		Locale:       "en-US",
	}
	for i, a := range amounts {
		amount, err := decimal.NewFromString(a)
		if err != nil {
			t.Fatalf("invalid fixture amount %q: %v", a, err)
		}
		acc.Record(amount, Epoch.AddDate(0, 0, i-len(amounts)))
	}
	return acc
}

// Amounts returns a copy of acc's movement amounts in recorded order.
func Amounts(acc *models.Account) []decimal.Decimal {
	out := make([]decimal.Decimal, len(acc.Movements))
	for i, m := range acc.Movements {
		out[i] = m.Amount
	}
	return out
}
