package testutil_test

import (
	"testing"
	"time"

	"bankist/internal/ledger"
	"bankist/internal/testutil"
)

func TestNewSeededEnv(t *testing.T) {
	env := testutil.NewSeededEnv(t)

	accounts := env.Directory.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("expected 2 seeded accounts, got %d", len(accounts))
	}
	if accounts[0].Username != "js" || accounts[1].Username != "aa" {
		t.Errorf("expected usernames js and aa, got %s and %s", accounts[0].Username, accounts[1].Username)
	}
	if accounts[0].ID == "" || accounts[0].ID == accounts[1].ID {
		t.Errorf("expected distinct account ids, got %q and %q", accounts[0].ID, accounts[1].ID)
	}
	if !env.Clock.Now().Equal(testutil.Epoch) {
		t.Errorf("expected clock at epoch, got %v", env.Clock.Now())
	}
}

func TestCreateTestAccount(t *testing.T) {
	a := testutil.CreateTestAccount(t, "100", "-40")
	b := testutil.CreateTestAccount(t)

	if a.Username != "" {
		t.Error("usernames are derived by the directory, not the fixture")
	}
	env := testutil.NewEnv(t, a, b)
	if a.Username == b.Username {
		t.Errorf("expected distinct usernames, both are %q", a.Username)
	}
	if _, ok := env.Directory.FindByUsername(b.Username); !ok {
		t.Error("expected fixture account to be found")
	}

	testutil.AssertDecimal(t, ledger.Balance(a), "60")
	if len(a.Movements) != 2 || !a.Movements[1].Date.Before(testutil.Epoch) {
		t.Errorf("expected two movements dated before epoch, got %+v", a.Movements)
	}
}

func TestEnvStep(t *testing.T) {
	env := testutil.NewSeededEnv(t)
	ran := false
	env.Scheduler.After(2*time.Second, "reminder", "", func() { ran = true })

	if n := env.Step(time.Second); n != 0 || ran {
		t.Fatal("expected nothing to run after one second")
	}
	if n := env.Step(time.Second); n != 1 || !ran {
		t.Errorf("expected the task to run after two seconds, ran %d", n)
	}
}

func TestAmounts(t *testing.T) {
	acc := testutil.CreateTestAccount(t, "100", "-40")

	amounts := testutil.Amounts(acc)
	if len(amounts) != 2 || amounts[1].String() != "-40" {
		t.Fatalf("unexpected amounts: %v", amounts)
	}
	amounts[0] = amounts[1]
	if acc.Movements[0].Amount.String() != "100" {
		t.Error("expected a copy")
	}
}
