package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bankist/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(rate string, amounts ...string) *models.Account {
	acc := &models.Account{Owner: "Test Owner", InterestRate: dec(rate)}
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range amounts {
		acc.Record(dec(a), at.Add(time.Duration(i)*time.Hour))
	}
	return acc
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBalance(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assertDecimal(t, "0", Balance(account("1.2")))
	})

	t.Run("seed_account", func(t *testing.T) {
		acc := account("1.2", "200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")
		assertDecimal(t, "25952.59", Balance(acc))
	})
}

func TestTotals(t *testing.T) {
	acc := account("1.2", "200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")

	assertDecimal(t, "27035.2", TotalIncome(acc))
	assertDecimal(t, "1082.61", TotalExpense(acc))

	if acc.Movements[2].Amount.IsPositive() {
		t.Error("stored withdrawals must stay negative")
	}
}

func TestTotalInterest(t *testing.T) {
	t.Run("below_floor_excluded", func(t *testing.T) {
		// 50 * 1.2% = 0.6
		assertDecimal(t, "0", TotalInterest(account("1.2", "50")))
	})

	t.Run("at_or_above_floor_included", func(t *testing.T) {
		// 100 * 1.2% = 1.2
		assertDecimal(t, "1.2", TotalInterest(account("1.2", "100")))
	})

	t.Run("mixed", func(t *testing.T) {
		assertDecimal(t, "1.2", TotalInterest(account("1.2", "50", "100", "-400")))
	})

	t.Run("exactly_one_unit", func(t *testing.T) {
		// 80 * 1.25% = 1
		assertDecimal(t, "1", TotalInterest(account("1.25", "80")))
	})

	t.Run("seed_account", func(t *testing.T) {
		// 200->2.4, 455.23->5.46276, 25000->300, 79.97->0.95964 (dropped), 1300->15.6
		acc := account("1.2", "200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")
		assertDecimal(t, "323.46276", TotalInterest(acc))
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(account("1.5", "5000", "-150"))
	assertDecimal(t, "5000", s.Income)
	assertDecimal(t, "150", s.Expense)
	assertDecimal(t, "75", s.Interest)
}

func TestSorted(t *testing.T) {
	acc := account("1.2", "200", "-306.5", "200", "-50")
	firstDeposit := acc.Movements[0].Date
	secondDeposit := acc.Movements[2].Date

	sorted := Sorted(acc)

	want := []string{"-306.5", "-50", "200", "200"}
	for i, w := range want {
		assertDecimal(t, w, sorted[i].Amount)
	}
	if !sorted[2].Date.Equal(firstDeposit) || !sorted[3].Date.Equal(secondDeposit) {
		t.Error("expected equal amounts to keep recorded order with their dates")
	}

	// stored order untouched
	assertDecimal(t, "200", acc.Movements[0].Amount)
	assertDecimal(t, "-306.5", acc.Movements[1].Amount)
}

func TestHasMovementAtLeast(t *testing.T) {
	acc := account("1.2", "200", "455.23", "-306.5")

	if HasMovementAtLeast(acc, dec("455.24")) {
		t.Error("expected no movement >= 455.24")
	}
	if !HasMovementAtLeast(acc, dec("455.23")) {
		t.Error("expected 455.23 to satisfy its own threshold")
	}
}
