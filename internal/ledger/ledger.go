// Package ledger computes balances and summaries from an account's movements.
// Nothing here is cached: every figure is derived from the movement slice on
// each call.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"bankist/internal/models"
)

// InterestFloor is the smallest per-deposit interest amount that counts
// toward the total, in currency units regardless of currency.
var InterestFloor = decimal.NewFromInt(1)

var hundred = decimal.NewFromInt(100)

// Summary holds the totals shown under the movement list.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Interest decimal.Decimal `json:"interest"`
}

// Balance returns the sum of all movements.
func Balance(account *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range account.Movements {
		total = total.Add(m.Amount)
	}
	return total
}

// TotalIncome returns the sum of all deposits.
func TotalIncome(account *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range account.Movements {
		if m.Amount.IsPositive() {
			total = total.Add(m.Amount)
		}
	}
	return total
}

// TotalExpense returns the magnitude of all withdrawals.
func TotalExpense(account *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range account.Movements {
		if m.Amount.IsNegative() {
			total = total.Add(m.Amount)
		}
	}
	return total.Abs()
}

// TotalInterest returns the interest earned on deposits. Each deposit earns
// deposit*rate/100; amounts below InterestFloor are dropped.
func TotalInterest(account *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range account.Movements {
		if !m.Amount.IsPositive() {
			continue
		}
		interest := m.Amount.Mul(account.InterestRate).Div(hundred)
		if interest.GreaterThanOrEqual(InterestFloor) {
			total = total.Add(interest)
		}
	}
	return total
}

// Summarize computes income, expense and interest in one call.
func Summarize(account *models.Account) Summary {
	return Summary{
		Income:   TotalIncome(account),
		Expense:  TotalExpense(account),
		Interest: TotalInterest(account),
	}
}

// Sorted returns a copy of the movements ordered by ascending amount.
// Equal amounts keep their recorded order and each amount keeps its date.
func Sorted(account *models.Account) []models.Movement {
	out := make([]models.Movement, len(account.Movements))
	copy(out, account.Movements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out
}

// HasMovementAtLeast reports whether any movement is >= threshold.
func HasMovementAtLeast(account *models.Account, threshold decimal.Decimal) bool {
	for _, m := range account.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
