package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a movement for display
type MovementKind string

const (
	MovementKindDeposit    MovementKind = "deposit"
	MovementKindWithdrawal MovementKind = "withdrawal"
)

// Movement is a single signed ledger entry and the moment it was recorded.
// Positive amounts are deposits, everything else is a withdrawal.
type Movement struct {
	Amount decimal.Decimal `json:"amount" toml:"amount"`
	Date   time.Time       `json:"date" toml:"date"`
}

// Kind returns deposit for positive amounts and withdrawal otherwise.
func (m Movement) Kind() MovementKind {
	if m.Amount.IsPositive() {
		return MovementKindDeposit
	}
	return MovementKindWithdrawal
}

// Account represents a demo bank account held in memory.
// Amounts and dates share one slice so they can never diverge in length.
type Account struct {
	// ID tells apart accounts whose owners share initials.
	ID           string          `json:"id"`
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"-"`
	Movements    []Movement      `json:"movements"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
}

// Record appends a movement stamped with at.
func (a *Account) Record(amount decimal.Decimal, at time.Time) {
	a.Movements = append(a.Movements, Movement{Amount: amount, Date: at})
}

// FirstName returns the first word of the owner's name.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DeriveUsername builds the login name from an owner's name: the first
// letter of every word, lowercased and concatenated ("Jonas Schmedtmann" -> "js").
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		for _, r := range word {
			b.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return b.String()
}
