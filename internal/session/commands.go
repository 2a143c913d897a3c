package session

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "bankist/internal/errors"
)

// Command is a user action the Controller can dispatch. The concrete
// types below are the only implementations.
type Command interface {
	command()
}

// Login opens a session for Username if PIN matches.
type Login struct {
	Username string
	PIN      int
}

// Transfer sends Amount from the session account to the account named To.
type Transfer struct {
	To     string
	Amount decimal.Decimal
}

// Loan requests a loan of Amount whole currency units for the session account.
type Loan struct {
	Amount decimal.Decimal
}

// Close deletes the session account; Username and PIN must match it.
type Close struct {
	Username string
	PIN      int
}

// SortToggle flips between recorded and ascending-amount movement order.
type SortToggle struct{}

// Logout ends the session without closing the account.
type Logout struct{}

func (Login) command()      {}
func (Transfer) command()   {}
func (Loan) command()       {}
func (Close) command()      {}
func (SortToggle) command() {}
func (Logout) command()     {}

// ParseLogin validates raw login form input.
func ParseLogin(username, pin string) (Login, error) {
	u, err := parseUsername(username)
	if err != nil {
		return Login{}, err
	}
	p, err := parsePIN(pin)
	if err != nil {
		return Login{}, err
	}
	return Login{Username: u, PIN: p}, nil
}

// ParseTransfer validates raw transfer form input.
func ParseTransfer(to, amount string) (Transfer, error) {
	u, err := parseUsername(to)
	if err != nil {
		return Transfer{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient is required")
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return Transfer{}, err
	}
	return Transfer{To: u, Amount: a}, nil
}

// ParseLoan validates raw loan form input. Fractions are dropped, so "99.9"
// requests a loan of 99.
func ParseLoan(amount string) (Loan, error) {
	a, err := ParseAmount(amount)
	if err != nil {
		return Loan{}, err
	}
	a = a.Floor()
	if !a.IsPositive() {
		return Loan{}, apperrors.ErrInvalidAmount
	}
	return Loan{Amount: a}, nil
}

// ParseClose validates raw close-account form input.
func ParseClose(username, pin string) (Close, error) {
	l, err := ParseLogin(username, pin)
	if err != nil {
		return Close{}, err
	}
	return Close(l), nil
}

// ParseAmount parses a positive decimal amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount is required")
	}
	a, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}
	if !a.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return a, nil
}

func parseUsername(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	return u, nil
}

func parsePIN(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "PIN is required")
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "PIN must be a number")
	}
	return p, nil
}
