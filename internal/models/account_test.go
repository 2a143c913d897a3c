package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Arul Arora", "aa"},
		{"Steven Thomas Williams", "stw"},
		{"  Sarah   Smith ", "ss"},
		{"Émile Zola", "éz"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			if got := DeriveUsername(tt.owner); got != tt.want {
				t.Errorf("DeriveUsername(%q) = %q, want %q", tt.owner, got, tt.want)
			}
		})
	}
}

func TestAccountRecord(t *testing.T) {
	acc := &Account{Owner: "Jonas Schmedtmann"}
	at := time.Date(2020, 5, 8, 14, 11, 59, 0, time.UTC)

	acc.Record(decimal.NewFromInt(200), at)
	acc.Record(decimal.NewFromFloat(-306.5), at.Add(time.Hour))

	if len(acc.Movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(acc.Movements))
	}
	if !acc.Movements[1].Amount.Equal(decimal.NewFromFloat(-306.5)) {
		t.Errorf("expected -306.5, got %s", acc.Movements[1].Amount)
	}
	if !acc.Movements[1].Date.Equal(at.Add(time.Hour)) {
		t.Errorf("expected second date %v, got %v", at.Add(time.Hour), acc.Movements[1].Date)
	}
}

func TestMovementKind(t *testing.T) {
	if got := (Movement{Amount: decimal.NewFromInt(1)}).Kind(); got != MovementKindDeposit {
		t.Errorf("expected deposit, got %s", got)
	}
	if got := (Movement{Amount: decimal.NewFromInt(-1)}).Kind(); got != MovementKindWithdrawal {
		t.Errorf("expected withdrawal, got %s", got)
	}
	if got := (Movement{Amount: decimal.Zero}).Kind(); got != MovementKindWithdrawal {
		t.Errorf("expected zero to display as withdrawal, got %s", got)
	}
}

func TestFirstName(t *testing.T) {
	acc := &Account{Owner: "Jonas Schmedtmann"}
	if got := acc.FirstName(); got != "Jonas" {
		t.Errorf("expected Jonas, got %s", got)
	}
	if got := (&Account{}).FirstName(); got != "" {
		t.Errorf("expected empty first name, got %q", got)
	}
}
