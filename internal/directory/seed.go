package directory

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"bankist/internal/models"
	"bankist/internal/uuid"
	"bankist/internal/validator"
)

//go:embed seed.toml
var defaultSeed string

type seedFile struct {
	Accounts []seedAccount `toml:"accounts"`
}

type seedAccount struct {
	ID           string         `toml:"id" validate:"omitempty,uuid"`
	Owner        string         `toml:"owner" validate:"required"`
	PIN          int            `toml:"pin" validate:"min=0"`
	InterestRate string         `toml:"interest_rate" validate:"required,numeric"`
	Currency     string         `toml:"currency" validate:"required,iso4217"`
	Locale       string         `toml:"locale" validate:"required,bcp47_language_tag"`
	Movements    []seedMovement `toml:"movements" validate:"dive"`
}

type seedMovement struct {
	Amount string    `toml:"amount" validate:"required,numeric"`
	Date   time.Time `toml:"date" validate:"required"`
}

// DefaultAccounts returns fresh copies of the built-in demo accounts.
func DefaultAccounts() ([]*models.Account, error) {
	var seed seedFile
	if _, err := toml.Decode(defaultSeed, &seed); err != nil {
		return nil, fmt.Errorf("decode embedded seed: %w", err)
	}
	return seed.accounts()
}

// LoadSeedFile reads accounts from a TOML file laid out like the embedded
// seed. An empty path returns the built-in accounts. Accounts may carry an
// id; those without one are given one by New.
func LoadSeedFile(path string) ([]*models.Account, error) {
	if path == "" {
		return DefaultAccounts()
	}
	var seed seedFile
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return seed.accounts()
}

func (s seedFile) accounts() ([]*models.Account, error) {
	out := make([]*models.Account, 0, len(s.Accounts))
	for i, sa := range s.Accounts {
		err := validator.Struct(sa)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		id := sa.ID
		if id != "" {
			if id, err = uuid.Parse(id); err != nil {
				return nil, fmt.Errorf("account %q: id: %w", sa.Owner, err)
			}
		}
		rate, err := decimal.NewFromString(sa.InterestRate)
		if err != nil {
			return nil, fmt.Errorf("account %q: interest_rate: %w", sa.Owner, err)
		}
		acc := &models.Account{
			ID:           id,
			Owner:        sa.Owner,
			PIN:          sa.PIN,
			InterestRate: rate,
			Currency:     sa.Currency,
			Locale:       sa.Locale,
			Movements:    make([]models.Movement, 0, len(sa.Movements)),
		}
		for j, sm := range sa.Movements {
			amount, err := decimal.NewFromString(sm.Amount)
			if err != nil {
				return nil, fmt.Errorf("account %q: movement %d: %w", sa.Owner, j, err)
			}
			acc.Record(amount, sm.Date)
		}
		out = append(out, acc)
	}
	return out, nil
}
