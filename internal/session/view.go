package session

import (
	"time"

	"bankist/internal/format"
	"bankist/internal/ledger"
	"bankist/internal/models"
)

// MovementRow is one formatted line of the movement list.
type MovementRow struct {
	// Index is the 1-based position in the order being displayed.
	Index  int                 `json:"index"`
	Kind   models.MovementKind `json:"kind"`
	Date   string              `json:"date"`
	Amount string              `json:"amount"`
}

// View receives everything the controller wants on screen. Texts arrive
// already formatted for the account's locale and currency. Rows arrive
// oldest first; front-ends that list newest first reverse them.
type View interface {
	RenderMovements(rows []MovementRow, sortedAscending bool)
	RenderBalance(text string)
	RenderSummary(income, expense, interest string)
	RenderTimer(mmss string)
	RenderWelcome(message string)
	RenderDate(text string)
	SetSessionVisible(visible bool)
}

// BuildRows formats an account's movements. When sorted is set they are
// ordered by ascending amount on a copy; the account is never reordered.
// Every row is dated relative to the same now.
func BuildRows(account *models.Account, sorted bool, now time.Time) []MovementRow {
	movements := account.Movements
	if sorted {
		movements = ledger.Sorted(account)
	}
	rows := make([]MovementRow, len(movements))
	for i, m := range movements {
		rows[i] = MovementRow{
			Index:  i + 1,
			Kind:   m.Kind(),
			Date:   format.MovementDate(m.Date, now, account.Locale),
			Amount: format.Currency(m.Amount, account.Locale, account.Currency),
		}
	}
	return rows
}

type nopView struct{}

func (nopView) RenderMovements([]MovementRow, bool)  {}
func (nopView) RenderBalance(string)                 {}
func (nopView) RenderSummary(string, string, string) {}
func (nopView) RenderTimer(string)                   {}
func (nopView) RenderWelcome(string)                 {}
func (nopView) RenderDate(string)                    {}
func (nopView) SetSessionVisible(bool)               {}
