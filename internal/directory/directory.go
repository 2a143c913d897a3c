// Package directory holds the in-memory set of accounts and the mutations
// that touch more than one of them: transfers, loans and closure.
package directory

import (
	"time"

	"github.com/shopspring/decimal"
	"k8s.io/utils/clock"

	apperrors "bankist/internal/errors"
	"bankist/internal/ledger"
	"bankist/internal/logger"
	"bankist/internal/models"
	"bankist/internal/scheduler"
	"bankist/internal/uuid"
)

// DefaultLoanDelay is how long an approved loan waits before it posts.
const DefaultLoanDelay = 3 * time.Second

// LoanTaskName names the scheduler tasks that post loans.
const LoanTaskName = "loan"

// collateralRatio is the share of a loan that some existing movement must cover.
var collateralRatio = decimal.NewFromFloat(0.1)

// Directory owns the accounts. It is not safe for concurrent use; callers
// serialize access the same way they do for the scheduler.
type Directory struct {
	accounts  []*models.Account
	scheduler *scheduler.Scheduler
	clock     clock.PassiveClock
	loanDelay time.Duration
}

// New builds a directory over accounts, deriving every username up front
// and giving an id to accounts that lack one. Loans are queued on sched and
// post loanDelay after they are requested.
func New(accounts []*models.Account, sched *scheduler.Scheduler, clk clock.PassiveClock, loanDelay time.Duration) *Directory {
	if loanDelay < 0 {
		loanDelay = 0
	}
	BuildUsernames(accounts)
	for _, acc := range accounts {
		if acc.ID == "" {
			acc.ID = uuid.New()
		}
	}
	return &Directory{
		accounts:  append([]*models.Account(nil), accounts...),
		scheduler: sched,
		clock:     clk,
		loanDelay: loanDelay,
	}
}

// BuildUsernames sets each account's username from its owner's initials.
func BuildUsernames(accounts []*models.Account) {
	for _, acc := range accounts {
		acc.Username = models.DeriveUsername(acc.Owner)
	}
}

// Accounts returns the live accounts in directory order.
func (d *Directory) Accounts() []*models.Account {
	out := make([]*models.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// FindByUsername returns the first account with username, if any.
func (d *Directory) FindByUsername(username string) (*models.Account, bool) {
	for _, acc := range d.accounts {
		if acc.Username == username {
			return acc, true
		}
	}
	return nil, false
}

// Authenticate returns the account matching username and pin. Unknown
// users and wrong PINs produce the same error.
func (d *Directory) Authenticate(username string, pin int) (*models.Account, error) {
	acc, ok := d.FindByUsername(username)
	if !ok || acc.PIN != pin {
		logger.Get().Debugw("authentication failed", "username", username)
		return nil, apperrors.ErrAuthenticationFailed
	}
	return acc, nil
}

// Transfer moves amount from one account to the account named toUsername.
// Both movements carry the same timestamp. Nothing changes on error.
func (d *Directory) Transfer(from *models.Account, toUsername string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount
	}
	to, ok := d.FindByUsername(toUsername)
	if !ok {
		return apperrors.ErrRecipientNotFound
	}
	if to == from {
		return apperrors.ErrSelfTransfer
	}
	if ledger.Balance(from).LessThan(amount) {
		return apperrors.ErrInsufficientBalance
	}

	now := d.clock.Now()
	from.Record(amount.Neg(), now)
	to.Record(amount, now)

	logger.Get().Infow("transfer completed",
		"from", from.Username,
		"to", to.Username,
		"amount", amount.String(),
	)
	return nil
}

// LoanEligible reports whether account has a movement covering the
// collateral share of amount.
func LoanEligible(account *models.Account, amount decimal.Decimal) bool {
	return ledger.HasMovementAtLeast(account, amount.Mul(collateralRatio))
}

// RequestLoan approves a loan and schedules it to post after the loan
// delay. The amount is floored to whole units first. The posting lands on
// account even if its session has ended; posted, when non-nil, runs right
// after the movement is recorded.
func (d *Directory) RequestLoan(account *models.Account, amount decimal.Decimal, posted func(*models.Account)) (scheduler.Task, error) {
	amount = amount.Floor()
	if !amount.IsPositive() {
		return scheduler.Task{}, apperrors.ErrInvalidAmount
	}
	if !LoanEligible(account, amount) {
		return scheduler.Task{}, apperrors.ErrLoanIneligible
	}

	task := d.scheduler.After(d.loanDelay, LoanTaskName, account.ID, func() {
		account.Record(amount, d.clock.Now())
		logger.Get().Infow("loan posted", "username", account.Username, "amount", amount.String())
		if posted != nil {
			posted(account)
		}
	})

	logger.Get().Infow("loan approved",
		"username", account.Username,
		"amount", amount.String(),
		"task_id", task.ID,
		"due_at", task.DueAt,
	)
	return task, nil
}

// PendingLoans lists loans queued for account that have not posted yet.
func (d *Directory) PendingLoans(account *models.Account) []scheduler.Task {
	tasks := d.scheduler.Pending(account.ID)
	out := tasks[:0]
	for _, t := range tasks {
		if t.Name == LoanTaskName {
			out = append(out, t)
		}
	}
	return out
}

// PendingLoan returns one of account's pending loans by task id. Loans of
// other accounts are reported as not found.
func (d *Directory) PendingLoan(account *models.Account, id string) (scheduler.Task, error) {
	id, err := uuid.Parse(id)
	if err != nil {
		return scheduler.Task{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "loan id must be a UUID")
	}
	task, ok := d.scheduler.Get(id)
	if !ok || task.Name != LoanTaskName || task.Owner != account.ID {
		return scheduler.Task{}, apperrors.ErrTaskNotFound
	}
	return task, nil
}

// CloseAccount deletes the session's account when username and pin name
// it. Pending loans for the account are cancelled. Deletion is permanent.
func (d *Directory) CloseAccount(session *models.Account, username string, pin int) error {
	if session == nil {
		return apperrors.ErrNoActiveSession
	}
	if session.Username != username || session.PIN != pin {
		return apperrors.ErrCloseMismatch
	}

	idx := -1
	for i, acc := range d.accounts {
		if acc == session {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrAccountNotFound
	}
	d.accounts = append(d.accounts[:idx], d.accounts[idx+1:]...)

	cancelled := d.scheduler.CancelOwner(session.ID)
	logger.Get().Infow("account closed", "username", username, "cancelled_loans", cancelled)
	return nil
}
