// Package session drives a single banking session: it turns commands into
// directory mutations, keeps the inactivity timer running and pushes the
// results to a View.
package session

import (
	"time"

	"k8s.io/utils/clock"

	"bankist/internal/directory"
	apperrors "bankist/internal/errors"
	"bankist/internal/format"
	"bankist/internal/ledger"
	"bankist/internal/logger"
	"bankist/internal/models"
	"bankist/internal/scheduler"
	"bankist/internal/timer"
)

// LoggedOutMessage is the welcome text shown while nobody is logged in.
const LoggedOutMessage = "Log in to get started"

// Session is the state of the logged in user.
type Session struct {
	Account *models.Account
	// Sorted is view-only; it resets on every login.
	Sorted bool
}

// Options tune the inactivity timer. Zero values use the defaults.
type Options struct {
	// Ticks is the countdown length in ticks of TickInterval.
	Ticks        int
	TickInterval time.Duration
}

// Controller owns the session. Like the directory and scheduler it shares
// state with, it is not safe for concurrent use; front-ends call it from a
// single goroutine (see Loop).
type Controller struct {
	dir     *directory.Directory
	sched   *scheduler.Scheduler
	clock   clock.PassiveClock
	view    View
	timer   *timer.SessionTimer
	session *Session
	// dueAt is the due time of the task Advance is running, zero otherwise.
	dueAt time.Time
}

// NewController wires a controller to its collaborators. A nil view
// discards all output.
func NewController(dir *directory.Directory, sched *scheduler.Scheduler, clk clock.PassiveClock, view View, opts Options) *Controller {
	if view == nil {
		view = nopView{}
	}
	if opts.Ticks <= 0 {
		opts.Ticks = timer.DefaultTicks
	}
	c := &Controller{
		dir:   dir,
		sched: sched,
		clock: clk,
		view:  view,
	}
	c.timer = timer.New(clk, opts.Ticks, opts.TickInterval, timer.Hooks{
		OnTick:   view.RenderTimer,
		OnExpire: c.expire,
	})
	c.view.SetSessionVisible(false)
	c.view.RenderWelcome(LoggedOutMessage)
	return c
}

// Dispatch runs cmd. Failed commands return an *errors.AppError and leave
// all state, including any existing session, unchanged.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd := cmd.(type) {
	case Login:
		return c.login(cmd)
	case Logout:
		c.Logout()
		return nil
	}

	if c.session == nil {
		return apperrors.ErrNoActiveSession
	}
	acc := c.session.Account

	switch cmd := cmd.(type) {
	case Transfer:
		if err := c.dir.Transfer(acc, cmd.To, cmd.Amount); err != nil {
			return err
		}
		c.timer.Start()
		c.render()
	case Loan:
		if _, err := c.dir.RequestLoan(acc, cmd.Amount, c.loanPosted); err != nil {
			return err
		}
		c.timer.Start()
	case Close:
		if err := c.dir.CloseAccount(acc, cmd.Username, cmd.PIN); err != nil {
			return err
		}
		c.end("closed")
	case SortToggle:
		c.session.Sorted = !c.session.Sorted
		c.renderMovements(c.clock.Now())
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown command")
	}
	return nil
}

// Logout ends the current session, if any. Pending loans still post.
func (c *Controller) Logout() {
	if c.session == nil {
		return
	}
	c.end("logout")
}

// Advance handles every timer tick and scheduled task due at or before now,
// one at a time in due order. A tick due at the same instant as a task goes
// first, so a loan posting cannot revive a session whose countdown already
// ran out.
func (c *Controller) Advance(now time.Time) {
	for {
		tick, tickOK := c.timer.NextTickAt()
		due, dueOK := c.sched.NextDue()
		tickOK = tickOK && !tick.After(now)
		dueOK = dueOK && !due.After(now)

		switch {
		case tickOK && (!dueOK || !due.Before(tick)):
			c.timer.Advance(tick)
		case dueOK:
			c.dueAt = due
			c.sched.RunDue(due)
			c.dueAt = time.Time{}
		default:
			return
		}
	}
}

// NextWake returns the earliest time Advance has work to do.
func (c *Controller) NextWake() (time.Time, bool) {
	tick, tickOK := c.timer.NextTickAt()
	due, dueOK := c.sched.NextDue()
	switch {
	case tickOK && dueOK:
		if due.Before(tick) {
			return due, true
		}
		return tick, true
	case tickOK:
		return tick, true
	case dueOK:
		return due, true
	}
	return time.Time{}, false
}

// Session returns a copy of the current session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// TimerState reports the inactivity timer's state and display.
func (c *Controller) TimerState() (timer.State, string) {
	return c.timer.State(), c.timer.Display()
}

// Rows formats the session account's movements in the current sort order.
func (c *Controller) Rows() ([]MovementRow, error) {
	if c.session == nil {
		return nil, apperrors.ErrNoActiveSession
	}
	return BuildRows(c.session.Account, c.session.Sorted, c.clock.Now()), nil
}

// PendingLoans lists the session account's loans that have not posted yet.
func (c *Controller) PendingLoans() ([]scheduler.Task, error) {
	if c.session == nil {
		return nil, apperrors.ErrNoActiveSession
	}
	return c.dir.PendingLoans(c.session.Account), nil
}

// PendingLoan returns one of the session account's pending loans by id.
func (c *Controller) PendingLoan(id string) (scheduler.Task, error) {
	if c.session == nil {
		return scheduler.Task{}, apperrors.ErrNoActiveSession
	}
	return c.dir.PendingLoan(c.session.Account, id)
}

func (c *Controller) login(cmd Login) error {
	acc, err := c.dir.Authenticate(cmd.Username, cmd.PIN)
	if err != nil {
		return err
	}
	c.session = &Session{Account: acc}

	c.view.RenderWelcome("Welcome back " + acc.FirstName())
	c.view.RenderDate(format.LoginDate(c.clock.Now(), acc.Locale))
	c.view.SetSessionVisible(true)
	c.timer.Start()
	c.render()

	logger.Get().Infow("session started", "username", acc.Username)
	return nil
}

func (c *Controller) loanPosted(acc *models.Account) {
	if c.session == nil || c.session.Account != acc {
		return
	}
	if c.dueAt.IsZero() {
		c.timer.Start()
	} else {
		c.timer.StartAt(c.dueAt)
	}
	c.render()
}

func (c *Controller) expire() {
	if c.session == nil {
		return
	}
	c.end("expired")
}

func (c *Controller) end(reason string) {
	username := c.session.Account.Username
	c.session = nil
	c.timer.Stop()
	c.view.SetSessionVisible(false)
	c.view.RenderWelcome(LoggedOutMessage)
	logger.Get().Infow("session ended", "username", username, "reason", reason)
}

// render refreshes movements, balance and summary. With no session it does
// nothing, so it is safe to call at any time.
func (c *Controller) render() {
	if c.session == nil {
		return
	}
	acc := c.session.Account
	now := c.clock.Now()

	c.renderMovements(now)
	c.view.RenderBalance(format.Currency(ledger.Balance(acc), acc.Locale, acc.Currency))
	s := ledger.Summarize(acc)
	c.view.RenderSummary(
		format.Currency(s.Income, acc.Locale, acc.Currency),
		format.Currency(s.Expense, acc.Locale, acc.Currency),
		format.Currency(s.Interest, acc.Locale, acc.Currency),
	)
}

func (c *Controller) renderMovements(now time.Time) {
	if c.session == nil {
		return
	}
	c.view.RenderMovements(BuildRows(c.session.Account, c.session.Sorted, now), c.session.Sorted)
}
