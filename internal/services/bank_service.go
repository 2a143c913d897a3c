// Package services adapts the session loop to request/response callers.
package services

import (
	"context"

	"bankist/internal/pagination"
	"bankist/internal/scheduler"
	"bankist/internal/session"
	"bankist/internal/view"
)

// bankService runs every call on the session loop so that due timer ticks
// and loan postings are applied before the caller sees any state.
type bankService struct {
	loop   *session.Loop
	screen *view.Screen
}

// NewBankService creates a BankServicer over a running loop whose
// controller renders to screen.
func NewBankService(loop *session.Loop, screen *view.Screen) BankServicer {
	return &bankService{loop: loop, screen: screen}
}

// Dispatch runs cmd and returns the screen as it stands afterwards.
func (s *bankService) Dispatch(ctx context.Context, cmd session.Command) (view.Snapshot, error) {
	var snap view.Snapshot
	err := s.loop.Do(ctx, func(c *session.Controller) error {
		if err := c.Dispatch(cmd); err != nil {
			return err
		}
		snap = s.screen.Snapshot()
		return nil
	})
	return snap, err
}

// Screen returns the current screen. It works with or without a session.
func (s *bankService) Screen(ctx context.Context) (view.Snapshot, error) {
	var snap view.Snapshot
	err := s.loop.Do(ctx, func(*session.Controller) error {
		snap = s.screen.Snapshot()
		return nil
	})
	return snap, err
}

// Movements returns a page of the session account's rows, newest first.
func (s *bankService) Movements(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[session.MovementRow], error) {
	var resp pagination.PageResponse[session.MovementRow]
	err := s.loop.Do(ctx, func(c *session.Controller) error {
		rows, err := c.Rows()
		if err != nil {
			return err
		}
		resp = pagination.Slice(view.NewestFirst(rows), page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PendingLoans lists the session account's loans that have not posted yet.
func (s *bankService) PendingLoans(ctx context.Context) ([]scheduler.Task, error) {
	var tasks []scheduler.Task
	err := s.loop.Do(ctx, func(c *session.Controller) error {
		var err error
		tasks, err = c.PendingLoans()
		return err
	})
	return tasks, err
}

// PendingLoan looks up one of the session account's pending loans.
func (s *bankService) PendingLoan(ctx context.Context, id string) (scheduler.Task, error) {
	var task scheduler.Task
	err := s.loop.Do(ctx, func(c *session.Controller) error {
		var err error
		task, err = c.PendingLoan(id)
		return err
	})
	return task, err
}
