package services

import (
	"context"

	"bankist/internal/pagination"
	"bankist/internal/scheduler"
	"bankist/internal/session"
	"bankist/internal/view"
)

// BankServicer defines the contract the HTTP API needs from a running session.
type BankServicer interface {
	Dispatch(ctx context.Context, cmd session.Command) (view.Snapshot, error)
	Screen(ctx context.Context) (view.Snapshot, error)
	Movements(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[session.MovementRow], error)
	PendingLoans(ctx context.Context) ([]scheduler.Task, error)
	PendingLoan(ctx context.Context, id string) (scheduler.Task, error)
}
