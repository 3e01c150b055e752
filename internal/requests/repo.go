package requests

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no request matches the given ID.
var ErrNotFound = errors.New("request not found")

// Repo defines persistence operations for intake records.
type Repo interface {
	Create(ctx context.Context, req Request) error
	// List returns records ordered by creation time descending. A
	// non-positive limit returns everything.
	List(ctx context.Context, limit, offset int) ([]Request, error)
	// UpdateStatus sets the status verbatim and returns the updated
	// record, or ErrNotFound for an unknown ID.
	UpdateStatus(ctx context.Context, id, status string) (Request, error)
}
