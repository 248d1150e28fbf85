package member

import (
	"context"
)

// Repository is the member storage port.
type Repository interface {
	// Create inserts a new member and backfills the generated id.
	// An email collision surfaces as ErrEmailDuplicate.
	Create(ctx context.Context, m *Member) error

	// FindByID returns the member or ErrMemberNotFound.
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByEmail matches the unique email exactly.
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// FindAll returns every member.
	FindAll(ctx context.Context) ([]*Member, error)

	// FindActive returns members with the active flag set.
	FindActive(ctx context.Context) ([]*Member, error)

	// CountActive counts members with the active flag set.
	CountActive(ctx context.Context) (int64, error)

	// Update persists all fields; email collisions surface as
	// ErrEmailDuplicate.
	Update(ctx context.Context, m *Member) error

	// Delete removes the member or returns ErrMemberNotFound.
	Delete(ctx context.Context, id uint) error

	// LockByID loads the member row under an exclusive lock; only
	// meaningful inside a transaction.
	LockByID(ctx context.Context, id uint) (*Member, error)
}
