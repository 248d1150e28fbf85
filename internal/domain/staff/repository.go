package staff

import (
	"context"
)

// Repository is the staff account storage port.
type Repository interface {
	// Create inserts a new account; an email collision surfaces as
	// ErrEmailDuplicate.
	Create(ctx context.Context, s *Staff) error

	// FindByID returns the account or ErrStaffNotFound.
	FindByID(ctx context.Context, id uint) (*Staff, error)

	// FindByEmail matches the unique email exactly.
	FindByEmail(ctx context.Context, email string) (*Staff, error)
}
