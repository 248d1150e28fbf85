package author

import (
	"context"
)

// Repository is the author storage port, implemented by the mysql package.
type Repository interface {
	// Create inserts a new author and backfills the generated id.
	Create(ctx context.Context, a *Author) error

	// FindByID returns the author or ErrAuthorNotFound.
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindAll returns every author.
	FindAll(ctx context.Context) ([]*Author, error)

	// ExistsByName reports whether an author with this exact first and
	// last name already exists.
	ExistsByName(ctx context.Context, firstName, lastName string) (bool, error)

	// SearchByLastName matches last names case-insensitively, substring.
	SearchByLastName(ctx context.Context, lastName string) ([]*Author, error)

	// FindByNationality matches the nationality exactly.
	FindByNationality(ctx context.Context, nationality string) ([]*Author, error)

	// Update persists all fields of the author.
	Update(ctx context.Context, a *Author) error

	// Delete removes the author or returns ErrAuthorNotFound.
	Delete(ctx context.Context, id uint) error
}
