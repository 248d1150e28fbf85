package category

import (
	"context"
)

// Repository is the category storage port.
type Repository interface {
	// Create inserts a new category and backfills the generated id.
	// A name collision surfaces as ErrCategoryDuplicate.
	Create(ctx context.Context, c *Category) error

	// FindByID returns the category or ErrCategoryNotFound.
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByName matches the unique name exactly.
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll returns every category.
	FindAll(ctx context.Context) ([]*Category, error)

	// Update persists all fields; name collisions surface as
	// ErrCategoryDuplicate.
	Update(ctx context.Context, c *Category) error

	// Delete removes the category or returns ErrCategoryNotFound.
	Delete(ctx context.Context, id uint) error
}
