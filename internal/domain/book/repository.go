package book

import (
	"context"
)

// Repository is the book storage port, including the category association
// and copy-accounting operations used by the loan engine.
type Repository interface {
	// Create inserts a new book and backfills the generated id.
	// An ISBN collision surfaces as ErrISBNDuplicate.
	Create(ctx context.Context, b *Book) error

	// FindByID returns the book (with category ids) or ErrBookNotFound.
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN matches the unique ISBN exactly.
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// ExistsByISBN reports whether any book other than excludeID holds the
	// ISBN. excludeID zero means no exclusion.
	ExistsByISBN(ctx context.Context, isbn string, excludeID uint) (bool, error)

	// FindAll returns every book.
	FindAll(ctx context.Context) ([]*Book, error)

	// Update persists all scalar fields of the book.
	Update(ctx context.Context, b *Book) error

	// Delete removes the book or returns ErrBookNotFound. Loans cascade.
	Delete(ctx context.Context, id uint) error

	// FindByAuthor returns the books referencing the author.
	FindByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// FindByCategory returns the books associated with the category.
	FindByCategory(ctx context.Context, categoryID uint) ([]*Book, error)

	// SearchByTitle matches titles case-insensitively, substring.
	SearchByTitle(ctx context.Context, title string) ([]*Book, error)

	// FindAvailable returns books with at least one free copy.
	FindAvailable(ctx context.Context) ([]*Book, error)

	// FindUnavailable returns books with no free copy (count <= 0).
	FindUnavailable(ctx context.Context) ([]*Book, error)

	// CountAvailable counts books with at least one free copy.
	CountAvailable(ctx context.Context) (int64, error)

	// FindAvailableByCategoryName returns available books in the named
	// category, ordered by title ascending.
	FindAvailableByCategoryName(ctx context.Context, categoryName string) ([]*Book, error)

	// AddCategory associates the category with the book; a no-op when the
	// association already exists.
	AddCategory(ctx context.Context, bookID, categoryID uint) error

	// RemoveCategory removes the association; a no-op when absent.
	RemoveCategory(ctx context.Context, bookID, categoryID uint) error

	// LockByID loads the book row under an exclusive lock; only meaningful
	// inside a transaction.
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateAvailableCopies atomically adds delta to available_copies,
	// refusing to drive the count negative (ErrNoCopiesLeft). An increment
	// clamps at total_copies so a return cannot fail after total_copies
	// was lowered.
	UpdateAvailableCopies(ctx context.Context, id uint, delta int) error
}
