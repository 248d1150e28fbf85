package loan

import (
	"context"
	"time"
)

// Repository is the loan storage port. The count/exists queries back the
// borrowing rules; MarkOverdue is the sweep.
type Repository interface {
	// Create inserts a new loan and backfills the generated id.
	Create(ctx context.Context, l *Loan) error

	// FindByID returns the loan or ErrLoanNotFound.
	FindByID(ctx context.Context, id uint) (*Loan, error)

	// FindAll returns every loan.
	FindAll(ctx context.Context) ([]*Loan, error)

	// Update persists all fields of the loan.
	Update(ctx context.Context, l *Loan) error

	// FindByMember returns every loan of the member, newest first.
	FindByMember(ctx context.Context, memberID uint) ([]*Loan, error)

	// FindByMemberAndStatus filters the member's loans by status.
	FindByMemberAndStatus(ctx context.Context, memberID uint, status Status) ([]*Loan, error)

	// FindByBook returns every loan of the book.
	FindByBook(ctx context.Context, bookID uint) ([]*Loan, error)

	// FindByStatus returns every loan in the given status.
	FindByStatus(ctx context.Context, status Status) ([]*Loan, error)

	// CountByMemberAndStatus counts the member's loans in the status.
	CountByMemberAndStatus(ctx context.Context, memberID uint, status Status) (int64, error)

	// CountByMember counts every loan the member ever made.
	CountByMember(ctx context.Context, memberID uint) (int64, error)

	// ExistsActiveByMemberAndBook reports whether the member currently
	// holds an active loan of the book.
	ExistsActiveByMemberAndBook(ctx context.Context, memberID, bookID uint) (bool, error)

	// MarkOverdue promotes every active, unreturned loan whose due date is
	// before now to OVERDUE, returning how many rows changed. Idempotent.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)

	// LockByID loads the loan row under an exclusive lock; only meaningful
	// inside a transaction.
	LockByID(ctx context.Context, id uint) (*Loan, error)
}
