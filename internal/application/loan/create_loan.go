package loan

import (
	"context"
	"time"

	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/loan"
	"github.com/mdelvaux/library-api/internal/domain/member"
)

// CreateLoanUseCase creates a loan while holding the borrowing invariants:
// active member, available copy, per-member quota, no duplicate active
// loan of the same book.
type CreateLoanUseCase struct {
	loanRepo   loan.Repository
	bookRepo   book.Repository
	memberRepo member.Repository
	tx         Transactor
	maxActive  int
}

// NewCreateLoanUseCase wires the use case. maxActive is the borrowing
// quota (loan.max_active_loans).
func NewCreateLoanUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	tx Transactor,
	maxActive int,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:   loanRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		tx:         tx,
		maxActive:  maxActive,
	}
}

// Execute runs the whole rule sequence in one transaction. The member and
// book rows are locked first (always member before book, so two concurrent
// creates cannot deadlock) and every rule is evaluated under those locks;
// the copy decrement itself is a guarded atomic update. Two concurrent
// requests for the last copy therefore serialize, and the loser fails the
// availability check instead of driving the count negative.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, memberID, bookID uint, dueDate time.Time) (*loan.Loan, error) {
	var result *loan.Loan

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. Member must exist and be active
		m, err := uc.memberRepo.LockByID(txCtx, memberID)
		if err != nil {
			return err
		}
		if !m.Active {
			return loan.ErrMemberSuspended
		}

		// 2. Book must exist
		b, err := uc.bookRepo.LockByID(txCtx, bookID)
		if err != nil {
			return err
		}

		// 3. A copy must be available
		if b.AvailableCopies <= 0 {
			return loan.ErrNoCopiesLeft
		}

		// 4. Quota: fewer than maxActive simultaneous active loans
		activeCount, err := uc.loanRepo.CountByMemberAndStatus(txCtx, memberID, loan.StatusActive)
		if err != nil {
			return err
		}
		if activeCount >= int64(uc.maxActive) {
			return loan.ErrQuotaExceeded
		}

		// 5. No second active loan of the same book
		exists, err := uc.loanRepo.ExistsActiveByMemberAndBook(txCtx, memberID, bookID)
		if err != nil {
			return err
		}
		if exists {
			return loan.ErrAlreadyBorrowed
		}

		// 6. Create the loan and take the copy
		l := loan.NewLoan(memberID, bookID, dueDate)
		if err := uc.loanRepo.Create(txCtx, l); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateAvailableCopies(txCtx, bookID, -1); err != nil {
			return err
		}

		result = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
