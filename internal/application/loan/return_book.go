package loan

import (
	"context"

	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/loan"
)

// ReturnBookUseCase records the return of a loan and gives the copy back.
// Returning works from ACTIVE and OVERDUE alike; only an already returned
// loan is rejected.
type ReturnBookUseCase struct {
	loanRepo loan.Repository
	bookRepo book.Repository
	tx       Transactor
}

// NewReturnBookUseCase wires the use case.
func NewReturnBookUseCase(loanRepo loan.Repository, bookRepo book.Repository, tx Transactor) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		loanRepo: loanRepo,
		bookRepo: bookRepo,
		tx:       tx,
	}
}

// Execute locks the loan row, applies the RETURNED transition and
// increments the book's available copies, all in one transaction.
func (uc *ReturnBookUseCase) Execute(ctx context.Context, loanID uint) (*loan.Loan, error) {
	var result *loan.Loan

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		l, err := uc.loanRepo.LockByID(txCtx, loanID)
		if err != nil {
			return err
		}

		if err := l.MarkReturned(); err != nil {
			return err
		}
		if err := uc.loanRepo.Update(txCtx, l); err != nil {
			return err
		}
		if err := uc.bookRepo.UpdateAvailableCopies(txCtx, l.BookID, +1); err != nil {
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
