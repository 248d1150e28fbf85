package loan

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrLoanNotFound is returned when the referenced loan is absent.
	ErrLoanNotFound = apperrors.New(apperrors.ErrCodeLoanNotFound, "loan not found")

	// ErrMemberSuspended rejects borrowing on a suspended account.
	ErrMemberSuspended = apperrors.New(apperrors.ErrCodeMemberSuspended, "member account is suspended, borrowing is not allowed")

	// ErrNoCopiesLeft rejects borrowing when every copy is on loan.
	ErrNoCopiesLeft = apperrors.New(apperrors.ErrCodeNoCopiesLeft, "no copies available for this book")

	// ErrQuotaExceeded rejects borrowing past the active-loan quota.
	ErrQuotaExceeded = apperrors.New(apperrors.ErrCodeQuotaExceeded, "member has reached the maximum number of simultaneous active loans")

	// ErrAlreadyBorrowed rejects a second active loan of the same book by
	// the same member.
	ErrAlreadyBorrowed = apperrors.New(apperrors.ErrCodeAlreadyBorrowed, "member has already borrowed this book and not returned it")

	// ErrAlreadyReturned rejects returning a loan twice.
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeAlreadyReturned, "this loan has already been returned")
)
