package loan

import (
	"context"

	"github.com/mdelvaux/library-api/internal/domain/loan"
	"github.com/mdelvaux/library-api/internal/domain/member"
)

// Quota is the borrowing headroom of one member.
type Quota struct {
	MemberID          uint `json:"member_id"`
	RemainingQuota    int  `json:"remaining_quota"`
	CanBorrow         bool `json:"can_borrow"`
	MaxLoansPerMember int  `json:"max_loans_per_member"`
}

// Queries is the read side of the loan engine. Member-scoped queries
// resolve the member first so an unknown id fails with not-found instead
// of an empty list.
type Queries struct {
	loanRepo   loan.Repository
	memberRepo member.Repository
	maxActive  int
}

// NewQueries wires the loan query surface.
func NewQueries(loanRepo loan.Repository, memberRepo member.Repository, maxActive int) *Queries {
	return &Queries{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
		maxActive:  maxActive,
	}
}

// ListLoans returns every loan.
func (q *Queries) ListLoans(ctx context.Context) ([]*loan.Loan, error) {
	return q.loanRepo.FindAll(ctx)
}

// GetLoanByID returns one loan or not-found.
func (q *Queries) GetLoanByID(ctx context.Context, id uint) (*loan.Loan, error) {
	return q.loanRepo.FindByID(ctx, id)
}

// GetLoansByMember returns every loan of the member.
func (q *Queries) GetLoansByMember(ctx context.Context, memberID uint) ([]*loan.Loan, error) {
	if _, err := q.memberRepo.FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	return q.loanRepo.FindByMember(ctx, memberID)
}

// GetActiveLoansByMember returns the member's active loans.
func (q *Queries) GetActiveLoansByMember(ctx context.Context, memberID uint) ([]*loan.Loan, error) {
	if _, err := q.memberRepo.FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	return q.loanRepo.FindByMemberAndStatus(ctx, memberID, loan.StatusActive)
}

// GetLoansByBook returns every loan of the book.
func (q *Queries) GetLoansByBook(ctx context.Context, bookID uint) ([]*loan.Loan, error) {
	return q.loanRepo.FindByBook(ctx, bookID)
}

// GetOverdueLoans returns loans in OVERDUE status. A loan past its due
// date does not appear here until the sweep has promoted it.
func (q *Queries) GetOverdueLoans(ctx context.Context) ([]*loan.Loan, error) {
	return q.loanRepo.FindByStatus(ctx, loan.StatusOverdue)
}

// CountActiveLoansByMember counts the member's active loans.
func (q *Queries) CountActiveLoansByMember(ctx context.Context, memberID uint) (int64, error) {
	if _, err := q.memberRepo.FindByID(ctx, memberID); err != nil {
		return 0, err
	}
	return q.loanRepo.CountByMemberAndStatus(ctx, memberID, loan.StatusActive)
}

// CountTotalLoansByMember counts every loan the member ever made.
func (q *Queries) CountTotalLoansByMember(ctx context.Context, memberID uint) (int64, error) {
	if _, err := q.memberRepo.FindByID(ctx, memberID); err != nil {
		return 0, err
	}
	return q.loanRepo.CountByMember(ctx, memberID)
}

// GetMemberQuota returns the member's remaining borrowing headroom.
// remaining is clamped at zero so remaining+active == quota holds for any
// active count up to the quota.
func (q *Queries) GetMemberQuota(ctx context.Context, memberID uint) (*Quota, error) {
	active, err := q.CountActiveLoansByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	remaining := q.maxActive - int(active)
	if remaining < 0 {
		remaining = 0
	}
	return &Quota{
		MemberID:          memberID,
		RemainingQuota:    remaining,
		CanBorrow:         int(active) < q.maxActive,
		MaxLoansPerMember: q.maxActive,
	}, nil
}
