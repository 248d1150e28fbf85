package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mdelvaux/library-api/internal/domain/loan"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates the MySQL loan repository.
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	model := toLoanModel(l)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "creating loan failed")
	}
	l.ID = model.ID
	return nil
}

func (r *loanRepository) FindByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "querying loan failed")
	}
	return toLoanEntity(&model), nil
}

func (r *loanRepository) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	var models []LoanModel
	if err := getDB(ctx, r.db).Order("loan_date DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "listing loans failed")
	}
	return toLoanEntities(models), nil
}

func (r *loanRepository) Update(ctx context.Context, l *loan.Loan) error {
	result := getDB(ctx, r.db).Model(&LoanModel{}).Where("id = ?", l.ID).Updates(map[string]interface{}{
		"due_date":    l.DueDate,
		"return_date": l.ReturnDate,
		"status":      int(l.Status),
		"updated_at":  l.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "updating loan failed")
	}
	if result.RowsAffected == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}

func (r *loanRepository) FindByMember(ctx context.Context, memberID uint) ([]*loan.Loan, error) {
	var models []LoanModel
	err := getDB(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("loan_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying member loans failed")
	}
	return toLoanEntities(models), nil
}

func (r *loanRepository) FindByMemberAndStatus(ctx context.Context, memberID uint, status loan.Status) ([]*loan.Loan, error) {
	var models []LoanModel
	err := getDB(ctx, r.db).
		Where("member_id = ? AND status = ?", memberID, int(status)).
		Order("loan_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying member loans failed")
	}
	return toLoanEntities(models), nil
}

func (r *loanRepository) FindByBook(ctx context.Context, bookID uint) ([]*loan.Loan, error) {
	var models []LoanModel
	err := getDB(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("loan_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying book loans failed")
	}
	return toLoanEntities(models), nil
}

func (r *loanRepository) FindByStatus(ctx context.Context, status loan.Status) ([]*loan.Loan, error) {
	var models []LoanModel
	err := getDB(ctx, r.db).
		Where("status = ?", int(status)).
		Order("due_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying loans by status failed")
	}
	return toLoanEntities(models), nil
}

func (r *loanRepository) CountByMemberAndStatus(ctx context.Context, memberID uint, status loan.Status) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("member_id = ? AND status = ?", memberID, int(status)).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "counting member loans failed")
	}
	return count, nil
}

func (r *loanRepository) CountByMember(ctx context.Context, memberID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "counting member loans failed")
	}
	return count, nil
}

func (r *loanRepository) ExistsActiveByMemberAndBook(ctx context.Context, memberID, bookID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("member_id = ? AND book_id = ? AND status = ?", memberID, bookID, int(loan.StatusActive)).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "checking active loan failed")
	}
	return count > 0, nil
}

// MarkOverdue is one bulk UPDATE:
// UPDATE loans SET status = 3 WHERE status = 1 AND due_date < now
// AND return_date IS NULL. Rerunning it matches nothing new, so the sweep
// stays idempotent.
func (r *loanRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("status = ?", int(loan.StatusActive)).
		Where("due_date < ?", now).
		Where("return_date IS NULL").
		Updates(map[string]interface{}{
			"status":     int(loan.StatusOverdue),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "marking overdue loans failed")
	}
	return result.RowsAffected, nil
}

// LockByID loads the loan row with SELECT FOR UPDATE so a return and a
// concurrent sweep cannot race on the same loan.
func (r *loanRepository) LockByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "locking loan failed")
	}
	return toLoanEntity(&model), nil
}

func toLoanModel(l *loan.Loan) *LoanModel {
	return &LoanModel{
		ID:         l.ID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     int(l.Status),
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toLoanEntity(model *LoanModel) *loan.Loan {
	return &loan.Loan{
		ID:         model.ID,
		LoanDate:   model.LoanDate,
		DueDate:    model.DueDate,
		ReturnDate: model.ReturnDate,
		Status:     loan.Status(model.Status),
		MemberID:   model.MemberID,
		BookID:     model.BookID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func toLoanEntities(models []LoanModel) []*loan.Loan {
	loans := make([]*loan.Loan, len(models))
	for i := range models {
		loans[i] = toLoanEntity(&models[i])
	}
	return loans
}
