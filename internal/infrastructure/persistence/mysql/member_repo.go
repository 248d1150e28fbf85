package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mdelvaux/library-api/internal/domain/member"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates the MySQL member repository.
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := toMemberModel(m)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "creating member failed")
	}
	m.ID = model.ID
	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "querying member failed")
	}
	return toMemberEntity(&model), nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model MemberModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "querying member failed")
	}
	return toMemberEntity(&model), nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "listing members failed")
	}
	return toMemberEntities(models), nil
}

func (r *memberRepository) FindActive(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	err := getDB(ctx, r.db).Where("active = ?", true).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "listing active members failed")
	}
	return toMemberEntities(models), nil
}

func (r *memberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&MemberModel{}).Where("active = ?", true).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "counting active members failed")
	}
	return count, nil
}

func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	result := getDB(ctx, r.db).Model(&MemberModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"email":      m.Email,
		"first_name": m.FirstName,
		"last_name":  m.LastName,
		"active":     m.Active,
		"updated_at": m.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return member.ErrEmailDuplicate
		}
		return apperrors.Wrap(result.Error, "updating member failed")
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	// The member's loan history goes with the member.
	if err := db.Where("member_id = ?", id).Delete(&LoanModel{}).Error; err != nil {
		return apperrors.Wrap(err, "deleting member loans failed")
	}

	result := db.Delete(&MemberModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting member failed")
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

// LockByID loads the member row with SELECT FOR UPDATE so concurrent loan
// creations for the same member serialize.
func (r *memberRepository) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "locking member failed")
	}
	return toMemberEntity(&model), nil
}

func toMemberModel(m *member.Member) *MemberModel {
	return &MemberModel{
		ID:             m.ID,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		MembershipDate: m.MembershipDate,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMemberEntity(model *MemberModel) *member.Member {
	return &member.Member{
		ID:             model.ID,
		Email:          model.Email,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		MembershipDate: model.MembershipDate,
		Active:         model.Active,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func toMemberEntities(models []MemberModel) []*member.Member {
	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}
	return members
}
