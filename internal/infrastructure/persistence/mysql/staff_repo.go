package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mdelvaux/library-api/internal/domain/staff"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates the MySQL staff repository.
func NewStaffRepository(db *gorm.DB) staff.Repository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, s *staff.Staff) error {
	model := toStaffModel(s)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return staff.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "creating staff account failed")
	}
	s.ID = model.ID
	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uint) (*staff.Staff, error) {
	var model StaffModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "querying staff account failed")
	}
	return toStaffEntity(&model), nil
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	var model StaffModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "querying staff account failed")
	}
	return toStaffEntity(&model), nil
}

func toStaffModel(s *staff.Staff) *StaffModel {
	return &StaffModel{
		ID:        s.ID,
		Email:     s.Email,
		Password:  s.Password,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toStaffEntity(model *StaffModel) *staff.Staff {
	return &staff.Staff{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
