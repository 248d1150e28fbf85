package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mdelvaux/library-api/internal/domain/author"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates the MySQL author repository.
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "creating author failed")
	}
	a.ID = model.ID
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "querying author failed")
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "listing authors failed")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "checking author name failed")
	}
	return count > 0, nil
}

func (r *authorRepository) SearchByLastName(ctx context.Context, lastName string) ([]*author.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).
		Where("last_name LIKE ?", "%"+lastName+"%").
		Order("last_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "searching authors failed")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) FindByNationality(ctx context.Context, nationality string) ([]*author.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).
		Where("nationality = ?", nationality).
		Order("last_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying authors by nationality failed")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"first_name":  a.FirstName,
		"last_name":   a.LastName,
		"nationality": a.Nationality,
		"birth_year":  a.BirthYear,
		"updated_at":  a.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "updating author failed")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting author failed")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Nationality: a.Nationality,
		BirthYear:   a.BirthYear,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:          model.ID,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Nationality: model.Nationality,
		BirthYear:   model.BirthYear,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toAuthorEntities(models []AuthorModel) []*author.Author {
	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors
}
