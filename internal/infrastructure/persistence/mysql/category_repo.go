package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mdelvaux/library-api/internal/domain/category"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the MySQL category repository.
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(err, "creating category failed")
	}
	c.ID = model.ID
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "querying category failed")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "querying category failed")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "listing categories failed")
	}
	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"updated_at":  c.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(result.Error, "updating category failed")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	// Drop the book associations before the row itself.
	if err := db.Exec("DELETE FROM book_categories WHERE category_id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, "clearing category associations failed")
	}

	result := db.Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting category failed")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
