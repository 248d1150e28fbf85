package category

import (
	"context"
	"strings"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// Service is the category manager.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	CreateCategory(ctx context.Context, name, description string) (*Category, error)
	UpdateCategory(ctx context.Context, id uint, params UpdateParams) (*Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService creates the category manager.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	return s.repo.FindByName(ctx, name)
}

// CreateCategory rejects blank and duplicate names; the unique index on
// name backs the check.
func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, ErrCategoryDuplicate
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	c := NewCategory(name, description)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory applies a partial update, re-checking name uniqueness
// when the patch renames the category.
func (s *service) UpdateCategory(ctx context.Context, id uint, params UpdateParams) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil && *params.Name != c.Name {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, ErrInvalidName
		}
		if _, err := s.repo.FindByName(ctx, *params.Name); err == nil {
			return nil, ErrCategoryDuplicate
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
	}

	c.Apply(params)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
