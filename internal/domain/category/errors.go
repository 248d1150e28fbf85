package category

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when the referenced category is absent.
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "category not found")

	// ErrCategoryDuplicate is returned on a category name collision.
	ErrCategoryDuplicate = apperrors.New(apperrors.ErrCodeCategoryDuplicate, "a category with this name already exists")

	// ErrInvalidName rejects blank category names.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "category name must not be blank")
)
