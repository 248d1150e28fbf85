package author

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrAuthorNotFound is returned when the referenced author id is absent.
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "author not found")

	// ErrAuthorDuplicate is returned when an author with the same first and
	// last name already exists.
	ErrAuthorDuplicate = apperrors.New(apperrors.ErrCodeAuthorDuplicate, "an author with this name already exists")

	// ErrInvalidName rejects blank first or last names.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "first and last name must not be blank")

	// ErrInvalidBirthYear rejects birth years before 1000.
	ErrInvalidBirthYear = apperrors.New(apperrors.ErrCodeInvalidParams, "birth year must be 1000 or later")
)
