package staff

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrStaffNotFound is returned when no account matches the lookup.
	ErrStaffNotFound = apperrors.New(apperrors.ErrCodeStaffNotFound, "staff account not found")

	// ErrEmailDuplicate is returned on an account email collision.
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "a staff account with this email already exists")

	// ErrInvalidEmail rejects malformed email addresses.
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")

	// ErrInvalidName rejects names outside 2-50 characters.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "name must be 2-50 characters")
)
