package member

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrMemberNotFound is returned when the referenced member is absent.
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "member not found")

	// ErrEmailDuplicate is returned on an email collision.
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "a member with this email already exists")

	// ErrInvalidEmail rejects malformed email addresses.
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid email address")

	// ErrInvalidName rejects blank first or last names.
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "first and last name must not be blank")
)
