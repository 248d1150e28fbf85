package book

import (
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

var (
	// ErrBookNotFound is returned when the referenced book is absent.
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrISBNDuplicate is returned on an ISBN collision.
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "a book with this ISBN already exists")

	// ErrInvalidISBN rejects malformed ISBN values (not 10 or 13 digits).
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "invalid ISBN (10 or 13 digits expected)")

	// ErrInvalidTitle rejects blank titles.
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "title must not be blank")

	// ErrInvalidPublicationYear rejects publication years before 1000.
	ErrInvalidPublicationYear = apperrors.New(apperrors.ErrCodeInvalidParams, "publication year must be 1000 or later")

	// ErrInvalidTotalCopies rejects total copy counts below 1.
	ErrInvalidTotalCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "total copies must be at least 1")

	// ErrInvalidAvailableCopies rejects negative available copy counts.
	ErrInvalidAvailableCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "available copies must not be negative")

	// ErrCopiesExceedTotal rejects updates that would leave more copies
	// available than exist.
	ErrCopiesExceedTotal = apperrors.New(apperrors.ErrCodeCopiesExceedTotal, "available copies cannot exceed total copies")

	// ErrNoCopiesLeft is returned by the guarded decrement when every copy
	// is already on loan.
	ErrNoCopiesLeft = apperrors.New(apperrors.ErrCodeNoCopiesLeft, "no copies available for this book")
)
