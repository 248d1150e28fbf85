package book

import (
	"time"
)

// Book is a catalog book. ISBN is the business key (unique index).
// AvailableCopies is the number of physical copies not currently on loan;
// only the loan engine mutates it outside the generic update path.
// Categories are carried as flat id references resolved through the store,
// not as live object pointers.
type Book struct {
	ID              uint
	ISBN            string
	Title           string
	PublicationYear int
	TotalCopies     int
	AvailableCopies int
	AuthorID        uint
	CategoryIDs     []uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook creates a book entity with every copy available.
func NewBook(isbn, title string, publicationYear, totalCopies, availableCopies int, authorID uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:            isbn,
		Title:           title,
		PublicationYear: publicationYear,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		AuthorID:        authorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsAvailable reports whether at least one copy can be borrowed.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// HasCategory reports whether the book already references the category.
func (b *Book) HasCategory(categoryID uint) bool {
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// UpdateParams is the patch structure for partial updates.
type UpdateParams struct {
	ISBN            *string
	Title           *string
	PublicationYear *int
	TotalCopies     *int
	AvailableCopies *int
	AuthorID        *uint
}

// Apply overwrites the fields present in the patch.
func (b *Book) Apply(p UpdateParams) {
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.PublicationYear != nil {
		b.PublicationYear = *p.PublicationYear
	}
	if p.TotalCopies != nil {
		b.TotalCopies = *p.TotalCopies
	}
	if p.AvailableCopies != nil {
		b.AvailableCopies = *p.AvailableCopies
	}
	if p.AuthorID != nil {
		b.AuthorID = *p.AuthorID
	}
	b.UpdatedAt = time.Now()
}
