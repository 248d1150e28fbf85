package dto

import (
	"github.com/mdelvaux/library-api/internal/domain/book"
)

// CreateBookRequest is the book creation payload. AvailableCopies absent
// means every copy starts available.
type CreateBookRequest struct {
	ISBN            string `json:"isbn" binding:"required,max=20" example:"9780151446476"`
	Title           string `json:"title" binding:"required,max=200" example:"The Name of the Rose"`
	PublicationYear int    `json:"publication_year" binding:"omitempty,min=1000" example:"1980"`
	TotalCopies     int    `json:"total_copies" binding:"required,min=1" example:"3"`
	AvailableCopies *int   `json:"available_copies" binding:"omitempty,min=0" example:"3"`
	AuthorID        uint   `json:"author_id" binding:"required" example:"1"`
}

// UpdateBookRequest is the partial-update payload.
type UpdateBookRequest struct {
	ISBN            *string `json:"isbn" binding:"omitempty,max=20"`
	Title           *string `json:"title" binding:"omitempty,max=200"`
	PublicationYear *int    `json:"publication_year" binding:"omitempty,min=1000"`
	TotalCopies     *int    `json:"total_copies" binding:"omitempty,min=1"`
	AvailableCopies *int    `json:"available_copies" binding:"omitempty,min=0"`
	AuthorID        *uint   `json:"author_id" binding:"omitempty"`
}

// BookResponse is the book payload. Categories appear as flat id
// references.
type BookResponse struct {
	ID              uint   `json:"id" example:"1"`
	ISBN            string `json:"isbn" example:"9780151446476"`
	Title           string `json:"title" example:"The Name of the Rose"`
	PublicationYear int    `json:"publication_year" example:"1980"`
	TotalCopies     int    `json:"total_copies" example:"3"`
	AvailableCopies int    `json:"available_copies" example:"2"`
	Available       bool   `json:"available" example:"true"`
	AuthorID        uint   `json:"author_id" example:"1"`
	CategoryIDs     []uint `json:"category_ids"`
	CreatedAt       string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt       string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// NewBookResponse converts the entity.
func NewBookResponse(b *book.Book) *BookResponse {
	categoryIDs := b.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uint{}
	}
	return &BookResponse{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		Available:       b.IsAvailable(),
		AuthorID:        b.AuthorID,
		CategoryIDs:     categoryIDs,
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

// NewBookResponses converts a list of entities.
func NewBookResponses(books []*book.Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}

// BookStatsResponse answers the availability counter endpoint.
type BookStatsResponse struct {
	AvailableBooks int64 `json:"available_books" example:"42"`
}
