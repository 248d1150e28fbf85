package dto

import (
	"github.com/mdelvaux/library-api/internal/domain/category"
)

// CreateCategoryRequest is the category creation payload.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Science Fiction"`
	Description string `json:"description" binding:"omitempty,max=500" example:"Novels of speculative futures"`
}

// UpdateCategoryRequest is the partial-update payload.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CategoryResponse is the category payload.
type CategoryResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Science Fiction"`
	Description string `json:"description" example:"Novels of speculative futures"`
	CreatedAt   string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// NewCategoryResponse converts the entity.
func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

// NewCategoryResponses converts a list of entities.
func NewCategoryResponses(categories []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = NewCategoryResponse(c)
	}
	return out
}
