package dto

import (
	"time"

	"github.com/mdelvaux/library-api/internal/domain/author"
)

const timeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// CreateAuthorRequest is the author creation payload.
type CreateAuthorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100" example:"Umberto"`
	LastName    string `json:"last_name" binding:"required,max=100" example:"Eco"`
	Nationality string `json:"nationality" binding:"omitempty,max=100" example:"Italian"`
	BirthYear   int    `json:"birth_year" binding:"omitempty,min=1000" example:"1932"`
}

// UpdateAuthorRequest is the partial-update payload: absent fields keep
// their stored value.
type UpdateAuthorRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	Nationality *string `json:"nationality" binding:"omitempty,max=100"`
	BirthYear   *int    `json:"birth_year" binding:"omitempty,min=1000"`
}

// AuthorResponse is the author payload returned by every author endpoint.
type AuthorResponse struct {
	ID          uint   `json:"id" example:"1"`
	FirstName   string `json:"first_name" example:"Umberto"`
	LastName    string `json:"last_name" example:"Eco"`
	Nationality string `json:"nationality" example:"Italian"`
	BirthYear   int    `json:"birth_year" example:"1932"`
	CreatedAt   string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// NewAuthorResponse converts the entity.
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Nationality: a.Nationality,
		BirthYear:   a.BirthYear,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

// NewAuthorResponses converts a list of entities.
func NewAuthorResponses(authors []*author.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = NewAuthorResponse(a)
	}
	return out
}
