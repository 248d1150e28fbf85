package author

import (
	"time"
)

// Author is a catalog author. The (FirstName, LastName) pair is checked
// for uniqueness at creation time; books reference an author by id.
type Author struct {
	ID          uint
	FirstName   string
	LastName    string
	Nationality string
	BirthYear   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor creates an author entity, factory for the create flow.
func NewAuthor(firstName, lastName, nationality string, birthYear int) *Author {
	now := time.Now()
	return &Author{
		FirstName:   firstName,
		LastName:    lastName,
		Nationality: nationality,
		BirthYear:   birthYear,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateParams is the patch structure for partial updates: a present
// (non-nil) field overwrites, an absent field preserves the stored value.
type UpdateParams struct {
	FirstName   *string
	LastName    *string
	Nationality *string
	BirthYear   *int
}

// Apply overwrites the entity fields present in the patch.
func (a *Author) Apply(p UpdateParams) {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.Nationality != nil {
		a.Nationality = *p.Nationality
	}
	if p.BirthYear != nil {
		a.BirthYear = *p.BirthYear
	}
	a.UpdatedAt = time.Now()
}
