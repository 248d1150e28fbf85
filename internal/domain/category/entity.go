package category

import (
	"time"
)

// Category is a catalog category; Name is unique. Books reference
// categories through the book_categories join table.
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a category entity.
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateParams is the patch structure for partial updates.
type UpdateParams struct {
	Name        *string
	Description *string
}

// Apply overwrites the fields present in the patch.
func (c *Category) Apply(p UpdateParams) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	c.UpdatedAt = time.Now()
}
