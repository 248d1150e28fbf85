package member

import (
	"time"
)

// Member is a library member. Email is unique; Active gates borrowing.
type Member struct {
	ID             uint
	Email          string
	FirstName      string
	LastName       string
	MembershipDate time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewMember creates a member entity; membership starts today and active.
func NewMember(email, firstName, lastName string) *Member {
	now := time.Now()
	return &Member{
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		MembershipDate: now,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Suspend flips the active flag off.
func (m *Member) Suspend() {
	m.Active = false
	m.UpdatedAt = time.Now()
}

// Activate flips the active flag on.
func (m *Member) Activate() {
	m.Active = true
	m.UpdatedAt = time.Now()
}

// UpdateParams is the patch structure for partial updates.
type UpdateParams struct {
	Email     *string
	FirstName *string
	LastName  *string
	Active    *bool
}

// Apply overwrites the fields present in the patch.
func (m *Member) Apply(p UpdateParams) {
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	m.UpdatedAt = time.Now()
}
