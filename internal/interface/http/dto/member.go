package dto

import (
	"github.com/mdelvaux/library-api/internal/domain/member"
)

// CreateMemberRequest is the member registration payload.
type CreateMemberRequest struct {
	Email     string `json:"email" binding:"required,email,max=100" example:"ada.lovelace@example.com"`
	FirstName string `json:"first_name" binding:"required,max=100" example:"Ada"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Lovelace"`
}

// UpdateMemberRequest is the partial-update payload. Active toggles the
// borrowing permission like the suspend/activate endpoints do.
type UpdateMemberRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Active    *bool   `json:"active"`
}

// MemberResponse is the member payload.
type MemberResponse struct {
	ID             uint   `json:"id" example:"1"`
	Email          string `json:"email" example:"ada.lovelace@example.com"`
	FirstName      string `json:"first_name" example:"Ada"`
	LastName       string `json:"last_name" example:"Lovelace"`
	MembershipDate string `json:"membership_date" example:"2026-01-15"`
	Active         bool   `json:"active" example:"true"`
	CreatedAt      string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt      string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// NewMemberResponse converts the entity.
func NewMemberResponse(m *member.Member) *MemberResponse {
	return &MemberResponse{
		ID:             m.ID,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		MembershipDate: m.MembershipDate.Format(dateLayout),
		Active:         m.Active,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
}

// NewMemberResponses converts a list of entities.
func NewMemberResponses(members []*member.Member) []*MemberResponse {
	out := make([]*MemberResponse, len(members))
	for i, m := range members {
		out[i] = NewMemberResponse(m)
	}
	return out
}

// MemberStatsResponse answers the active-member counter endpoint.
type MemberStatsResponse struct {
	ActiveMembers int64 `json:"active_members" example:"17"`
}
