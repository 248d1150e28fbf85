package staff

import (
	"context"

	"github.com/mdelvaux/library-api/internal/domain/staff"
)

// RegisterUseCase creates staff accounts.
type RegisterUseCase struct {
	staffSvc staff.Service
}

// NewRegisterUseCase wires the use case.
func NewRegisterUseCase(staffSvc staff.Service) *RegisterUseCase {
	return &RegisterUseCase{staffSvc: staffSvc}
}

// RegisterResult is what the handler returns after registration.
type RegisterResult struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Execute registers the account.
func (uc *RegisterUseCase) Execute(ctx context.Context, email, password, name string) (*RegisterResult, error) {
	st, err := uc.staffSvc.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{
		ID:    st.ID,
		Email: st.Email,
		Name:  st.Name,
	}, nil
}
