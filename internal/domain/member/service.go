package member

import (
	"context"
	"regexp"
	"strings"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// Service is the member manager: CRUD, email search, the active-members
// aggregate and the suspend/activate flag flips.
type Service interface {
	ListMembers(ctx context.Context) ([]*Member, error)
	GetMemberByID(ctx context.Context, id uint) (*Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*Member, error)
	CreateMember(ctx context.Context, email, firstName, lastName string) (*Member, error)
	UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error)
	DeleteMember(ctx context.Context, id uint) error
	ListActiveMembers(ctx context.Context) ([]*Member, error)
	CountActiveMembers(ctx context.Context) (int64, error)
	SuspendMember(ctx context.Context, id uint) (*Member, error)
	ActivateMember(ctx context.Context, id uint) (*Member, error)
}

type service struct {
	repo Repository
}

// NewService creates the member manager.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetMemberByID(ctx context.Context, id uint) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetMemberByEmail(ctx context.Context, email string) (*Member, error) {
	return s.repo.FindByEmail(ctx, email)
}

// CreateMember validates the fields and rejects duplicate emails; the
// unique index on email backs the check.
func (s *service) CreateMember(ctx context.Context, email, firstName, lastName string) (*Member, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrInvalidName
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailDuplicate
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	m := NewMember(email, firstName, lastName)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMember applies a partial update, re-checking email uniqueness when
// the patch changes it.
func (s *service) UpdateMember(ctx context.Context, id uint, params UpdateParams) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && *params.Email != m.Email {
		if !isValidEmail(*params.Email) {
			return nil, ErrInvalidEmail
		}
		if _, err := s.repo.FindByEmail(ctx, *params.Email); err == nil {
			return nil, ErrEmailDuplicate
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
	}

	m.Apply(params)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteMember(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListActiveMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.FindActive(ctx)
}

func (s *service) CountActiveMembers(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

// SuspendMember is a plain flag flip, guarded by existence only.
func (s *service) SuspendMember(ctx context.Context, id uint) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Suspend()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ActivateMember is the inverse flag flip.
func (s *service) ActivateMember(ctx context.Context, id uint) (*Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Activate()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
