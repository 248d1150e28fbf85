package author

import (
	"context"
	"strings"
)

// Service is the author manager: CRUD plus the name-pair uniqueness check
// and the lastname/nationality searches.
type Service interface {
	ListAuthors(ctx context.Context) ([]*Author, error)
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)
	CreateAuthor(ctx context.Context, firstName, lastName, nationality string, birthYear int) (*Author, error)
	UpdateAuthor(ctx context.Context, id uint, params UpdateParams) (*Author, error)
	DeleteAuthor(ctx context.Context, id uint) error
	SearchByLastName(ctx context.Context, lastName string) ([]*Author, error)
	GetByNationality(ctx context.Context, nationality string) ([]*Author, error)
}

type service struct {
	repo Repository
}

// NewService creates the author manager.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateAuthor validates the fields and rejects an existing
// (firstName, lastName) pair. The check is best-effort: there is no unique
// index on the name pair, matching the relational model.
func (s *service) CreateAuthor(ctx context.Context, firstName, lastName, nationality string, birthYear int) (*Author, error) {
	if err := validateNames(firstName, lastName); err != nil {
		return nil, err
	}
	if err := validateBirthYear(birthYear); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAuthorDuplicate
	}

	a := NewAuthor(firstName, lastName, nationality, birthYear)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAuthor applies a partial update. When the patch changes the name
// pair, the new pair is re-checked for uniqueness.
func (s *service) UpdateAuthor(ctx context.Context, id uint, params UpdateParams) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newFirst, newLast := a.FirstName, a.LastName
	if params.FirstName != nil {
		newFirst = *params.FirstName
	}
	if params.LastName != nil {
		newLast = *params.LastName
	}
	if err := validateNames(newFirst, newLast); err != nil {
		return nil, err
	}
	if params.BirthYear != nil {
		if err := validateBirthYear(*params.BirthYear); err != nil {
			return nil, err
		}
	}

	if newFirst != a.FirstName || newLast != a.LastName {
		exists, err := s.repo.ExistsByName(ctx, newFirst, newLast)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAuthorDuplicate
		}
	}

	a.Apply(params)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SearchByLastName(ctx context.Context, lastName string) ([]*Author, error) {
	return s.repo.SearchByLastName(ctx, lastName)
}

func (s *service) GetByNationality(ctx context.Context, nationality string) ([]*Author, error) {
	return s.repo.FindByNationality(ctx, nationality)
}

func validateNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrInvalidName
	}
	return nil
}

func validateBirthYear(year int) error {
	if year < 1000 {
		return ErrInvalidBirthYear
	}
	return nil
}
