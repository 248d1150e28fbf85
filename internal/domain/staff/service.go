package staff

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// Service handles staff registration and credential checks.
type Service interface {
	// Register creates a staff account with a bcrypt-hashed password.
	Register(ctx context.Context, email, password, name string) (*Staff, error)

	// Login returns the account when email and password match.
	Login(ctx context.Context, email, password string) (*Staff, error)

	// ValidatePassword compares a bcrypt hash with a plaintext password.
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService creates the staff service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password, name string) (*Staff, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}
	if len(name) < 2 || len(name) > 50 {
		return nil, ErrInvalidName
	}

	// bcrypt salts internally; cost 12 trades ~250ms per hash for
	// brute-force resistance.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "hashing password failed")
	}

	st := NewStaff(email, string(hashed), name)
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Staff, error) {
	st, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.ValidatePassword(st.Password, password); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "password verification failed")
	}
	return nil
}

func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength requires 8-20 characters with at least one
// letter and one digit.
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}
	return nil
}
