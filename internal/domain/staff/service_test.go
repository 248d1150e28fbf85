package staff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdelvaux/library-api/internal/domain/staff"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

type fakeStaffRepo struct {
	accounts map[uint]*staff.Staff
	nextID   uint
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{accounts: make(map[uint]*staff.Staff), nextID: 1}
}

func (r *fakeStaffRepo) Create(_ context.Context, s *staff.Staff) error {
	for _, other := range r.accounts {
		if other.Email == s.Email {
			return staff.ErrEmailDuplicate
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.accounts[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id uint) (*staff.Staff, error) {
	s, ok := r.accounts[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	return s, nil
}

func (r *fakeStaffRepo) FindByEmail(_ context.Context, email string) (*staff.Staff, error) {
	for _, s := range r.accounts {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, staff.ErrStaffNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := staff.NewService(newFakeStaffRepo())

	st, err := svc.Register(context.Background(), "librarian@example.com", "secret1234", "Librarian")
	require.NoError(t, err)
	assert.NotZero(t, st.ID)
	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "secret1234", st.Password)

	logged, err := svc.Login(context.Background(), "librarian@example.com", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, st.ID, logged.ID)

	_, err = svc.Login(context.Background(), "librarian@example.com", "wrong12345")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1234")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestRegisterValidation(t *testing.T) {
	svc := staff.NewService(newFakeStaffRepo())

	_, err := svc.Register(context.Background(), "not-an-email", "secret1234", "Librarian")
	assert.ErrorIs(t, err, staff.ErrInvalidEmail)

	_, err = svc.Register(context.Background(), "librarian@example.com", "short1", "Librarian")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	// Letters only and digits only both fail the strength check.
	_, err = svc.Register(context.Background(), "librarian@example.com", "lettersonly", "Librarian")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	_, err = svc.Register(context.Background(), "librarian@example.com", "1234567890", "Librarian")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	_, err = svc.Register(context.Background(), "librarian@example.com", "secret1234", "X")
	assert.ErrorIs(t, err, staff.ErrInvalidName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := staff.NewService(newFakeStaffRepo())

	_, err := svc.Register(context.Background(), "librarian@example.com", "secret1234", "Librarian")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "librarian@example.com", "other12345", "Other")
	assert.ErrorIs(t, err, staff.ErrEmailDuplicate)
}
