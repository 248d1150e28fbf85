package staff

import (
	"time"
)

// Staff is a librarian account. Write endpoints require a staff login;
// read endpoints are public.
type Staff struct {
	ID        uint
	Email     string
	Password  string // bcrypt hash
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStaff creates a staff entity with an already-hashed password.
func NewStaff(email, hashedPassword, name string) *Staff {
	now := time.Now()
	return &Staff{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
