package loan

import (
	"time"
)

// Status is the loan lifecycle state, stored as a tinyint.
type Status int

const (
	StatusActive   Status = 1
	StatusReturned Status = 2
	StatusOverdue  Status = 3
)

// String returns the API representation of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusReturned:
		return "RETURNED"
	case StatusOverdue:
		return "OVERDUE"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus maps the API representation back to a Status; zero on miss.
func ParseStatus(s string) Status {
	switch s {
	case "ACTIVE":
		return StatusActive
	case "RETURNED":
		return StatusReturned
	case "OVERDUE":
		return StatusOverdue
	default:
		return 0
	}
}

// Loan is one borrowing of one book copy by one member.
// Invariant: ReturnDate is set exactly when Status is RETURNED.
type Loan struct {
	ID         uint
	LoanDate   time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Status     Status
	MemberID   uint
	BookID     uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLoan creates an active loan starting today.
func NewLoan(memberID, bookID uint, dueDate time.Time) *Loan {
	now := time.Now()
	return &Loan{
		LoanDate:  now,
		DueDate:   dueDate,
		Status:    StatusActive,
		MemberID:  memberID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanTransitionTo enforces the lifecycle state machine:
// ACTIVE -> RETURNED | OVERDUE, OVERDUE -> RETURNED, RETURNED terminal.
func (l *Loan) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusActive:   {StatusReturned, StatusOverdue},
		StatusOverdue:  {StatusReturned},
		StatusReturned: {},
	}
	for _, allowed := range transitions[l.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// MarkReturned records the return: RETURNED status plus today's return
// date. Fails on a loan that is already returned.
func (l *Loan) MarkReturned() error {
	if !l.CanTransitionTo(StatusReturned) {
		return ErrAlreadyReturned
	}
	now := time.Now()
	l.Status = StatusReturned
	l.ReturnDate = &now
	l.UpdatedAt = now
	return nil
}

// IsOverdue reports whether the loan is past due and not returned. Only
// the sweep acts on it; a past-due loan stays ACTIVE until the sweep runs.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.ReturnDate == nil && now.After(l.DueDate)
}
