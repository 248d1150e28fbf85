package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRoundTrip(t *testing.T) {
	assert.Equal(t, "ACTIVE", StatusActive.String())
	assert.Equal(t, "RETURNED", StatusReturned.String())
	assert.Equal(t, "OVERDUE", StatusOverdue.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())

	assert.Equal(t, StatusActive, ParseStatus("ACTIVE"))
	assert.Equal(t, StatusReturned, ParseStatus("RETURNED"))
	assert.Equal(t, StatusOverdue, ParseStatus("OVERDUE"))
	assert.Equal(t, Status(0), ParseStatus("bogus"))
}

func TestStatusTransitions(t *testing.T) {
	active := &Loan{Status: StatusActive}
	assert.True(t, active.CanTransitionTo(StatusReturned))
	assert.True(t, active.CanTransitionTo(StatusOverdue))

	overdue := &Loan{Status: StatusOverdue}
	assert.True(t, overdue.CanTransitionTo(StatusReturned))
	assert.False(t, overdue.CanTransitionTo(StatusActive))

	returned := &Loan{Status: StatusReturned}
	assert.False(t, returned.CanTransitionTo(StatusActive))
	assert.False(t, returned.CanTransitionTo(StatusOverdue))
}

func TestMarkReturned(t *testing.T) {
	l := NewLoan(1, 2, time.Now().AddDate(0, 0, 14))
	require.Equal(t, StatusActive, l.Status)
	require.Nil(t, l.ReturnDate)

	require.NoError(t, l.MarkReturned())
	assert.Equal(t, StatusReturned, l.Status)
	assert.NotNil(t, l.ReturnDate)

	assert.ErrorIs(t, l.MarkReturned(), ErrAlreadyReturned)
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()
	l := NewLoan(1, 2, now.AddDate(0, 0, 7))
	assert.False(t, l.IsOverdue(now))
	assert.True(t, l.IsOverdue(now.AddDate(0, 0, 8)))

	require.NoError(t, l.MarkReturned())
	assert.False(t, l.IsOverdue(now.AddDate(0, 0, 8)))
}
