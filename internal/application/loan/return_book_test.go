package loan_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdelvaux/library-api/internal/domain/loan"
)

func TestReturnBookFreesTheCopy(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 1)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)
	require.Equal(t, 0, f.bookRepo.books[b.ID].AvailableCopies)

	returned, err := f.returnUC.Execute(context.Background(), l.ID)
	require.NoError(t, err)

	assert.Equal(t, loan.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestReturnBookTwice(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 1)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	_, err = f.returnUC.Execute(context.Background(), l.ID)
	require.NoError(t, err)

	// A second return must fail and must not increment the copy count
	// past the total.
	_, err = f.returnUC.Execute(context.Background(), l.ID)
	assert.ErrorIs(t, err, loan.ErrAlreadyReturned)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestReturnBookFromOverdue(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 1)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	f.loanRepo.loans[l.ID].DueDate = time.Now().AddDate(0, 0, -1)
	n, err := f.overdue.Execute(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	returned, err := f.returnUC.Execute(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusReturned, returned.Status)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestReturnBookAfterTotalCopiesLowered(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 2)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	// The collection shrinks while the copy is out. The return must
	// still succeed, with the freed copy clamped at the new total.
	f.bookRepo.books[b.ID].TotalCopies = 1

	returned, err := f.returnUC.Execute(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusReturned, returned.Status)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestReturnBookUnknownLoan(t *testing.T) {
	f := newLoanFixture()

	_, err := f.returnUC.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, loan.ErrLoanNotFound)
}
