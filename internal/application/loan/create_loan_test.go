package loan_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apploan "github.com/mdelvaux/library-api/internal/application/loan"
	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/loan"
	"github.com/mdelvaux/library-api/internal/domain/member"
)

const maxActiveLoans = 3

type loanFixture struct {
	memberRepo *fakeMemberRepo
	bookRepo   *fakeBookRepo
	loanRepo   *fakeLoanRepo
	create     *apploan.CreateLoanUseCase
	returnUC   *apploan.ReturnBookUseCase
	overdue    *apploan.UpdateOverdueUseCase
	queries    *apploan.Queries
}

func newLoanFixture() *loanFixture {
	memberRepo := newFakeMemberRepo()
	bookRepo := newFakeBookRepo()
	loanRepo := newFakeLoanRepo()

	return &loanFixture{
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		loanRepo:   loanRepo,
		create:     apploan.NewCreateLoanUseCase(loanRepo, bookRepo, memberRepo, fakeTx{}, maxActiveLoans),
		returnUC:   apploan.NewReturnBookUseCase(loanRepo, bookRepo, fakeTx{}),
		overdue:    apploan.NewUpdateOverdueUseCase(loanRepo),
		queries:    apploan.NewQueries(loanRepo, memberRepo, maxActiveLoans),
	}
}

func (f *loanFixture) newMember(email string) *member.Member {
	return f.memberRepo.add(member.NewMember(email, "Test", "Member"))
}

func (f *loanFixture) newBook(isbn string, copies int) *book.Book {
	return f.bookRepo.add(book.NewBook(isbn, "Title "+isbn, 2000, copies, copies, 1))
}

func dueIn(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func TestCreateLoanTakesACopy(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 2)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	assert.Equal(t, loan.StatusActive, l.Status)
	assert.Equal(t, m.ID, l.MemberID)
	assert.Equal(t, b.ID, l.BookID)
	assert.Nil(t, l.ReturnDate)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestCreateLoanUnknownMember(t *testing.T) {
	f := newLoanFixture()
	b := f.newBook("1111111111", 1)

	_, err := f.create.Execute(context.Background(), 99, b.ID, dueIn(14))
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestCreateLoanUnknownBook(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")

	_, err := f.create.Execute(context.Background(), m.ID, 99, dueIn(14))
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestCreateLoanSuspendedMember(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	m.Suspend()
	b := f.newBook("1111111111", 1)

	_, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	assert.ErrorIs(t, err, loan.ErrMemberSuspended)
	assert.Equal(t, 1, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestCreateLoanNoCopiesLeft(t *testing.T) {
	f := newLoanFixture()
	m1 := f.newMember("first@example.com")
	m2 := f.newMember("second@example.com")
	b := f.newBook("1111111111", 1)

	_, err := f.create.Execute(context.Background(), m1.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	// The last copy is out; the next request must fail and the count
	// must stay at zero, never below.
	_, err = f.create.Execute(context.Background(), m2.ID, b.ID, dueIn(14))
	assert.ErrorIs(t, err, loan.ErrNoCopiesLeft)
	assert.Equal(t, 0, f.bookRepo.books[b.ID].AvailableCopies)
}

func TestCreateLoanQuota(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")

	var loans []*loan.Loan
	for i := 0; i < maxActiveLoans; i++ {
		b := f.newBook(string(rune('0'+i))+"111111111", 1)
		l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
		require.NoError(t, err)
		loans = append(loans, l)
	}

	extra := f.newBook("9999999999", 1)
	_, err := f.create.Execute(context.Background(), m.ID, extra.ID, dueIn(14))
	assert.ErrorIs(t, err, loan.ErrQuotaExceeded)

	// Returning one loan frees a slot.
	_, err = f.returnUC.Execute(context.Background(), loans[0].ID)
	require.NoError(t, err)

	_, err = f.create.Execute(context.Background(), m.ID, extra.ID, dueIn(14))
	assert.NoError(t, err)
}

func TestCreateLoanDuplicateActive(t *testing.T) {
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	b := f.newBook("1111111111", 5)

	l, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	require.NoError(t, err)

	_, err = f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	assert.ErrorIs(t, err, loan.ErrAlreadyBorrowed)
	assert.Equal(t, 4, f.bookRepo.books[b.ID].AvailableCopies)

	// After returning, the same member may borrow the same book again.
	_, err = f.returnUC.Execute(context.Background(), l.ID)
	require.NoError(t, err)

	_, err = f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	assert.NoError(t, err)
}

func TestCreateLoanRuleOrder(t *testing.T) {
	// A suspended member borrowing an exhausted book gets the suspension
	// error: the member rule runs before the availability rule.
	f := newLoanFixture()
	m := f.newMember("reader@example.com")
	m.Suspend()
	b := f.newBook("1111111111", 1)
	f.bookRepo.books[b.ID].AvailableCopies = 0

	_, err := f.create.Execute(context.Background(), m.ID, b.ID, dueIn(14))
	assert.ErrorIs(t, err, loan.ErrMemberSuspended)
}
