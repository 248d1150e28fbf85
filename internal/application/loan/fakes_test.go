package loan_test

import (
	"context"
	"time"

	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/loan"
	"github.com/mdelvaux/library-api/internal/domain/member"
)

// In-memory fakes standing in for the MySQL repositories. The guarded
// copy accounting mirrors the real implementation so the rule tests
// exercise the same failure paths.

type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMemberRepo struct {
	members map[uint]*member.Member
	nextID  uint
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint]*member.Member), nextID: 1}
}

func (r *fakeMemberRepo) add(m *member.Member) *member.Member {
	m.ID = r.nextID
	r.nextID++
	r.members[m.ID] = m
	return m
}

func (r *fakeMemberRepo) Create(_ context.Context, m *member.Member) error {
	r.add(m)
	return nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id uint) (*member.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (r *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*member.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *fakeMemberRepo) FindAll(_ context.Context) ([]*member.Member, error) {
	out := make([]*member.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMemberRepo) FindActive(_ context.Context) ([]*member.Member, error) {
	var out []*member.Member
	for _, m := range r.members {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMemberRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, m := range r.members {
		if m.Active {
			n++
		}
	}
	return n, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, m *member.Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return member.ErrMemberNotFound
	}
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.members[id]; !ok {
		return member.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	return r.FindByID(ctx, id)
}

type fakeBookRepo struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *fakeBookRepo) add(b *book.Book) *book.Book {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return b
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.add(b)
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) ExistsByISBN(_ context.Context, isbn string, excludeID uint) (bool, error) {
	for _, b := range r.books {
		if b.ISBN == isbn && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookRepo) FindAll(_ context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) FindByAuthor(_ context.Context, _ uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindByCategory(_ context.Context, _ uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) SearchByTitle(_ context.Context, _ string) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindAvailable(_ context.Context) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.AvailableCopies > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) FindUnavailable(_ context.Context) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.AvailableCopies <= 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) CountAvailable(_ context.Context) (int64, error) {
	var n int64
	for _, b := range r.books {
		if b.AvailableCopies > 0 {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) FindAvailableByCategoryName(_ context.Context, _ string) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) AddCategory(_ context.Context, _, _ uint) error { return nil }

func (r *fakeBookRepo) RemoveCategory(_ context.Context, _, _ uint) error { return nil }

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateAvailableCopies(_ context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	next := b.AvailableCopies + delta
	if next < 0 {
		return book.ErrNoCopiesLeft
	}
	// Increments clamp at the total, matching the MySQL implementation.
	if next > b.TotalCopies {
		next = b.TotalCopies
	}
	b.AvailableCopies = next
	return nil
}

type fakeLoanRepo struct {
	loans  map[uint]*loan.Loan
	nextID uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uint]*loan.Loan), nextID: 1}
}

func (r *fakeLoanRepo) Create(_ context.Context, l *loan.Loan) error {
	l.ID = r.nextID
	r.nextID++
	r.loans[l.ID] = l
	return nil
}

func (r *fakeLoanRepo) FindByID(_ context.Context, id uint) (*loan.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	return l, nil
}

func (r *fakeLoanRepo) FindAll(_ context.Context) ([]*loan.Loan, error) {
	out := make([]*loan.Loan, 0, len(r.loans))
	for _, l := range r.loans {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLoanRepo) Update(_ context.Context, l *loan.Loan) error {
	if _, ok := r.loans[l.ID]; !ok {
		return loan.ErrLoanNotFound
	}
	r.loans[l.ID] = l
	return nil
}

func (r *fakeLoanRepo) FindByMember(_ context.Context, memberID uint) ([]*loan.Loan, error) {
	var out []*loan.Loan
	for _, l := range r.loans {
		if l.MemberID == memberID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) FindByMemberAndStatus(_ context.Context, memberID uint, status loan.Status) ([]*loan.Loan, error) {
	var out []*loan.Loan
	for _, l := range r.loans {
		if l.MemberID == memberID && l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) FindByBook(_ context.Context, bookID uint) ([]*loan.Loan, error) {
	var out []*loan.Loan
	for _, l := range r.loans {
		if l.BookID == bookID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) FindByStatus(_ context.Context, status loan.Status) ([]*loan.Loan, error) {
	var out []*loan.Loan
	for _, l := range r.loans {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) CountByMemberAndStatus(_ context.Context, memberID uint, status loan.Status) (int64, error) {
	var n int64
	for _, l := range r.loans {
		if l.MemberID == memberID && l.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeLoanRepo) CountByMember(_ context.Context, memberID uint) (int64, error) {
	var n int64
	for _, l := range r.loans {
		if l.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLoanRepo) ExistsActiveByMemberAndBook(_ context.Context, memberID, bookID uint) (bool, error) {
	for _, l := range r.loans {
		if l.MemberID == memberID && l.BookID == bookID && l.Status == loan.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLoanRepo) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, l := range r.loans {
		if l.Status == loan.StatusActive && l.ReturnDate == nil && l.DueDate.Before(now) {
			l.Status = loan.StatusOverdue
			l.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *fakeLoanRepo) LockByID(ctx context.Context, id uint) (*loan.Loan, error) {
	return r.FindByID(ctx, id)
}
