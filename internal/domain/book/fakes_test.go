package book_test

import (
	"context"
	"sort"
	"strings"

	"github.com/mdelvaux/library-api/internal/domain/author"
	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/category"
)

type fakeBookRepo struct {
	books         map[uint]*book.Book
	categoryNames map[uint]string
	nextID        uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		books:         make(map[uint]*book.Book),
		categoryNames: make(map[uint]string),
		nextID:        1,
	}
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	for _, other := range r.books {
		if other.ISBN == b.ISBN {
			return book.ErrISBNDuplicate
		}
	}
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
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

func (r *fakeBookRepo) FindByAuthor(_ context.Context, authorID uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) FindByCategory(_ context.Context, categoryID uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.HasCategory(categoryID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) SearchByTitle(_ context.Context, title string) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(title)) {
			out = append(out, b)
		}
	}
	return out, nil
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

func (r *fakeBookRepo) FindAvailableByCategoryName(_ context.Context, categoryName string) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.AvailableCopies <= 0 {
			continue
		}
		for _, id := range b.CategoryIDs {
			if r.categoryNames[id] == categoryName {
				out = append(out, b)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeBookRepo) AddCategory(_ context.Context, bookID, categoryID uint) error {
	b, ok := r.books[bookID]
	if !ok {
		return book.ErrBookNotFound
	}
	if !b.HasCategory(categoryID) {
		b.CategoryIDs = append(b.CategoryIDs, categoryID)
	}
	return nil
}

func (r *fakeBookRepo) RemoveCategory(_ context.Context, bookID, categoryID uint) error {
	b, ok := r.books[bookID]
	if !ok {
		return book.ErrBookNotFound
	}
	for i, id := range b.CategoryIDs {
		if id == categoryID {
			b.CategoryIDs = append(b.CategoryIDs[:i], b.CategoryIDs[i+1:]...)
			break
		}
	}
	return nil
}

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
	if next > b.TotalCopies {
		next = b.TotalCopies
	}
	b.AvailableCopies = next
	return nil
}

type fakeAuthorRepo struct {
	authors map[uint]*author.Author
	nextID  uint
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uint]*author.Author), nextID: 1}
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *author.Author) error {
	a.ID = r.nextID
	r.nextID++
	r.authors[a.ID] = a
	return nil
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id uint) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (r *fakeAuthorRepo) FindAll(_ context.Context) ([]*author.Author, error) {
	out := make([]*author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAuthorRepo) ExistsByName(_ context.Context, firstName, lastName string) (bool, error) {
	for _, a := range r.authors {
		if a.FirstName == firstName && a.LastName == lastName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAuthorRepo) SearchByLastName(_ context.Context, lastName string) ([]*author.Author, error) {
	var out []*author.Author
	for _, a := range r.authors {
		if strings.Contains(strings.ToLower(a.LastName), strings.ToLower(lastName)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAuthorRepo) FindByNationality(_ context.Context, nationality string) ([]*author.Author, error) {
	var out []*author.Author
	for _, a := range r.authors {
		if a.Nationality == nationality {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, a *author.Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return author.ErrAuthorNotFound
	}
	r.authors[a.ID] = a
	return nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

type fakeCategoryRepo struct {
	bookRepo   *fakeBookRepo
	categories map[uint]*category.Category
	nextID     uint
}

func newFakeCategoryRepo(bookRepo *fakeBookRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		bookRepo:   bookRepo,
		categories: make(map[uint]*category.Category),
		nextID:     1,
	}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	c.ID = r.nextID
	r.nextID++
	r.categories[c.ID] = c
	r.bookRepo.categoryNames[c.ID] = c.Name
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	r.categories[c.ID] = c
	r.bookRepo.categoryNames[c.ID] = c.Name
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.categories, id)
	delete(r.bookRepo.categoryNames, id)
	return nil
}
