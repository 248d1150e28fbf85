package book

import (
	"context"
	"regexp"
	"strings"

	"github.com/mdelvaux/library-api/internal/domain/author"
	"github.com/mdelvaux/library-api/internal/domain/category"
)

// CreateParams carries the fields for a new book. AvailableCopies nil
// means "default to TotalCopies".
type CreateParams struct {
	ISBN            string
	Title           string
	PublicationYear int
	TotalCopies     int
	AvailableCopies *int
	AuthorID        uint
}

// Service is the book manager: CRUD keyed on ISBN uniqueness, category
// association management and the availability queries.
type Service interface {
	ListBooks(ctx context.Context) ([]*Book, error)
	GetBookByID(ctx context.Context, id uint) (*Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)
	DeleteBook(ctx context.Context, id uint) error
	SearchByTitle(ctx context.Context, title string) ([]*Book, error)
	GetBooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error)
	GetBooksByCategory(ctx context.Context, categoryID uint) ([]*Book, error)
	GetAvailableBooks(ctx context.Context) ([]*Book, error)
	GetUnavailableBooks(ctx context.Context) ([]*Book, error)
	CountAvailableBooks(ctx context.Context) (int64, error)
	GetAvailableBooksByCategory(ctx context.Context, categoryName string) ([]*Book, error)
	AddCategoryToBook(ctx context.Context, bookID, categoryID uint) (*Book, error)
	RemoveCategoryFromBook(ctx context.Context, bookID, categoryID uint) (*Book, error)
}

type service struct {
	repo        Repository
	authorSvc   author.Service
	categorySvc category.Service
}

// NewService creates the book manager. Author and category lookups go
// through their managers so missing references fail with their own
// not-found errors.
func NewService(repo Repository, authorSvc author.Service, categorySvc category.Service) Service {
	return &service{
		repo:        repo,
		authorSvc:   authorSvc,
		categorySvc: categorySvc,
	}
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// CreateBook validates the fields, rejects duplicate ISBNs, resolves the
// referenced author, and defaults AvailableCopies to TotalCopies.
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	// 1. Field validation
	if !isValidISBN(params.ISBN) {
		return nil, ErrInvalidISBN
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if params.PublicationYear < 1000 {
		return nil, ErrInvalidPublicationYear
	}
	if params.TotalCopies < 1 {
		return nil, ErrInvalidTotalCopies
	}

	available := params.TotalCopies
	if params.AvailableCopies != nil {
		available = *params.AvailableCopies
	}
	if available < 0 {
		return nil, ErrInvalidAvailableCopies
	}
	if available > params.TotalCopies {
		return nil, ErrCopiesExceedTotal
	}

	// 2. ISBN uniqueness
	exists, err := s.repo.ExistsByISBN(ctx, params.ISBN, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrISBNDuplicate
	}

	// 3. Author must exist
	if _, err := s.authorSvc.GetAuthorByID(ctx, params.AuthorID); err != nil {
		return nil, err
	}

	// 4. Persist
	b := NewBook(params.ISBN, params.Title, params.PublicationYear, params.TotalCopies, available, params.AuthorID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBook applies a partial update. A changed ISBN is re-checked for
// uniqueness excluding the book itself, and the patched copy counts must
// keep available within [0, total].
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.ISBN != nil && *params.ISBN != b.ISBN {
		if !isValidISBN(*params.ISBN) {
			return nil, ErrInvalidISBN
		}
		exists, err := s.repo.ExistsByISBN(ctx, *params.ISBN, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrISBNDuplicate
		}
	}
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if params.PublicationYear != nil && *params.PublicationYear < 1000 {
		return nil, ErrInvalidPublicationYear
	}
	if params.AuthorID != nil {
		if _, err := s.authorSvc.GetAuthorByID(ctx, *params.AuthorID); err != nil {
			return nil, err
		}
	}

	newTotal := b.TotalCopies
	if params.TotalCopies != nil {
		newTotal = *params.TotalCopies
	}
	newAvailable := b.AvailableCopies
	if params.AvailableCopies != nil {
		newAvailable = *params.AvailableCopies
	}
	if newTotal < 1 {
		return nil, ErrInvalidTotalCopies
	}
	if newAvailable < 0 {
		return nil, ErrInvalidAvailableCopies
	}
	if newAvailable > newTotal {
		return nil, ErrCopiesExceedTotal
	}

	b.Apply(params)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SearchByTitle(ctx context.Context, title string) ([]*Book, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *service) GetBooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	if _, err := s.authorSvc.GetAuthorByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.repo.FindByAuthor(ctx, authorID)
}

func (s *service) GetBooksByCategory(ctx context.Context, categoryID uint) ([]*Book, error) {
	if _, err := s.categorySvc.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.FindByCategory(ctx, categoryID)
}

func (s *service) GetAvailableBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *service) GetUnavailableBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindUnavailable(ctx)
}

func (s *service) CountAvailableBooks(ctx context.Context) (int64, error) {
	return s.repo.CountAvailable(ctx)
}

func (s *service) GetAvailableBooksByCategory(ctx context.Context, categoryName string) ([]*Book, error) {
	return s.repo.FindAvailableByCategoryName(ctx, categoryName)
}

// AddCategoryToBook associates a category with a book. The association is
// set membership: adding twice is a no-op.
func (s *service) AddCategoryToBook(ctx context.Context, bookID, categoryID uint) (*Book, error) {
	if _, err := s.repo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	if _, err := s.categorySvc.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	if err := s.repo.AddCategory(ctx, bookID, categoryID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, bookID)
}

// RemoveCategoryFromBook removes the association; removing an absent
// association is a no-op.
func (s *service) RemoveCategoryFromBook(ctx context.Context, bookID, categoryID uint) (*Book, error) {
	if _, err := s.repo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	if _, err := s.categorySvc.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveCategory(ctx, bookID, categoryID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, bookID)
}

// isValidISBN accepts 10 or 13 digit ISBNs, ignoring separators.
// Check digits are not verified.
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")
	length := len(clean)
	return length == 10 || length == 13
}
