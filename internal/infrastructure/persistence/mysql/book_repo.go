package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mdelvaux/library-api/internal/domain/book"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// bookRepository implements the book storage port. Besides the CRUD
// surface it owns the category join table and the atomic copy accounting
// the loan engine relies on.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the MySQL book repository.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := getDB(ctx, r.db).Omit("Categories").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "creating book failed")
	}
	b.ID = model.ID
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "querying book failed")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "querying book failed")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string, excludeID uint) (bool, error) {
	var count int64
	query := getDB(ctx, r.db).Model(&BookModel{}).Where("isbn = ?", isbn)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "checking ISBN failed")
	}
	return count > 0, nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "listing books failed")
	}
	return toBookEntities(models), nil
}

// Update persists the scalar fields; the category association only moves
// through AddCategory and RemoveCategory.
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"isbn":             b.ISBN,
		"title":            b.Title,
		"publication_year": b.PublicationYear,
		"total_copies":     b.TotalCopies,
		"available_copies": b.AvailableCopies,
		"author_id":        b.AuthorID,
		"updated_at":       b.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(result.Error, "updating book failed")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	// Loans and category associations go with the book.
	if err := db.Where("book_id = ?", id).Delete(&LoanModel{}).Error; err != nil {
		return apperrors.Wrap(err, "deleting book loans failed")
	}
	if err := db.Exec("DELETE FROM book_categories WHERE book_id = ?", id).Error; err != nil {
		return apperrors.Wrap(err, "clearing book categories failed")
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "deleting book failed")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) FindByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying books by author failed")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByCategory(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Joins("JOIN book_categories bc ON bc.book_id = books.id").
		Where("bc.category_id = ?", categoryID).
		Order("books.title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying books by category failed")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) SearchByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Where("title LIKE ?", "%"+title+"%").
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "searching books failed")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindAvailable(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Where("available_copies > 0").
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying available books failed")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindUnavailable(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Where("available_copies <= 0").
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying unavailable books failed")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).Where("available_copies > 0").Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "counting available books failed")
	}
	return count, nil
}

func (r *bookRepository) FindAvailableByCategoryName(ctx context.Context, categoryName string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Preload("Categories").
		Joins("JOIN book_categories bc ON bc.book_id = books.id").
		Joins("JOIN categories c ON c.id = bc.category_id").
		Where("c.name = ?", categoryName).
		Where("books.available_copies > 0").
		Order("books.title ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "querying available books by category failed")
	}
	return toBookEntities(models), nil
}

// AddCategory writes the join row. Append upserts, so re-adding an
// existing association is a no-op.
func (r *bookRepository) AddCategory(ctx context.Context, bookID, categoryID uint) error {
	db := getDB(ctx, r.db)
	err := db.Model(&BookModel{ID: bookID}).
		Association("Categories").
		Append(&CategoryModel{ID: categoryID})
	if err != nil {
		return apperrors.Wrap(err, "adding book category failed")
	}
	return nil
}

func (r *bookRepository) RemoveCategory(ctx context.Context, bookID, categoryID uint) error {
	db := getDB(ctx, r.db)
	err := db.Model(&BookModel{ID: bookID}).
		Association("Categories").
		Delete(&CategoryModel{ID: categoryID})
	if err != nil {
		return apperrors.Wrap(err, "removing book category failed")
	}
	return nil
}

// LockByID loads the book row with SELECT FOR UPDATE. Used by the loan
// engine so two loans of the last copy serialize on the row.
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "locking book failed")
	}
	return toBookEntity(&model), nil
}

// UpdateAvailableCopies applies delta atomically. A decrement is guarded:
// UPDATE books SET available_copies = available_copies + ?
// WHERE id = ? AND available_copies + ? >= 0
// Zero rows affected means the guard fired (or the book is gone); a second
// query tells the cases apart. An increment clamps at total_copies instead
// of failing, so a return still succeeds after total_copies was lowered
// under the number of copies out on loan.
func (r *bookRepository) UpdateAvailableCopies(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)

	if delta >= 0 {
		result := db.Model(&BookModel{}).
			Where("id = ?", id).
			Update("available_copies", gorm.Expr("LEAST(available_copies + ?, total_copies)", delta))
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "updating available copies failed")
		}
		if result.RowsAffected == 0 {
			// The driver reports zero changed rows for a no-op update, so
			// a count already at the cap looks like a missing book here.
			var count int64
			if err := db.Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return apperrors.Wrap(err, "querying book failed")
			}
			if count == 0 {
				return book.ErrBookNotFound
			}
		}
		return nil
	}

	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("available_copies + ? >= 0", delta).
		Update("available_copies", gorm.Expr("available_copies + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "updating available copies failed")
	}
	if result.RowsAffected == 0 {
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "querying book failed")
		}
		return book.ErrNoCopiesLeft
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		AuthorID:        b.AuthorID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	categoryIDs := make([]uint, len(model.Categories))
	for i, c := range model.Categories {
		categoryIDs[i] = c.ID
	}
	return &book.Book{
		ID:              model.ID,
		ISBN:            model.ISBN,
		Title:           model.Title,
		PublicationYear: model.PublicationYear,
		TotalCopies:     model.TotalCopies,
		AvailableCopies: model.AvailableCopies,
		AuthorID:        model.AuthorID,
		CategoryIDs:     categoryIDs,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
