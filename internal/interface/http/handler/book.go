package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// BookHandler serves the catalog endpoints: book CRUD, the search and
// availability queries and the category association.
type BookHandler struct {
	bookSvc book.Service
}

// NewBookHandler creates the book handler.
func NewBookHandler(bookSvc book.Service) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

// List returns every book.
// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookSvc.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// Get returns one book.
// @Summary      Get book by id
// @Tags         books
// @Produce      json
// @Param        id path int true "Book id"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "book not found"
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	b, err := h.bookSvc.GetBookByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// GetByISBN returns the book with the exact ISBN.
// @Summary      Get book by ISBN
// @Tags         books
// @Produce      json
// @Param        isbn query string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "book not found"
// @Router       /api/books/search/isbn [get]
func (h *BookHandler) GetByISBN(c *gin.Context) {
	isbn := c.Query("isbn")
	if isbn == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "isbn query parameter is required")
		return
	}
	b, err := h.bookSvc.GetBookByISBN(c.Request.Context(), isbn)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Create registers a new book.
// @Summary      Create book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "Book"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "invalid parameters"
// @Failure      404 {object} response.Response "author not found"
// @Failure      409 {object} response.Response "ISBN already exists"
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	b, err := h.bookSvc.CreateBook(c.Request.Context(), book.CreateParams{
		ISBN:            req.ISBN,
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		AuthorID:        req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBookResponse(b))
}

// Update applies a partial update. available_copies may be patched but
// never past total_copies.
// @Summary      Update book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book id"
// @Param        request body dto.UpdateBookRequest true "Fields to change"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "available copies exceed total"
// @Failure      404 {object} response.Response "book not found"
// @Failure      409 {object} response.Response "ISBN already exists"
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	b, err := h.bookSvc.UpdateBook(c.Request.Context(), id, book.UpdateParams{
		ISBN:            req.ISBN,
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		AuthorID:        req.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Delete removes a book and its loan history.
// @Summary      Delete book
// @Tags         books
// @Security     BearerAuth
// @Param        id path int true "Book id"
// @Success      204 "deleted"
// @Failure      404 {object} response.Response "book not found"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.bookSvc.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Search matches books by title substring.
// @Summary      Search books by title
// @Tags         books
// @Produce      json
// @Param        title query string true "Title fragment"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/search/title [get]
func (h *BookHandler) Search(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "title query parameter is required")
		return
	}
	books, err := h.bookSvc.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// ByAuthor returns the books of one author.
// @Summary      List books by author
// @Tags         books
// @Produce      json
// @Param        authorId path int true "Author id"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/author/{authorId} [get]
func (h *BookHandler) ByAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}
	books, err := h.bookSvc.GetBooksByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// ByCategory returns the books in one category.
// @Summary      List books by category
// @Tags         books
// @Produce      json
// @Param        categoryId path int true "Category id"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/category/{categoryId} [get]
func (h *BookHandler) ByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	books, err := h.bookSvc.GetBooksByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// Available returns books with at least one free copy.
// @Summary      List available books
// @Tags         books
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/available [get]
func (h *BookHandler) Available(c *gin.Context) {
	books, err := h.bookSvc.GetAvailableBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// Unavailable returns books with every copy out.
// @Summary      List unavailable books
// @Tags         books
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/unavailable [get]
func (h *BookHandler) Unavailable(c *gin.Context) {
	books, err := h.bookSvc.GetUnavailableBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// AvailableByCategory returns available books in the named category,
// ordered by title.
// @Summary      List available books in a category
// @Tags         books
// @Produce      json
// @Param        categoryName query string true "Category name"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/books/available/category [get]
func (h *BookHandler) AvailableByCategory(c *gin.Context) {
	name := c.Query("categoryName")
	if name == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "categoryName query parameter is required")
		return
	}
	books, err := h.bookSvc.GetAvailableBooksByCategory(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponses(books))
}

// Stats counts the books with at least one free copy.
// @Summary      Count available books
// @Tags         books
// @Produce      json
// @Success      200 {object} response.Response{data=dto.BookStatsResponse}
// @Router       /api/books/stats/available-count [get]
func (h *BookHandler) Stats(c *gin.Context) {
	count, err := h.bookSvc.CountAvailableBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.BookStatsResponse{AvailableBooks: count})
}

// AddCategory associates a category with a book.
// @Summary      Add category to book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "Book id"
// @Param        categoryId path int true "Category id"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "book or category not found"
// @Router       /api/books/{bookId}/category/{categoryId} [post]
func (h *BookHandler) AddCategory(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	b, err := h.bookSvc.AddCategoryToBook(c.Request.Context(), bookID, categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// RemoveCategory removes a category association from a book.
// @Summary      Remove category from book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "Book id"
// @Param        categoryId path int true "Category id"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "book or category not found"
// @Router       /api/books/{bookId}/category/{categoryId} [delete]
func (h *BookHandler) RemoveCategory(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	b, err := h.bookSvc.RemoveCategoryFromBook(c.Request.Context(), bookID, categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}
