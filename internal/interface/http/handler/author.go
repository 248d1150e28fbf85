package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mdelvaux/library-api/internal/domain/author"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// AuthorHandler serves the author endpoints.
type AuthorHandler struct {
	authorSvc author.Service
}

// NewAuthorHandler creates the author handler.
func NewAuthorHandler(authorSvc author.Service) *AuthorHandler {
	return &AuthorHandler{authorSvc: authorSvc}
}

// List returns every author.
// @Summary      List authors
// @Tags         authors
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorSvc.ListAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponses(authors))
}

// Get returns one author.
// @Summary      Get author by id
// @Tags         authors
// @Produce      json
// @Param        id path int true "Author id"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "author not found"
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	a, err := h.authorSvc.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// Create registers a new author.
// @Summary      Create author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "Author"
// @Success      201 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "invalid parameters"
// @Failure      409 {object} response.Response "author name already exists"
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	a, err := h.authorSvc.CreateAuthor(c.Request.Context(), req.FirstName, req.LastName, req.Nationality, req.BirthYear)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAuthorResponse(a))
}

// Update applies a partial update.
// @Summary      Update author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Author id"
// @Param        request body dto.UpdateAuthorRequest true "Fields to change"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "author not found"
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	a, err := h.authorSvc.UpdateAuthor(c.Request.Context(), id, author.UpdateParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// Delete removes an author.
// @Summary      Delete author
// @Tags         authors
// @Security     BearerAuth
// @Param        id path int true "Author id"
// @Success      204 "deleted"
// @Failure      404 {object} response.Response "author not found"
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.authorSvc.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Search matches authors by last name substring.
// @Summary      Search authors by last name
// @Tags         authors
// @Produce      json
// @Param        lastName query string true "Last name fragment"
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/authors/search/lastname [get]
func (h *AuthorHandler) Search(c *gin.Context) {
	lastName := c.Query("lastName")
	if lastName == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "lastName query parameter is required")
		return
	}
	authors, err := h.authorSvc.SearchByLastName(c.Request.Context(), lastName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponses(authors))
}

// ByNationality returns authors with the exact nationality.
// @Summary      Search authors by nationality
// @Tags         authors
// @Produce      json
// @Param        nationality query string true "Nationality"
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/authors/search/nationality [get]
func (h *AuthorHandler) ByNationality(c *gin.Context) {
	nationality := c.Query("nationality")
	if nationality == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "nationality query parameter is required")
		return
	}
	authors, err := h.authorSvc.GetByNationality(c.Request.Context(), nationality)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponses(authors))
}
