package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mdelvaux/library-api/internal/domain/category"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	categorySvc category.Service
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(categorySvc category.Service) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

// List returns every category.
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponses(categories))
}

// Get returns one category.
// @Summary      Get category by id
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category id"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "category not found"
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cat, err := h.categorySvc.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// GetByName returns the category with the exact name.
// @Summary      Get category by name
// @Tags         categories
// @Produce      json
// @Param        name path string true "Category name"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "category not found"
// @Router       /api/categories/name/{name} [get]
func (h *CategoryHandler) GetByName(c *gin.Context) {
	name := c.Param("name")
	cat, err := h.categorySvc.GetCategoryByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// Create registers a new category.
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "Category"
// @Success      201 {object} response.Response{data=dto.CategoryResponse}
// @Failure      409 {object} response.Response "category name already exists"
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	cat, err := h.categorySvc.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCategoryResponse(cat))
}

// Update applies a partial update.
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category id"
// @Param        request body dto.UpdateCategoryRequest true "Fields to change"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "category not found"
// @Failure      409 {object} response.Response "category name already exists"
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	cat, err := h.categorySvc.UpdateCategory(c.Request.Context(), id, category.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(cat))
}

// Delete removes a category.
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "Category id"
// @Success      204 "deleted"
// @Failure      404 {object} response.Response "category not found"
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.categorySvc.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
