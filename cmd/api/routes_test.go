package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mdelvaux/library-api/internal/interface/http/handler"
	"github.com/mdelvaux/library-api/internal/interface/http/middleware"
)

// Registration never invokes the handlers, so zero-value handlers are
// enough to pin the HTTP surface down.
func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerRoutes(
		r,
		&handler.AuthorHandler{},
		&handler.BookHandler{},
		&handler.CategoryHandler{},
		&handler.MemberHandler{},
		&handler.LoanHandler{},
		&handler.StaffHandler{},
		&middleware.AuthMiddleware{},
	)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/refresh",
		"POST /api/auth/logout",

		"GET /api/authors",
		"GET /api/authors/search/lastname",
		"GET /api/authors/search/nationality",
		"GET /api/authors/:id",
		"POST /api/authors",
		"PUT /api/authors/:id",
		"DELETE /api/authors/:id",

		"GET /api/books",
		"GET /api/books/search/isbn",
		"GET /api/books/search/title",
		"GET /api/books/author/:authorId",
		"GET /api/books/category/:categoryId",
		"GET /api/books/available",
		"GET /api/books/available/category",
		"GET /api/books/unavailable",
		"GET /api/books/stats/available-count",
		"GET /api/books/:id",
		"POST /api/books",
		"PUT /api/books/:id",
		"DELETE /api/books/:id",
		"POST /api/books/:id/category/:categoryId",
		"DELETE /api/books/:id/category/:categoryId",

		"GET /api/categories",
		"GET /api/categories/name/:name",
		"GET /api/categories/:id",
		"POST /api/categories",
		"PUT /api/categories/:id",
		"DELETE /api/categories/:id",

		"GET /api/members",
		"GET /api/members/search/email",
		"GET /api/members/status/active",
		"GET /api/members/stats/active-count",
		"GET /api/members/:id",
		"POST /api/members",
		"PUT /api/members/:id",
		"DELETE /api/members/:id",
		"POST /api/members/:id/suspend",
		"POST /api/members/:id/activate",

		"GET /api/loans",
		"GET /api/loans/overdue",
		"GET /api/loans/member/:memberId",
		"GET /api/loans/member/:memberId/active",
		"GET /api/loans/book/:bookId",
		"GET /api/loans/stats/member/:memberId/active-count",
		"GET /api/loans/stats/member/:memberId/total-count",
		"GET /api/loans/quota/member/:memberId",
		"GET /api/loans/:id",
		"POST /api/loans",
		"POST /api/loans/:id/return",
		"PUT /api/loans/overdue/update",
	}
	for _, want := range expected {
		assert.Truef(t, registered[want], "route %s is not registered", want)
	}
}
