package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
)

// Response is the unified envelope for every endpoint.
// Code is the business error code (0 on success), not the HTTP status.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope, used by creation endpoints.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent answers a successful deletion.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes an error envelope, deriving the HTTP status from the
// business code class: not-found 404, conflict 409, business rule and
// parameter errors 400, authentication 401/403, everything else 500.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(httpStatus(appErr.Code), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode writes an error envelope with an explicit code and message.
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(httpStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

func httpStatus(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code >= 40400 && code <= 40499:
		return http.StatusNotFound
	case code >= 40910 && code <= 40919:
		return http.StatusConflict
	case code >= 40000 && code <= 40099:
		return http.StatusBadRequest
	case code >= 40900 && code <= 40909:
		return http.StatusBadRequest
	case code == apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case code >= 40100 && code <= 40199:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
