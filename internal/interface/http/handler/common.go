package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// parseIDParam reads a positive integer path parameter. On failure it has
// already written the 400 response; the caller just returns.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
