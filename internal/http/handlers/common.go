package handlers

import (
	"net/http"
	"strconv"

	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respond.Err(c, http.StatusBadRequest, "request body is empty", respond.CodeValidation)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respond.Err(c, http.StatusBadRequest, "invalid request payload", respond.CodeValidation)
		return false
	}
	return true
}

// PathID parses the :id route parameter. Writes the 400 itself on failure.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Err(c, http.StatusBadRequest, "invalid id in path", respond.CodeValidation)
		return 0, false
	}
	return id, true
}
