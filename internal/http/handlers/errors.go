package handlers

import (
	"net/http"

	"laundryops/internal/domain"
	"laundryops/internal/http/respond"
	"laundryops/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Internal failures
// get a generic message; the detail goes to the server log keyed by
// correlation id so an operator can find it.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		code := domain.ValidationCode(err)
		if code == "" {
			code = respond.CodeValidation
		}
		respond.Err(c, http.StatusBadRequest, err.Error(), code)
	case domain.IsNotFound(err):
		respond.Err(c, http.StatusNotFound, err.Error(), respond.CodeNotFound)
	case domain.IsConflict(err):
		respond.Err(c, http.StatusConflict, err.Error(), respond.CodeConflict)
	default:
		utils.LogEvent(respond.CorrelationID(c), "http", "respond_error", err.Error())
		respond.Err(c, http.StatusInternalServerError, "Server error", respond.CodeServerError)
	}
}
