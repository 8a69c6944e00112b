package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-analyzer/internal/api/models"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/session"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// writeDomainError maps the domain sentinel errors onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
	case errors.Is(err, property.ErrNotFound):
		writeError(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", err.Error())
	case errors.Is(err, forms.ErrUnknownField):
		writeError(c, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	case errors.Is(err, model.ErrUnknownStrategy):
		writeError(c, http.StatusBadRequest, "UNKNOWN_STRATEGY", err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
