package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/middleware"
	"blog-article-service/internal/validator"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details []validator.FieldError `json:"details,omitempty"`
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrBusinessRule):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.Logger(c).ErrorContext(c.Request.Context(), "Failed to "+action,
			slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: "failed to " + action})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondInvalid writes a 400 with per-field details.
func respondInvalid(c *gin.Context, field string, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: validator.ConvertValidationErrors(field, err),
	})
}
