package handlers

import (
	"errors"
	"net/http"

	apperrors "guardops-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// PatternErrorResponse lists every problem found in a pattern grid
type PatternErrorResponse struct {
	Error  string   `json:"error" example:"Invalid pattern"`
	Errors []string `json:"errors"`
}

// FieldErrorResponse names the request field that failed validation
type FieldErrorResponse struct {
	Error string `json:"error" example:"must be at least 1"`
	Field string `json:"field" example:"personil_count"`
}

var badRequestErrors = []error{
	apperrors.ErrInvalidMonthFormat,
	apperrors.ErrInvalidTimeFormat,
	apperrors.ErrInvalidPaginationParams,
	apperrors.ErrRowIndexOutOfRange,
}

// respondError maps service errors onto HTTP status codes. Anything it does
// not recognise is reported as a 500 with the given message.
func respondError(c *gin.Context, err error, message string) {
	var patternErr *apperrors.PatternValidationError
	if errors.As(err, &patternErr) {
		c.JSON(http.StatusBadRequest, PatternErrorResponse{Error: "Invalid pattern", Errors: patternErr.Errors})
		return
	}

	var fieldErr *apperrors.ValidationError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, FieldErrorResponse{Error: fieldErr.Message, Field: fieldErr.Field})
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrPatternInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsPrecondition(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: err.Error()})
	}
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
}
