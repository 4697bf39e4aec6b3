// internal/handler/errors.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"loan-catalog/internal/domain"
	val "loan-catalog/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps domain errors to status codes; anything unknown is a 500.
func respondError(c *gin.Context, err error) {
	var (
		notFound      *domain.NotFoundError
		invalidAmount *domain.InvalidAmountError
		invalid       *domain.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &invalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidAmount.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	default:
		slog.Error("Request failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// bindJSON decodes and validates the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return false
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid input: %w", err)
		}
		var msgs []string
		for _, e := range verrs {
			msgs = append(msgs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
