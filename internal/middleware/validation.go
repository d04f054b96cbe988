package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/anvesh/placementcell/internal/app/models/dto"
)

// BindError turns a gin binding failure into the standard 400 response
func BindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := dto.NewValidationErrors()
		for _, fieldErr := range validationErrs {
			details.AddError(fieldErr.Field(), formatValidationError(fieldErr))
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(details.Errors)
		c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(errorDetail))
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")
	errorDetail = errorDetail.WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(errorDetail))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "alphanum":
		return e.Field() + " must contain only letters and digits"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
