package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		))
	case errors.Is(err, apperrors.ErrDriveNotFound):
		c.JSON(404, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Drive not found"),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(409, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student ID already exists"),
		))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		))
	case errors.Is(err, apperrors.ErrJobIDAlreadyExists):
		c.JSON(409, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A drive with this company and role already exists"),
		))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Conflict"),
		))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		))
	case errors.Is(err, apperrors.ErrUnknownRound):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown interview round"),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewAPIErrorResponse(
			validationErrorDetail(err),
		))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Bad request"),
		))
	default:
		c.JSON(500, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// validationErrorDetail surfaces the specific validation message when
// the service wrapped one
func validationErrorDetail(err error) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, customErr.Message)
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
}
