package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/models/dto"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Every failure
// kind gets a distinct status so callers can branch on the result code
// instead of parsing messages.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrInstructorNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrInstructorHasCourses,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case apperrors.Is(err, apperrors.ErrGradeOutOfRange,
		apperrors.ErrInvalidEmail,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		switch {
		case errors.Is(err, apperrors.ErrGradeOutOfRange):
			errorDetail = errorDetail.WithField("grade")
		case errors.Is(err, apperrors.ErrInvalidEmail):
			errorDetail = errorDetail.WithField("email")
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))

	case apperrors.Is(err, apperrors.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage unavailable").
				WithSeverity(dto.ErrorSeverityCritical)))

	case apperrors.Is(err, apperrors.ErrConstraintViolation):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error())))

	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			errorDetail = errorDetail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
