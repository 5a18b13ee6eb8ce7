package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call
// it with whatever their service returned instead of building responses
// themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrTermOrdering):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrTermConflict):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeTermConflict, err.Error()))
	case errors.Is(err, apperrors.ErrInvalidMeetingTime):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidTimeRange, err.Error()))
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeDuplicateRegistration, err.Error()))
	case errors.Is(err, apperrors.ErrNotMockAccount):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeMockAccountRequired, err.Error()))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrUnauthorized):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTermNotFound),
		errors.Is(err, apperrors.ErrNoCurrentTerm),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrSectionNotFound),
		errors.Is(err, apperrors.ErrRegistrationNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}
