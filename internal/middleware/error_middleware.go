package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
	"github.com/kaan/uniforum/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every
// controller funnels its errors through here; nothing in the taxonomy
// crashes a request, and unknown errors are logged and become a
// generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrFacultyNotAssigned):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrQuestionNotFound),
		errors.Is(err, apperrors.ErrAnswerNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrSubjectNotInDepartment):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrAlreadyVoted):
		// Benign duplicate: reported in the vote response shape rather
		// than the error envelope
		c.JSON(http.StatusConflict, dto.UpvoteResponse{
			Success: false,
			Message: err.Error(),
		})

	case errors.Is(err, apperrors.ErrNoDepartment):
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeMissingPrerequisite, err.Error())))

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Conflict")
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
