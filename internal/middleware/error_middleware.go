package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/board"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into API responses. Controllers
// call it instead of mapping status codes themselves, so every endpoint fails
// the same way.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Board transitions
	case errors.Is(err, board.ErrNoOpTransition):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeNoOpTransition, "Source and destination are the same bucket")
	case errors.Is(err, board.ErrStaleTransition):
		respondError(c, http.StatusConflict, dto.ErrorCodeStaleTransition, "The board changed, reload and try again")
	case errors.Is(err, board.ErrUnsupportedTransition):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeUnsupportedTransition, "Students cannot be dropped into that bucket")
	case errors.Is(err, apperrors.ErrPersistFailure):
		respondError(c, http.StatusBadGateway, dto.ErrorCodeTransitionNotSaved, "The move could not be saved, the board was not changed")

	// Evaluation jobs
	case errors.Is(err, apperrors.ErrJobAlreadyRunning):
		respondError(c, http.StatusConflict, dto.ErrorCodeJobAlreadyRunning, "An evaluation job is already running for this drive")
	case errors.Is(err, apperrors.ErrNoScreeningRound):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeNoScreeningRound, "The drive has no pre-screening round with a threshold")

	// Conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCollegeAlreadyExists),
		errors.Is(err, apperrors.ErrDriveAlreadyExists),
		errors.Is(err, apperrors.ErrRegistrationNoAlreadyUsed),
		errors.Is(err, apperrors.ErrPanelMemberExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrCollegeHasDrives),
		errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceConflict, err.Error())

	// Not found
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCollegeNotFound),
		errors.Is(err, apperrors.ErrDriveNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrPanelNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrPanelMemberMissing),
		errors.Is(err, apperrors.ErrStudentNotInDrive),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	// Bad input
	case errors.Is(err, apperrors.ErrRoundNotConfigured),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
