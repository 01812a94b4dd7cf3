package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobsearch/internal/app/models/dto"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// apiError is the HTTP rendering of an application error.
type apiError struct {
	status  int
	code    dto.ErrorCode
	message string
}

// classify maps an error to its status, code and default message.
func classify(err error) apiError {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not found."}
	case errors.Is(err, apperrors.ErrValidationFailed):
		return apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid input."}
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return apiError{http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, "Unable to authenticate with provided credentials."}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication credentials were not provided."}
	case errors.Is(err, apperrors.ErrTokenExpired):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired."}
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found."}
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token."}
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "User inactive or deleted."}
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return apiError{http.StatusForbidden, dto.ErrorCodeForbidden, "You do not have permission to perform this action."}
	case errors.Is(err, apperrors.ErrThrottled):
		return apiError{http.StatusTooManyRequests, dto.ErrorCodeThrottled, "Request was throttled."}
	case errors.Is(err, apperrors.ErrSearchUnavailable):
		return apiError{http.StatusServiceUnavailable, dto.ErrorCodeExternalServiceError, "Search is temporarily unavailable."}
	default:
		return apiError{http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error."}
	}
}

// HandleAPIError writes the error response for err and aborts the chain.
func HandleAPIError(c *gin.Context, err error) {
	e := classify(err)

	detail := dto.NewErrorDetail(e.code, e.message)
	if e.status != http.StatusInternalServerError && e.status != http.StatusServiceUnavailable {
		detail.Message = apperrors.MessageOf(err, e.message)
	}
	if field := apperrors.FieldOf(err); field != "" {
		detail = detail.WithField(field)
	}

	switch e.status {
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	case http.StatusUnauthorized:
		c.Header("WWW-Authenticate", `Bearer realm="api"`)
	}

	c.AbortWithStatusJSON(e.status, dto.NewErrorResponse(detail))
}
