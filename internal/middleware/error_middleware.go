package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

// HandleAPIError records err on the context and writes the matching error envelope.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, detail := describe(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func describe(err error) (int, *dto.ErrorDetail) {
	msg := func(fallback string) string { return apperrors.UserMessage(err, fallback) }

	switch {
	case errors.Is(err, apperrors.ErrOperationInFlight):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeOperationInFlight, msg(apperrors.MsgInFlight)).
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrIntegrityViolation):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeIntegrityViolation, msg("Record is still referenced")).
			WithDetails(details(err))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg("Validation failed")).
			WithDetails(details(err))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrUploadRejected):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, msg("Invalid request"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, apperrors.ErrNotLoggedIn):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeNotLoggedIn, "Please log in")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session expired, please log in again")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, msg("Session expired, please log in again"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, msg("Resource not found"))
	case errors.Is(err, apperrors.ErrNetwork):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeNetwork, "Backend is unreachable")
	case errors.Is(err, apperrors.ErrBackend):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, msg("Backend error"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func details(err error) interface{} {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		return custom.Details
	}
	return nil
}
