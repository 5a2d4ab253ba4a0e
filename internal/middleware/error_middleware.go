package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/pkg/apperrors"
	"github.com/collegescope/api/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Client input
// problems carry their message through; store failures are logged with
// their cause and answered with a generic body.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrSchoolNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
	case errors.Is(err, apperrors.ErrProgramNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrUnknownMajor):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithField("major")))
	case errors.Is(err, apperrors.ErrTooManyIDs):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTooManyIDs, message).WithField("ids")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
	case errors.Is(err, apperrors.ErrQueryFailed), errors.Is(err, apperrors.ErrStoreUnavailable):
		logStoreError(c, err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Internal server error")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// logStoreError records the underlying cause of a store failure, which
// never reaches the client.
func logStoreError(c *gin.Context, err error) {
	event := logger.Error().Str("path", c.FullPath())
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Cause != nil {
		event = event.Err(custom.Cause)
	} else {
		event = event.Err(err)
	}
	event.Msg("Data store query failed")
}
