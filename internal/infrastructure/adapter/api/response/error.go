package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated),
		errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrInvalidAssertion):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientPoints),
		errors.Is(err, errs.ErrBelowMinimumConversion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUsernameTaken),
		errors.Is(err, errs.ErrSlugTaken),
		errors.Is(err, errs.ErrEmailInUse),
		errors.Is(err, errs.ErrReferralCodeTaken),
		errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPoolStatusNotFound):
		return http.StatusInternalServerError
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrSettlementNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, errs.ErrDatabaseConnection),
		errors.Is(err, errs.ErrServiceUnavailable),
		errors.Is(err, errs.ErrShuttingDown):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// message hides server-side details from the client
func message(status int, err error) string {
	switch status {
	case http.StatusUnauthorized:
		// Token parser details stay in the logs
		for _, sentinel := range []error{errs.ErrInvalidCredentials, errs.ErrInvalidAssertion} {
			if errors.Is(err, sentinel) {
				return sentinel.Error()
			}
		}
		return errs.ErrUnauthenticated.Error()
	case http.StatusInternalServerError:
		if errors.Is(err, errs.ErrPoolStatusNotFound) {
			return "The conversion pool is not available, please contact support"
		}
		return "Internal server error"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable, please try again"
	case http.StatusGatewayTimeout:
		return "The request timed out"
	case http.StatusConflict:
		if errors.Is(err, errs.ErrConcurrentUpdate) {
			return "The record was changed by another request, please try again"
		}
	}

	var fieldErr *errs.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	var insufficient *errs.InsufficientPointsError
	if errors.As(err, &insufficient) {
		return errs.ErrInsufficientPoints.Error()
	}
	return unwrapMost(err).Error()
}

// unwrapMost returns the innermost error of a single-wrap chain
func unwrapMost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Error writes the error response and aborts the request
func Error(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)

	fields := map[string]any{
		"path":   c.FullPath(),
		"status": status,
		"error":  err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	body := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message(status, err),
	}
	var fieldErr *errs.FieldError
	if errors.As(err, &fieldErr) {
		body.Field = fieldErr.Field
	}
	c.AbortWithStatusJSON(status, body)
}

// BadRequest rejects a malformed request body or parameter
func BadRequest(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidInput,
		Message: "Invalid request format: " + reason,
	})
}
