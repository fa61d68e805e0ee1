package handlers

import (
	"net/http"

	"travelbooking/internal/domain"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
		Details:   details,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Duplicate keys are
// reported as 400 like any other constraint violation on the bookings API.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsDuplicateKey(err):
		respondError(c, http.StatusBadRequest, "duplicate_key", err.Error(), nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsDeclined(err):
		respondError(c, http.StatusPaymentRequired, "payment_declined", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsPrecondition(err):
		respondError(c, http.StatusPreconditionFailed, "precondition_failed", err.Error(), nil)
	case domain.IsTimeout(err):
		respondError(c, http.StatusGatewayTimeout, "timed_out", err.Error(), gin.H{"retryable": true})
	case domain.IsStorage(err):
		utils.LogWarn(middleware.GetRequestID(c), "http", "storage", err.Error())
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error(), nil)
	default:
		utils.LogWarn(middleware.GetRequestID(c), "http", "internal", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
