package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"renty/internal/domain"
	"renty/internal/verify"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Reasons []string `json:"reasons,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "INVALID_RATING", "rating must be between 1 and 5"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// MapVerifyError translates lease verification pipeline errors to HTTP status
// codes. The three user-facing categories stay distinct: bad input and
// unreadable documents are client errors, verification backend failures are
// gateway errors, and storage trouble is service unavailability.
func MapVerifyError(err error) (status int, code, msg string) {
	var extractionErr *verify.ExtractionError
	var transportErr *verify.TransportError
	var serviceErr *verify.ServiceError
	var malformedErr *verify.MalformedAssessmentError

	switch {
	case errors.Is(err, verify.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", "both the owner name and the occupant name are required"
	case errors.Is(err, verify.ErrUnsupportedMediaType):
		return http.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE", "lease documents must be PDF, DOC, or DOCX"
	case errors.Is(err, verify.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "document storage is temporarily unavailable; try again"
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity, "DOCUMENT_UNREADABLE", "your document could not be read"
	case errors.As(err, &transportErr), errors.As(err, &serviceErr), errors.As(err, &malformedErr):
		return http.StatusBadGateway, "VERIFIER_UNAVAILABLE", "the verification service is unavailable; try again later"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}
