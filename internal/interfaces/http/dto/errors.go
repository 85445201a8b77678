package dto

import (
	"net/http"
	"strings"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Error codes produced at the HTTP boundary. Domain codes (shared.Code*)
// are passed through to the client unchanged.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests (bad JSON, bad path ids)
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// invalidCodePrefix marks field-specific validation codes such as INVALID_CPF
const invalidCodePrefix = "INVALID_"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// A delete blocked by dependents answers 400 with the reason in the body.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	shared.CodeNotFound:      http.StatusNotFound,
	shared.CodeValidation:    http.StatusBadRequest,
	shared.CodeInvalidInput:  http.StatusBadRequest,
	shared.CodeHasDependents: http.StatusBadRequest,
	shared.CodeAlreadyExists: http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes are validation failures; unknown codes are 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, invalidCodePrefix) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
