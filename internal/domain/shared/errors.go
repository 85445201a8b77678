package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Hint is an optional suggestion shown to the operator next to the message
	Hint string `json:"hint,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// WithHint returns a copy of the error carrying the given hint
func (e *DomainError) WithHint(hint string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Hint: hint}
}

// Is reports whether target is a DomainError with the same code.
// errors.Is(err, ErrNotFound) matches any not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared by every bounded context
const (
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeHasDependents = "HAS_DEPENDENTS"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInvalidInput  = "INVALID_INPUT"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Registro não encontrado")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Registro já existe")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Dados inválidos")
	ErrHasDependents = NewDomainError(CodeHasDependents, "Existem registros vinculados")
)

// NewNotFoundError creates a not-found error with a specific message
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewValidationError creates a validation error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewConflictError creates an error for a delete blocked by dependent rows
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeHasDependents, message)
}
