package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message   string             `json:"mensagem" example:"Cidade com ID 5 não encontrada."`
	Error     string             `json:"erro,omitempty"`
	Code      string             `json:"codigo" example:"NOT_FOUND"`
	Hint      string             `json:"sugestao,omitempty"`
	Details   []ValidationDetail `json:"detalhes,omitempty"`
	RequestID string             `json:"requestId,omitempty"`
}

// ValidationDetail describes one invalid request field
type ValidationDetail struct {
	Field   string `json:"campo" example:"nome"`
	Message string `json:"mensagem" example:"Campo obrigatório"`
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"mensagem" example:"Cidade excluída com sucesso."`
}

// HealthResponse is the body of the health endpoints
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
	Version  string `json:"version,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.RequestID = requestID
	return resp
}

// NewValidationErrorResponse creates a 400 body listing the invalid fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		RequestID: requestID,
	}
}
