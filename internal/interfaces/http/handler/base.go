// Package handler holds the gin handlers of the location and partner APIs.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/interfaces/http/dto"
	"github.com/sistemaempresa/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// Success sends a 200 response with data as the body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Message sends a 200 response carrying a confirmation message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Dados inválidos",
		getRequestID(c),
		details,
	))
}

// HandleDomainError converts domain errors to HTTP responses. Anything that
// is not a DomainError is logged and answered with 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		resp := dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, requestID)
		resp.Hint = domainErr.Hint
		c.JSON(dto.GetHTTPStatus(domainErr.Code), resp)
		return
	}

	logger.GetGinLogger(c).Error("Unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, "Erro interno do servidor", requestID)
	resp.Error = err.Error()
	c.JSON(http.StatusInternalServerError, resp)
}

// bindJSON binds the request body into req. On failure it writes the error
// response and returns false.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	h.bindError(c, err)
	return false
}

// bindQuery binds query parameters into req. On failure it writes the error
// response and returns false.
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	err := c.ShouldBindQuery(req)
	if err == nil {
		return true
	}
	h.bindError(c, err)
	return false
}

func (h *BaseHandler) bindError(c *gin.Context, err error) {
	if details := middleware.ValidationDetails(err); details != nil {
		h.ValidationError(c, details)
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge,
			"O corpo da requisição excede o tamanho máximo permitido")
		return
	}

	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, "Corpo da requisição inválido", getRequestID(c))
	resp.Error = err.Error()
	c.JSON(http.StatusBadRequest, resp)
}

// parseID reads a positive int64 path parameter. On failure it writes a 400
// response and returns false.
func (h *BaseHandler) parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, fmt.Sprintf("ID inválido: %s", c.Param(param)))
		return 0, false
	}
	return id, true
}

// optionalQueryID reads an optional positive int64 query parameter
func (h *BaseHandler) optionalQueryID(c *gin.Context, key string) (*int64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, fmt.Sprintf("Parâmetro %s inválido: %s", key, raw))
		return nil, false
	}
	return &id, true
}
