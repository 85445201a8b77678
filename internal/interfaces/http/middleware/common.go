// Package middleware provides the gin middleware chain of the HTTP server.
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
)

// RequestIDHeader is the header carrying the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// MaxRequestIDLength caps client-supplied request IDs
const MaxRequestIDLength = 128

// RequestID reuses the client's X-Request-ID or generates a UUID, stores it
// in the gin context for the logger middleware and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > MaxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(logger.GinRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or ""
func GetRequestID(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	MaxAge       time.Duration
}

// DefaultCORSConfig returns the CORS configuration used when nothing is configured
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
}

// CORS returns the gin-contrib CORS middleware for cfg. A "*" origin allows
// every origin without credentials.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = cfg.AllowMethods
	config.AllowHeaders = cfg.AllowHeaders
	config.ExposeHeaders = []string{RequestIDHeader}
	config.MaxAge = cfg.MaxAge

	if len(cfg.AllowOrigins) == 0 || containsWildcard(cfg.AllowOrigins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.AllowOrigins
		config.AllowCredentials = true
	}
	return cors.New(config)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Secure adds basic security headers to every response
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
