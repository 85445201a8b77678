package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func findEntry(t *testing.T, logs *observer.ObservedLogs, msg string) observer.LoggedEntry {
	t.Helper()
	entries := logs.FilterMessage(msg).All()
	require.NotEmpty(t, entries, "expected log %q", msg)
	return entries[0]
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs request with route and request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set(GinRequestIDKey, "req-123")
			c.Next()
		})
		router.Use(GinMiddleware(zap.New(core)))

		var ctxRequestID string
		router.GET("/api/Pais/:id", func(c *gin.Context) {
			ctxRequestID = GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/Pais/1?x=1", nil)
		router.ServeHTTP(w, req)

		entry := findEntry(t, recorded, "HTTP Request")
		fields := entry.ContextMap()
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, "req-123", fields["request_id"])
		assert.Equal(t, "/api/Pais/:id", fields["route"])
		assert.Equal(t, "x=1", fields["query"])
		assert.Equal(t, "req-123", ctxRequestID)
	})

	t.Run("client errors are logged as warnings", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, zapcore.WarnLevel, findEntry(t, recorded, "HTTP Request").Level)
	})

	t.Run("handlers get the request logger", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/x", func(c *gin.Context) {
			GetGinLogger(c).Info("inside")
			L(c.Request.Context()).Info("from context")
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, "/x", findEntry(t, recorded, "inside").ContextMap()["path"])
		assert.Equal(t, "/x", findEntry(t, recorded, "from context").ContextMap()["path"])
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"mensagem"`)
	assert.Equal(t, zapcore.ErrorLevel, findEntry(t, recorded, "Panic recovered").Level)
}

func TestGetGinLogger_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))
}
