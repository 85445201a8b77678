package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthHandler(t *testing.T) {
	newRouter := func(pinger DatabasePinger) *gin.Engine {
		h := NewHealthHandler(pinger, "1.2.3")
		r := gin.New()
		r.GET("/health", h.Live)
		r.GET("/health/ready", h.Ready)
		return r
	}

	t.Run("live does not touch the database", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(stubPinger{err: errors.New("down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","version":"1.2.3"}`, w.Body.String())
	})

	t.Run("ready fails when the database is down", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(stubPinger{err: errors.New("down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable","database":"unreachable","version":"1.2.3"}`, w.Body.String())
	})
}
