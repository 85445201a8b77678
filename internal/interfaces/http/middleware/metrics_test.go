package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics("metrics-test"))
	r.GET("/api/Cidade/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", MetricsHandler())

	for _, path := range []string{"/api/Cidade/1", "/api/Cidade/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(
		httpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/api/Cidade/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		httpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "not_found", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight.WithLabelValues("metrics-test")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{endpoint="/api/Cidade/:id",method="GET",service="metrics-test",status="200"} 2`)
}
