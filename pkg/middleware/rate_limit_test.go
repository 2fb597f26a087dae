package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1, 1)) // 1 rps, burst 1
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request consumes the burst token
	rq1 := httptest.NewRequest("GET", "/r", nil)
	rq1.RemoteAddr = "10.1.2.3:5000"
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request from the same IP is rejected
	rq2 := httptest.NewRequest("GET", "/r", nil)
	rq2.RemoteAddr = "10.1.2.3:5001"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "1", w2.Header().Get("Retry-After"))

	// a different IP has its own bucket
	rq3 := httptest.NewRequest("GET", "/r", nil)
	rq3.RemoteAddr = "10.9.9.9:5000"
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, rq3)
	require.Equal(t, http.StatusOK, w3.Code)
}
