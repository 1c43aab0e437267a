// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(l *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitFrom(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	// Refill is an hour out, so only the burst of 2 can pass
	l := NewIPRateLimiter(rate.Every(time.Hour), 2, time.Minute)
	r := rateLimitedRouter(l)

	assert.Equal(t, http.StatusOK, hitFrom(r, "198.51.100.7:4242"))
	assert.Equal(t, http.StatusOK, hitFrom(r, "198.51.100.7:4242"))
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(r, "198.51.100.7:4242"))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	l := NewIPRateLimiter(rate.Every(time.Hour), 1, time.Minute)
	r := rateLimitedRouter(l)

	assert.Equal(t, http.StatusOK, hitFrom(r, "198.51.100.7:4242"))
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(r, "198.51.100.7:4242"))

	// A different client gets a fresh bucket
	assert.Equal(t, http.StatusOK, hitFrom(r, "203.0.113.9:4242"))
}
