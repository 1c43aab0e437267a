// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP and evicts buckets
// that have gone quiet for longer than the idle window.
type IPRateLimiter struct {
	clients map[string]*client
	mtx     sync.Mutex
	rate    rate.Limit
	burst   int
	idle    time.Duration
}

func NewIPRateLimiter(r rate.Limit, burst int, idle time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		clients: make(map[string]*client),
		rate:    r,
		burst:   burst,
		idle:    idle,
	}

	go l.evictIdle()

	return l
}

func (l *IPRateLimiter) evictIdle() {
	for {
		time.Sleep(l.idle)
		l.mtx.Lock()
		for ip, cl := range l.clients {
			if time.Since(cl.lastSeen) > l.idle {
				delete(l.clients, ip)
			}
		}
		l.mtx.Unlock()
	}
}

func (l *IPRateLimiter) allow(ip string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	cl, ok := l.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter.Allow()
}

func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please slow down and try again.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Storefront traffic tiers. Browsing is chatty since a product page fires
// several requests (product, images, reviews); credential endpoints and
// media uploads are not.
var (
	browseLimiter = NewIPRateLimiter(rate.Limit(20), 40, 5*time.Minute)             // sustained 20/s for catalog reads
	authLimiter   = NewIPRateLimiter(rate.Every(12*time.Second), 5, 10*time.Minute) // 5 credential attempts per minute
	uploadLimiter = NewIPRateLimiter(rate.Every(6*time.Second), 3, 10*time.Minute)  // 10 image uploads per minute
)

func GeneralRateLimit() gin.HandlerFunc {
	return browseLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}
