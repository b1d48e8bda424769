package middleware

import (
	"sync"

	"warden/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitPerIP applies a token-bucket budget per client IP. Buckets are
// kept for the process lifetime; the admin surface sees few distinct IPs.
func RateLimitPerIP(rps float64, burst int) echo.MiddlewareFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			mu.Lock()
			lim, ok := buckets[ip]
			if !ok {
				lim = rate.NewLimiter(rate.Limit(rps), burst)
				buckets[ip] = lim
			}
			mu.Unlock()

			if !lim.Allow() {
				return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests")
			}

			return next(c)
		}
	}
}
