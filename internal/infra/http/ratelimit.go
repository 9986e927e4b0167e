package http

import (
	"net/http"
	"strconv"
	"time"

	"voltgate/internal/domain"

	"github.com/gin-gonic/gin"
)

// enforceLoginRateLimit throttles credential-guessing by client IP. A
// limiter failure does not block the attempt: the bcrypt comparison behind
// the route is the slow path either way.
func (s *Server) enforceLoginRateLimit(c *gin.Context, routeID string) bool {
	if s.rateLimiter == nil || s.loginRateLimit <= 0 {
		return true
	}
	key := "login:" + routeID + ":ip:" + c.ClientIP()

	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.loginRateLimit, s.loginRateWindow)
	if err != nil {
		s.log.WithError(err).Warn("rate limiter unavailable")
		return true
	}
	writeRateLimitHeaders(c, decision)
	if !decision.Allowed {
		writeErrorCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return false
	}
	return true
}

func writeRateLimitHeaders(c *gin.Context, decision domain.RateLimitDecision) {
	if decision.Limit > 0 {
		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if !decision.ResetAt.IsZero() {
		c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		if !decision.Allowed {
			retryAfter := int64(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
		}
	}
}
