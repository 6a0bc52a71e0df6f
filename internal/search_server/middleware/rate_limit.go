package middleware

import (
	"net/http"
	"strconv"

	"jobapi/configs"
	"jobapi/internal/metrics"
	"jobapi/internal/search_interfaces"

	"github.com/gin-gonic/gin"
)

// RateLimit - middleware ограничения частоты запросов.
// Идентификатор клиента: API ключ (если прошёл аутентификацию), иначе IP.
// Заголовки X-RateLimit-* выставляются на каждый ответ, включая отказ.
func RateLimit(limitCfg *configs.RateLimitConfig, limiter search_interfaces.RateLimiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limitCfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		identity := c.GetString(ClientIdentityKey)
		if identity == "" {
			identity = c.ClientIP()
		}

		allowed := limiter.Allow(identity)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limitCfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(identity)))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limiter.ResetAt(identity).Unix(), 10))

		if !allowed {
			m.RateLimitRejectionsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests, retry after the limit window resets",
				"status_code": http.StatusTooManyRequests,
				"path":        c.Request.URL.Path,
			})
			return
		}

		c.Next()
	}
}
