package middleware

import (
	"log"
	"strconv"
	"time"

	"jobapi/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ключ в контексте gin с идентификатором запроса
const RequestIDKey = "request_id"

// RequestLogger - middleware логирования запросов и сбора HTTP метрик.
// Каждому запросу присваивается request id (или берётся клиентский из X-Request-ID).
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			// запрос мимо зарегистрированных маршрутов (404)
			path = c.Request.URL.Path
		}

		m.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(duration.Seconds())

		log.Printf("[%s] %s %s -> %d (%v)", requestID, c.Request.Method, c.Request.URL.Path, status, duration)
	}
}
