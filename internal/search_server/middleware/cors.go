package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// middleware для CORS политики
// сервис - публичный API без кук, поэтому разрешаем любые источники
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		// Разрешенные методы
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		// Разрешенные заголовки
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID, x-api-key")

		// Заголовки, которые можно читать клиенту
		c.Writer.Header().Set("Access-Control-Expose-Headers",
			"Content-Length, Content-Type, X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset")

		// Кеширование предзапроса (в секундах)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
