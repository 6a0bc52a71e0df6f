package middleware

import (
	"net/http"

	"jobapi/configs"
	"jobapi/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ключ в контексте gin, под которым лежит идентификатор клиента
// (API ключ после успешной аутентификации, иначе IP)
const ClientIdentityKey = "client_identity"

// APIKeyAuth - middleware аутентификации по API ключу в заголовке.
// Если аутентификация не активна (выключена или ключи не заданы) - пропускаем всех.
func APIKeyAuth(authCfg *configs.AuthConfig, m *metrics.Metrics) gin.HandlerFunc {
	// набор валидных ключей собираем один раз на старте
	validKeys := make(map[string]struct{}, len(authCfg.APIKeys))
	for _, key := range authCfg.APIKeys {
		validKeys[key] = struct{}{}
	}

	return func(c *gin.Context) {
		if !authCfg.Active() {
			c.Next()
			return
		}

		apiKey := c.GetHeader(authCfg.HeaderName)
		if apiKey == "" {
			m.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":       "Missing API Key",
				"message":     "API key required in " + authCfg.HeaderName + " header",
				"status_code": http.StatusForbidden,
				"path":        c.Request.URL.Path,
			})
			return
		}

		if _, ok := validKeys[apiKey]; !ok {
			m.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":       "Invalid API Key",
				"message":     "The provided API key is not valid",
				"status_code": http.StatusForbidden,
				"path":        c.Request.URL.Path,
			})
			return
		}

		// ключ валидный - дальше по цепочке он же служит идентификатором для лимитера
		c.Set(ClientIdentityKey, apiKey)
		c.Next()
	}
}
