package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobapi/configs"
	"jobapi/internal/metrics"
	"jobapi/internal/rate_limiter"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// собираем тестовый роутер с переданными middleware и одним ok-хэндлером
func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"identity": c.GetString(ClientIdentityKey)})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	authCfg := &configs.AuthConfig{
		Enabled:    true,
		APIKeys:    []string{"secret-key"},
		HeaderName: "x-api-key",
	}

	router := newTestRouter(APIKeyAuth(authCfg, metrics.NewForTesting()))

	t.Run("запрос без ключа отклоняется", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Missing API Key")
	})

	t.Run("запрос с неверным ключом отклоняется", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("x-api-key", "wrong")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid API Key")
	})

	t.Run("валидный ключ пропускается и становится идентификатором", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("x-api-key", "secret-key")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "secret-key")
	})

	t.Run("выключенная аутентификация пропускает всех", func(t *testing.T) {
		disabled := configs.DefaultAuthConfig()
		open := newTestRouter(APIKeyAuth(disabled, metrics.NewForTesting()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		open.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	limitCfg := &configs.RateLimitConfig{
		Enabled:   true,
		Requests:  2,
		Timeframe: time.Hour,
	}

	limiter, err := rate_limiter.NewFixedWindowRateLimiter(limitCfg.Requests, limitCfg.Timeframe, 0)
	require.NoError(t, err)
	t.Cleanup(limiter.Stop)

	router := newTestRouter(RateLimit(limitCfg, limiter, metrics.NewForTesting()))

	// первые два запроса проходят
	for i := 0; i < limitCfg.Requests; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	// третий - отказ с заголовками лимита
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimitDisabled(t *testing.T) {
	limitCfg := configs.DefaultRateLimitConfig() // по умолчанию выключен
	router := newTestRouter(RateLimit(limitCfg, nil, metrics.NewForTesting()))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	router := newTestRouter(RequestLogger(metrics.NewForTesting()))

	t.Run("request id генерируется, если клиент его не прислал", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("клиентский request id сохраняется", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "client-id-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-123", w.Header().Get("X-Request-ID"))
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := newTestRouter(CORSMiddleware())

	t.Run("обычный запрос получает CORS заголовки", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight запрос завершается 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
