package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobapi/configs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// собираем тестовый роутер со служебными эндпоинтами
func newHealthRouter(cfg *configs.AppConfig) *gin.Engine {
	handler := NewHealthHandler(cfg)

	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/ping", handler.Ping)
	router.GET("/auth-status", handler.AuthStatus)
	router.GET("/api-config", handler.APIConfig)
	router.GET("/config-sources", handler.ConfigSources)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string) map[string]interface{} {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	t.Run("детальный режим отдаёт состояние подсистем", func(t *testing.T) {
		cfg := configs.DefaultAppConfig()
		router := newHealthRouter(cfg)

		body := getJSON(t, router, "/health")
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, serviceVersion, body["version"])
		assert.NotEmpty(t, body["timestamp"])
		assert.Contains(t, body, "cache")
		assert.Contains(t, body, "rate_limit")
		assert.Contains(t, body, "auth")
	})

	t.Run("без детального режима только базовые поля", func(t *testing.T) {
		cfg := configs.DefaultAppConfig()
		cfg.Server.EnableDetailedHealth = false
		router := newHealthRouter(cfg)

		body := getJSON(t, router, "/health")
		assert.Equal(t, "healthy", body["status"])
		assert.NotContains(t, body, "cache")
		assert.NotContains(t, body, "rate_limit")
	})
}

func TestPing(t *testing.T) {
	body := getJSON(t, newHealthRouter(configs.DefaultAppConfig()), "/ping")
	assert.Equal(t, "pong", body["message"])
}

func TestAuthStatus(t *testing.T) {
	cfg := configs.DefaultAppConfig()
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = []string{"key-1", "key-2"}
	router := newHealthRouter(cfg)

	body := getJSON(t, router, "/auth-status")
	assert.Equal(t, true, body["api_key_auth_enabled"])
	assert.Equal(t, float64(2), body["api_keys_configured"])
	assert.Equal(t, "x-api-key", body["api_key_header_name"])
	assert.Equal(t, true, body["auth_active"])
	assert.Equal(t, true, body["configuration_consistent"])
}

// auth включён, но ключей нет - несогласованная конфигурация
func TestAuthStatusInconsistent(t *testing.T) {
	cfg := configs.DefaultAppConfig()
	cfg.Auth.Enabled = true
	router := newHealthRouter(cfg)

	body := getJSON(t, router, "/auth-status")
	assert.Equal(t, false, body["auth_active"])
	assert.Equal(t, false, body["configuration_consistent"])
}

func TestAPIConfigDoesNotLeakSecrets(t *testing.T) {
	cfg := configs.DefaultAppConfig()
	cfg.Auth.APIKeys = []string{"super-secret-key"}
	router := newHealthRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api-config", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, w.Body.String(), "super-secret-key")
	assert.Contains(t, w.Body.String(), "default_sites")
}

func TestConfigSources(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "42")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	router := newHealthRouter(cfg)

	body := getJSON(t, router, "/config-sources")
	sources, ok := body["sources"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, configs.SourceEnv, sources["RATE_LIMIT_REQUESTS"])
	assert.Equal(t, configs.SourceDefault, sources["PORT"])
}
