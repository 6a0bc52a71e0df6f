package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig()
	require.NoError(t, err)

	// без yaml файла и переменных окружения должны получить чистые дефолты
	assert.Equal(t, "0.0.0.0:8000", conf.Server.Addr())
	assert.False(t, conf.Auth.Enabled)
	assert.Equal(t, "x-api-key", conf.Auth.HeaderName)
	assert.Equal(t, 100, conf.RateLimit.Requests)
	assert.Equal(t, time.Hour, conf.RateLimit.Timeframe)
	assert.Equal(t, CacheBackendMemory, conf.Cache.Backend)
	assert.Len(t, conf.Search.DefaultSites, 7)

	assert.Equal(t, SourceDefault, conf.Sources()["ENABLE_CACHE"])
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ENABLE_API_KEY_AUTH", "true")
	t.Setenv("API_KEYS", "key-one, key-two")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_TIMEFRAME", "60")
	t.Setenv("ENABLE_CACHE", "true")
	t.Setenv("CACHE_EXPIRY", "120")
	t.Setenv("DEFAULT_SITE_NAMES", "indeed,linkedin")

	conf, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, conf.Auth.Enabled)
	assert.Equal(t, []string{"key-one", "key-two"}, conf.Auth.APIKeys)
	assert.Equal(t, 5, conf.RateLimit.Requests)
	assert.Equal(t, time.Minute, conf.RateLimit.Timeframe)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 2*time.Minute, conf.Cache.TTL)
	assert.Equal(t, []string{"indeed", "linkedin"}, conf.Search.DefaultSites)

	// источники должны отражать переопределение из окружения
	sources := conf.Sources()
	assert.Equal(t, SourceEnv, sources["API_KEYS"])
	assert.Equal(t, SourceEnv, sources["CACHE_EXPIRY"])
	assert.Equal(t, SourceDefault, sources["PORT"])
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("нулевой лимит запросов", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_REQUESTS", "0")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("неизвестный бэкенд кэша", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestAuthConfigConsistency(t *testing.T) {
	tests := []struct {
		name         string
		enabled      bool
		keys         []string
		active       bool
		inconsistent bool
	}{
		{"выключено и без ключей", false, nil, false, false},
		{"включено с ключами", true, []string{"k1"}, true, false},
		{"включено без ключей", true, nil, false, true},
		{"выключено с ключами", false, []string{"k1"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AuthConfig{Enabled: tt.enabled, APIKeys: tt.keys, HeaderName: "x-api-key"}
			assert.Equal(t, tt.active, cfg.Active())
			assert.Equal(t, tt.inconsistent, cfg.Inconsistent())
		})
	}
}
