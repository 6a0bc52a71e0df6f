package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// источники значений настроек (для эндпоинта /config-sources)
const (
	SourceDefault = "default"
	SourceYAML    = "yaml file"
	SourceEnv     = "environment variable"
)

// AppConfig - корневая структура конфигурации всего сервиса
type AppConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Auth      *AuthConfig      `yaml:"auth"`
	RateLimit *RateLimitConfig `yaml:"rate_limit"`
	Cache     *CacheConfig     `yaml:"cache"`
	Redis     *RedisConfig     `yaml:"redis"`
	Search    *SearchConfig    `yaml:"search"`
	Scraper   *ScraperConfig   `yaml:"scraper"`

	// карта: имя настройки -> откуда взято значение
	sources map[string]string
}

// конструктор корневого конфига со всеми дефолтами
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Server:    DefaultServerConfig(),
		Auth:      DefaultAuthConfig(),
		RateLimit: DefaultRateLimitConfig(),
		Cache:     DefaultCacheConfig(),
		Redis:     DefaultRedisConfig(),
		Search:    DefaultSearchConfig(),
		Scraper:   DefaultScraperConfig(),
	}
}

// LoadConfig собирает итоговую конфигурацию в три прохода:
// дефолты -> yaml файл (путь в CONFIG_PATH) -> переменные окружения.
// Каждая настройка помнит свой источник.
func LoadConfig() (*AppConfig, error) {
	conf, err := LoadYAMLConfig(os.Getenv("CONFIG_PATH"), DefaultAppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load yaml config: %w", err)
	}

	// yaml мог затереть вложенные указатели на nil - восстанавливаем дефолтами
	defaults := DefaultAppConfig()
	if conf.Server == nil {
		conf.Server = defaults.Server
	}
	if conf.Auth == nil {
		conf.Auth = defaults.Auth
	}
	if conf.RateLimit == nil {
		conf.RateLimit = defaults.RateLimit
	}
	if conf.Cache == nil {
		conf.Cache = defaults.Cache
	}
	if conf.Redis == nil {
		conf.Redis = defaults.Redis
	}
	if conf.Search == nil {
		conf.Search = defaults.Search
	}
	if conf.Scraper == nil {
		conf.Scraper = defaults.Scraper
	}

	conf.sources = make(map[string]string)
	conf.markYAMLSources(defaults)
	conf.applyEnvOverrides()

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// проверяем итоговую конфигурацию на заведомо нерабочие значения
func (c *AppConfig) validate() error {
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate limit requests must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Timeframe <= 0 {
		return fmt.Errorf("rate limit timeframe must be positive, got %v", c.RateLimit.Timeframe)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.Backend != CacheBackendMemory && c.Cache.Backend != CacheBackendRedis {
		return fmt.Errorf("unknown cache backend %q, expected %q or %q", c.Cache.Backend, CacheBackendMemory, CacheBackendRedis)
	}
	return nil
}

// Sources возвращает копию карты источников настроек
func (c *AppConfig) Sources() map[string]string {
	out := make(map[string]string, len(c.sources))
	for k, v := range c.sources {
		out[k] = v
	}
	return out
}

// помечаем источником "yaml file" все настройки, чьё значение отличается от дефолтного
// (generic-диффалка здесь не нужна, настроек конечное число)
func (c *AppConfig) markYAMLSources(defaults *AppConfig) {
	mark := func(name string, changed bool) {
		if changed {
			c.sources[name] = SourceYAML
		} else {
			c.sources[name] = SourceDefault
		}
	}

	mark("HOST", c.Server.Host != defaults.Server.Host)
	mark("PORT", c.Server.Port != defaults.Server.Port)
	mark("ENVIRONMENT", c.Server.Environment != defaults.Server.Environment)
	mark("ENABLE_HEALTH_ENDPOINTS", c.Server.EnableHealthEndpoints != defaults.Server.EnableHealthEndpoints)
	mark("ENABLE_DETAILED_HEALTH", c.Server.EnableDetailedHealth != defaults.Server.EnableDetailedHealth)
	mark("ENABLE_API_KEY_AUTH", c.Auth.Enabled != defaults.Auth.Enabled)
	mark("API_KEYS", len(c.Auth.APIKeys) != len(defaults.Auth.APIKeys))
	mark("API_KEY_HEADER_NAME", c.Auth.HeaderName != defaults.Auth.HeaderName)
	mark("RATE_LIMIT_ENABLED", c.RateLimit.Enabled != defaults.RateLimit.Enabled)
	mark("RATE_LIMIT_REQUESTS", c.RateLimit.Requests != defaults.RateLimit.Requests)
	mark("RATE_LIMIT_TIMEFRAME", c.RateLimit.Timeframe != defaults.RateLimit.Timeframe)
	mark("ENABLE_CACHE", c.Cache.Enabled != defaults.Cache.Enabled)
	mark("CACHE_BACKEND", c.Cache.Backend != defaults.Cache.Backend)
	mark("CACHE_EXPIRY", c.Cache.TTL != defaults.Cache.TTL)
	mark("REDIS_ADDR", c.Redis.Addr != defaults.Redis.Addr)
	mark("DEFAULT_SITE_NAMES", strings.Join(c.Search.DefaultSites, ",") != strings.Join(defaults.Search.DefaultSites, ","))
	mark("DEFAULT_RESULTS_WANTED", c.Search.DefaultResultsWanted != defaults.Search.DefaultResultsWanted)
	mark("DEFAULT_DISTANCE", c.Search.DefaultDistance != defaults.Search.DefaultDistance)
	mark("DEFAULT_DESCRIPTION_FORMAT", c.Search.DefaultDescriptionFormat != defaults.Search.DefaultDescriptionFormat)
	mark("DEFAULT_COUNTRY_INDEED", c.Search.DefaultCountryIndeed != defaults.Search.DefaultCountryIndeed)
	mark("SCRAPER_BASE_URL", c.Scraper.BaseURL != defaults.Scraper.BaseURL)
	mark("SCRAPER_TIMEOUT", c.Scraper.Timeout != defaults.Scraper.Timeout)
}

// накатываем переменные окружения поверх yaml/дефолтов
// имена переменных совпадают с именами настроек в карте источников
func (c *AppConfig) applyEnvOverrides() {
	c.envString("HOST", &c.Server.Host)
	c.envString("PORT", &c.Server.Port)
	c.envString("ENVIRONMENT", &c.Server.Environment)
	c.envBool("ENABLE_HEALTH_ENDPOINTS", &c.Server.EnableHealthEndpoints)
	c.envBool("ENABLE_DETAILED_HEALTH", &c.Server.EnableDetailedHealth)

	c.envBool("ENABLE_API_KEY_AUTH", &c.Auth.Enabled)
	c.envList("API_KEYS", &c.Auth.APIKeys)
	c.envString("API_KEY_HEADER_NAME", &c.Auth.HeaderName)

	c.envBool("RATE_LIMIT_ENABLED", &c.RateLimit.Enabled)
	c.envInt("RATE_LIMIT_REQUESTS", &c.RateLimit.Requests)
	c.envSeconds("RATE_LIMIT_TIMEFRAME", &c.RateLimit.Timeframe)

	c.envBool("ENABLE_CACHE", &c.Cache.Enabled)
	c.envString("CACHE_BACKEND", &c.Cache.Backend)
	c.envSeconds("CACHE_EXPIRY", &c.Cache.TTL)
	c.envString("REDIS_ADDR", &c.Redis.Addr)

	c.envList("DEFAULT_SITE_NAMES", &c.Search.DefaultSites)
	c.envInt("DEFAULT_RESULTS_WANTED", &c.Search.DefaultResultsWanted)
	c.envInt("DEFAULT_DISTANCE", &c.Search.DefaultDistance)
	c.envString("DEFAULT_DESCRIPTION_FORMAT", &c.Search.DefaultDescriptionFormat)
	c.envString("DEFAULT_COUNTRY_INDEED", &c.Search.DefaultCountryIndeed)

	c.envString("SCRAPER_BASE_URL", &c.Scraper.BaseURL)
	c.envSeconds("SCRAPER_TIMEOUT", &c.Scraper.Timeout)
}

func (c *AppConfig) envString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
		c.sources[name] = SourceEnv
	}
}

func (c *AppConfig) envBool(name string, dst *bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		parsed, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return
		}
		*dst = parsed
		c.sources[name] = SourceEnv
	}
}

func (c *AppConfig) envInt(name string, dst *int) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return
		}
		*dst = parsed
		c.sources[name] = SourceEnv
	}
}

// длительности в окружении задаются в секундах (как в исходных переменных RATE_LIMIT_TIMEFRAME / CACHE_EXPIRY)
func (c *AppConfig) envSeconds(name string, dst *time.Duration) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return
		}
		*dst = time.Duration(parsed) * time.Second
		c.sources[name] = SourceEnv
	}
}

// списки в окружении задаются через запятую, пустые элементы выбрасываем
func (c *AppConfig) envList(name string, dst *[]string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		var items []string
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
		*dst = items
		c.sources[name] = SourceEnv
	}
}
