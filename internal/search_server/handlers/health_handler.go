package handlers

import (
	"net/http"
	"time"

	"jobapi/configs"

	"github.com/gin-gonic/gin"
)

// версия сервиса для служебных эндпоинтов
const serviceVersion = "1.0.0"

// структура хэндлера служебных эндпоинтов (здоровье, интроспекция конфигурации)
type HealthHandler struct {
	config *configs.AppConfig
}

// конструктор хэндлера служебных эндпоинтов
func NewHealthHandler(config *configs.AppConfig) *HealthHandler {
	return &HealthHandler{config: config}
}

// хэндлер проверки здоровья сервиса
// в детальном режиме дополнительно отдаёт состояние подсистем
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     serviceVersion,
		"environment": h.config.Server.Environment,
	}

	if h.config.Server.EnableDetailedHealth {
		body["cache"] = gin.H{
			"enabled": h.config.Cache.Enabled,
			"backend": h.config.Cache.Backend,
			"ttl":     h.config.Cache.TTL.String(),
		}
		body["rate_limit"] = gin.H{
			"enabled":   h.config.RateLimit.Enabled,
			"requests":  h.config.RateLimit.Requests,
			"timeframe": h.config.RateLimit.Timeframe.String(),
		}
		body["auth"] = gin.H{
			"enabled": h.config.Auth.Enabled,
			"active":  h.config.Auth.Active(),
		}
		body["scraper"] = gin.H{
			"base_url": h.config.Scraper.BaseURL,
			"timeout":  h.config.Scraper.Timeout.String(),
		}
	}

	c.JSON(http.StatusOK, body)
}

// простейшая проверка живости
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// хэндлер статуса аутентификации
// сами ключи наружу не отдаём, только их количество и согласованность настройки
func (h *HealthHandler) AuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_key_auth_enabled":     h.config.Auth.Enabled,
		"api_keys_configured":      len(h.config.Auth.APIKeys),
		"api_key_header_name":      h.config.Auth.HeaderName,
		"auth_active":              h.config.Auth.Active(),
		"configuration_consistent": !h.config.Auth.Inconsistent(),
	})
}

// хэндлер текущей конфигурации API (без секретов)
func (h *HealthHandler) APIConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server": gin.H{
			"host":        h.config.Server.Host,
			"port":        h.config.Server.Port,
			"environment": h.config.Server.Environment,
		},
		"auth": gin.H{
			"enabled":     h.config.Auth.Enabled,
			"header_name": h.config.Auth.HeaderName,
		},
		"rate_limit": gin.H{
			"enabled":   h.config.RateLimit.Enabled,
			"requests":  h.config.RateLimit.Requests,
			"timeframe": h.config.RateLimit.Timeframe.String(),
		},
		"cache": gin.H{
			"enabled": h.config.Cache.Enabled,
			"backend": h.config.Cache.Backend,
			"ttl":     h.config.Cache.TTL.String(),
		},
		"search": gin.H{
			"default_sites":              h.config.Search.DefaultSites,
			"default_results_wanted":     h.config.Search.DefaultResultsWanted,
			"default_distance":           h.config.Search.DefaultDistance,
			"default_description_format": h.config.Search.DefaultDescriptionFormat,
			"default_country_indeed":     h.config.Search.DefaultCountryIndeed,
			"default_page_size":          h.config.Search.DefaultPageSize,
		},
		"scraper": gin.H{
			"base_url": h.config.Scraper.BaseURL,
			"timeout":  h.config.Scraper.Timeout.String(),
		},
	})
}

// хэндлер источников настроек: откуда взялось каждое значение
// (дефолт, yaml файл или переменная окружения)
func (h *HealthHandler) ConfigSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": h.config.Sources()})
}
