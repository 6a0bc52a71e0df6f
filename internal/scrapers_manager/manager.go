package scrapers_manager

import (
	"fmt"
	"time"

	"jobapi/configs"
	"jobapi/internal/metrics"
	"jobapi/internal/search_interfaces"
)

// ScrapersManager - оркестратор мульти-поиска по внешним источникам.
// Держит реестр скрейперов, кэш результатов и метрики; сам поиск - в search.go
type ScrapersManager struct {
	scrapers    map[string]search_interfaces.Scraper
	searchCache search_interfaces.CacheInterface
	metrics     *metrics.Metrics

	cacheEnabled bool
	cacheTTL     time.Duration
	siteTimeout  time.Duration
}

// конструктор менеджера скрейперов
func NewScrapersManager(
	cacheCfg *configs.CacheConfig,
	scraperCfg *configs.ScraperConfig,
	searchCache search_interfaces.CacheInterface,
	m *metrics.Metrics,
	scrapers map[string]search_interfaces.Scraper,
) (*ScrapersManager, error) {
	if len(scrapers) == 0 {
		return nil, fmt.Errorf("scrapers map must not be empty")
	}
	if cacheCfg.Enabled && searchCache == nil {
		return nil, fmt.Errorf("cache is enabled but no cache implementation provided")
	}

	return &ScrapersManager{
		scrapers:     scrapers,
		searchCache:  searchCache,
		metrics:      m,
		cacheEnabled: cacheCfg.Enabled,
		cacheTTL:     cacheCfg.TTL,
		siteTimeout:  scraperCfg.Timeout,
	}, nil
}

// Shutdown освобождает ресурсы менеджера (кэш с его фоновой горутиной)
func (sm *ScrapersManager) Shutdown() {
	if sm.searchCache != nil {
		sm.searchCache.Stop()
	}
}
