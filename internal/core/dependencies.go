// описание и инициализация всех общих зависимостей
package core

import (
	"fmt"
	"runtime"

	"jobapi/configs"
	"jobapi/internal/inmemory_cache"
	"jobapi/internal/metrics"
	"jobapi/internal/rate_limiter"
	"jobapi/internal/redis_cache"
	"jobapi/internal/scraper"
	"jobapi/internal/scrapers_manager"
	"jobapi/internal/search_interfaces"
	"jobapi/internal/search_server/handlers"
	"jobapi/internal/search_server/service"
)

// JobAPIDependencies содержит все общие зависимости
type JobAPIDependencies struct {
	Config          *configs.AppConfig
	SearchCache     search_interfaces.CacheInterface
	RateLimiter     search_interfaces.RateLimiter
	Metrics         *metrics.Metrics
	ScrapersManager *scrapers_manager.ScrapersManager
	JobService      *service.JobService
	SearchHandler   *handlers.SearchHandler
	HealthHandler   *handlers.HealthHandler
}

// InitDependencies инициализирует общие зависимости сервиса
func InitDependencies() (*JobAPIDependencies, error) {
	// Получаем количество CPU
	currentMaxProcs := runtime.GOMAXPROCS(-1)
	fmt.Printf("Текущее значение GOMAXPROCS: %d\n", currentMaxProcs)

	// Получаем конфигурацию
	conf, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// метрики регистрируются в глобальном prometheus реестре
	m := metrics.New()

	// выбираем бэкенд кэша результатов поиска по конфигу
	var searchCache search_interfaces.CacheInterface
	if conf.Cache.Enabled {
		switch conf.Cache.Backend {
		case configs.CacheBackendRedis:
			searchCache, err = redis_cache.NewSearchCacheAdapter(conf.Redis)
			if err != nil {
				return nil, fmt.Errorf("failed to create redis cache: %w", err)
			}
		default:
			searchCache, err = inmemory_cache.NewInmemoryShardedCache(conf.Cache.NumOfShards, conf.Cache.CleanUp)
			if err != nil {
				return nil, fmt.Errorf("failed to create search cache: %w", err)
			}
		}
	}

	// лимитер создаём только если он включен
	var limiter search_interfaces.RateLimiter
	if conf.RateLimit.Enabled {
		limiter, err = rate_limiter.NewFixedWindowRateLimiter(conf.RateLimit.Requests, conf.RateLimit.Timeframe, conf.RateLimit.CleanUp)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
	}

	// регистрируем клиентов ко всем поддерживаемым площадкам
	scrapers, err := scraper.Registry(conf.Scraper)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrapers registry: %w", err)
	}

	// Создаём менеджер скрейперов
	scrapersManager, err := scrapers_manager.NewScrapersManager(conf.Cache, conf.Scraper, searchCache, m, scrapers)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrapers manager: %w", err)
	}

	// создаём поисковый сервис
	jobService := service.NewJobService(scrapersManager)

	// создаём хэндлеры
	searchHandler := handlers.NewSearchHandler(jobService, conf.Search)
	healthHandler := handlers.NewHealthHandler(conf)

	// возвращаем указатель на структуру зависимостей
	return &JobAPIDependencies{
		Config:          conf,
		SearchCache:     searchCache,
		RateLimiter:     limiter,
		Metrics:         m,
		ScrapersManager: scrapersManager,
		JobService:      jobService,
		SearchHandler:   searchHandler,
		HealthHandler:   healthHandler,
	}, nil
}

// Shutdown останавливает фоновые ресурсы зависимостей
func (d *JobAPIDependencies) Shutdown() {
	if d.JobService != nil {
		d.JobService.StopServices()
	}
	if d.RateLimiter != nil {
		d.RateLimiter.Stop()
	}
}
