package redis_cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jobapi/configs"
	"jobapi/internal/domain/models"
	"jobapi/internal/search_interfaces"

	"github.com/go-redis/redis/v8"
)

// SearchCacheAdapter - адаптер кэша результатов поиска на базе Redis
// нужен, когда кэш должен быть общим для нескольких воркеров/инстансов сервиса.
// Значения храним как JSON срезов JobPost, TTL отдаём на откуп самому Redis.
type SearchCacheAdapter struct {
	client *redis.Client
	opTTL  time.Duration // таймаут на одну операцию с redis
}

// конструктор адаптера: создаём клиента по конфигу и проверяем подключение
func NewSearchCacheAdapter(cfg *configs.RedisConfig) (*SearchCacheAdapter, error) {
	// проверяем, что конфиг редиса не nil
	if cfg == nil {
		return nil, fmt.Errorf("redis config is nil")
	}

	// создаём клиента redis на основе опций из конфига
	client := redis.NewClient(cfg.ToRedisOptions())

	// Проверяем подключение
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Printf("Connected to Redis at %s (DB: %d)", cfg.Addr, cfg.DB)

	return &SearchCacheAdapter{
		client: client,
		opTTL:  cfg.ReadTimeout,
	}, nil
}

// метод получения значения из кэша по ключу
// возвращаем []models.JobPost под интерфейсом - другие типы в этом кэше не живут
func (r *SearchCacheAdapter) GetItem(key string) (interface{}, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTTL)
	defer cancel()

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil - это промах кэша, остальное логируем
		if err != redis.Nil {
			log.Printf("redis get failed for key %s: %v", key, err)
		}
		return nil, false
	}

	var jobs []models.JobPost
	if err := json.Unmarshal(raw, &jobs); err != nil {
		log.Printf("redis cache holds unreadable value for key %s: %v", key, err)
		return nil, false
	}

	return jobs, true
}

// метод для добавления значения с TTL
func (r *SearchCacheAdapter) AddItemWithTTL(key string, value interface{}, ttl time.Duration) {
	jobs, ok := value.([]models.JobPost)
	if !ok {
		log.Printf("redis cache: unexpected value type %T for key %s, skipping", value, key)
		return
	}

	raw, err := json.Marshal(jobs)
	if err != nil {
		log.Printf("redis cache: marshal failed for key %s: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.opTTL)
	defer cancel()

	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("redis set failed for key %s: %v", key, err)
	}
}

// метод удаления элемента по ключу
func (r *SearchCacheAdapter) DeleteItem(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTTL)
	defer cancel()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		log.Printf("redis del failed for key %s: %v", key, err)
	}
}

// метод для завершения работы с redis
func (r *SearchCacheAdapter) Stop() {
	if r.client != nil {
		if err := r.client.Close(); err != nil {
			log.Printf("redis close failed: %v", err)
		}
	}
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ search_interfaces.CacheInterface = (*SearchCacheAdapter)(nil)
