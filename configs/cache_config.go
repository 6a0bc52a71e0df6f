package configs

import "time"

// допустимые бэкенды кэша результатов поиска
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// структура конфига для кэша результатов поиска
type CacheConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Backend     string        `yaml:"backend"` // memory | redis
	TTL         time.Duration `yaml:"ttl"`     // время жизни элементов кэша поиска
	NumOfShards int           `yaml:"num_of_shards"`
	CleanUp     time.Duration `yaml:"clean_up"` // интервал самоочистки для инмэмори кэша
}

// функция, которая возвращает указатель на дэфолтный конфиг для кэша
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:     false,
		Backend:     CacheBackendMemory,
		TTL:         time.Hour,
		NumOfShards: 7,
		CleanUp:     5 * time.Minute,
	}
}
