package search_interfaces

import "time"

// CacheInterface - абстракция кэша результатов поиска
// под этим интерфейсом живут inmemory реализация (по умолчанию) и redis адаптер
type CacheInterface interface {
	GetItem(key string) (interface{}, bool)
	AddItemWithTTL(key string, value interface{}, ttl time.Duration)
	DeleteItem(key string)
	Stop()
}
