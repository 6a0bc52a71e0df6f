package inmemory_cache

import (
	"sync"
	"time"
)

// основная структура inmemory cache для кэширования результатов поиска. Кэш - шардирован
type InmemoryShardedCache struct {
	shards    []*Shard
	numShards int
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// структура отдельного шарда
// у него есть мапа с cacheItem и мьютекс для доступа к мапе
// ключом в этой мапе будет строка ----> канонический хэш параметров поиска
type Shard struct {
	Items map[string]cacheItem
	mu    sync.RWMutex
}

// структура отдельного элемента inmemory cache
type cacheItem struct {
	value   interface{}
	expTime time.Time
}
