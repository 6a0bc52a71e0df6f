package inmemory_cache

import (
	"fmt"
	"hash/fnv"
	"time"

	"jobapi/internal/search_interfaces"
)

// конструктор для создания кэша с указанным количеством шардов и интервалом очистки кэша
func NewInmemoryShardedCache(numShards int, cleanUpInterval time.Duration) (*InmemoryShardedCache, error) {
	// Валидация входных параметров
	if numShards <= 0 {
		return nil, fmt.Errorf("numShards must be positive, got %d", numShards)
	}

	if numShards > 1000 {
		return nil, fmt.Errorf("numShards is too large: %d", numShards)
	}

	if cleanUpInterval < 0 {
		return nil, fmt.Errorf("cleanUpInterval must be non-negative, got %v", cleanUpInterval)
	}

	// инициализируем базовую структуру кэша
	cache := &InmemoryShardedCache{
		shards:    make([]*Shard, numShards),
		numShards: numShards,
		stopChan:  make(chan struct{}),
	}

	// для каждого шарда инициализируем внутреннюю мапу
	for i := 0; i < numShards; i++ {
		cache.shards[i] = &Shard{
			Items: map[string]cacheItem{},
		}
	}

	// асинхронно запускаем очистку кэша через определённый интервал времени
	// Запускаем очистку только если интервал > 0
	if cleanUpInterval > 0 {
		go cache.cleanUp(cleanUpInterval)
	}

	return cache, nil
}

// метод получения значения из кэша по заданному ключу
// просроченные записи считаются отсутствующими (ленивая проверка TTL на чтении)
func (c *InmemoryShardedCache) GetItem(key string) (interface{}, bool) {
	shard := c.getShard(key)
	now := time.Now()

	// лочимся на чтение, так как читаем из мапы
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	val, ok := shard.Items[key]
	if !ok {
		return nil, false
	}

	// проверяем, не истёк ли TTL у значения
	if now.After(val.expTime) {
		return nil, false
	}

	return val.value, true
}

// метод, чтобы находить нужный шард по заданному ключу
func (c *InmemoryShardedCache) getShard(key string) *Shard {
	// вычисляем индекс нужного нам шарда: хэш по ключу % количество шардов
	hashf := fnv.New32a()
	hashf.Write([]byte(key)) // Write у fnv никогда не возвращает ошибку

	shardIndex := int(hashf.Sum32()) % c.numShards

	return c.shards[shardIndex]
}

// метод, чтобы записать значение в кэш с заданным TTL
func (c *InmemoryShardedCache) AddItemWithTTL(key string, value interface{}, ttl time.Duration) {
	shard := c.getShard(key)
	now := time.Now()

	// берём лок на запись, так как обращаемся к мапе
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.Items[key] = cacheItem{
		value:   value,
		expTime: now.Add(ttl),
	}
}

// метод удаления элемента из кэша по ключу
func (c *InmemoryShardedCache) DeleteItem(key string) {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()
	delete(shard.Items, key)
}

// метод остановки фоновой очистки кэша
func (c *InmemoryShardedCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ search_interfaces.CacheInterface = (*InmemoryShardedCache)(nil)
