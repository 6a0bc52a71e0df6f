package inmemory_cache

import "time"

// фоновый цикл интервальной очистки кэша
func (c *InmemoryShardedCache) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// в этом селекте ждём одно из 2х событий:
	// тик --> запускаем очистку устаревших записей, stopChan --> выходим
	for {
		select {
		case <-ticker.C:
			c.cleanUpExpired()
		case <-c.stopChan:
			return
		}
	}
}

// метод для очистки кэша от устаревших данных
func (c *InmemoryShardedCache) cleanUpExpired() {
	start := time.Now()
	// пробегаемся циклом по всем шардам
	for _, shard := range c.shards {
		shard.mu.Lock()
		for key, value := range shard.Items {
			// если элемент пережил своё время жизни - удаляем его
			if start.After(value.expTime) {
				delete(shard.Items, key)
			}
		}
		shard.mu.Unlock()
	}
}
