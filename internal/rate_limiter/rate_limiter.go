package rate_limiter

import (
	"fmt"
	"sync"
	"time"

	"jobapi/internal/search_interfaces"
)

// окно одного клиента: счётчик запросов и момент старта окна
type window struct {
	count   int
	startAt time.Time
}

// FixedWindowRateLimiter - лимитер запросов с фиксированным окном на каждого клиента.
// Счётчик сбрасывается, когда окно истекло. На границе окна клиент может
// выжать до 2x лимита - это осознанное свойство fixed window, не баг.
type FixedWindowRateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	timeframe time.Duration
	stopChan  chan struct{}
	stopOnce  sync.Once

	// подменяется в тестах, чтобы не спать по-настоящему
	now func() time.Time
}

// конструктор лимитера: limit запросов на клиента в окне timeframe
// cleanUpInterval > 0 включает фоновую очистку неактивных клиентов
func NewFixedWindowRateLimiter(limit int, timeframe, cleanUpInterval time.Duration) (*FixedWindowRateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if timeframe <= 0 {
		return nil, fmt.Errorf("timeframe must be positive, got %v", timeframe)
	}

	rl := &FixedWindowRateLimiter{
		windows:   make(map[string]*window),
		limit:     limit,
		timeframe: timeframe,
		stopChan:  make(chan struct{}),
		now:       time.Now,
	}

	if cleanUpInterval > 0 {
		go rl.cleanUp(cleanUpInterval)
	}

	return rl, nil
}

// Allow проверяет и инкрементит счётчик клиента.
// true - запрос пропускаем, false - лимит в текущем окне исчерпан.
func (rl *FixedWindowRateLimiter) Allow(identity string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	w, ok := rl.windows[identity]
	// первого запроса или истекшего окна достаточно, чтобы начать новое окно
	if !ok || now.Sub(w.startAt) >= rl.timeframe {
		rl.windows[identity] = &window{count: 1, startAt: now}
		return true
	}

	if w.count >= rl.limit {
		return false
	}

	w.count++
	return true
}

// Remaining возвращает остаток запросов клиента в текущем окне
func (rl *FixedWindowRateLimiter) Remaining(identity string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[identity]
	if !ok || rl.now().Sub(w.startAt) >= rl.timeframe {
		return rl.limit
	}

	if rem := rl.limit - w.count; rem > 0 {
		return rem
	}
	return 0
}

// ResetAt возвращает момент, когда текущее окно клиента закончится
func (rl *FixedWindowRateLimiter) ResetAt(identity string) time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[identity]
	if !ok {
		return rl.now()
	}
	return w.startAt.Add(rl.timeframe)
}

// Stop останавливает фоновую очистку
func (rl *FixedWindowRateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopChan)
	})
}

// фоновая очистка окон, которые давно истекли (иначе мапа растёт бесконечно)
func (rl *FixedWindowRateLimiter) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for identity, w := range rl.windows {
				if now.Sub(w.startAt) >= rl.timeframe {
					delete(rl.windows, identity)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopChan:
			return
		}
	}
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ search_interfaces.RateLimiter = (*FixedWindowRateLimiter)(nil)
