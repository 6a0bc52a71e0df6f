package search_interfaces

import "time"

// RateLimiter - абстракция лимитера запросов по идентификатору клиента
type RateLimiter interface {
	Allow(identity string) bool
	Remaining(identity string) int
	ResetAt(identity string) time.Time
	Stop()
}
