package configs

import "time"

// структура конфига для лимитера запросов (fixed window на клиента)
type RateLimitConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Requests  int           `yaml:"requests"`  // максимум запросов в окне
	Timeframe time.Duration `yaml:"timeframe"` // длина окна
	CleanUp   time.Duration `yaml:"clean_up"`  // интервал фоновой очистки неактивных клиентов
}

// функция, которая возвращает указатель на дэфолтный конфиг лимитера
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:   false,
		Requests:  100,
		Timeframe: time.Hour,
		CleanUp:   5 * time.Minute,
	}
}
