package configs

import "time"

// структура конфига клиента внешнего скрейпер-сервиса
type ScraperConfig struct {
	BaseURL string        `yaml:"base_url"` // базовый URL сервиса-коллаборатора
	Timeout time.Duration `yaml:"timeout"`  // таймаут на запрос к одному источнику

	// настройки транспорта HTTP клиента
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

// функция, которая возвращает указатель на дэфолтный конфиг скрейпера
func DefaultScraperConfig() *ScraperConfig {
	return &ScraperConfig{
		BaseURL:         "http://localhost:9100",
		Timeout:         30 * time.Second,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}
}
