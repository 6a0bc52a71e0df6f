package configs

import "time"

// структура для конфига HTTP сервера
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	Environment    string        `yaml:"environment"`

	// диагностические эндпоинты можно выключить целиком или оставить без деталей
	EnableHealthEndpoints bool `yaml:"enable_health_endpoints"`
	EnableDetailedHealth  bool `yaml:"enable_detailed_health"`
}

// функция для создания конфига сервера по-дефолту
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:                  "0.0.0.0",
		Port:                  "8000",
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           60 * time.Second,
		MaxHeaderBytes:        1 << 20,
		Environment:           "production",
		EnableHealthEndpoints: true,
		EnableDetailedHealth:  true,
	}
}

// метод конфига сервера для формирования адреса
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
