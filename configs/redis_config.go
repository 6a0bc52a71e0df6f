package configs

import (
	"time"

	"github.com/go-redis/redis/v8"
)

// структура конфига подключения к Redis (используется при Backend == redis)
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// функция, которая возвращает указатель на дэфолтный конфиг Redis
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:        "localhost:6379",
		Password:    "",
		DB:          0,
		DialTimeout: 5 * time.Second,
		ReadTimeout: 3 * time.Second,
	}
}

// метод преобразования нашего конфига в опции клиента redis
func (c *RedisConfig) ToRedisOptions() *redis.Options {
	return &redis.Options{
		Addr:        c.Addr,
		Password:    c.Password,
		DB:          c.DB,
		DialTimeout: c.DialTimeout,
		ReadTimeout: c.ReadTimeout,
	}
}
