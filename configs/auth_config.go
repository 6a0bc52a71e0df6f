package configs

// структура конфига аутентификации по API ключу
type AuthConfig struct {
	Enabled    bool     `yaml:"enabled"`
	APIKeys    []string `yaml:"api_keys"`
	HeaderName string   `yaml:"header_name"`
}

// функция, которая возвращает указатель на дэфолтный конфиг аутентификации
// по умолчанию аутентификация выключена и ключи не заданы
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		Enabled:    false,
		APIKeys:    nil,
		HeaderName: "x-api-key",
	}
}

// метод проверки, что аутентификация реально работает (включена И ключи заданы)
func (c *AuthConfig) Active() bool {
	return c.Enabled && len(c.APIKeys) > 0
}

// метод проверки противоречивой конфигурации: включили auth, но забыли ключи (или наоборот)
func (c *AuthConfig) Inconsistent() bool {
	return (c.Enabled && len(c.APIKeys) == 0) || (!c.Enabled && len(c.APIKeys) > 0)
}
