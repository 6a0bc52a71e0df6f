package configs

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальная функция загрузки конфига из .yml файла (используем дженерики)
// fn - функция конструктор конфига со значениями по умолчанию
// Если файла нет или путь пустой - молча возвращаем дефолты, это штатная ситуация.
// Ошибкой считается только существующий, но нечитаемый/битый файл.
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// Вызываем переданную функцию-конструктор для создания экземпляра конфигурации.
	// На этом этапе в config будут значения по умолчанию, заданные в конструкторе.
	// Это важно, так как если файл конфигурации отсутствует или пуст,
	// у нас всё равно будет работоспособная конфигурация.
	config := fn()

	// Если configPath == "" (пустая строка), сразу возвращаются дефолтные значения.
	if configPath == "" {
		return config, nil
	}

	// Если файл по указанному пути не существует, возвращаются дефолтные значения БЕЗ ошибки.
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		log.Printf("config file %s not found, using defaults", configPath)
		return config, nil
	}

	// Если файл существует, но его не удалось прочитать или распарсить — возвращается ошибка.
	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return config, err
	}

	// пробуем анмаршалить конфиг из yml файла в структуру нужного типа
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return config, err
	}

	return config, nil
}
