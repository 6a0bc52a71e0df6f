package scrapers_manager

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"jobapi/internal/domain/models"
)

// genHashFromSearchParams строит канонический ключ кэша из параметров поиска.
// Параметры к этому моменту уже нормализованы (список источников отсортирован,
// строки приведены к нижнему регистру где это уместно), а порядок полей в JSON
// у фиксированной структуры детерминирован - поэтому одинаковые запросы
// дают одинаковый ключ независимо от порядка параметров в исходном URL.
func genHashFromSearchParams(params models.SearchParams) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal search params for cache key: %w", err)
	}

	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:]), nil
}
