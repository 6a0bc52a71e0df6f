package scrapers_manager

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobapi/internal/domain/models"
)

// ErrAllSitesFailed возвращается, когда ни один из запрошенных источников не ответил успехом
var ErrAllSitesFailed = errors.New("all requested sites failed")

// SearchJobs - главный метод мульти-поиска.
// Сначала смотрим в кэш по каноническому ключу, при промахе опрашиваем
// источники конкурентно и складываем объединённый результат обратно в кэш.
// Ошибка отдельного источника не прерывает запрос: она копится в SiteErrors.
func (sm *ScrapersManager) SearchJobs(ctx context.Context, params models.SearchParams) (models.SearchOutcome, error) {
	searchHash, err := genHashFromSearchParams(params)
	if err != nil {
		return models.SearchOutcome{}, err
	}

	// --- проверка кэша ---
	if sm.cacheEnabled {
		if cached, ok := sm.searchCache.GetItem(searchHash); ok {
			jobs, ok := cached.([]models.JobPost)
			if ok {
				sm.metrics.CacheHitsTotal.Inc()
				log.Printf("returning cached results with %d jobs", len(jobs))
				return models.SearchOutcome{Jobs: jobs, Cached: true}, nil
			}
			// неожиданный тип - выбрасываем запись и идём искать заново
			sm.searchCache.DeleteItem(searchHash)
		}
		sm.metrics.CacheMissesTotal.Inc()
	}

	// --- конкурентный опрос источников ---
	siteResults := sm.concurrentSearchWithTimeout(ctx, params)

	outcome := sm.mergeResults(siteResults)

	// если отвалились все источники - это уже ошибка запроса целиком
	if len(outcome.Jobs) == 0 && len(outcome.SiteErrors) == len(params.Sites) && len(params.Sites) > 0 {
		return outcome, fmt.Errorf("%w: %d of %d", ErrAllSitesFailed, len(outcome.SiteErrors), len(params.Sites))
	}

	// --- сохранение в кэш ---
	// кэшируем только объединённые вакансии: ошибки источников - вещь сиюминутная
	if sm.cacheEnabled {
		sm.searchCache.AddItemWithTTL(searchHash, outcome.Jobs, sm.cacheTTL)
	}

	return outcome, nil
}

// mergeResults объединяет пер-источниковые результаты в единый ответ
// порядок объединения следует порядку запрошенных источников, внутри источника - как отдал скрейпер
func (sm *ScrapersManager) mergeResults(siteResults []models.SiteSearchResult) models.SearchOutcome {
	var outcome models.SearchOutcome

	for _, res := range siteResults {
		if res.Err != nil {
			log.Printf("site %s failed after %v: %v", res.Site, res.Duration, res.Err)
			outcome.SiteErrors = append(outcome.SiteErrors, models.SiteError{
				Site:    res.Site,
				Message: res.Err.Error(),
			})
			continue
		}
		outcome.Jobs = append(outcome.Jobs, res.Jobs...)
	}

	return outcome
}
