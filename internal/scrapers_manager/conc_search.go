package scrapers_manager

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"jobapi/internal/domain/models"
	"jobapi/internal/search_interfaces"
)

// concurrentSearchWithTimeout выполняет поиск во всех запрошенных источниках одновременно.
// На каждый источник - своя горутина и свой таймаут, чтобы один медленный
// источник не растягивал весь запрос.
func (sm *ScrapersManager) concurrentSearchWithTimeout(ctx context.Context, params models.SearchParams) []models.SiteSearchResult {
	var wg sync.WaitGroup
	results := make(chan models.SiteSearchResult, len(params.Sites))

	for _, site := range params.Sites {
		scraper, ok := sm.scrapers[site]
		if !ok {
			// валидация должна была это отсечь, но реестр - не её зона ответственности
			results <- models.SiteSearchResult{
				Site: site,
				Err:  fmt.Errorf("no scraper registered for site %s", site),
			}
			continue
		}

		wg.Add(1)
		go func(s search_interfaces.Scraper) {
			defer wg.Done()

			// отдельный таймаут на источник поверх контекста запроса
			siteCtx, cancel := context.WithTimeout(ctx, sm.siteTimeout)
			defer cancel()

			start := time.Now()
			jobs, err := s.SearchJobs(siteCtx, params)
			duration := time.Since(start)

			// метрики по каждому источнику
			status := "ok"
			if err != nil {
				status = "error"
			}
			sm.metrics.ScrapeRequestsTotal.WithLabelValues(s.GetName(), status).Inc()
			sm.metrics.ScrapeRequestDuration.WithLabelValues(s.GetName()).Observe(duration.Seconds())

			results <- models.SiteSearchResult{
				Site:     s.GetName(),
				Jobs:     jobs,
				Err:      err,
				Duration: duration,
			}
		}(scraper)
	}

	// в этой горутине дожидаемся окончания обработки от всех источников и закрываем канал результатов
	go func() {
		wg.Wait()
		close(results)
	}()

	var siteResults []models.SiteSearchResult
	for result := range results {
		siteResults = append(siteResults, result)
	}

	// горутины финишируют в произвольном порядке - возвращаем детерминированный
	sort.Slice(siteResults, func(i, j int) bool {
		return siteResults[i].Site < siteResults[j].Site
	})

	return siteResults
}
