package search_interfaces

import (
	"context"

	"jobapi/internal/domain/models"
)

// Scraper - интерфейс внешнего коллаборатора-скрейпера для одного источника
// внутренности скрейпинга для нас непрозрачны: отдали параметры - получили вакансии или ошибку
type Scraper interface {
	GetName() string
	SearchJobs(ctx context.Context, params models.SearchParams) ([]models.JobPost, error)
}
