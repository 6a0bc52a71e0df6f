package service

import (
	"context"

	"jobapi/internal/domain/models"
	"jobapi/internal/scrapers_manager"
)

// интерфейс сервисного слоя поиска (хэндлеры зависят только от него)
type JobServiceInterface interface {
	SearchJobs(ctx context.Context, params models.SearchParams) (models.SearchOutcome, error)
	StopServices()
}

// структура поискового сервиса
type JobService struct {
	scrapersManager *scrapers_manager.ScrapersManager
}

// конструктор поискового сервиса
func NewJobService(scrapersManager *scrapers_manager.ScrapersManager) *JobService {
	return &JobService{
		scrapersManager: scrapersManager,
	}
}

// метод сервисного слоя для мульти-поиска вакансий
func (s *JobService) SearchJobs(ctx context.Context, params models.SearchParams) (models.SearchOutcome, error) {
	outcome, err := s.scrapersManager.SearchJobs(ctx, params)
	if err != nil {
		return outcome, err
	}

	// возвращаем пустой слайс, а не nil - дальше будет конвертация в JSON
	if outcome.Jobs == nil {
		outcome.Jobs = []models.JobPost{}
	}

	return outcome, nil
}

// метод для остановки ресурсов поиска
func (s *JobService) StopServices() {
	s.scrapersManager.Shutdown()
}
