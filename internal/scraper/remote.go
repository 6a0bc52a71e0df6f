package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jobapi/configs"
	"jobapi/internal/domain/models"
	"jobapi/internal/search_interfaces"
)

// RemoteScraper - клиент внешнего скрейпер-сервиса для одного источника.
// Сервис-коллаборатор для нас непрозрачен: строим URL с параметрами поиска,
// забираем JSON со списком вакансий, приводим к доменной модели.
type RemoteScraper struct {
	name    string
	baseURL string
	client  *http.Client
}

// структура ответа скрейпер-сервиса
type scrapeResponse struct {
	Jobs []models.JobPost `json:"jobs"`
}

// конструктор клиента скрейпера для источника name
func NewRemoteScraper(name string, cfg *configs.ScraperConfig) (*RemoteScraper, error) {
	if name == "" {
		return nil, fmt.Errorf("scraper name must not be empty")
	}
	if cfg == nil {
		cfg = configs.DefaultScraperConfig()
	}

	// свой транспорт, чтобы держать разумный пул соединений к коллаборатору
	transport := &http.Transport{
		MaxIdleConns:    cfg.MaxIdleConns,
		IdleConnTimeout: cfg.IdleConnTimeout,
	}

	return &RemoteScraper{
		name:    name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}, nil
}

// метод получения имени источника
func (s *RemoteScraper) GetName() string {
	return s.name
}

// SearchJobs выполняет запрос вакансий у внешнего сервиса для своего источника
func (s *RemoteScraper) SearchJobs(ctx context.Context, params models.SearchParams) ([]models.JobPost, error) {
	reqURL, err := s.buildURL(params)
	if err != nil {
		return nil, fmt.Errorf("[%s] build url failed: %w", s.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("[%s] create request failed: %w", s.name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[%s] request failed: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[%s] unexpected status %d", s.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("[%s] read response body failed: %w", s.name, err)
	}

	parsed, err := s.parseResponse(body)
	if err != nil {
		return nil, err
	}

	return s.normalize(parsed), nil
}

// buildURL строит URL запроса к скрейпер-сервису
// передаём только тот поднабор параметров, который имеет смысл для данного источника
func (s *RemoteScraper) buildURL(params models.SearchParams) (string, error) {
	u, err := url.Parse(s.baseURL + "/scrape/" + s.name)
	if err != nil {
		return "", err
	}

	query := u.Query()

	// основные параметры поиска
	if params.SearchTerm != "" {
		query.Set("search_term", params.SearchTerm)
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.Distance > 0 {
		query.Set("distance", strconv.Itoa(params.Distance))
	}

	// количество результатов на источник
	resultsWanted := params.ResultsWanted
	if resultsWanted <= 0 {
		resultsWanted = 20
	}
	query.Set("results_wanted", strconv.Itoa(resultsWanted))

	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.JobType != "" {
		query.Set("job_type", params.JobType)
	}
	if params.IsRemote != nil {
		query.Set("is_remote", strconv.FormatBool(*params.IsRemote))
	}
	if params.HoursOld != nil {
		query.Set("hours_old", strconv.Itoa(*params.HoursOld))
	}
	if params.EasyApply != nil {
		query.Set("easy_apply", strconv.FormatBool(*params.EasyApply))
	}
	if params.DescriptionFormat != "" {
		query.Set("description_format", params.DescriptionFormat)
	}
	if params.Verbose != nil {
		query.Set("verbose", strconv.Itoa(*params.Verbose))
	}

	// специфичные для источников параметры
	switch s.name {
	case "indeed", "glassdoor":
		if params.CountryIndeed != "" {
			query.Set("country", params.CountryIndeed)
		}
	case "google":
		if params.GoogleSearchTerm != "" {
			query.Set("google_search_term", params.GoogleSearchTerm)
		}
	case "linkedin":
		if params.LinkedInFetchDesc {
			query.Set("fetch_description", "true")
		}
		if len(params.LinkedInCompanies) > 0 {
			ids := make([]string, 0, len(params.LinkedInCompanies))
			for _, id := range params.LinkedInCompanies {
				ids = append(ids, strconv.Itoa(id))
			}
			query.Set("company_ids", strings.Join(ids, ","))
		}
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// метод обработки тела ответа скрейпер-сервиса
func (s *RemoteScraper) parseResponse(body []byte) (*scrapeResponse, error) {
	var parsed scrapeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("[%s] parse response body failed: %w", s.name, err)
	}
	return &parsed, nil
}

// normalize гарантирует инвариант доменной модели: поле Site заполнено у каждой вакансии
func (s *RemoteScraper) normalize(parsed *scrapeResponse) []models.JobPost {
	jobs := parsed.Jobs
	for i := range jobs {
		if jobs[i].Site == "" {
			jobs[i].Site = s.name
		}
	}
	return jobs
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ search_interfaces.Scraper = (*RemoteScraper)(nil)
