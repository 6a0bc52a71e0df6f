package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobapi/configs"
	"jobapi/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScraperConfig(baseURL string) *configs.ScraperConfig {
	cfg := configs.DefaultScraperConfig()
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	return cfg
}

// проверяем формирование URL запроса к скрейпер-сервису
func TestRemoteScraperBuildURL(t *testing.T) {
	t.Run("базовые параметры попадают в query", func(t *testing.T) {
		s, err := NewRemoteScraper("google", testScraperConfig("http://scraper:9100"))
		require.NoError(t, err)

		remote := true
		u, err := s.buildURL(models.SearchParams{
			SearchTerm:    "golang developer",
			Location:      "Berlin",
			Distance:      25,
			ResultsWanted: 10,
			IsRemote:      &remote,
		})
		require.NoError(t, err)

		assert.Contains(t, u, "http://scraper:9100/scrape/google?")
		assert.Contains(t, u, "search_term=golang+developer")
		assert.Contains(t, u, "location=Berlin")
		assert.Contains(t, u, "distance=25")
		assert.Contains(t, u, "results_wanted=10")
		assert.Contains(t, u, "is_remote=true")
	})

	// страна передаётся только источникам, которые её понимают
	t.Run("country уходит только indeed и glassdoor", func(t *testing.T) {
		params := models.SearchParams{SearchTerm: "qa", CountryIndeed: "Germany"}

		indeed, err := NewRemoteScraper("indeed", testScraperConfig("http://scraper:9100"))
		require.NoError(t, err)
		u, err := indeed.buildURL(params)
		require.NoError(t, err)
		assert.Contains(t, u, "country=Germany")

		google, err := NewRemoteScraper("google", testScraperConfig("http://scraper:9100"))
		require.NoError(t, err)
		u, err = google.buildURL(params)
		require.NoError(t, err)
		assert.NotContains(t, u, "country=")
	})

	t.Run("linkedin-специфика", func(t *testing.T) {
		s, err := NewRemoteScraper("linkedin", testScraperConfig("http://scraper:9100"))
		require.NoError(t, err)

		u, err := s.buildURL(models.SearchParams{
			SearchTerm:        "devops",
			LinkedInFetchDesc: true,
			LinkedInCompanies: []int{11, 42},
		})
		require.NoError(t, err)

		assert.Contains(t, u, "fetch_description=true")
		assert.Contains(t, u, "company_ids=11%2C42")
	})
}

// проверяем полный цикл запрос-ответ через httptest сервер
func TestRemoteScraperSearchJobs(t *testing.T) {
	t.Run("успешный ответ разбирается в доменную модель", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/scrape/indeed", r.URL.Path)
			assert.Equal(t, "tester", r.URL.Query().Get("search_term"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"jobs":[
				{"id":"j1","title":"QA Engineer","company":"Acme","job_url":"https://example.com/j1","city":"Berlin","country":"Germany"},
				{"id":"j2","site":"indeed","title":"SDET","company":"Globex","job_url":"https://example.com/j2"}
			]}`))
		}))
		defer srv.Close()

		s, err := NewRemoteScraper("indeed", testScraperConfig(srv.URL))
		require.NoError(t, err)

		jobs, err := s.SearchJobs(context.Background(), models.SearchParams{SearchTerm: "tester"})
		require.NoError(t, err)
		require.Len(t, jobs, 2)

		// инвариант: site заполнен, даже если сервис его не прислал
		assert.Equal(t, "indeed", jobs[0].Site)
		assert.Equal(t, "indeed", jobs[1].Site)
		assert.Equal(t, "QA Engineer", jobs[0].Title)
	})

	t.Run("не-200 статус превращается в ошибку", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		s, err := NewRemoteScraper("indeed", testScraperConfig(srv.URL))
		require.NoError(t, err)

		_, err = s.SearchJobs(context.Background(), models.SearchParams{SearchTerm: "tester"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 502")
	})

	t.Run("битый JSON превращается в ошибку", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jobs": [`))
		}))
		defer srv.Close()

		s, err := NewRemoteScraper("indeed", testScraperConfig(srv.URL))
		require.NoError(t, err)

		_, err = s.SearchJobs(context.Background(), models.SearchParams{SearchTerm: "tester"})
		assert.Error(t, err)
	})

	// отмена контекста должна прерывать запрос
	t.Run("отмена контекста", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		s, err := NewRemoteScraper("indeed", testScraperConfig(srv.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = s.SearchJobs(ctx, models.SearchParams{SearchTerm: "tester"})
		assert.Error(t, err)
	})
}

// проверяем, что реестр создаёт клиента на каждый поддерживаемый источник
func TestRegistry(t *testing.T) {
	scrapers, err := Registry(configs.DefaultScraperConfig())
	require.NoError(t, err)

	require.Len(t, scrapers, 7)
	for _, site := range []string{"indeed", "linkedin", "zip_recruiter", "glassdoor", "google", "bayt", "naukri"} {
		s, ok := scrapers[site]
		require.True(t, ok, "missing scraper for %s", site)
		assert.Equal(t, site, s.GetName())
	}
}
