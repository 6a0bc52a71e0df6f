package search_server

import (
	"context"
	"log"
	"net/http"

	"jobapi/configs"
	"jobapi/internal/metrics"
	"jobapi/internal/search_interfaces"
	"jobapi/internal/search_server/handlers"
	"jobapi/internal/search_server/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// структура сервера поиска вакансий
type JobSearchServer struct {
	httpServer    *http.Server
	router        *gin.Engine
	config        *configs.AppConfig
	searchHandler *handlers.SearchHandler
	healthHandler *handlers.HealthHandler
	limiter       search_interfaces.RateLimiter
	metrics       *metrics.Metrics
	routesSet     bool
}

// Конструктор для сервера
func NewJobSearchServer(
	config *configs.AppConfig,
	searchHandler *handlers.SearchHandler,
	healthHandler *handlers.HealthHandler,
	limiter search_interfaces.RateLimiter,
	m *metrics.Metrics,
) (*JobSearchServer, error) {
	if config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// создаём экземпляр роутера
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	// общие middleware на все маршруты
	router.Use(middleware.RequestLogger(m))
	router.Use(middleware.CORSMiddleware())

	return &JobSearchServer{
		router:        router,
		config:        config,
		searchHandler: searchHandler,
		healthHandler: healthHandler,
		limiter:       limiter,
		metrics:       m,
	}, nil
}

// Метод для маршрутизации сервера
func (s *JobSearchServer) SetUpRoutes() {
	// повторная регистрация маршрутов роняет gin
	if s.routesSet {
		return
	}
	s.routesSet = true

	// аутентификация и лимитер закрывают только API,
	// служебные эндпоинты остаются публичными
	api := s.router.Group("/api/v1")
	api.Use(middleware.APIKeyAuth(s.config.Auth, s.metrics))
	api.Use(middleware.RateLimit(s.config.RateLimit, s.limiter, s.metrics))
	{
		api.GET("/search_jobs", s.searchHandler.SearchJobsGet)   // поиск вакансий, параметры в query string
		api.POST("/search_jobs", s.searchHandler.SearchJobsPost) // тот же поиск, параметры в JSON теле
	}

	// служебные эндпоинты можно выключить конфигом целиком
	if s.config.Server.EnableHealthEndpoints {
		s.router.GET("/health", s.healthHandler.Health)
		s.router.GET("/ping", s.healthHandler.Ping)
		s.router.GET("/auth-status", s.healthHandler.AuthStatus)
		s.router.GET("/api-config", s.healthHandler.APIConfig)
		s.router.GET("/config-sources", s.healthHandler.ConfigSources)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Метод для запуска сервера
func (s *JobSearchServer) Run() error {
	s.SetUpRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.Addr(),
		Handler:        s.router,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	log.Printf("Server is running on %s", s.config.Server.Addr())
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *JobSearchServer) Shutdown(ctx context.Context) error {

	// Останавливаем HTTP сервер
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server shutdown completed")
	return nil
}

// Router отдаёт собранный роутер (нужно для httptest)
func (s *JobSearchServer) Router() *gin.Engine {
	s.SetUpRoutes()
	return s.router
}
