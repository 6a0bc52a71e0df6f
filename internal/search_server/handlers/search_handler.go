package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"jobapi/configs"
	"jobapi/internal/domain/models"
	"jobapi/internal/export"
	"jobapi/internal/scrapers_manager"
	"jobapi/internal/search_server/converters"
	"jobapi/internal/search_server/dto"
	"jobapi/internal/search_server/service"
	"jobapi/internal/validation"
	"jobapi/pkg"

	"github.com/gin-gonic/gin"
)

// структура хэндлера поиска вакансий
type SearchHandler struct {
	jobService service.JobServiceInterface
	searchCfg  *configs.SearchConfig
}

// конструктор хэндлера поиска
func NewSearchHandler(jobService service.JobServiceInterface, searchCfg *configs.SearchConfig) *SearchHandler {
	return &SearchHandler{
		jobService: jobService,
		searchCfg:  searchCfg,
	}
}

// хэндлер GET запроса поиска: все параметры в query string
func (h *SearchHandler) SearchJobsGet(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	h.handleSearch(c, req)
}

// хэндлер POST запроса поиска: те же параметры в JSON теле
func (h *SearchHandler) SearchJobsPost(c *gin.Context) {
	// JSON биндинг не знает про form-дефолты, задаём их вручную
	req := dto.SearchRequest{
		Page:     1,
		PageSize: h.searchCfg.DefaultPageSize,
		Format:   dto.FormatJSON,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	h.handleSearch(c, req)
}

// общий сценарий поиска для GET и POST вариантов
func (h *SearchHandler) handleSearch(c *gin.Context, req dto.SearchRequest) {
	if req.Format == "" {
		req.Format = dto.FormatJSON
	}
	if req.Format != dto.FormatJSON && req.Format != dto.FormatCSV {
		respondError(c, http.StatusBadRequest, "Invalid format",
			fmt.Sprintf("format must be %q or %q, got %q", dto.FormatJSON, dto.FormatCSV, req.Format))
		return
	}

	// параметры пагинации проверяем до похода в источники
	if req.Paginate {
		if verr := validation.ValidatePagination(req.Page, req.PageSize); verr != nil {
			respondValidationError(c, verr)
			return
		}
	}

	params, verr := converters.SearchRequestToParams(req, h.searchCfg)
	if verr != nil {
		respondValidationError(c, verr)
		return
	}

	outcome, err := h.jobService.SearchJobs(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, scrapers_manager.ErrAllSitesFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":       "All job sites failed",
				"message":     "No job site returned results for this search",
				"status_code": http.StatusInternalServerError,
				"path":        c.Request.URL.Path,
				"site_errors": outcome.SiteErrors,
				"suggestion":  upstreamSuggestion(outcome.SiteErrors),
			})
			return
		}

		log.Printf("search failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error", "Unexpected error while searching for jobs")
		return
	}

	if !req.Paginate {
		h.respond(c, req.Format, dto.JobResponse{
			Count:      len(outcome.Jobs),
			Jobs:       outcome.Jobs,
			Cached:     outcome.Cached,
			SiteErrors: outcome.SiteErrors,
		}, outcome.Jobs)
		return
	}

	h.respondPaginated(c, req, outcome)
}

// собирает постраничный ответ: ceil для числа страниц, 404 за пределами выдачи
func (h *SearchHandler) respondPaginated(c *gin.Context, req dto.SearchRequest, outcome models.SearchOutcome) {
	total := len(outcome.Jobs)

	totalPages := (total + req.PageSize - 1) / req.PageSize
	if totalPages == 0 {
		// пустая выдача - это одна пустая страница, а не ноль страниц
		totalPages = 1
	}

	if req.Page > totalPages {
		respondError(c, http.StatusNotFound, "Page not found",
			fmt.Sprintf("page %d is out of range, the result has %d page(s)", req.Page, totalPages))
		return
	}

	start := (req.Page - 1) * req.PageSize
	end := start + req.PageSize
	if end > total {
		end = total
	}
	pageJobs := outcome.Jobs[start:end]

	var nextPage, prevPage *string
	if req.Page < totalPages {
		u := pkg.BuildPageURL(c.Request.URL, req.Page+1)
		nextPage = &u
	}
	if req.Page > 1 {
		u := pkg.BuildPageURL(c.Request.URL, req.Page-1)
		prevPage = &u
	}

	h.respond(c, req.Format, dto.PaginatedJobResponse{
		Count:        total,
		TotalPages:   totalPages,
		CurrentPage:  req.Page,
		PageSize:     req.PageSize,
		Jobs:         pageJobs,
		Cached:       outcome.Cached,
		NextPage:     nextPage,
		PreviousPage: prevPage,
		SiteErrors:   outcome.SiteErrors,
	}, pageJobs)
}

// отдаёт ответ в запрошенном формате: JSON тело или CSV вложение
func (h *SearchHandler) respond(c *gin.Context, format string, jsonBody interface{}, jobs []models.JobPost) {
	if format == dto.FormatCSV {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="jobs.csv"`)
		c.Status(http.StatusOK)
		if err := export.WriteJobsCSV(c.Writer, jobs); err != nil {
			log.Printf("failed to write csv response: %v", err)
		}
		return
	}

	c.JSON(http.StatusOK, jsonBody)
}
