package dto

import "jobapi/internal/domain/models"

// допустимые форматы выдачи
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// SearchRequest - DTO для входящего запроса поиска вакансий
// одинаково биндится из query-параметров (GET) и из JSON тела (POST)
type SearchRequest struct {
	SiteName         []string `form:"site_name" json:"site_name"`
	SearchTerm       string   `form:"search_term" json:"search_term"`
	GoogleSearchTerm string   `form:"google_search_term" json:"google_search_term"`
	Location         string   `form:"location" json:"location"`
	Distance         *int     `form:"distance" json:"distance"`
	JobType          string   `form:"job_type" json:"job_type"`
	IsRemote         *bool    `form:"is_remote" json:"is_remote"`
	ResultsWanted    *int     `form:"results_wanted" json:"results_wanted"`
	HoursOld         *int     `form:"hours_old" json:"hours_old"`
	EasyApply        *bool    `form:"easy_apply" json:"easy_apply"`

	DescriptionFormat string `form:"description_format" json:"description_format"`
	Verbose           *int   `form:"verbose" json:"verbose"`
	Offset            *int   `form:"offset" json:"offset"`
	CountryIndeed     string `form:"country_indeed" json:"country_indeed"`

	LinkedInFetchDescription bool  `form:"linkedin_fetch_description" json:"linkedin_fetch_description"`
	LinkedInCompanyIDs       []int `form:"linkedin_company_ids" json:"linkedin_company_ids"`

	// постраничная выдача и формат ответа
	Paginate bool   `form:"paginate" json:"paginate"`
	Page     int    `form:"page,default=1" json:"page"`
	PageSize int    `form:"page_size,default=10" json:"page_size"`
	Format   string `form:"format,default=json" json:"format"`
}

// JobResponse - ответ без пагинации
type JobResponse struct {
	Count      int                `json:"count"`
	Jobs       []models.JobPost   `json:"jobs"`
	Cached     bool               `json:"cached"`
	SiteErrors []models.SiteError `json:"site_errors,omitempty"`
}

// PaginatedJobResponse - ответ с постраничной выдачей
type PaginatedJobResponse struct {
	Count        int                `json:"count"`
	TotalPages   int                `json:"total_pages"`
	CurrentPage  int                `json:"current_page"`
	PageSize     int                `json:"page_size"`
	Jobs         []models.JobPost   `json:"jobs"`
	Cached       bool               `json:"cached"`
	NextPage     *string            `json:"next_page"`
	PreviousPage *string            `json:"previous_page"`
	SiteErrors   []models.SiteError `json:"site_errors,omitempty"`
}
