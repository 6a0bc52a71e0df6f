package models

import "time"

// SearchParams - универсальная (доменная) структура параметров поиска вакансий
// сюда складываются уже нормализованные и провалидированные параметры запроса
type SearchParams struct {
	Sites             []string `json:"site_name"`
	SearchTerm        string   `json:"search_term,omitempty"`
	GoogleSearchTerm  string   `json:"google_search_term,omitempty"`
	Location          string   `json:"location,omitempty"`
	Distance          int      `json:"distance,omitempty"`
	JobType           string   `json:"job_type,omitempty"`
	IsRemote          *bool    `json:"is_remote,omitempty"`
	ResultsWanted     int      `json:"results_wanted,omitempty"`
	HoursOld          *int     `json:"hours_old,omitempty"`
	EasyApply         *bool    `json:"easy_apply,omitempty"`
	DescriptionFormat string   `json:"description_format,omitempty"`
	Verbose           *int     `json:"verbose,omitempty"`
	Offset            int      `json:"offset,omitempty"`
	CountryIndeed     string   `json:"country_indeed,omitempty"`
	LinkedInFetchDesc bool     `json:"linkedin_fetch_description,omitempty"`
	LinkedInCompanies []int    `json:"linkedin_company_ids,omitempty"`
}

// JobPost - унифицированная структура вакансии, не зависящая от источника
// базовые поля заполняются для любого источника, опциональные - только если источник их отдал
type JobPost struct {
	// базовые поля (есть всегда)
	ID          string    `json:"id"`
	Site        string    `json:"site"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	JobURL      string    `json:"job_url"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	MinAmount   float64   `json:"min_amount"`
	MaxAmount   float64   `json:"max_amount"`
	Interval    string    `json:"interval"`
	Currency    string    `json:"currency"`
	DatePosted  time.Time `json:"date_posted"`

	// опциональные поля конкретных источников
	JobType         string   `json:"job_type,omitempty"`
	IsRemote        *bool    `json:"is_remote,omitempty"`
	CompanyURL      string   `json:"company_url,omitempty"`
	CompanyIndustry string   `json:"company_industry,omitempty"`
	CompanyLogo     string   `json:"company_logo,omitempty"`
	JobLevel        string   `json:"job_level,omitempty"`
	Emails          []string `json:"emails,omitempty"`
	EasyApply       *bool    `json:"easy_apply,omitempty"`
}

// SiteSearchResult - результат поиска по одному источнику
// ошибка одного источника не прерывает весь запрос, поэтому храним её рядом с данными
type SiteSearchResult struct {
	Site     string
	Jobs     []JobPost
	Err      error
	Duration time.Duration
}

// SearchOutcome - агрегированный результат мульти-поиска
type SearchOutcome struct {
	Jobs       []JobPost
	SiteErrors []SiteError
	Cached     bool
}

// SiteError - описание ошибки конкретного источника для ответа клиенту
type SiteError struct {
	Site    string `json:"site"`
	Message string `json:"message"`
}
