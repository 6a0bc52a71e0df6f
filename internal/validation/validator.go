package validation

import (
	"fmt"
	"sort"
	"strings"

	"jobapi/internal/domain/models"
)

// поддерживаемые источники вакансий
const (
	SiteIndeed       = "indeed"
	SiteLinkedIn     = "linkedin"
	SiteZipRecruiter = "zip_recruiter"
	SiteGlassdoor    = "glassdoor"
	SiteGoogle       = "google"
	SiteBayt         = "bayt"
	SiteNaukri       = "naukri"

	// псевдо-источник: разворачивается во все поддерживаемые
	SiteAll = "all"
)

// ValidSites - полный список поддерживаемых источников (порядок фиксирован для сообщений об ошибках)
var ValidSites = []string{SiteIndeed, SiteLinkedIn, SiteZipRecruiter, SiteGlassdoor, SiteGoogle, SiteBayt, SiteNaukri}

// допустимые значения перечислимых параметров
var (
	ValidJobTypes           = []string{"fulltime", "parttime", "internship", "contract"}
	ValidDescriptionFormats = []string{"markdown", "html"}
)

// страны, которые понимает indeed/glassdoor (параметр country_indeed)
var supportedCountriesIndeed = map[string]bool{
	"Argentina": true, "Australia": true, "Austria": true, "Bahrain": true, "Belgium": true,
	"Brazil": true, "Canada": true, "Chile": true, "China": true, "Colombia": true,
	"Costa Rica": true, "Czech Republic": true, "Denmark": true, "Ecuador": true, "Egypt": true,
	"Finland": true, "France": true, "Germany": true, "Greece": true, "Hong Kong": true,
	"Hungary": true, "India": true, "Indonesia": true, "Ireland": true, "Israel": true,
	"Italy": true, "Japan": true, "Kuwait": true, "Luxembourg": true, "Malaysia": true,
	"Mexico": true, "Morocco": true, "Netherlands": true, "New Zealand": true, "Nigeria": true,
	"Norway": true, "Oman": true, "Pakistan": true, "Panama": true, "Peru": true,
	"Philippines": true, "Poland": true, "Portugal": true, "Qatar": true, "Romania": true,
	"Saudi Arabia": true, "Singapore": true, "South Africa": true, "South Korea": true, "Spain": true,
	"Sweden": true, "Switzerland": true, "Taiwan": true, "Thailand": true, "Turkey": true,
	"Ukraine": true, "United Arab Emirates": true, "UK": true, "USA": true, "Uruguay": true,
	"Venezuela": true, "Vietnam": true,
}

// Suggestion - подсказка по конкретному невалидному параметру для тела ошибки
type Suggestion struct {
	Parameter    string   `json:"parameter"`
	Message      string   `json:"message"`
	ExpectedType string   `json:"expected_type,omitempty"`
	Description  string   `json:"description,omitempty"`
	ValidValues  []string `json:"valid_values,omitempty"`
	Limitation   string   `json:"limitation,omitempty"`
}

// типы параметров для подсказок
var parameterTypes = map[string]string{
	"site_name":          "string or list",
	"job_type":           "string",
	"description_format": "string",
	"distance":           "integer",
	"results_wanted":     "integer",
	"hours_old":          "integer",
	"offset":             "integer",
	"page":               "integer",
	"page_size":          "integer",
	"country_indeed":     "string",
	"verbose":            "integer",
}

// описания параметров для подсказок
var parameterDescriptions = map[string]string{
	"site_name":          "Job sites to search on (e.g., indeed, linkedin)",
	"job_type":           "Type of job (e.g., fulltime, parttime)",
	"description_format": "Format of job description (markdown, html)",
	"distance":           "Distance in miles (default: 50)",
	"results_wanted":     "Number of job results per site",
	"hours_old":          "Filter jobs by hours since posting",
	"offset":             "Offset for pagination",
	"page":               "Page number for paginated results",
	"page_size":          "Number of results per page",
	"country_indeed":     "Country filter for Indeed & Glassdoor",
	"verbose":            "Scraper log verbosity (0 - errors only, 2 - everything)",
}

// известные ограничения параметров
var parameterLimitations = map[string]string{
	"hours_old":  "Cannot be used with job_type, is_remote, or easy_apply for Indeed searches",
	"easy_apply": "Cannot be used with hours_old for LinkedIn and Indeed searches",
	"page_size":  "Must be between 1 and 100",
	"verbose":    "Must be 0, 1 or 2",
}

// валидные значения перечислимых параметров для подсказок
var parameterValidValues = map[string][]string{
	"site_name":          ValidSites,
	"job_type":           ValidJobTypes,
	"description_format": ValidDescriptionFormats,
}

// ParameterSuggestion собирает подсказку по имени параметра
func ParameterSuggestion(param string) Suggestion {
	s := Suggestion{
		Parameter: param,
		Message:   fmt.Sprintf("Invalid value for %s", param),
	}
	if t, ok := parameterTypes[param]; ok {
		s.ExpectedType = t
	}
	if d, ok := parameterDescriptions[param]; ok {
		s.Description = d
	}
	if v, ok := parameterValidValues[param]; ok {
		s.ValidValues = v
	}
	if l, ok := parameterLimitations[param]; ok {
		s.Limitation = l
	}
	return s
}

// Error - структурная ошибка валидации, из которой хэндлер собирает тело 400 ответа
type Error struct {
	Reason                string       // короткое имя ошибки, поле "error" в ответе
	Message               string       // развёрнутое сообщение
	Suggestion            string       // как починить запрос
	ConflictingParameters []string     // для конфликтов взаимоисключающих параметров
	InvalidValues         []string     // какие значения не прошли
	ValidSites            []string     // полный allow-list (только для ошибок site_name)
	Suggestions           []Suggestion // подсказки по каждому невалидному параметру
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return e.Reason
}

// NormalizeSites приводит список источников к каноническому виду:
// трим + lowercase, разворачивает "all", отбрасывает пустые значения.
// Пустой вход заменяется дефолтным списком. Неизвестный источник - ошибка
// со списком валидных значений и подсказкой по каждому невалидному.
func NormalizeSites(sites []string, defaultSites []string) ([]string, *Error) {
	var normalized []string
	for _, s := range sites {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if s == SiteAll {
			// "all" перекрывает всё остальное
			return append([]string{}, ValidSites...), nil
		}
		normalized = append(normalized, s)
	}

	if len(normalized) == 0 {
		return append([]string{}, defaultSites...), nil
	}

	var invalid []string
	for _, s := range normalized {
		if !isValidSite(s) {
			invalid = append(invalid, s)
		}
	}

	if len(invalid) > 0 {
		suggestions := make([]Suggestion, 0, len(invalid))
		for range invalid {
			suggestions = append(suggestions, ParameterSuggestion("site_name"))
		}
		return nil, &Error{
			Reason:        "Invalid job site name(s)",
			InvalidValues: invalid,
			ValidSites:    ValidSites,
			Suggestions:   suggestions,
			Suggestion:    fmt.Sprintf("Use site names from the supported list: %s (or 'all')", strings.Join(ValidSites, ", ")),
		}
	}

	// убираем дубликаты, порядок делаем детерминированным
	seen := make(map[string]bool, len(normalized))
	var unique []string
	for _, s := range normalized {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	sort.Strings(unique)

	return unique, nil
}

func isValidSite(site string) bool {
	for _, s := range ValidSites {
		if s == site {
			return true
		}
	}
	return false
}

func containsSite(sites []string, site string) bool {
	for _, s := range sites {
		if s == site {
			return true
		}
	}
	return false
}

// ValidateParams проверяет уже нормализованные параметры поиска:
// обязательность и валидность country_indeed, взаимоисключающие фильтры
// провайдеров, перечислимые значения и числовые границы.
// Список Sites в params должен быть уже прогнан через NormalizeSites.
func ValidateParams(params models.SearchParams) *Error {
	// --- country_indeed для indeed/glassdoor ---
	if containsSite(params.Sites, SiteIndeed) || containsSite(params.Sites, SiteGlassdoor) {
		if params.CountryIndeed == "" {
			return &Error{
				Reason:     "Missing required parameter",
				Message:    "country_indeed is required when searching Indeed or Glassdoor.",
				Suggestion: "Specify a supported country using the country_indeed parameter. See documentation for valid values.",
				Suggestions: []Suggestion{
					ParameterSuggestion("country_indeed"),
				},
			}
		}
		if !supportedCountriesIndeed[params.CountryIndeed] {
			return &Error{
				Reason:        "Invalid country_indeed value",
				InvalidValues: []string{params.CountryIndeed},
				Suggestion:    "Use one of the supported country names exactly as listed in the documentation.",
				Suggestions: []Suggestion{
					ParameterSuggestion("country_indeed"),
				},
			}
		}
	}

	// --- конфликтующие параметры для indeed ---
	// indeed принимает только одну группу фильтров за запрос:
	// hours_old, (job_type и/или is_remote) или easy_apply
	if containsSite(params.Sites, SiteIndeed) {
		var conflict []string
		hasTypeOrRemote := params.JobType != "" || params.IsRemote != nil

		if params.HoursOld != nil && (hasTypeOrRemote || params.EasyApply != nil) {
			conflict = []string{"hours_old", "job_type/is_remote", "easy_apply"}
		} else if hasTypeOrRemote && params.EasyApply != nil {
			conflict = []string{"job_type/is_remote", "easy_apply"}
		}

		if len(conflict) > 0 {
			return &Error{
				Reason:                "Parameter conflict for Indeed",
				ConflictingParameters: conflict,
				Message:               "Indeed searches only support one of the following at a time: hours_old, (job_type & is_remote), or easy_apply.",
				Suggestion:            "Remove one or more of these parameters so that only one group is used per search. See documentation for details.",
			}
		}
	}

	// --- конфликтующие параметры для linkedin ---
	if containsSite(params.Sites, SiteLinkedIn) {
		if params.HoursOld != nil && params.EasyApply != nil {
			return &Error{
				Reason:                "Parameter conflict for LinkedIn",
				ConflictingParameters: []string{"hours_old", "easy_apply"},
				Message:               "LinkedIn searches only support one of the following at a time: hours_old or easy_apply.",
				Suggestion:            "Remove either hours_old or easy_apply from your search parameters.",
			}
		}
	}

	// --- перечислимые и числовые параметры, ошибки копим в один ответ ---
	var suggestions []Suggestion

	if params.JobType != "" && !contains(ValidJobTypes, params.JobType) {
		suggestions = append(suggestions, ParameterSuggestion("job_type"))
	}
	if params.DescriptionFormat != "" && !contains(ValidDescriptionFormats, params.DescriptionFormat) {
		suggestions = append(suggestions, ParameterSuggestion("description_format"))
	}
	if params.Distance < 0 {
		suggestions = append(suggestions, ParameterSuggestion("distance"))
	}
	if params.ResultsWanted < 1 {
		suggestions = append(suggestions, ParameterSuggestion("results_wanted"))
	}
	if params.Offset < 0 {
		suggestions = append(suggestions, ParameterSuggestion("offset"))
	}
	if params.HoursOld != nil && *params.HoursOld < 1 {
		suggestions = append(suggestions, ParameterSuggestion("hours_old"))
	}
	if params.Verbose != nil && (*params.Verbose < 0 || *params.Verbose > 2) {
		suggestions = append(suggestions, ParameterSuggestion("verbose"))
	}

	if len(suggestions) > 0 {
		return &Error{
			Reason:      "Invalid parameter(s)",
			Suggestions: suggestions,
		}
	}

	return nil
}

// ValidatePagination проверяет параметры постраничной выдачи
func ValidatePagination(page, pageSize int) *Error {
	var suggestions []Suggestion

	if page < 1 {
		suggestions = append(suggestions, ParameterSuggestion("page"))
	}
	if pageSize < 1 || pageSize > 100 {
		suggestions = append(suggestions, ParameterSuggestion("page_size"))
	}

	if len(suggestions) > 0 {
		return &Error{
			Reason:      "Invalid parameter(s)",
			Suggestions: suggestions,
		}
	}

	return nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
