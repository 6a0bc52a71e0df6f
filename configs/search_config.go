package configs

// структура конфига дефолтных параметров поиска
// эти значения подставляются в запрос, если клиент их не указал
type SearchConfig struct {
	DefaultSites             []string `yaml:"default_sites"`
	DefaultResultsWanted     int      `yaml:"default_results_wanted"`
	DefaultDistance          int      `yaml:"default_distance"`
	DefaultDescriptionFormat string   `yaml:"default_description_format"`
	DefaultCountryIndeed     string   `yaml:"default_country_indeed"`
	DefaultPageSize          int      `yaml:"default_page_size"`
}

// функция, которая возвращает указатель на дэфолтный конфиг поиска
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		DefaultSites:             []string{"indeed", "linkedin", "zip_recruiter", "glassdoor", "google", "bayt", "naukri"},
		DefaultResultsWanted:     20,
		DefaultDistance:          50,
		DefaultDescriptionFormat: "markdown",
		DefaultCountryIndeed:     "",
		DefaultPageSize:          10,
	}
}
