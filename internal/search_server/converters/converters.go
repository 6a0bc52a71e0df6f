package converters

import (
	"strings"

	"jobapi/configs"
	"jobapi/internal/domain/models"
	"jobapi/internal/search_server/dto"
	"jobapi/internal/validation"
)

// SearchRequestToParams превращает DTO запроса в доменные параметры поиска:
// нормализует список источников, подставляет дефолты из конфига и валидирует итог.
// Ошибка валидации возвращается структурной - хэндлер соберёт из неё тело 400.
func SearchRequestToParams(req dto.SearchRequest, searchCfg *configs.SearchConfig) (models.SearchParams, *validation.Error) {
	// нормализация источников ("all", регистр, дубликаты, дефолтный список)
	sites, verr := validation.NormalizeSites(req.SiteName, searchCfg.DefaultSites)
	if verr != nil {
		return models.SearchParams{}, verr
	}

	params := models.SearchParams{
		Sites:             sites,
		SearchTerm:        strings.TrimSpace(req.SearchTerm),
		GoogleSearchTerm:  strings.TrimSpace(req.GoogleSearchTerm),
		Location:          strings.TrimSpace(req.Location),
		JobType:           strings.ToLower(strings.TrimSpace(req.JobType)),
		IsRemote:          req.IsRemote,
		HoursOld:          req.HoursOld,
		EasyApply:         req.EasyApply,
		DescriptionFormat: strings.ToLower(strings.TrimSpace(req.DescriptionFormat)),
		Verbose:           req.Verbose,
		CountryIndeed:     strings.TrimSpace(req.CountryIndeed),
		LinkedInFetchDesc: req.LinkedInFetchDescription,
		LinkedInCompanies: req.LinkedInCompanyIDs,
	}

	// дефолты для не указанных клиентом значений
	if req.Distance != nil {
		params.Distance = *req.Distance
	} else {
		params.Distance = searchCfg.DefaultDistance
	}

	if req.ResultsWanted != nil {
		params.ResultsWanted = *req.ResultsWanted
	} else {
		params.ResultsWanted = searchCfg.DefaultResultsWanted
	}

	if req.Offset != nil {
		params.Offset = *req.Offset
	}

	if params.DescriptionFormat == "" {
		params.DescriptionFormat = searchCfg.DefaultDescriptionFormat
	}

	if params.CountryIndeed == "" {
		params.CountryIndeed = searchCfg.DefaultCountryIndeed
	}

	// итоговая проверка нормализованных параметров
	if verr := validation.ValidateParams(params); verr != nil {
		return models.SearchParams{}, verr
	}

	return params, nil
}
