package scraper

import (
	"fmt"

	"jobapi/configs"
	"jobapi/internal/search_interfaces"
	"jobapi/internal/validation"
)

// Registry создаёт по клиенту скрейпера на каждый поддерживаемый источник
func Registry(cfg *configs.ScraperConfig) (map[string]search_interfaces.Scraper, error) {
	scrapers := make(map[string]search_interfaces.Scraper, len(validation.ValidSites))

	for _, site := range validation.ValidSites {
		s, err := NewRemoteScraper(site, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create scraper for %s: %w", site, err)
		}
		scrapers[site] = s
	}

	return scrapers, nil
}
