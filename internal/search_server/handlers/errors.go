package handlers

import (
	"net/http"
	"strings"

	"jobapi/internal/domain/models"
	"jobapi/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondError отправляет клиенту стандартное тело ошибки
func respondError(c *gin.Context, status int, reason, message string) {
	c.JSON(status, gin.H{
		"error":       reason,
		"message":     message,
		"status_code": status,
		"path":        c.Request.URL.Path,
	})
}

// respondValidationError собирает тело 400 ответа из структурной ошибки валидации:
// базовые поля + все заполненные детали (конфликты, невалидные значения, подсказки)
func respondValidationError(c *gin.Context, verr *validation.Error) {
	body := gin.H{
		"error":       verr.Reason,
		"message":     verr.Message,
		"status_code": http.StatusBadRequest,
		"path":        c.Request.URL.Path,
	}

	if verr.Suggestion != "" {
		body["suggestion"] = verr.Suggestion
	}
	if len(verr.ConflictingParameters) > 0 {
		body["conflicting_parameters"] = verr.ConflictingParameters
	}
	if len(verr.InvalidValues) > 0 {
		body["invalid_values"] = verr.InvalidValues
	}
	if len(verr.ValidSites) > 0 {
		body["valid_sites"] = verr.ValidSites
	}
	if len(verr.Suggestions) > 0 {
		body["suggestions"] = verr.Suggestions
	}

	c.JSON(http.StatusBadRequest, body)
}

// upstreamSuggestion подбирает подсказку по текстам ошибок источников:
// типовые причины отказов внешних площадок переводим в понятный клиенту совет
func upstreamSuggestion(siteErrors []models.SiteError) string {
	all := make([]string, 0, len(siteErrors))
	for _, se := range siteErrors {
		all = append(all, strings.ToLower(se.Message))
	}
	joined := strings.Join(all, " ")

	switch {
	case strings.Contains(joined, "timeout") || strings.Contains(joined, "deadline"):
		return "Job sites are responding slowly, try again with fewer sites or a smaller results_wanted value"
	case strings.Contains(joined, "429") || strings.Contains(joined, "too many"):
		return "Job sites are rate limiting requests, wait a while before retrying"
	case strings.Contains(joined, "blocked") || strings.Contains(joined, "captcha") || strings.Contains(joined, "403"):
		return "Job sites may be blocking automated requests, try again later"
	default:
		return "All requested job sites failed, check site availability and try again later"
	}
}
