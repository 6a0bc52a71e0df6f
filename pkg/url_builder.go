package pkg

import (
	"net/url"
	"strconv"
)

// BuildPageURL собирает ссылку на страницу выдачи на основе исходного запроса:
// путь и все query-параметры сохраняются, page подменяется
func BuildPageURL(requestURL *url.URL, page int) string {
	u := *requestURL

	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("paginate", "true")
	u.RawQuery = query.Encode()

	return u.String()
}
