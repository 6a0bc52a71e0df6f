package pkg

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageURL(t *testing.T) {
	t.Run("подмена номера страницы с сохранением остальных параметров", func(t *testing.T) {
		u, err := url.Parse("/api/v1/search_jobs?search_term=golang&page=2&paginate=true")
		require.NoError(t, err)

		got := BuildPageURL(u, 3)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/search_jobs", parsed.Path)
		assert.Equal(t, "3", parsed.Query().Get("page"))
		assert.Equal(t, "golang", parsed.Query().Get("search_term"))
	})

	t.Run("page и paginate добавляются, если их не было", func(t *testing.T) {
		u, err := url.Parse("/api/v1/search_jobs?search_term=golang")
		require.NoError(t, err)

		parsed, err := url.Parse(BuildPageURL(u, 1))
		require.NoError(t, err)
		assert.Equal(t, "1", parsed.Query().Get("page"))
		assert.Equal(t, "true", parsed.Query().Get("paginate"))
	})

	t.Run("исходный url не мутируется", func(t *testing.T) {
		u, err := url.Parse("/api/v1/search_jobs?page=1")
		require.NoError(t, err)

		_ = BuildPageURL(u, 5)
		assert.Equal(t, "1", u.Query().Get("page"))
	})
}
