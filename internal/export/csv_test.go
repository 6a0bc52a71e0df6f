package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"jobapi/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJobsCSV(t *testing.T) {
	remote := true

	jobs := []models.JobPost{
		{
			ID:         "go-1",
			Site:       "indeed",
			Title:      "Go Developer",
			Company:    "Acme",
			JobURL:     "https://example.com/go-1",
			City:       "Berlin",
			Country:    "Germany",
			MinAmount:  60000,
			MaxAmount:  90000,
			Interval:   "yearly",
			Currency:   "EUR",
			DatePosted: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			IsRemote:   &remote,
			Emails:     []string{"hr@acme.example", "jobs@acme.example"},
		},
		{
			ID:      "go-2",
			Site:    "linkedin",
			Title:   "Backend Engineer",
			Company: "Widget, Inc",
			JobURL:  "https://example.com/go-2",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJobsCSV(&buf, jobs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + one row per job")

	header := records[0]
	assert.Equal(t, csvHeader, header)

	// каждая строка обязана совпадать с заголовком по числу колонок
	for _, rec := range records[1:] {
		assert.Len(t, rec, len(header))
	}

	first := records[1]
	assert.Equal(t, "go-1", first[0])
	assert.Equal(t, "indeed", first[1])
	assert.Equal(t, "60000", first[9])
	assert.Equal(t, "2026-08-20", first[13])
	assert.Equal(t, "true", first[15])
	assert.Equal(t, "hr@acme.example;jobs@acme.example", first[20])

	// незаданные опциональные значения выводятся пустыми ячейками
	second := records[2]
	assert.Equal(t, "Widget, Inc", second[3])
	assert.Equal(t, "", second[9])
	assert.Equal(t, "", second[13])
	assert.Equal(t, "", second[15])
}

func TestWriteJobsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJobsCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "only the header")
}
