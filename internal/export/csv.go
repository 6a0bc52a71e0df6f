package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"jobapi/internal/domain/models"
)

// заголовок CSV выдачи - тот же набор полей, что и в JSON ответе
var csvHeader = []string{
	"id", "site", "title", "company", "job_url",
	"city", "state", "country", "description",
	"min_amount", "max_amount", "interval", "currency", "date_posted",
	"job_type", "is_remote", "company_url", "company_industry",
	"company_logo", "job_level", "emails", "easy_apply",
}

// WriteJobsCSV пишет вакансии в формате CSV: строка заголовка + строка на вакансию
func WriteJobsCSV(w io.Writer, jobs []models.JobPost) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, job := range jobs {
		if err := writer.Write(jobToRecord(job)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// jobToRecord раскладывает вакансию в CSV строку в порядке csvHeader
func jobToRecord(job models.JobPost) []string {
	datePosted := ""
	if !job.DatePosted.IsZero() {
		datePosted = job.DatePosted.Format("2006-01-02")
	}

	return []string{
		job.ID,
		job.Site,
		job.Title,
		job.Company,
		job.JobURL,
		job.City,
		job.State,
		job.Country,
		job.Description,
		formatAmount(job.MinAmount),
		formatAmount(job.MaxAmount),
		job.Interval,
		job.Currency,
		datePosted,
		job.JobType,
		formatOptionalBool(job.IsRemote),
		job.CompanyURL,
		job.CompanyIndustry,
		job.CompanyLogo,
		job.JobLevel,
		strings.Join(job.Emails, ";"),
		formatOptionalBool(job.EasyApply),
	}
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// не заданное опциональное значение выводим пустой ячейкой, а не "false"
func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
