package normalizer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"vacstat/internal/config"
	"vacstat/internal/models"
	"vacstat/internal/source"
)

// yearPrefixLen is the number of leading characters of published_at holding the year.
const yearPrefixLen = 4

var two = decimal.NewFromInt(2)

// Transformer converts validated rows into vacancies.
type Transformer struct {
	columns config.ColumnsConfig
}

// NewTransformer creates a new transformer instance.
func NewTransformer(columns config.ColumnsConfig) *Transformer {
	return &Transformer{columns: columns}
}

// Transform builds a Vacancy with its salary expressed in the reference currency.
func (t *Transformer) Transform(row source.Row) (models.Vacancy, error) {
	from, err := t.parseSalary(row, t.columns.SalaryFrom)
	if err != nil {
		return models.Vacancy{}, err
	}

	to, err := t.parseSalary(row, t.columns.SalaryTo)
	if err != nil {
		return models.Vacancy{}, err
	}

	code := strings.TrimSpace(row[t.columns.Currency])
	currency := models.Currency(code)

	rate, ok := models.Rate(currency)
	if !ok {
		return models.Vacancy{}, reject(ErrUnknownCurrency, t.columns.Currency, code)
	}

	year, err := t.parseYear(row[t.columns.PublishedAt])
	if err != nil {
		return models.Vacancy{}, err
	}

	return models.Vacancy{
		Title:         row[t.columns.Title],
		Currency:      currency,
		AreaName:      row[t.columns.Area],
		SalaryAverage: AverageSalary(rate, from, to),
		SalaryFrom:    from,
		SalaryTo:      to,
		Year:          year,
	}, nil
}

// AverageSalary returns rate * (from + to) / 2 without rounding.
func AverageSalary(rate decimal.Decimal, from, to int64) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(from + to)).Div(two)
}

// parseSalary accepts any decimal notation and truncates toward zero.
func (t *Transformer) parseSalary(row source.Row, field string) (int64, error) {
	raw := row[field]

	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, reject(ErrMalformedNumber, field, raw)
	}

	return d.IntPart(), nil
}

func (t *Transformer) parseYear(publishedAt string) (int, error) {
	if len(publishedAt) < yearPrefixLen {
		return 0, reject(ErrMalformedDate, t.columns.PublishedAt, publishedAt)
	}

	year, err := strconv.Atoi(publishedAt[:yearPrefixLen])
	if err != nil {
		return 0, reject(ErrMalformedDate, t.columns.PublishedAt, publishedAt)
	}

	return year, nil
}
