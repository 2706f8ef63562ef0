// Package stats folds vacancies into the year and city report tables.
package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"vacstat/internal/models"
)

// shareScale is the number of decimal places kept for city shares.
const shareScale = 4

// Options controls filtering and ranking.
type Options struct {
	// Title selects vacancies for the title tables by case-sensitive substring.
	Title string
	// MinCityShare drops cities holding a smaller fraction of all vacancies.
	MinCityShare decimal.Decimal
	// TopCities caps both city tables.
	TopCities int
}

// DefaultOptions returns the 1% significance filter and top-10 ranking.
func DefaultOptions(title string) Options {
	return Options{
		Title:        title,
		MinCityShare: decimal.New(1, -2),
		TopCities:    10,
	}
}

// Tables holds the six finalized aggregates.
type Tables struct {
	SalaryByYear      *OrderedMap[int, int64]
	CountByYear       *OrderedMap[int, int]
	TitleSalaryByYear *OrderedMap[int, int64]
	TitleCountByYear  *OrderedMap[int, int]
	SalaryByCity      *OrderedMap[string, int64]
	ShareByCity       *OrderedMap[string, decimal.Decimal]

	// Accepted is the number of vacancies folded in.
	Accepted int
}

type bucket struct {
	sum   decimal.Decimal
	count int
}

func (b *bucket) add(v decimal.Decimal) {
	b.sum = b.sum.Add(v)
	b.count++
}

// average is floor(sum / count).
func (b *bucket) average() int64 {
	return b.sum.Div(decimal.NewFromInt(int64(b.count))).Floor().IntPart()
}

// Aggregator accumulates running per-year and per-city salary sums.
// It keeps no vacancies, so memory grows with distinct years and cities only.
type Aggregator struct {
	opts        Options
	byYear      *OrderedMap[int, *bucket]
	byYearTitle *OrderedMap[int, *bucket]
	byCity      *OrderedMap[string, *bucket]
	total       int
}

// NewAggregator creates an empty aggregator.
func NewAggregator(opts Options) *Aggregator {
	return &Aggregator{
		opts:        opts,
		byYear:      NewOrderedMap[int, *bucket](),
		byYearTitle: NewOrderedMap[int, *bucket](),
		byCity:      NewOrderedMap[string, *bucket](),
	}
}

// Add folds one vacancy into the running totals.
func (a *Aggregator) Add(v models.Vacancy) {
	addTo(a.byYear, v.Year, v.SalaryAverage)

	if strings.Contains(v.Title, a.opts.Title) {
		addTo(a.byYearTitle, v.Year, v.SalaryAverage)
	}

	addTo(a.byCity, v.AreaName, v.SalaryAverage)
	a.total++
}

// Total returns the number of vacancies added so far.
func (a *Aggregator) Total() int {
	return a.total
}

func addTo[K comparable](m *OrderedMap[K, *bucket], k K, v decimal.Decimal) {
	b, ok := m.Get(k)
	if !ok {
		b = &bucket{}
		m.Set(k, b)
	}

	b.add(v)
}

// Tables finalizes the aggregates. It does not reset the aggregator.
func (a *Aggregator) Tables() Tables {
	t := Tables{
		SalaryByYear: averages(a.byYear),
		CountByYear:  counts(a.byYear),
		Accepted:     a.total,
	}

	if a.byYearTitle.Len() == 0 {
		// Nothing matched the title: mirror the year keys with zeros.
		t.TitleSalaryByYear = NewOrderedMap[int, int64]()
		t.TitleCountByYear = NewOrderedMap[int, int]()

		for _, year := range t.SalaryByYear.Keys() {
			t.TitleSalaryByYear.Set(year, 0)
			t.TitleCountByYear.Set(year, 0)
		}
	} else {
		t.TitleSalaryByYear = averages(a.byYearTitle)
		t.TitleCountByYear = counts(a.byYearTitle)
	}

	significant := a.significantCities()

	t.ShareByCity = FromEntries(top(significant, a.opts.TopCities))

	// Salary ranking is keyed on the full significant set, not the truncated share table.
	keep := FromEntries(significant)

	var salaries []Entry[string, int64]

	for _, e := range averages(a.byCity).Entries() {
		if keep.Has(e.Key) {
			salaries = append(salaries, e)
		}
	}

	slices.SortStableFunc(salaries, func(x, y Entry[string, int64]) int {
		return cmp.Compare(y.Value, x.Value)
	})

	t.SalaryByCity = FromEntries(top(salaries, a.opts.TopCities))

	return t
}

// significantCities returns cities at or above MinCityShare, sorted by share descending.
func (a *Aggregator) significantCities() []Entry[string, decimal.Decimal] {
	if a.total == 0 {
		return nil
	}

	total := decimal.NewFromInt(int64(a.total))

	var out []Entry[string, decimal.Decimal]

	for _, e := range a.byCity.Entries() {
		share := decimal.NewFromInt(int64(e.Value.count)).Div(total).RoundBank(shareScale)
		if share.LessThan(a.opts.MinCityShare) {
			continue
		}

		out = append(out, Entry[string, decimal.Decimal]{Key: e.Key, Value: share})
	}

	slices.SortStableFunc(out, func(x, y Entry[string, decimal.Decimal]) int {
		return y.Value.Cmp(x.Value)
	})

	return out
}

func averages[K comparable](m *OrderedMap[K, *bucket]) *OrderedMap[K, int64] {
	out := NewOrderedMap[K, int64]()
	for _, e := range m.Entries() {
		out.Set(e.Key, e.Value.average())
	}

	return out
}

func counts[K comparable](m *OrderedMap[K, *bucket]) *OrderedMap[K, int] {
	out := NewOrderedMap[K, int]()
	for _, e := range m.Entries() {
		out.Set(e.Key, e.Value.count)
	}

	return out
}

func top[E any](entries []E, n int) []E {
	if n >= 0 && len(entries) > n {
		return entries[:n]
	}

	return entries
}
