// Package formatter renders report tables as console text.
package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"vacstat/internal/stats"
)

// Console labels, one per aggregate table, in print order.
const (
	LabelSalaryByYear      = "Динамика уровня зарплат по годам: "
	LabelCountByYear       = "Динамика количества вакансий по годам: "
	LabelTitleSalaryByYear = "Динамика уровня зарплат по годам для выбранной профессии: "
	LabelTitleCountByYear  = "Динамика количества вакансий по годам для выбранной профессии: "
	LabelSalaryByCity      = "Уровень зарплат по городам (в порядке убывания): "
	LabelShareByCity       = "Доля вакансий по городам (в порядке убывания): "
)

// PrintStatistics writes the six labelled table lines to w.
func PrintStatistics(w io.Writer, t stats.Tables) error {
	lines := []string{
		LabelSalaryByYear + formatMap(t.SalaryByYear, yearKey, intValue[int64]),
		LabelCountByYear + formatMap(t.CountByYear, yearKey, intValue[int]),
		LabelTitleSalaryByYear + formatMap(t.TitleSalaryByYear, yearKey, intValue[int64]),
		LabelTitleCountByYear + formatMap(t.TitleCountByYear, yearKey, intValue[int]),
		LabelSalaryByCity + formatMap(t.SalaryByCity, quote, intValue[int64]),
		LabelShareByCity + formatMap(t.ShareByCity, quote, FormatShare),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write statistics: %w", err)
		}
	}

	return nil
}

// formatMap renders m as {k: v, ...} in iteration order.
func formatMap[K comparable, V any](m *stats.OrderedMap[K, V], key func(K) string, value func(V) string) string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(key(e.Key))
		sb.WriteString(": ")
		sb.WriteString(value(e.Value))
	}

	sb.WriteString("}")

	return sb.String()
}

func yearKey(y int) string {
	return strconv.Itoa(y)
}

func intValue[T int | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// FormatShare prints a share the way a float literal reads: 0.25, 1.0.
func FormatShare(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// quote wraps s in single quotes, switching to double quotes when s holds a single quote.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
