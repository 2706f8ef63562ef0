package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"vacstat/internal/stats"
)

// minColumnWidth keeps markdown separator cells at least "---".
const minColumnWidth = 3

// ColumnWidths returns the widest display width seen in each column.
// Wide (CJK) runes count as two cells.
func ColumnWidths(rows [][]string) []int {
	var widths []int

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// YearHeaders returns the by-year column titles for the given profession.
func YearHeaders(title string) []string {
	return []string{
		"Год",
		"Средняя зарплата",
		"Средняя зарплата - " + title,
		"Количество вакансий",
		"Количество вакансий - " + title,
	}
}

// YearRows renders the by-year rows as text cells.
func YearRows(t stats.Tables) [][]string {
	rows := t.YearRows()
	out := make([][]string, 0, len(rows))

	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Year),
			strconv.FormatInt(r.Salary, 10),
			strconv.FormatInt(r.TitleSalary, 10),
			strconv.Itoa(r.Count),
			strconv.Itoa(r.TitleCount),
		})
	}

	return out
}

// MarkdownTable renders header and rows as an aligned markdown table.
func MarkdownTable(header []string, rows [][]string) string {
	all := append([][]string{header}, rows...)
	widths := ColumnWidths(all)

	for i := range widths {
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(all)+1)
	lines = append(lines, renderRow(header, widths), renderRow(separator, widths))

	for _, row := range rows {
		lines = append(lines, renderRow(row, widths))
	}

	return strings.Join(lines, "\n") + "\n"
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, w := range widths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := w - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
