package formatter

import (
	"testing"
)

func TestColumnWidths(t *testing.T) {
	rows := [][]string{
		{"Год", "Средняя зарплата"},
		{"2022", "45995"},
		{"2021", "1", "extra"},
	}

	got := ColumnWidths(rows)
	want := []int{4, 16, 5}

	if len(got) != len(want) {
		t.Fatalf("ColumnWidths = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnWidths[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestColumnWidths_WideRunes(t *testing.T) {
	got := ColumnWidths([][]string{{"消防處"}})
	if got[0] != 6 {
		t.Errorf("ColumnWidths CJK = %d, want 6", got[0])
	}
}

func TestYearHeaders(t *testing.T) {
	h := YearHeaders("Go")
	if len(h) != 5 || h[2] != "Средняя зарплата - Go" || h[4] != "Количество вакансий - Go" {
		t.Errorf("YearHeaders = %v", h)
	}
}

func TestYearRows(t *testing.T) {
	rows := YearRows(sampleTables())

	if len(rows) != 2 {
		t.Fatalf("YearRows returned %d rows, want 2", len(rows))
	}

	want := []string{"2021", "1000", "0", "1", "0"}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Errorf("rows[1][%d] = %s, want %s", i, rows[1][i], want[i])
		}
	}
}

func TestMarkdownTable(t *testing.T) {
	got := MarkdownTable([]string{"Год", "N"}, [][]string{{"2022", "12"}})

	want := "| Год  | N   |\n" +
		"| ---- | --- |\n" +
		"| 2022 | 12  |\n"

	if got != want {
		t.Errorf("MarkdownTable =\n%s\nwant\n%s", got, want)
	}
}
