// Package report writes the two-sheet vacancy statistics workbook.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vacstat/internal/formatter"
	"vacstat/internal/stats"
)

const (
	defaultSheet = "Sheet1"

	// percentFormat is the built-in "0.00%" number format.
	percentFormat = 10

	// Header labels in the year sheet are measured with one space of padding,
	// then every column gets two more characters.
	yearLabelPad  = 1
	columnPadding = 2

	// reportMode applies to new reports; an existing report keeps its mode.
	reportMode os.FileMode = 0644
)

// ErrWriteReport wraps every failure to produce the workbook.
var ErrWriteReport = errors.New("failed to write report")

// Options names the workbook pieces.
type Options struct {
	// Title is the profession filter shown in the year sheet headers.
	Title     string
	YearSheet string
	CitySheet string
	// RunID is stored as the workbook identifier property.
	RunID string
}

// CityHeaders are the column titles of the city sheet; column C is a spacer.
var CityHeaders = []string{"Город", "Уровень зарплат", "", "Город", "Доля вакансий"}

type styles struct {
	header  int
	bold    int
	cell    int
	percent int
}

// Write renders t into an xlsx file at path, replacing any existing file.
// The workbook is written to a temporary file first, so path is either
// fully written or left untouched.
func Write(path string, opts Options, t stats.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	if err := f.SetSheetName(defaultSheet, opts.YearSheet); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	if err := writeYearSheet(f, opts, st, t); err != nil {
		return fmt.Errorf("%w: year sheet: %w", ErrWriteReport, err)
	}

	if _, err := f.NewSheet(opts.CitySheet); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	if err := writeCitySheet(f, opts, st, t); err != nil {
		return fmt.Errorf("%w: city sheet: %w", ErrWriteReport, err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:    "vacstat",
		Title:      "Vacancy statistics - " + opts.Title,
		Identifier: opts.RunID,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	if err := save(f, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var (
		st  styles
		err error
	)

	if st.header, err = f.NewStyle(&excelize.Style{Border: border, Font: &excelize.Font{Bold: true}}); err != nil {
		return st, err
	}

	if st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, err
	}

	if st.cell, err = f.NewStyle(&excelize.Style{Border: border}); err != nil {
		return st, err
	}

	if st.percent, err = f.NewStyle(&excelize.Style{Border: border, NumFmt: percentFormat}); err != nil {
		return st, err
	}

	return st, nil
}

func writeYearSheet(f *excelize.File, opts Options, st styles, t stats.Tables) error {
	sheet := opts.YearSheet
	headers := formatter.YearHeaders(opts.Title)

	if err := setRow(f, sheet, 1, toCells(headers)); err != nil {
		return err
	}

	rows := t.YearRows()
	for i, r := range rows {
		cells := []any{r.Year, r.Salary, r.TitleSalary, r.Count, r.TitleCount}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := styleRange(f, sheet, 1, 1, 1, len(headers), st.header); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err := styleRange(f, sheet, 2, len(rows)+1, 1, len(headers), st.cell); err != nil {
			return err
		}
	}

	widths := formatter.ColumnWidths([][]string{headers})
	for i := range widths {
		widths[i] += yearLabelPad
	}

	return setWidths(f, sheet, widths)
}

func writeCitySheet(f *excelize.File, opts Options, st styles, t stats.Tables) error {
	sheet := opts.CitySheet

	if err := setRow(f, sheet, 1, toCells(CityHeaders)); err != nil {
		return err
	}

	text := [][]string{CityHeaders}

	rows := t.CityRows()
	for i, r := range rows {
		cells := []any{r.SalaryCity, r.Salary, nil, r.ShareCity, r.Share.InexactFloat64()}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}

		text = append(text, []string{
			r.SalaryCity,
			fmt.Sprint(r.Salary),
			"",
			r.ShareCity,
			formatter.FormatShare(r.Share),
		})
	}

	last := len(rows) + 1

	// A:B and D:E are bordered, C only carries the bold header font.
	if err := styleRange(f, sheet, 1, 1, 1, 2, st.header); err != nil {
		return err
	}

	if err := styleRange(f, sheet, 1, 1, 3, 3, st.bold); err != nil {
		return err
	}

	if err := styleRange(f, sheet, 1, 1, 4, 5, st.header); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err := styleRange(f, sheet, 2, last, 1, 2, st.cell); err != nil {
			return err
		}

		if err := styleRange(f, sheet, 2, last, 4, 4, st.cell); err != nil {
			return err
		}

		if err := styleRange(f, sheet, 2, last, 5, 5, st.percent); err != nil {
			return err
		}
	}

	return setWidths(f, sheet, formatter.ColumnWidths(text))
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return cells
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return f.SetSheetRow(sheet, cell, &cells)
}

func styleRange(f *excelize.File, sheet string, fromRow, toRow, fromCol, toCol, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}

	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}

	return f.SetCellStyle(sheet, from, to, style)
}

func setWidths(f *excelize.File, sheet string, widths []int) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(sheet, col, col, float64(w+columnPadding)); err != nil {
			return err
		}
	}

	return nil
}

func save(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	mode := reportMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set report permissions: %w", err)
	}

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}
