package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"vacstat/internal/stats"
)

// ErrMalformedSheet is returned when a sheet does not have the report layout.
var ErrMalformedSheet = errors.New("malformed report sheet")

// ReadYearSheet reads the by-year sheet of a report back into rows.
func ReadYearSheet(path, sheet string) ([]stats.YearRow, error) {
	rows, err := readRows(path, sheet)
	if err != nil {
		return nil, err
	}

	out := make([]stats.YearRow, 0, len(rows))

	for i, r := range rows {
		if len(r) != 5 {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrMalformedSheet, i+2, len(r))
		}

		var (
			nums [5]int64
			perr error
		)

		for j, cell := range r {
			if nums[j], perr = strconv.ParseInt(cell, 10, 64); perr != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedSheet, i+2, perr)
			}
		}

		out = append(out, stats.YearRow{
			Year:        int(nums[0]),
			Salary:      nums[1],
			TitleSalary: nums[2],
			Count:       int(nums[3]),
			TitleCount:  int(nums[4]),
		})
	}

	return out, nil
}

// ReadCitySheet reads the by-city sheet back into positional rows.
func ReadCitySheet(path, sheet string) ([]stats.CityRow, error) {
	rows, err := readRows(path, sheet)
	if err != nil {
		return nil, err
	}

	out := make([]stats.CityRow, 0, len(rows))

	for i, r := range rows {
		if len(r) != len(CityHeaders) {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrMalformedSheet, i+2, len(r))
		}

		salary, err := strconv.ParseInt(r[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedSheet, i+2, err)
		}

		share, err := decimal.NewFromString(r[4])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedSheet, i+2, err)
		}

		out = append(out, stats.CityRow{
			SalaryCity: r[0],
			Salary:     salary,
			ShareCity:  r[3],
			Share:      share,
		})
	}

	return out, nil
}

// readRows returns the raw cell values of sheet without its header row.
func readRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no header", ErrMalformedSheet, sheet)
	}

	return rows[1:], nil
}
