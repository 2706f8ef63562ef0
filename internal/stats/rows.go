package stats

import "github.com/shopspring/decimal"

// YearRow is one line of the by-year report.
type YearRow struct {
	Year        int
	Salary      int64
	TitleSalary int64
	Count       int
	TitleCount  int
}

// CityRow pairs the i-th salary entry with the i-th share entry. The two
// cities are independent and usually differ.
type CityRow struct {
	SalaryCity string
	Salary     int64
	ShareCity  string
	Share      decimal.Decimal
}

// YearRows returns one row per year in SalaryByYear order. Years absent from
// the title tables read as 0.
func (t Tables) YearRows() []YearRow {
	rows := make([]YearRow, 0, t.SalaryByYear.Len())

	for _, e := range t.SalaryByYear.Entries() {
		titleSalary, _ := t.TitleSalaryByYear.Get(e.Key)
		count, _ := t.CountByYear.Get(e.Key)
		titleCount, _ := t.TitleCountByYear.Get(e.Key)

		rows = append(rows, YearRow{
			Year:        e.Key,
			Salary:      e.Value,
			TitleSalary: titleSalary,
			Count:       count,
			TitleCount:  titleCount,
		})
	}

	return rows
}

// CityRows zips SalaryByCity and ShareByCity by position, stopping at the shorter table.
func (t Tables) CityRows() []CityRow {
	salaries := t.SalaryByCity.Entries()
	shares := t.ShareByCity.Entries()

	n := min(len(salaries), len(shares))
	rows := make([]CityRow, n)

	for i := 0; i < n; i++ {
		rows[i] = CityRow{
			SalaryCity: salaries[i].Key,
			Salary:     salaries[i].Value,
			ShareCity:  shares[i].Key,
			Share:      shares[i].Value,
		}
	}

	return rows
}
