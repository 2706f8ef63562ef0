package normalizer

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"vacstat/internal/config"
	"vacstat/internal/models"
	"vacstat/internal/source"
)

func testColumns() config.ColumnsConfig {
	return config.Default().Input.Columns
}

func testRow() source.Row {
	return source.Row{
		"name":            "Data Engineer",
		"salary_from":     "1000",
		"salary_to":       "2000",
		"salary_currency": "USD",
		"published_at":    "2022-03-01T10:00:00+0300",
		"area_name":       "Москва",
	}
}

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer(testColumns())
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer(testColumns())

	v, err := tr.Transform(testRow())
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if v.Title != "Data Engineer" {
		t.Errorf("Title = %s, want Data Engineer", v.Title)
	}

	if v.Currency != "USD" {
		t.Errorf("Currency = %s, want USD", v.Currency)
	}

	if v.SalaryFrom != 1000 || v.SalaryTo != 2000 {
		t.Errorf("Salary range = %d-%d, want 1000-2000", v.SalaryFrom, v.SalaryTo)
	}

	if !v.SalaryAverage.Equal(decimal.NewFromInt(90990)) {
		t.Errorf("SalaryAverage = %s, want 90990", v.SalaryAverage)
	}

	if v.Year != 2022 {
		t.Errorf("Year = %d, want 2022", v.Year)
	}

	if v.AreaName != "Москва" {
		t.Errorf("AreaName = %s, want Москва", v.AreaName)
	}
}

func TestTransformer_TruncatesFractionalSalary(t *testing.T) {
	tr := NewTransformer(testColumns())

	row := testRow()
	row["salary_from"] = "999.9"
	row["salary_to"] = "1000.5"
	row["salary_currency"] = "RUR"

	v, err := tr.Transform(row)
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if v.SalaryFrom != 999 || v.SalaryTo != 1000 {
		t.Errorf("Salary range = %d-%d, want 999-1000", v.SalaryFrom, v.SalaryTo)
	}

	if v.SalaryAverage.String() != "999.5" {
		t.Errorf("SalaryAverage = %s, want 999.5", v.SalaryAverage)
	}
}

func TestAverageSalary_LinearInRate(t *testing.T) {
	for _, code := range models.Currencies() {
		t.Run(string(code), func(t *testing.T) {
			rate, _ := models.Rate(code)

			got := AverageSalary(rate, 30000, 50000)
			want := rate.Mul(decimal.NewFromInt(40000))

			if !got.Equal(want) {
				t.Errorf("AverageSalary = %s, want %s", got, want)
			}
		})
	}
}

func TestTransformer_Transform_Errors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  error
	}{
		{name: "Unknown currency", field: "salary_currency", value: "GBP", want: ErrUnknownCurrency},
		{name: "Bad salary_from", field: "salary_from", value: "ten", want: ErrMalformedNumber},
		{name: "Bad salary_to", field: "salary_to", value: "1,5", want: ErrMalformedNumber},
		{name: "Non numeric year", field: "published_at", value: "abcd-01-01", want: ErrMalformedDate},
		{name: "Short date", field: "published_at", value: "22", want: ErrMalformedDate},
	}

	tr := NewTransformer(testColumns())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := testRow()
			row[tt.field] = tt.value

			_, err := tr.Transform(row)
			if !errors.Is(err, tt.want) {
				t.Errorf("Transform error = %v, want %v", err, tt.want)
			}

			if !errors.Is(err, ErrRecordRejected) {
				t.Errorf("Transform error = %v, want it to match ErrRecordRejected", err)
			}

			var rejected *RejectedError
			if !errors.As(err, &rejected) || rejected.Field != tt.field {
				t.Errorf("Transform error field = %v, want %s", err, tt.field)
			}
		})
	}
}
