package normalizer

import (
	"errors"
	"testing"

	"vacstat/internal/config"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(testColumns())
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(testColumns())

	v, err := p.Process(testRow())
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if v.Year != 2022 {
		t.Errorf("Year = %d, want 2022", v.Year)
	}
}

func TestProcessor_Process_CustomColumns(t *testing.T) {
	columns := config.ColumnsConfig{
		Title:       "title",
		SalaryFrom:  "min",
		SalaryTo:    "max",
		Currency:    "cur",
		PublishedAt: "date",
		Area:        "city",
	}

	p := NewProcessor(columns)

	v, err := p.Process(map[string]string{
		"title": "Analyst",
		"min":   "500",
		"max":   "1500",
		"cur":   "RUR",
		"date":  "2021-05-01",
		"city":  "Казань",
	})
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if v.SalaryAverage.IntPart() != 1000 || v.AreaName != "Казань" || v.Year != 2021 {
		t.Errorf("Process = %+v, want Analyst/1000/Казань/2021", v)
	}
}

func TestProcessor_Process_ValidationError(t *testing.T) {
	p := NewProcessor(testColumns())

	row := testRow()
	delete(row, "area_name")

	_, err := p.Process(row)
	if !errors.Is(err, ErrRecordRejected) {
		t.Errorf("Process error = %v, want ErrRecordRejected", err)
	}
}
