// Package models defines the typed vacancy record and the fixed currency table.
package models

import "github.com/shopspring/decimal"

// Vacancy is one accepted row of the vacancy export.
//
// SalaryAverage is expressed in ReferenceCurrency and always equals
// Rate(Currency) * (SalaryFrom + SalaryTo) / 2. Year is taken from the first
// four characters of the publication date.
type Vacancy struct {
	Title         string
	Currency      Currency
	AreaName      string
	SalaryAverage decimal.Decimal
	SalaryFrom    int64
	SalaryTo      int64
	Year          int
}
