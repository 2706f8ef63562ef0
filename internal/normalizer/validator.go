package normalizer

import (
	"vacstat/internal/config"
	"vacstat/internal/source"
)

// Validator checks that a row carries every column the transformer reads.
type Validator struct {
	columns config.ColumnsConfig
}

// NewValidator creates a new validator instance.
func NewValidator(columns config.ColumnsConfig) *Validator {
	return &Validator{columns: columns}
}

// Validate checks if the row meets requirements.
func (v *Validator) Validate(row source.Row) error {
	required := []string{
		v.columns.Title,
		v.columns.SalaryFrom,
		v.columns.SalaryTo,
		v.columns.Currency,
		v.columns.PublishedAt,
		v.columns.Area,
	}

	for _, field := range required {
		if _, ok := row[field]; !ok {
			return reject(ErrMissingField, field, "")
		}
	}

	return nil
}
