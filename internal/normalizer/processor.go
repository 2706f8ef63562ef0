// Package normalizer turns raw CSV rows into typed vacancy records.
package normalizer

import (
	"vacstat/internal/config"
	"vacstat/internal/models"
	"vacstat/internal/source"
)

// Processor validates and transforms rows.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a processor reading the given columns.
func NewProcessor(columns config.ColumnsConfig) *Processor {
	return &Processor{
		validator:   NewValidator(columns),
		transformer: NewTransformer(columns),
	}
}

// Process converts one row. A non-nil error always matches ErrRecordRejected
// and the row should be skipped.
func (p *Processor) Process(row source.Row) (models.Vacancy, error) {
	if err := p.validator.Validate(row); err != nil {
		return models.Vacancy{}, err
	}

	return p.transformer.Transform(row)
}
