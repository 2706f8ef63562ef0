// Package source reads vacancy exports as header-keyed rows.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"vacstat/pkg/utils"
)

// Source errors.
var (
	ErrOpenInput = errors.New("failed to open input file")
	ErrNoHeader  = errors.New("input file has no header line")
)

// Row is one data line keyed by header name.
type Row map[string]string

// Stats counts what the source did with the data lines it read.
type Stats struct {
	Read    int
	Skipped int
}

// CSV streams rows from a delimited file.
type CSV struct {
	closer  io.Closer
	reader  *csv.Reader
	headers []string
	stats   Stats
}

// Open opens path and consumes its header line.
func Open(path string) (*CSV, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}

	src, err := newCSV(file, file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return src, nil
}

// NewReader reads rows from r; the caller keeps ownership of r.
func NewReader(r io.Reader) (*CSV, error) {
	return newCSV(r, nil)
}

func newCSV(r io.Reader, closer io.Closer) (*CSV, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	for i, h := range headers {
		headers[i] = utils.CleanHeader(h)
	}

	return &CSV{
		closer:  closer,
		reader:  reader,
		headers: headers,
	}, nil
}

// Headers returns the cleaned header names.
func (c *CSV) Headers() []string {
	return c.headers
}

// Each calls fn for every complete row, one at a time. Rows whose field count
// differs from the header, or that contain an empty field, are skipped.
func (c *CSV) Each(fn func(Row)) error {
	for {
		record, err := c.reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("CSV read error: %w", err)
		}

		c.stats.Read++

		if len(record) != len(c.headers) || utils.HasEmpty(record) {
			c.stats.Skipped++
			continue
		}

		row := make(Row, len(c.headers))
		for i, h := range c.headers {
			row[h] = record[i]
		}

		fn(row)
	}
}

// Stats returns the counters accumulated by Each so far.
func (c *CSV) Stats() Stats {
	return c.stats
}

// Close releases the underlying file, if Open created one.
func (c *CSV) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}
