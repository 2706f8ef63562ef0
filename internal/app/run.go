// Package app wires the source, normalizer, aggregator and emitters into one report run.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vacstat/internal/config"
	"vacstat/internal/formatter"
	"vacstat/internal/logger"
	"vacstat/internal/normalizer"
	"vacstat/internal/report"
	"vacstat/internal/source"
	"vacstat/internal/stats"
)

// Params describes one run.
type Params struct {
	Config *config.Config
	Logger *logger.Logger
	Stdout io.Writer

	InputPath string
	Title     string

	// YearTable additionally prints the by-year rows as a markdown table.
	YearTable bool
}

// Result summarizes a finished run.
type Result struct {
	Tables     stats.Tables
	RunID      string
	OutputPath string
	Source     source.Stats
	Rejected   int
	Duration   time.Duration
}

// Run reads the input, prints the statistics and writes the report.
// Any returned error is fatal; rejected rows are only counted.
func Run(p Params) (*Result, error) {
	start := time.Now()
	cfg := p.Config

	res := &Result{
		RunID:      uuid.NewString(),
		OutputPath: cfg.Report.Output,
	}

	log := p.Logger.With("run_id", res.RunID)
	log.Info("📂 Reading vacancies", "input", p.InputPath, "title", p.Title)

	src, err := source.Open(p.InputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	log.Debug("input header", "headers", src.Headers())

	processor := normalizer.NewProcessor(cfg.Input.Columns)
	aggregator := stats.NewAggregator(stats.Options{
		Title:        p.Title,
		MinCityShare: decimal.NewFromFloat(cfg.Stats.MinCityShare),
		TopCities:    cfg.Stats.TopCities,
	})

	err = src.Each(func(row source.Row) {
		v, perr := processor.Process(row)
		if perr != nil {
			res.Rejected++
			log.Debug("row rejected", "error", perr)

			return
		}

		aggregator.Add(v)
	})
	if err != nil {
		return nil, err
	}

	res.Source = src.Stats()
	res.Tables = aggregator.Tables()

	log.Info("📊 Aggregation complete",
		"rows", res.Source.Read,
		"skipped", res.Source.Skipped,
		"rejected", res.Rejected,
		"accepted", aggregator.Total(),
	)

	if err := formatter.PrintStatistics(p.Stdout, res.Tables); err != nil {
		return nil, err
	}

	if p.YearTable {
		table := formatter.MarkdownTable(formatter.YearHeaders(p.Title), formatter.YearRows(res.Tables))
		if _, err := io.WriteString(p.Stdout, "\n"+table); err != nil {
			return nil, fmt.Errorf("failed to write year table: %w", err)
		}
	}

	err = report.Write(cfg.Report.Output, report.Options{
		Title:     p.Title,
		YearSheet: cfg.Report.YearSheet,
		CitySheet: cfg.Report.CitySheet,
		RunID:     res.RunID,
	}, res.Tables)
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	log.Info("✅ Report saved", "output", res.OutputPath, "duration", res.Duration)

	return res, nil
}

// IsInputError reports whether err came from opening or reading the input file.
func IsInputError(err error) bool {
	return errors.Is(err, source.ErrOpenInput) || errors.Is(err, source.ErrNoHeader)
}
