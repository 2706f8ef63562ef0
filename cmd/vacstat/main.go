// Package main provides the vacancy statistics report command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"vacstat/internal/app"
	"vacstat/internal/config"
	"vacstat/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Path to the vacancies CSV file (prompted when empty)")
	title := flag.String("profession", "", "Profession substring to filter by (prompted when empty)")
	output := flag.String("output", "", "Report file path (overrides report.output)")
	level := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides logging.level)")
	yearTable := flag.Bool("table", false, "Also print the by-year rows as a markdown table")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := loadConfig(*configFile, log)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	if *output != "" {
		cfg.Report.Output = *output
	}

	if *level != "" {
		cfg.Logging.Level = *level
	}

	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Sprintf("❌ Invalid configuration: %v", err))
		os.Exit(1)
	}

	log.SetLevel(cfg.Logging.Level)
	log.Debug("⚙️  Effective configuration", "config", cfg.String())

	if *writeConfig != "" {
		if err := cfg.SaveConfig(*writeConfig); err != nil {
			log.Error(fmt.Sprintf("❌ %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("💾 Configuration written to: %s", *writeConfig))

		return
	}

	stdin := bufio.NewReader(os.Stdin)

	inputPath := *input
	if inputPath == "" {
		if inputPath, err = app.Ask(stdin, os.Stdout, app.PromptFile); err != nil {
			log.Error(fmt.Sprintf("❌ %v", err))
			os.Exit(1)
		}
	}

	profession := *title
	if profession == "" {
		if profession, err = app.Ask(stdin, os.Stdout, app.PromptTitle); err != nil {
			log.Error(fmt.Sprintf("❌ %v", err))
			os.Exit(1)
		}
	}

	_, err = app.Run(app.Params{
		Config:    cfg,
		Logger:    log,
		Stdout:    os.Stdout,
		InputPath: inputPath,
		Title:     profession,
		YearTable: *yearTable,
	})
	if err != nil {
		if app.IsInputError(err) {
			log.Error(fmt.Sprintf("❌ Cannot read input: %v", err))
		} else {
			log.Error(fmt.Sprintf("❌ Report failed: %v", err))
		}

		os.Exit(1)
	}
}

// loadConfig reads the given file, falls back to config.DefaultPath when it
// exists, and otherwise uses built-in defaults.
func loadConfig(path string, log *logger.Logger) (*config.Config, error) {
	if path == "" {
		if _, statErr := os.Stat(config.DefaultPath); statErr == nil {
			path = config.DefaultPath
		}
	}

	if path == "" {
		log.Debug("⚙️  No configuration file, using defaults")
		return config.Default(), nil
	}

	log.Info(fmt.Sprintf("⚙️  Loading configuration from: %s", path))

	return config.LoadConfig(path)
}
