package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iwvelando/mortgage-payoff/internal/config"
	"github.com/iwvelando/mortgage-payoff/internal/logging"
	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/iwvelando/mortgage-payoff/pkg/output"
	"github.com/iwvelando/mortgage-payoff/pkg/schedule"
	"github.com/iwvelando/mortgage-payoff/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, summary")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	exportPath := flag.String("export", "", "write the schedule to this CSV file")
	importPath := flag.String("import", "", "load the schedule from this CSV file instead of calculating it")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	var rows []mortgage.PaymentRow
	var summary mortgage.PayoffSummary

	if *importPath != "" {
		rows, err = schedule.ImportFile(*importPath)
		if err != nil {
			logger.Fatal("failed to import schedule",
				zap.String("op", "main"),
				zap.String("path", *importPath),
				zap.Error(err),
			)
		}
		summary = mortgage.Summarize(rows, datetime.Truncate(time.Now()))
		logger.Info("loaded schedule",
			zap.String("op", "main"),
			zap.String("path", *importPath),
			zap.Int("rows", len(rows)),
		)
	} else {
		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		inputs, err := conf.Inputs(time.Now())
		if err != nil {
			logger.Fatal("invalid mortgage configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		result, err := mortgage.NewCalculator(logger).Calculate(inputs)
		if err != nil {
			logger.Fatal("failed to compute payoff schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		rows, summary = result.Schedule, result.Summary
	}

	if *exportPath != "" {
		if err := schedule.ExportFile(*exportPath, rows); err != nil {
			logger.Fatal("failed to export schedule",
				zap.String("op", "main"),
				zap.String("path", *exportPath),
				zap.Error(err),
			)
		}
		logger.Info("exported schedule",
			zap.String("op", "main"),
			zap.String("path", *exportPath),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, rows, summary)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, rows)
	case constants.OutputFormatSummary:
		err = output.SummaryFormat(os.Stdout, summary)
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
