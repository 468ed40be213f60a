// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/sanmove-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length for SAN output (0 = no wrapping)")
	outputFormat = flag.String("W", "", "Output format: san, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noChecks     = flag.Bool("nochecks", false, "Don't output check and mate markers")
	noAnnots     = flag.Bool("noannotations", false, "Don't output move annotations (!, ?, ...)")
	keepErrors   = flag.Bool("keeperrors", false, "Copy tokens that fail to parse into the output")

	// Input options
	fileList       = flag.String("f", "", "File containing a list of input files, one per line")
	keepVariations = flag.Bool("variations", false, "Parse moves inside variations too")
	strict         = flag.Bool("strict", false, "Stop at the first move that fails to parse")
	roundTrip      = flag.Bool("roundtrip", false, "Report moves whose canonical form differs from the input")
	workers        = flag.Int("workers", 1, "Number of parser workers (0 = one per CPU)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	quiet     = flag.Bool("s", false, "Silent mode: no summary")
	verbose   = flag.Bool("v", false, "Log every decoded move")

	// Modes
	interactive = flag.Bool("i", false, "Interactive mode: prompt for moves and describe them")
	serveAddr   = flag.String("serve", "", "Serve the codec over HTTP on this address (e.g. :8080)")
	origins     = flag.String("origins", "*", "CORS origins allowed by the HTTP service")
	maxBatch    = flag.Int("maxbatch", 1024, "Maximum moves per HTTP batch request")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyInputFlags(cfg)
	applyServerFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyOutputFlags configures output format and content.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSON
	}
	cfg.Output.Format = format

	if *lineLength < 0 {
		*lineLength = 0
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepAnnotations = !*noAnnots
	cfg.Output.KeepErrors = *keepErrors
	return nil
}

// applyInputFlags configures tokenizing and parsing.
func applyInputFlags(cfg *config.Config) {
	cfg.Input.KeepVariations = *keepVariations
	cfg.Input.Strict = *strict
	cfg.Input.RoundTrip = *roundTrip

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = config.DefaultWorkers()
	}
}

// applyServerFlags configures the HTTP service.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *serveAddr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.MaxBatch = *maxBatch
}
