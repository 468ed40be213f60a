// san-codec reads chess movetext and rewrites every move in canonical
// Standard Algebraic Notation, or describes it as JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/sanmove-go/internal/config"
	"github.com/lgbarn/sanmove-go/internal/output"
	"github.com/lgbarn/sanmove-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("san-codec version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	switch {
	case *interactive:
		if err := runInteractive(cfg.OutputFile); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	case cfg.Server.Addr != "":
		if err := serve(cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if *fileList != "" {
		listed, err := loadFileList(*fileList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileList, err)
			os.Exit(1)
		}
		args = append(args, listed...)
	}

	mw := output.NewMoveWriter(cfg.OutputFile, cfg.Output)
	stats, err := processAllInputs(cfg, args, os.Stdin, mw)
	if closeErr := mw.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats)
	}
	if err != nil {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// serve runs the HTTP service until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	app := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		if cfg.Verbosity > 0 {
			fmt.Fprintln(cfg.LogFile, "Shutting down")
		}
		app.ShutdownWithTimeout(5 * time.Second) //nolint:errcheck,gosec // G104: best effort on exit
	}()

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Listening on %s\n", cfg.Server.Addr)
	}
	return app.Listen(cfg.Server.Addr)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: san-codec [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Parses chess moves in SAN or LAN and rewrites them canonically.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Canonical Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  json   One object per move with decoded fields\n")
}
