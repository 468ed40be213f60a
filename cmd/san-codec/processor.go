package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/sanmove-go/internal/config"
	"github.com/lgbarn/sanmove-go/internal/errors"
	"github.com/lgbarn/sanmove-go/internal/movetext"
	"github.com/lgbarn/sanmove-go/internal/output"
	"github.com/lgbarn/sanmove-go/internal/worker"
)

// errStrict stops processing after the first bad move in strict mode.
var errStrict = stderrors.New("stopping at first bad move")

// Stats counts what happened to the move tokens of one or more inputs.
type Stats struct {
	Inputs  int
	Tokens  int
	Parsed  int
	Failed  int
	Changed int // Parsed moves whose canonical text differs from the input
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Inputs += other.Inputs
	s.Tokens += other.Tokens
	s.Parsed += other.Parsed
	s.Failed += other.Failed
	s.Changed += other.Changed
}

// processInput tokenizes r, decodes every move token and writes the result.
// A movetext error is logged after the moves read before it are written.
func processInput(r io.Reader, name string, cfg *config.Config, mw output.MoveWriter) (Stats, error) {
	stats := Stats{Inputs: 1}

	tokens, lexErr := movetext.Tokenize(r,
		movetext.WithFile(name),
		movetext.WithVariations(cfg.Input.KeepVariations))
	stats.Tokens = len(tokens)

	var runErr error
	for _, res := range worker.DecodeAll(tokens, cfg.Workers) {
		if res.Err != nil {
			stats.Failed++
			logDecodeError(cfg, name, res)
			if cfg.Input.Strict {
				runErr = errStrict
				break
			}
		} else {
			stats.Parsed++
			if res.Changed() {
				stats.Changed++
				if cfg.Input.RoundTrip {
					fmt.Fprintf(cfg.LogFile, "%s:%d:%d: %q is written %q\n",
						name, res.Token.Line, res.Token.Column, res.Token.Text, res.Text)
				}
			}
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%s:%s -> %s\n", name, res.Token, res.Text)
			}
		}

		if err := mw.WriteMove(res); err != nil {
			return stats, errors.Wrapf(err, "writing output for %s", name)
		}
	}

	if err := mw.Flush(); err != nil {
		return stats, errors.Wrapf(err, "writing output for %s", name)
	}

	if lexErr != nil {
		fmt.Fprintf(cfg.LogFile, "%v\n", lexErr)
		if runErr == nil {
			runErr = lexErr
		}
	}
	return stats, runErr
}

// logDecodeError reports a token that failed to decode with its location.
func logDecodeError(cfg *config.Config, name string, res worker.ProcessResult) {
	fmt.Fprintf(cfg.LogFile, "%v\n", &errors.ParseError{
		Err:    res.Err,
		File:   name,
		Line:   res.Token.Line,
		Column: res.Token.Column,
		Got:    res.Token.Text,
	})
}

// processAllInputs processes the named files, or stdin if there are none.
// It carries on past unreadable files and movetext errors unless strict
// mode stopped it, and returns the first error seen.
func processAllInputs(cfg *config.Config, args []string, stdin io.Reader, mw output.MoveWriter) (Stats, error) {
	var total Stats

	if len(args) == 0 {
		stats, err := processInput(stdin, "stdin", cfg, mw)
		total.Add(stats)
		return total, err
	}

	var firstErr error
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		stats, err := processInput(file, filename, cfg, mw)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		total.Add(stats)

		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if stderrors.Is(err, errStrict) {
				break
			}
		}
	}
	return total, firstErr
}

// loadFileList reads input file names, one per line. Blank lines and
// lines starting with '#' are skipped.
func loadFileList(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var files []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	return files, scanner.Err()
}

// reportStatistics prints the final summary to the log.
func reportStatistics(w io.Writer, stats Stats) {
	fmt.Fprintf(w, "%d move(s) parsed, %d failed, out of %d in %d input(s).\n",
		stats.Parsed, stats.Failed, stats.Tokens, stats.Inputs)
	if stats.Changed > 0 {
		fmt.Fprintf(w, "%d move(s) rewritten to canonical form.\n", stats.Changed)
	}
}
