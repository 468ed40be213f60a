// Package output writes decoded moves as canonical SAN text or JSON.
package output

import (
	"io"
	"strings"

	"github.com/lgbarn/sanmove-go/internal/config"
	"github.com/lgbarn/sanmove-go/san"
)

// LineWriter writes space-separated words, breaking lines before they
// exceed a maximum length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
}

// NewLineWriter creates a LineWriter. A maxLineLength of 0 never wraps.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) error {
	var b strings.Builder
	if o.lineLength > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			b.WriteByte('\n')
			o.lineLength = 0
		} else {
			b.WriteByte(' ')
			o.lineLength++
		}
	}
	b.WriteString(s)
	o.lineLength += len(s)
	_, err := io.WriteString(o.w, b.String())
	return err
}

// NewLine ends the current line if anything has been written to it.
func (o *LineWriter) NewLine() error {
	if o.lineLength == 0 {
		return nil
	}
	o.lineLength = 0
	_, err := io.WriteString(o.w, "\n")
	return err
}

// FormatMove compiles m, dropping the check marker and annotation when
// the output configuration says so.
func FormatMove(m san.Move, cfg *config.OutputConfig) (string, error) {
	if !cfg.KeepChecks {
		m.Check = san.NoCheck
	}
	if !cfg.KeepAnnotations {
		m.Annotation = san.NoAnnotation
	}
	return san.Compile(m)
}
