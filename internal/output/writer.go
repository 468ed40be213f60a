package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/sanmove-go/internal/config"
	"github.com/lgbarn/sanmove-go/internal/worker"
)

// MoveWriter is the interface for writing decoded moves.
// Different implementations handle different output formats (SAN, JSON).
type MoveWriter interface {
	// WriteMove writes a single decode result to the output.
	WriteMove(res worker.ProcessResult) error

	// Flush ends the current unit of output, one per input file.
	Flush() error

	// Close flushes the writer and releases any resources.
	Close() error
}

// NewMoveWriter returns the writer for cfg's output format.
func NewMoveWriter(w io.Writer, cfg *config.OutputConfig) MoveWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewSANWriter(w, cfg)
}

// SANWriter writes canonical SAN, wrapping lines at MaxLineLength.
type SANWriter struct {
	lw  *LineWriter
	cfg *config.OutputConfig
}

// NewSANWriter creates a new SAN writer.
func NewSANWriter(w io.Writer, cfg *config.OutputConfig) *SANWriter {
	return &SANWriter{
		lw:  NewLineWriter(w, int(cfg.MaxLineLength)),
		cfg: cfg,
	}
}

// WriteMove writes the canonical text of a decoded move. Failed tokens
// are copied through unchanged when KeepErrors is set and dropped
// otherwise.
func (sw *SANWriter) WriteMove(res worker.ProcessResult) error {
	if res.Err != nil {
		if sw.cfg.KeepErrors {
			return sw.lw.Write(res.Token.Text)
		}
		return nil
	}
	text, err := FormatMove(res.Move, sw.cfg)
	if err != nil {
		return err
	}
	return sw.lw.Write(text)
}

// Flush ends the current line.
func (sw *SANWriter) Flush() error {
	return sw.lw.NewLine()
}

// Close flushes the SAN writer.
func (sw *SANWriter) Close() error {
	return sw.Flush()
}

// JSONWriter writes moves in JSON format.
// It buffers moves and writes them as one JSON object on Flush.
type JSONWriter struct {
	w     io.Writer
	cfg   *config.OutputConfig
	moves []*JSONMove
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		moves: make([]*JSONMove, 0),
	}
}

// WriteMove buffers a move for JSON output.
func (jw *JSONWriter) WriteMove(res worker.ProcessResult) error {
	if res.Err != nil {
		jw.moves = append(jw.moves, ErrorToJSON(res.Token.Text, res.Err))
		return nil
	}
	m := res.Move
	jm := MoveToJSON(res.Token.Text, m)
	if text, err := FormatMove(m, jw.cfg); err == nil {
		jm.SAN = text
	}
	if !jw.cfg.KeepChecks {
		jm.Check = ""
	}
	if !jw.cfg.KeepAnnotations {
		jm.Annotation = ""
	}
	jw.moves = append(jw.moves, jm)
	return nil
}

// Flush writes all buffered moves as a JSON object.
func (jw *JSONWriter) Flush() error {
	if len(jw.moves) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Moves: jw.moves})

	// Clear buffer after writing
	jw.moves = jw.moves[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
