package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Writer is the interface for writing positions and search results.
// Different implementations handle different output formats (text, JSON).
type Writer interface {
	// WritePosition writes a position.
	WritePosition(pos *chess.Position) error

	// WriteSearch writes the result of a search run on pos.
	WriteSearch(pos *chess.Position, depth int, maximizing chess.Colour, r engine.Result) error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) Writer {
	if cfg.Output.JSONFormat {
		if cfg.Output.StreamJSON {
			return NewJSONWriterSingle(w)
		}
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}

// TextWriter writes diagrams and one-line summaries.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the diagram, optional slot grid and FEN, and status.
func (tw *TextWriter) WritePosition(pos *chess.Position) error {
	if _, err := io.WriteString(tw.w, Diagram(pos)); err != nil {
		return err
	}
	if tw.cfg.ShowSlots {
		if _, err := io.WriteString(tw.w, SlotGrid(pos)); err != nil {
			return err
		}
	}
	if tw.cfg.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", pos.FEN()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w, Status(pos))
	return err
}

// WriteSearch writes a one-line summary.
func (tw *TextWriter) WriteSearch(pos *chess.Position, depth int, maximizing chess.Colour, r engine.Result) error {
	_, err := fmt.Fprintln(tw.w, SearchSummary(pos, depth, maximizing, r))
	return err
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds everything written to a batching JSONWriter.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions,omitempty"`
	Searches  []*JSONSearch   `json:"searches,omitempty"`
}

// JSONWriter writes JSON documents.
// It buffers documents and writes them as one object on Close.
type JSONWriter struct {
	w      io.Writer
	buf    JSONOutput
	single bool // If true, write each document immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each document immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WritePosition buffers a position (or writes it immediately in single mode).
func (jw *JSONWriter) WritePosition(pos *chess.Position) error {
	jp := PositionToJSON(pos)
	if jw.single {
		return jw.encode(jp)
	}
	jw.buf.Positions = append(jw.buf.Positions, jp)
	return nil
}

// WriteSearch buffers a search result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteSearch(pos *chess.Position, depth int, maximizing chess.Colour, r engine.Result) error {
	js := SearchToJSON(pos, depth, maximizing, r)
	if jw.single {
		return jw.encode(js)
	}
	jw.buf.Searches = append(jw.buf.Searches, js)
	return nil
}

// flush writes all buffered documents as one JSON object.
func (jw *JSONWriter) flush() error {
	if jw.single || (len(jw.buf.Positions) == 0 && len(jw.buf.Searches) == 0) {
		return nil
	}
	err := jw.encode(&jw.buf)

	// Clear buffer after writing
	jw.buf = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
