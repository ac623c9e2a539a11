package config

import (
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPieceValues overrides the material table.
func (b *ConfigBuilder) WithPieceValues(values map[chess.Kind]int) *ConfigBuilder {
	b.cfg.Search.PieceValues = values
	return b
}

// WithMaximizing fixes the colour scores are reported for.
func (b *ConfigBuilder) WithMaximizing(c chess.Colour) *ConfigBuilder {
	b.cfg.Search.Maximizing = c
	return b
}

// WithSelfPlay plays n plies by searching for both sides.
func (b *ConfigBuilder) WithSelfPlay(n int) *ConfigBuilder {
	b.cfg.Search.SelfPlay = n
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMoves sets the moves played before searching.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithStreamingJSON writes JSON documents as they are produced.
func (b *ConfigBuilder) WithStreamingJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.StreamJSON = enabled
	return b
}

// WithSlotGrid enables the slot-index grid.
func (b *ConfigBuilder) WithSlotGrid(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowSlots = enabled
	return b
}

// WithListenAddr enables the HTTP server on addr.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
