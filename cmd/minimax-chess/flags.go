// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/config"
)

var (
	// Position setup
	startFEN = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList = flag.String("moves", "", "Moves to play first, long algebraic, comma or space separated (e.g. 'e2e4,e7e5')")

	// Search options
	depth      = flag.Int("depth", 2, "Search depth in plies")
	workers    = flag.Int("workers", 1, "Goroutines searching root moves in parallel")
	maximize   = flag.String("max", "", "Colour scores are reported for: white, black (default: side to move)")
	values     = flag.String("values", "", "Piece values overriding the defaults, e.g. 'Q=9,R=5,P=1'")
	selfPlay   = flag.Int("selfplay", 0, "Play N plies by searching for both sides")
	showSlots  = flag.Bool("slots", false, "Print the slot-index grid")
	noFEN      = flag.Bool("nofen", false, "Don't print FEN strings")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	streamJSON = flag.Bool("stream", false, "With -json, write each document as it is produced")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("log", "", "Write diagnostics to this file")
	appendLog  = flag.String("appendlog", "", "Append diagnostics to this file")
	quiet      = flag.Bool("q", false, "Quiet mode")
	verbose    = flag.Bool("v", false, "Log the score of every root move")

	// Server
	listenAddr = flag.String("serve", "", "Serve the game over HTTP on this address (e.g. ':8080')")
	serveDepth = flag.Int("servedepth", 3, "Deepest search an HTTP client may request")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps command-line flags onto cfg.
func applyFlags(cfg *config.Config) error {
	applyVerbosityFlags(cfg)
	applyOutputFlags(cfg)
	applyPositionFlags(cfg)
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	applyServerFlags(cfg)
	return nil
}

// applyVerbosityFlags sets the log level.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.StreamJSON = *streamJSON
	cfg.Output.ShowSlots = *showSlots
	cfg.Output.ShowFEN = !*noFEN
}

// applyPositionFlags configures the starting position and opening moves.
func applyPositionFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Moves = splitMoves(*moveList)
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) error {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.SelfPlay = *selfPlay

	colour, err := config.ParseColour(*maximize)
	if err != nil {
		return err
	}
	cfg.Search.Maximizing = colour

	if *values != "" {
		pv, err := config.ParsePieceValues(*values)
		if err != nil {
			return err
		}
		cfg.Search.PieceValues = pv
	}
	return nil
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.ListenAddr = *listenAddr
	cfg.Server.MaxDepth = *serveDepth
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
