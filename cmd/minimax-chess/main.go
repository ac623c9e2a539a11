// minimax-chess searches chess positions with fixed-depth minimax, plays
// games against itself, or serves a game over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/server"
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
		fmt.Printf("minimax-chess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// usage prints the command synopsis and flag defaults.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Searches a chess position with fixed-depth minimax.\n\nOptions:\n")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run sets up the position and performs the requested work.
func run(ctx context.Context, cfg *config.Config) error {
	pos, err := setupPosition(cfg)
	if err != nil {
		return err
	}

	if cfg.Server.ListenAddr != "" {
		return server.New(cfg, pos).ListenAndServe(ctx)
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	searcher := newSearcher(cfg)
	if cfg.Search.SelfPlay > 0 {
		err = playGame(ctx, pos, searcher, cfg, w)
	} else {
		err = searchOnce(pos, searcher, cfg, w)
	}
	if err != nil {
		return err
	}
	return w.Close()
}

// setupPosition builds the starting position and plays the opening moves.
func setupPosition(cfg *config.Config) (*chess.Position, error) {
	pos := chess.NewGame()
	if cfg.StartFEN != "" {
		var err error
		if pos, err = chess.ParseFEN(cfg.StartFEN); err != nil {
			return nil, chesserrors.Wrapf(err, "start position %q", cfg.StartFEN)
		}
	}
	for i, m := range cfg.Moves {
		if _, err := engine.CommitNotation(pos, m); err != nil {
			return nil, chesserrors.Wrapf(err, "opening move %d (%s)", i+1, m)
		}
	}
	return pos, nil
}

// newSearcher builds a searcher from the search configuration.
func newSearcher(cfg *config.Config) *engine.Searcher {
	opts := []engine.SearchOption{
		engine.WithPieceValues(cfg.Search.PieceValues),
		engine.WithWorkers(cfg.Search.Workers),
	}
	if cfg.Verbosity >= 2 {
		opts = append(opts, engine.WithLog(cfg.LogFile))
	}
	return engine.NewSearcher(opts...)
}

// maximizingColour is the configured colour, or the side to move.
func maximizingColour(cfg *config.Config, pos *chess.Position) chess.Colour {
	if cfg.Search.Maximizing != chess.NoColour {
		return cfg.Search.Maximizing
	}
	return pos.CurrentMoverColour()
}

// searchOnce prints the position and the best move for the side to move.
func searchOnce(pos *chess.Position, searcher *engine.Searcher, cfg *config.Config, w output.Writer) error {
	if err := w.WritePosition(pos); err != nil {
		return err
	}
	maximizing := maximizingColour(cfg, pos)
	result, err := searcher.Search(pos, cfg.Search.Depth, maximizing)
	if err != nil {
		return err
	}
	cfg.Logf(1, "Searched %d nodes at depth %d\n", result.Nodes, cfg.Search.Depth)
	return w.WriteSearch(pos, cfg.Search.Depth, maximizing, result)
}
