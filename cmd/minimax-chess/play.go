package main

import (
	"context"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// playGame plays up to cfg.Search.SelfPlay plies, each side choosing the
// move that is best for itself. It stops early when the side to move has no
// move or ctx is cancelled, and finishes by writing the final position.
// Repeated positions are reported but do not end the game.
func playGame(ctx context.Context, pos *chess.Position, searcher *engine.Searcher, cfg *config.Config, w output.Writer) error {
	seen := hashing.NewTracker()
	seen.Record(pos)
	for ply := 0; ply < cfg.Search.SelfPlay; ply++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		mover := pos.CurrentMoverColour()
		result, err := searcher.Search(pos, cfg.Search.Depth, mover)
		if err != nil {
			return err
		}
		if err := w.WriteSearch(pos, cfg.Search.Depth, mover, result); err != nil {
			return err
		}
		if result.Action.IsNone() {
			cfg.Logf(1, "%s has no move after %d plies\n", mover, pos.Ply())
			break
		}
		notation := result.Action.Notation(pos)
		if err := engine.Commit(pos, result.Action); err != nil {
			return err
		}
		cfg.Logf(1, "Ply %d: %s %s (value %d)\n", pos.Ply(), mover, notation, result.Value)
		if n := seen.Record(pos); n > 1 {
			cfg.Logf(2, "Position after ply %d seen %d times\n", pos.Ply(), n)
		}
	}
	cfg.Logf(2, "%d distinct positions, %d repeats\n", seen.UniqueCount(), seen.RepeatCount())
	return w.WritePosition(pos)
}
