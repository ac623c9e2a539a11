package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// withMove applies s->to, runs probe on the mutated position and undoes the
// move before returning, whatever probe returns or panics with. Every
// speculative mutation in this package goes through here so that each apply
// is matched by exactly one undo.
func withMove[T any](pos *chess.Position, s chess.Slot, to chess.Square, probe func() (T, error)) (T, error) {
	var zero T
	if err := pos.ApplyMove(s, to); err != nil {
		return zero, err
	}
	defer pos.UndoLastMove() //nolint:errcheck // undo after a successful apply cannot fail
	return probe()
}
