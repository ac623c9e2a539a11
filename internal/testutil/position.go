package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// MustFEN parses fen or fails the test immediately.
func MustFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// MustApply moves the piece on from to to, failing the test on any error.
// It returns the slot that moved.
func MustApply(t testing.TB, pos *chess.Position, from, to string) chess.Slot {
	t.Helper()
	s := pos.SquareOccupant(MustSquare(t, from))
	if s == chess.NoSlot {
		t.Fatalf("no piece on %s", from)
	}
	if err := pos.ApplyMove(s, MustSquare(t, to)); err != nil {
		t.Fatalf("ApplyMove %s%s: %v", from, to, err)
	}
	return s
}

// Snapshot captures the observable state of a Position for comparison.
type Snapshot struct {
	Grid   [chess.BoardSize][chess.BoardSize]chess.Slot
	Pieces [chess.NumSlots]chess.Square
	Ply    int
	Mover  chess.Colour
}

// TakeSnapshot records pos.
func TakeSnapshot(pos *chess.Position) Snapshot {
	return Snapshot{
		Grid:   pos.Grid(),
		Pieces: pos.Pieces(),
		Ply:    pos.Ply(),
		Mover:  pos.CurrentMoverColour(),
	}
}

// AssertUnchanged fails if pos no longer matches before.
func AssertUnchanged(t *testing.T, pos *chess.Position, before Snapshot, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, TakeSnapshot(pos), before, msgAndArgs...)
	AssertNoError(t, pos.CheckConsistency(), msgAndArgs...)
}
