package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = testutil.MustSquare(t, n)
	}
	return out
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"opening knight", chess.InitialFEN, "b1", []string{"a3", "c3"}},
		{"opening pawn double push", chess.InitialFEN, "e2", []string{"e3", "e4"}},
		{"opening rook boxed in", chess.InitialFEN, "a1", nil},
		{"black pawn moves down the board", chess.InitialFEN, "d7", []string{"d6", "d5"}},
		{"pinned rook stays on file", "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2",
			[]string{"e3", "e4", "e5", "e6", "e7", "e8"}},
		{"king avoids attacked squares", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1", []string{"d2", "f1"}},
		{"pawn push and captures", "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1", "e4", []string{"e5", "d5", "f5"}},
		{"blocked pawn still captures", "4k3/8/8/3pp3/4P3/8/8/4K3 w - - 0 1", "e4", []string{"d5"}},
		{"pawn double push blocked at second square", "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1", "e2", []string{"e3"}},
		{"bishop rays stop at blockers", "4k3/8/8/8/8/2p5/3B4/4K3 w - - 0 1", "d2",
			[]string{"c3", "c1", "e3", "f4", "g5", "h6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tt.fen)
			s := pos.SquareOccupant(testutil.MustSquare(t, tt.from))
			before := testutil.TakeSnapshot(pos)

			got, err := ActionsFor(pos, s)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, squaresOrNil(t, tt.want...))
			testutil.AssertUnchanged(t, pos, before)
		})
	}
}

func squaresOrNil(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	if len(names) == 0 {
		return nil
	}
	return squares(t, names...)
}

func TestActionsForCapturedSlot(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	got, err := ActionsFor(pos, chess.MakeSlot(chess.White, 0))
	testutil.AssertNoError(t, err)
	if len(got) != 0 {
		t.Errorf("captured slot actions = %v; want none", got)
	}
}

func TestActionsForInvalidSlot(t *testing.T) {
	_, err := ActionsFor(chess.NewGame(), chess.Slot(chess.NumSlots))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSlot)
}

func TestPlayerActions(t *testing.T) {
	pos := chess.NewGame()
	actions, err := PlayerActions(pos, chess.White)
	testutil.AssertNoError(t, err)

	var slots []chess.Slot
	total := 0
	for _, pa := range actions {
		slots = append(slots, pa.Slot)
		total += len(pa.Targets)
	}
	testutil.AssertEqual(t, slots, []chess.Slot{1, 6, 8, 9, 10, 11, 12, 13, 14, 15})
	testutil.AssertEqual(t, total, 20)

	_, err = PlayerActions(pos, chess.NoColour)
	testutil.AssertError(t, err)
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"start white", chess.InitialFEN, chess.White, false},
		{"start black", chess.InitialFEN, chess.Black, false},
		{"back rank mate", "k7/8/8/8/8/8/5PPP/r5K1 w - - 0 1", chess.White, true},
		{"back rank mate other side", "k7/8/8/8/8/8/5PPP/r5K1 w - - 0 1", chess.Black, false},
		{"check with escape", "k7/8/8/8/8/8/5PP1/r5K1 w - - 0 1", chess.White, false},
		{"king can capture checker", "k7/8/8/8/8/8/5PPP/6rK w - - 0 1", chess.White, false},
		{"stalemate is not terminal", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tt.fen)
			before := testutil.TakeSnapshot(pos)
			testutil.AssertEqual(t, IsTerminal(pos, tt.colour), tt.want)
			testutil.AssertUnchanged(t, pos, before)
		})
	}
}

func TestInCheck(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	testutil.AssertTrue(t, InCheck(pos, chess.White))
	testutil.AssertFalse(t, InCheck(pos, chess.Black))
}

func TestWithMoveRestoresOnProbeError(t *testing.T) {
	pos := chess.NewGame()
	before := testutil.TakeSnapshot(pos)
	_, err := withMove(pos, chess.MakeSlot(chess.White, 12), testutil.MustSquare(t, "e4"), func() (int, error) {
		return 0, chesserrors.ErrIllegalMove
	})
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertUnchanged(t, pos, before)
}

func TestWithMoveApplyError(t *testing.T) {
	pos := chess.NewGame()
	called := false
	_, err := withMove(pos, chess.MakeSlot(chess.White, 12), chess.NoSquare, func() (int, error) {
		called = true
		return 0, nil
	})
	testutil.AssertError(t, err)
	testutil.AssertFalse(t, called, "probe ran after a failed apply")
	testutil.AssertEqual(t, pos.Ply(), 0)
}
