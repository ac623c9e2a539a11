package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestStaticEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		white int
	}{
		{"start is balanced", chess.InitialFEN, 0},
		{"white queen up", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", 9},
		{"black rook and pawn up", "r3k3/p7/8/8/8/8/8/4K3 w - - 0 1", -6},
		{"kings only", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustFEN(t, tt.fen)
			testutil.AssertEqual(t, StaticEvaluate(pos, chess.White), tt.white)
			testutil.AssertEqual(t, StaticEvaluate(pos, chess.Black), -tt.white)
		})
	}
}

func TestEvaluateAfterCapture(t *testing.T) {
	pos := testutil.MustFEN(t, rookTakesQueenFEN)
	testutil.AssertEqual(t, StaticEvaluate(pos, chess.White), -4)
	testutil.MustApply(t, pos, "a1", "a4")
	testutil.AssertEqual(t, StaticEvaluate(pos, chess.White), 5)
	if _, err := pos.UndoLastMove(); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, StaticEvaluate(pos, chess.White), -4)
}

func TestEvaluatorCopiesValues(t *testing.T) {
	values := PieceValues{chess.Pawn: 2}
	e := NewEvaluator(values)
	values[chess.Pawn] = 100

	pos := testutil.MustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	testutil.AssertEqual(t, e.Evaluate(pos, chess.White), 2)

	got := e.Values()
	got[chess.Pawn] = 50
	testutil.AssertEqual(t, e.Values(), PieceValues{chess.Pawn: 2})
}

func TestNewEvaluatorDefaults(t *testing.T) {
	testutil.AssertEqual(t, NewEvaluator(nil).Values(), DefaultPieceValues())
}

func TestPieceValuesOver(t *testing.T) {
	base := DefaultPieceValues()
	got := base.Over(PieceValues{chess.Queen: 10, chess.Pawn: 0})

	want := DefaultPieceValues()
	want[chess.Queen] = 10
	want[chess.Pawn] = 0
	testutil.AssertEqual(t, got, want)
	testutil.AssertEqual(t, base, DefaultPieceValues(), "receiver must not change")
	testutil.AssertEqual(t, base.Over(nil), DefaultPieceValues())
}

func TestWithPieceValuesKeepsDefaults(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/8/8/8/q7/8/8/R3K3 w - - 0 1")
	got, err := NewSearcher(WithPieceValues(PieceValues{chess.Queen: 10})).Search(pos, 0, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Value, -5)
}
