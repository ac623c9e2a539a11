package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestPerftStartPosition(t *testing.T) {
	want := []int{1, 20, 400, 8902}
	for depth, nodes := range want {
		if depth == 3 && testing.Short() {
			t.Skip("skipping depth 3 in short mode")
		}
		pos := chess.NewGame()
		before := testutil.TakeSnapshot(pos)
		got, err := Perft(pos, depth)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, nodes, "perft(%d)", depth)
		testutil.AssertUnchanged(t, pos, before)
	}
}

func TestPerftTerminal(t *testing.T) {
	pos := testutil.MustFEN(t, backRankMateFEN)
	got, err := Perft(pos, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, 0)
}
