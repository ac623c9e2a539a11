package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// sq converts an algebraic square name, panicking on malformed input.
func sq(name string) Square {
	s, ok := ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return s
}

func TestNewGame(t *testing.T) {
	p := NewGame()

	t.Run("initial state", func(t *testing.T) {
		if got := p.CurrentMoverColour(); got != White {
			t.Errorf("CurrentMoverColour() = %v; want White", got)
		}
		if p.Ply() != 0 {
			t.Errorf("Ply() = %d; want 0", p.Ply())
		}
		if err := p.CheckConsistency(); err != nil {
			t.Errorf("CheckConsistency() = %v", err)
		}
	})

	t.Run("all slots placed", func(t *testing.T) {
		perColour := map[Colour]int{}
		for s := Slot(0); s < NumSlots; s++ {
			if p.IsCaptured(s) {
				t.Errorf("slot %d not placed", s)
				continue
			}
			perColour[s.Colour()]++
		}
		if perColour[White] != 16 || perColour[Black] != 16 {
			t.Errorf("pieces per colour = %v; want 16 each", perColour)
		}
	})

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	tests := []struct {
		name   string
		row    int
		colour Colour
		kinds  []Kind
	}{
		{"white back rank", 7, White, backRank},
		{"white pawns", 6, White, []Kind{Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn}},
		{"black pawns", 1, Black, []Kind{Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn}},
		{"black back rank", 0, Black, backRank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for col, want := range tt.kinds {
				c, _, k := p.PieceAt(Square{Row: tt.row, Col: col})
				if c != tt.colour || k != want {
					t.Errorf("PieceAt(%d,%d) = (%v, %v); want (%v, %v)", tt.row, col, c, k, tt.colour, want)
				}
			}
		})
	}

	t.Run("middle rows empty", func(t *testing.T) {
		for row := 2; row < 6; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := p.SquareOccupant(Square{Row: row, Col: col}); got != NoSlot {
					t.Errorf("SquareOccupant(%d,%d) = %d; want empty", row, col, got)
				}
			}
		}
	})

	t.Run("kings on e-file", func(t *testing.T) {
		if got, _ := p.PieceSquare(KingSlot(White)); got != sq("e1") {
			t.Errorf("white king at %v; want e1", got)
		}
		if got, _ := p.PieceSquare(KingSlot(Black)); got != sq("e8") {
			t.Errorf("black king at %v; want e8", got)
		}
	})
}

func TestSquareOccupant_Bounds(t *testing.T) {
	p := NewGame()
	for _, s := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, NoSquare} {
		if got := p.SquareOccupant(s); got != NoSlot {
			t.Errorf("SquareOccupant(%+v) = %d; want NoSlot", s, got)
		}
		c, local, k := p.PieceAt(s)
		if c != NoColour || local != -1 || k != NoKind {
			t.Errorf("PieceAt(%+v) = (%v, %d, %v); want sentinel", s, c, local, k)
		}
	}
	if got := p.SquareOccupant(sq("a1")); got != MakeSlot(White, 0) {
		t.Errorf("SquareOccupant(a1) = %d; want 0", got)
	}
	if got := p.SquareOccupant(sq("h7")); got != MakeSlot(Black, 15) {
		t.Errorf("SquareOccupant(h7) = %d; want 31", got)
	}
}

func TestApplyMove(t *testing.T) {
	p := NewGame()
	pawn := MakeSlot(White, 12) // e2

	if err := p.ApplyMove(pawn, sq("e4")); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if got := p.SquareOccupant(sq("e4")); got != pawn {
		t.Errorf("e4 holds %d; want %d", got, pawn)
	}
	if got := p.SquareOccupant(sq("e2")); got != NoSlot {
		t.Errorf("e2 holds %d; want empty", got)
	}
	want := Record{Slot: pawn, DRow: -2, DCol: 0, Captured: NoSlot}
	if got, _ := p.LastMove(); got != want {
		t.Errorf("LastMove() = %+v; want %+v", got, want)
	}
	if got := p.CurrentMoverColour(); got != Black {
		t.Errorf("CurrentMoverColour() = %v; want Black", got)
	}
}

func TestApplyMove_Capture(t *testing.T) {
	p := NewGame()
	queen := MakeSlot(White, 3)
	victim := MakeSlot(Black, 11) // d7

	// Raw apply: no legality check, the queen jumps straight onto d7.
	if err := p.ApplyMove(queen, sq("d7")); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if !p.IsCaptured(victim) {
		t.Errorf("slot %d not marked captured", victim)
	}
	rec, _ := p.LastMove()
	if rec.Captured != victim {
		t.Errorf("record captured = %d; want %d", rec.Captured, victim)
	}
	if err := p.CheckConsistency(); err != nil {
		t.Errorf("CheckConsistency() = %v", err)
	}

	if _, err := p.UndoLastMove(); err != nil {
		t.Fatalf("UndoLastMove() error = %v", err)
	}
	if got, _ := p.PieceSquare(victim); got != sq("d7") {
		t.Errorf("victim restored to %v; want d7", got)
	}
	if got, _ := p.PieceSquare(queen); got != sq("d1") {
		t.Errorf("queen restored to %v; want d1", got)
	}
}

func TestApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *Position)
		slot    Slot
		to      Square
		wantErr error
	}{
		{"negative slot", nil, -1, Square{4, 4}, chesserrors.ErrInvalidSlot},
		{"slot too large", nil, NumSlots, Square{4, 4}, chesserrors.ErrInvalidSlot},
		{"target off board", nil, 12, Square{8, 4}, chesserrors.ErrInvalidSlot},
		{"null move", nil, 12, Square{6, 4}, chesserrors.ErrIllegalApply},
		{
			name: "captured slot",
			setup: func(p *Position) {
				_ = p.ApplyMove(MakeSlot(White, 3), sq("d7"))
			},
			slot:    MakeSlot(Black, 11),
			to:      sq("d5"),
			wantErr: chesserrors.ErrIllegalApply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewGame()
			if tt.setup != nil {
				tt.setup(p)
			}
			before := p.Ply()
			err := p.ApplyMove(tt.slot, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ApplyMove() error = %v; want %v", err, tt.wantErr)
			}
			if p.Ply() != before {
				t.Errorf("history grew on failed apply: %d -> %d", before, p.Ply())
			}
		})
	}
}

func TestUndoLastMove_EmptyHistory(t *testing.T) {
	p := NewGame()
	_, err := p.UndoLastMove()
	if !errors.Is(err, chesserrors.ErrEmptyHistory) {
		t.Errorf("UndoLastMove() error = %v; want ErrEmptyHistory", err)
	}
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	p := NewGame()
	grid, pieces := p.Grid(), p.Pieces()

	moves := []struct {
		slot Slot
		to   string
	}{
		{MakeSlot(White, 12), "e4"},
		{MakeSlot(Black, 12), "e5"},
		{MakeSlot(White, 6), "f3"},
		{MakeSlot(Black, 1), "c6"},
		{MakeSlot(White, 5), "b5"},
		{MakeSlot(Black, 8), "a6"},
		{MakeSlot(White, 5), "c6"}, // Bxc6
		{MakeSlot(Black, 11), "c6"}, // dxc6
		{MakeSlot(White, 6), "e5"}, // Nxe5
	}

	for i, m := range moves {
		if err := p.ApplyMove(m.slot, sq(m.to)); err != nil {
			t.Fatalf("move %d: ApplyMove() error = %v", i, err)
		}
		if err := p.CheckConsistency(); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	if p.Ply() != len(moves) {
		t.Errorf("Ply() = %d; want %d", p.Ply(), len(moves))
	}

	for i := range moves {
		if _, err := p.UndoLastMove(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
		if err := p.CheckConsistency(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}

	if diff := cmp.Diff(grid, p.Grid()); diff != "" {
		t.Errorf("grid mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(pieces, p.Pieces()); diff != "" {
		t.Errorf("pieces mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestCurrentMoverColour(t *testing.T) {
	p := NewGame()
	if p.CurrentMoverColour() != White {
		t.Fatal("empty history should give White")
	}
	_ = p.ApplyMove(MakeSlot(White, 1), sq("c3"))
	if p.CurrentMoverColour() != Black {
		t.Error("after a White move Black should move")
	}
	// The mover is derived from the last record, not from history parity.
	_ = p.ApplyMove(MakeSlot(White, 1), sq("d5"))
	if p.CurrentMoverColour() != Black {
		t.Error("after two White moves Black should still move")
	}
}

func TestClone(t *testing.T) {
	p := NewGame()
	_ = p.ApplyMove(MakeSlot(White, 12), sq("e4"))
	c := p.Clone()

	_ = c.ApplyMove(MakeSlot(Black, 12), sq("e5"))
	if p.Ply() != 1 {
		t.Errorf("original Ply() = %d; want 1", p.Ply())
	}
	if p.SquareOccupant(sq("e5")) != NoSlot {
		t.Error("clone mutation leaked into original")
	}
	if _, err := c.UndoLastMove(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p.Grid(), c.Grid()); diff != "" {
		t.Errorf("clone grid differs (-orig +clone):\n%s", diff)
	}
}

func TestCheckConsistency_Detects(t *testing.T) {
	p := NewGame()
	p.grid[4][4] = MakeSlot(White, 12) // stray copy of the e2 pawn
	err := p.CheckConsistency()
	if !errors.Is(err, chesserrors.ErrInconsistentPosition) {
		t.Errorf("CheckConsistency() = %v; want ErrInconsistentPosition", err)
	}
}

func TestSlotUnpack(t *testing.T) {
	tests := []struct {
		slot   Slot
		colour Colour
		local  int
		kind   Kind
	}{
		{0, White, 0, Rook},
		{1, White, 1, Knight},
		{3, White, 3, Queen},
		{4, White, 4, King},
		{6, White, 6, Knight},
		{15, White, 15, Pawn},
		{16, Black, 0, Rook},
		{20, Black, 4, King},
		{29, Black, 13, Pawn},
		{32, NoColour, -1, NoKind},
		{NoSlot, NoColour, -1, NoKind},
	}
	for _, tt := range tests {
		c, l, k := tt.slot.Unpack()
		if c != tt.colour || l != tt.local || k != tt.kind {
			t.Errorf("Slot(%d).Unpack() = (%v, %d, %v); want (%v, %d, %v)", tt.slot, c, l, k, tt.colour, tt.local, tt.kind)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a8", Square{0, 0}, true},
		{"h1", Square{7, 7}, true},
		{"e2", Square{6, 4}, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
	}
	for _, tt := range tests {
		got, ok := ParseSquare(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSquare(%q) = (%v, %v); want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && got.String() != tt.in {
			t.Errorf("Square.String() = %q; want %q", got.String(), tt.in)
		}
	}
}
