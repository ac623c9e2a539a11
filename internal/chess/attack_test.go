package chess

import "testing"

func TestSquareAttacked(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		square   string
		defender Colour
		want     bool
	}{
		{"start e1 safe", InitialFEN, "e1", White, false},
		{"start f3 covered by white", InitialFEN, "f3", Black, true},
		{"rook on open file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", "e1", White, true},
		{"rook blocked by friend", "4r2k/8/8/8/8/8/4P3/4K3 w - - 0 1", "e1", White, false},
		{"rook blocked by enemy", "4r2k/8/8/8/8/8/4p3/4K3 w - - 0 1", "e1", White, false},
		{"rook does not attack diagonally", "7k/8/8/r7/8/8/8/4K3 w - - 0 1", "e1", White, false},
		{"bishop diagonal", "7k/8/8/b7/8/8/8/4K3 w - - 0 1", "e1", White, true},
		{"bishop does not attack straight", "4b2k/8/8/8/8/8/8/4K3 w - - 0 1", "e1", White, false},
		{"queen straight", "4q2k/8/8/8/8/8/8/4K3 w - - 0 1", "e1", White, true},
		{"queen diagonal", "7k/8/8/q7/8/8/8/4K3 w - - 0 1", "e1", White, true},
		{"knight jump", "7k/8/8/8/8/3n4/8/4K3 w - - 0 1", "e1", White, true},
		{"knight jump over pieces", "7k/8/8/8/8/3n4/3PPP2/3PKP2 w - - 0 1", "e1", White, true},
		{"knight wrong offset", "7k/8/8/8/8/4n3/8/4K3 w - - 0 1", "e1", White, false},
		{"adjacent king", "8/8/8/8/8/8/3k4/4K3 w - - 0 1", "e1", White, true},
		{"distant king", "8/8/8/8/8/3k4/8/4K3 w - - 0 1", "e1", White, false},
		{"black pawn attacks downward", "7k/8/8/8/8/8/3p4/4K3 w - - 0 1", "e1", White, true},
		{"black pawn behind does not attack", "7k/8/8/8/8/8/8/3pK3 w - - 0 1", "e1", White, false},
		{"white pawn attacks upward", "8/8/8/3k4/4P3/8/8/4K3 b - - 0 1", "d5", Black, true},
		{"white pawn does not attack backward", "8/8/8/8/4P3/3k4/8/4K3 b - - 0 1", "d3", Black, false},
		{"pawn directly ahead does not attack", "7k/8/8/8/8/8/4p3/4K3 w - - 0 1", "e1", White, false},
		{"own pieces never attack", "7k/8/8/8/8/8/3Q4/4K3 w - - 0 1", "e1", White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", tt.fen, err)
			}
			if got := p.SquareAttacked(tt.defender, sq(tt.square)); got != tt.want {
				t.Errorf("SquareAttacked(%v, %s) = %v; want %v", tt.defender, tt.square, got, tt.want)
			}
		})
	}
}

func TestIsSquareAttacked_Slot(t *testing.T) {
	p, err := ParseFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsSquareAttacked(White, KingSlot(White)) {
		t.Error("white king on e1 should be attacked by rook e8")
	}
	if p.IsSquareAttacked(Black, KingSlot(Black)) {
		t.Error("black king on h8 should be safe")
	}
	if p.IsSquareAttacked(White, NoSlot) {
		t.Error("invalid slot should never be attacked")
	}
	if p.IsSquareAttacked(White, MakeSlot(White, 3)) {
		t.Error("absent queen slot should never be attacked")
	}
}
