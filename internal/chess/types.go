// Package chess provides the slot-indexed chess position: piece identity,
// the board grid, move application with undo, and attack queries.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota - 1
	White           // light, moves first, starts on row 7
	Black           // dark, starts on row 0
)

// NumColours is the number of playing colours.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance for the colour.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row on which the colour's pawns start.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// BackRow returns the row on which the colour's pieces start.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota - 1
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumKinds = iota - 1
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "None"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Board and slot dimensions.
const (
	BoardSize     = 8
	SlotsPerSide  = 16
	NumSlots      = NumColours * SlotsPerSide
	MaxRayLength  = BoardSize - 1
	KingLocalSlot = 4
)

// slotKinds maps a local slot to its piece kind. Local slots 0-7 sit on the
// back row in column order; 8-15 are the pawns.
var slotKinds = [SlotsPerSide]Kind{
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
	Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn,
}

// LocalKind returns the kind stored in a local slot, or NoKind when out of range.
func LocalKind(local int) Kind {
	if local < 0 || local >= SlotsPerSide {
		return NoKind
	}
	return slotKinds[local]
}

// Slot identifies one of the 32 pieces for the lifetime of a position.
// It encodes colour*16 + local slot.
type Slot int

// NoSlot marks an empty square or an absent piece.
const NoSlot Slot = -1

// MakeSlot packs a colour and a local slot into a slot index.
func MakeSlot(c Colour, local int) Slot {
	return Slot(int(c)*SlotsPerSide + local)
}

// KingSlot returns the slot holding the king of the given colour.
func KingSlot(c Colour) Slot {
	return MakeSlot(c, KingLocalSlot)
}

// Valid reports whether the slot lies in [0,32).
func (s Slot) Valid() bool {
	return s >= 0 && s < NumSlots
}

// Colour returns the colour of the slot, or NoColour for an invalid slot.
func (s Slot) Colour() Colour {
	if !s.Valid() {
		return NoColour
	}
	return Colour(int(s) / SlotsPerSide)
}

// Local returns the local slot within the colour, or -1 for an invalid slot.
func (s Slot) Local() int {
	if !s.Valid() {
		return -1
	}
	return int(s) % SlotsPerSide
}

// Kind returns the piece kind of the slot, or NoKind for an invalid slot.
func (s Slot) Kind() Kind {
	return LocalKind(s.Local())
}

// Unpack returns (colour, local, kind), all -1 for an invalid slot.
func (s Slot) Unpack() (Colour, int, Kind) {
	return s.Colour(), s.Local(), s.Kind()
}

// Square is a (row, col) board coordinate. Row 0 is rank 8, col 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare marks a captured piece in the piece-position table.
var NoSquare = Square{Row: -1, Col: -1}

// InBounds reports whether the square lies on the 8x8 board.
func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

// Offset returns the square displaced by (dr, dc).
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns the algebraic name of the square, e.g. "e2".
func (sq Square) String() string {
	if !sq.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '8'-sq.Row)
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	col := int(s[0]) - 'a'
	row := '8' - int(s[1])
	sq := Square{Row: row, Col: col}
	if !sq.InBounds() {
		return NoSquare, false
	}
	return sq, true
}

// Ray directions shared by attack detection and move generation.
var (
	Diagonals   = [4][2]int{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	Orthogonals = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	KnightJumps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {2, -1}, {2, 1}, {1, -2}, {1, 2}}
)
