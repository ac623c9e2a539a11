package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// KindFromLetter converts a FEN piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch unicode.ToUpper(rune(c)) {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'R':
		return Rook
	case 'P':
		return Pawn
	}
	return NoKind
}

// ParseFEN builds a position from the piece placement and side-to-move
// fields of a FEN string. Each piece takes the first free slot of its kind,
// so a position needs no more pieces of a kind than the slot table holds.
// Castling, en passant and clock fields are accepted and ignored.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	start := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			start = Black
		default:
			return nil, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	p := newEmptyPosition(start)
	if err := parsePlacement(p, parts[0]); err != nil {
		return nil, err
	}
	for _, c := range []Colour{White, Black} {
		if p.pieces[KingSlot(c)] == NoSquare {
			return nil, fmt.Errorf("missing %s king: %w", c, errors.ErrInvalidFEN)
		}
	}
	return p, nil
}

// parsePlacement parses the piece placement field into p.
func parsePlacement(p *Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := KindFromLetter(c)
			if kind == NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col >= BoardSize {
				return fmt.Errorf("rank %d overflows: %w", BoardSize-row, errors.ErrInvalidFEN)
			}
			colour := White
			if unicode.IsLower(rune(c)) {
				colour = Black
			}
			s := p.freeSlot(colour, kind)
			if s == NoSlot {
				return fmt.Errorf("too many %s %ss: %w", colour, kind, errors.ErrInvalidFEN)
			}
			p.place(s, Square{Row: row, Col: col})
			col++
		}
		if col != BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// freeSlot returns the first unplaced slot of the colour holding kind.
func (p *Position) freeSlot(c Colour, kind Kind) Slot {
	for local, k := range slotKinds {
		s := MakeSlot(c, local)
		if k == kind && p.pieces[s] == NoSquare {
			return s
		}
	}
	return NoSlot
}

// FEN returns the position in FEN. Castling and en passant are always "-".
func (p *Position) FEN() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			s := p.grid[row][col]
			if s == NoSlot {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(PieceLetter(s))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	side := "w"
	if p.CurrentMoverColour() == Black {
		side = "b"
	}
	plies := len(p.history)
	if p.start == Black {
		plies++
	}
	fmt.Fprintf(&sb, " %s - - 0 %d", side, 1+plies/2)
	return sb.String()
}

// PieceLetter returns the FEN letter of a slot: uppercase for White.
func PieceLetter(s Slot) byte {
	letter := s.Kind().Letter()
	if s.Colour() == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
