package chess

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Record is one entry of the undo history: the moved slot, the row/col delta
// applied to it and the slot it captured (NoSlot if none).
type Record struct {
	Slot     Slot
	DRow     int
	DCol     int
	Captured Slot
}

// Position holds the board grid, the piece-position table and the move
// history. The grid and the table always agree: a slot is on square s in one
// exactly when the other says so.
type Position struct {
	grid    [BoardSize][BoardSize]Slot
	pieces  [NumSlots]Square
	history []Record

	// Colour to move when the history is empty.
	start Colour
}

// newEmptyPosition returns a position with no pieces placed.
func newEmptyPosition(start Colour) *Position {
	p := &Position{start: start}
	for row := range p.grid {
		for col := range p.grid[row] {
			p.grid[row][col] = NoSlot
		}
	}
	for i := range p.pieces {
		p.pieces[i] = NoSquare
	}
	return p
}

// NewGame creates a position in the standard starting setup with White to move.
func NewGame() *Position {
	p := newEmptyPosition(White)
	for _, c := range []Colour{White, Black} {
		for col := 0; col < BoardSize; col++ {
			p.place(MakeSlot(c, col), Square{Row: c.BackRow(), Col: col})
			p.place(MakeSlot(c, col+BoardSize), Square{Row: c.PawnRow(), Col: col})
		}
	}
	return p
}

// place puts a slot on an empty square during construction.
func (p *Position) place(s Slot, sq Square) {
	p.grid[sq.Row][sq.Col] = s
	p.pieces[s] = sq
}

// SquareOccupant returns the slot on the square, or NoSlot if the square is
// empty or off the board.
func (p *Position) SquareOccupant(sq Square) Slot {
	if !sq.InBounds() {
		return NoSlot
	}
	return p.grid[sq.Row][sq.Col]
}

// PieceAt returns (colour, local slot, kind) of the piece on the square, or
// (NoColour, -1, NoKind) if the square is empty or off the board.
func (p *Position) PieceAt(sq Square) (Colour, int, Kind) {
	return p.SquareOccupant(sq).Unpack()
}

// ColourAt returns the colour of the piece on the square, or NoColour.
func (p *Position) ColourAt(sq Square) Colour {
	return p.SquareOccupant(sq).Colour()
}

// PieceSquare returns the square of a slot, NoSquare if it has been captured.
func (p *Position) PieceSquare(s Slot) (Square, error) {
	if !s.Valid() {
		return NoSquare, &errors.MoveError{Err: errors.ErrInvalidSlot, Slot: int(s), Ply: len(p.history)}
	}
	return p.pieces[s], nil
}

// IsCaptured reports whether a valid slot is off the board.
func (p *Position) IsCaptured(s Slot) bool {
	return s.Valid() && p.pieces[s] == NoSquare
}

// ApplyMove moves a slot to the target square, capturing any occupant, and
// pushes an undo record. No legality checking is performed.
func (p *Position) ApplyMove(s Slot, to Square) error {
	if !s.Valid() || !to.InBounds() {
		return &errors.MoveError{Err: errors.ErrInvalidSlot, Slot: int(s), To: to.String(), Ply: len(p.history)}
	}
	from := p.pieces[s]
	if from == NoSquare {
		return &errors.MoveError{Err: errors.ErrIllegalApply, Slot: int(s), To: to.String(), Ply: len(p.history)}
	}
	if from == to {
		return &errors.MoveError{Err: errors.ErrIllegalApply, Slot: int(s), From: from.String(), To: to.String(), Ply: len(p.history)}
	}

	captured := p.grid[to.Row][to.Col]
	p.grid[from.Row][from.Col] = NoSlot
	if captured != NoSlot {
		p.pieces[captured] = NoSquare
	}
	p.grid[to.Row][to.Col] = s
	p.pieces[s] = to

	p.history = append(p.history, Record{
		Slot:     s,
		DRow:     to.Row - from.Row,
		DCol:     to.Col - from.Col,
		Captured: captured,
	})
	return nil
}

// UndoLastMove reverts the most recent ApplyMove and returns its record.
func (p *Position) UndoLastMove() (Record, error) {
	n := len(p.history)
	if n == 0 {
		return Record{}, errors.ErrEmptyHistory
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	to := p.pieces[rec.Slot]
	p.grid[to.Row][to.Col] = rec.Captured
	if rec.Captured != NoSlot {
		p.pieces[rec.Captured] = to
	}
	from := to.Offset(-rec.DRow, -rec.DCol)
	p.grid[from.Row][from.Col] = rec.Slot
	p.pieces[rec.Slot] = from
	return rec, nil
}

// CurrentMoverColour returns the colour to move: the starting colour when no
// move has been made, otherwise the opposite of the last mover.
func (p *Position) CurrentMoverColour() Colour {
	if len(p.history) == 0 {
		return p.start
	}
	return p.history[len(p.history)-1].Slot.Colour().Opposite()
}

// StartingColour returns the colour that was to move when the position was created.
func (p *Position) StartingColour() Colour {
	return p.start
}

// Ply returns the number of moves in the history.
func (p *Position) Ply() int {
	return len(p.history)
}

// History returns a copy of the undo history, oldest first.
func (p *Position) History() []Record {
	out := make([]Record, len(p.history))
	copy(out, p.history)
	return out
}

// LastMove returns the most recent record, if any.
func (p *Position) LastMove() (Record, bool) {
	if len(p.history) == 0 {
		return Record{}, false
	}
	return p.history[len(p.history)-1], true
}

// Grid returns a copy of the board grid.
func (p *Position) Grid() [BoardSize][BoardSize]Slot {
	return p.grid
}

// Pieces returns a copy of the piece-position table.
func (p *Position) Pieces() [NumSlots]Square {
	return p.pieces
}

// Clone returns an independent deep copy of the position, history included.
func (p *Position) Clone() *Position {
	c := &Position{
		grid:   p.grid,
		pieces: p.pieces,
		start:  p.start,
	}
	if len(p.history) > 0 {
		c.history = make([]Record, len(p.history))
		copy(c.history, p.history)
	}
	return c
}

// CheckConsistency verifies that the grid and the piece table agree.
func (p *Position) CheckConsistency() error {
	for i, sq := range p.pieces {
		if sq == NoSquare {
			continue
		}
		if !sq.InBounds() {
			return fmt.Errorf("slot %d at off-board square %v: %w", i, sq, errors.ErrInconsistentPosition)
		}
		if got := p.grid[sq.Row][sq.Col]; got != Slot(i) {
			return fmt.Errorf("slot %d -> %v but grid holds %d: %w", i, sq, got, errors.ErrInconsistentPosition)
		}
	}
	for row := range p.grid {
		for col, s := range p.grid[row] {
			if s == NoSlot {
				continue
			}
			sq := Square{Row: row, Col: col}
			if !s.Valid() {
				return fmt.Errorf("grid %v holds invalid slot %d: %w", sq, s, errors.ErrInconsistentPosition)
			}
			if p.pieces[s] != sq {
				return fmt.Errorf("grid %v -> %d but slot is at %v: %w", sq, s, p.pieces[s], errors.ErrInconsistentPosition)
			}
		}
	}
	return nil
}
