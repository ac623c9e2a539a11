package engine

import (
	"golang.org/x/exp/maps"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// PieceValues maps a piece kind to its material value. Kinds missing from
// the map are worth nothing.
type PieceValues map[chess.Kind]int

// DefaultPieceValues returns the standard material table. The king is worth
// little because the game ends by checkmate, never by capturing it.
func DefaultPieceValues() PieceValues {
	return PieceValues{
		chess.King:   4,
		chess.Queen:  9,
		chess.Rook:   5,
		chess.Bishop: 3,
		chess.Knight: 3,
		chess.Pawn:   1,
	}
}

// Clone returns an independent copy of the table.
func (v PieceValues) Clone() PieceValues {
	out := make(PieceValues, len(v))
	maps.Copy(out, v)
	return out
}

// Over returns a copy of v with every entry of over replacing its own.
func (v PieceValues) Over(over PieceValues) PieceValues {
	out := v.Clone()
	maps.Copy(out, over)
	return out
}

// Evaluator scores positions by material.
type Evaluator struct {
	values PieceValues
}

// NewEvaluator creates an evaluator over a copy of values. A nil table
// selects DefaultPieceValues.
func NewEvaluator(values PieceValues) *Evaluator {
	if values == nil {
		values = DefaultPieceValues()
	}
	return &Evaluator{values: values.Clone()}
}

// Values returns a copy of the evaluator's piece values.
func (e *Evaluator) Values() PieceValues {
	return e.values.Clone()
}

// Evaluate returns the material balance from perspective's point of view:
// its own live pieces count positive, the opponent's negative.
func (e *Evaluator) Evaluate(pos *chess.Position, perspective chess.Colour) int {
	value := 0
	for s := chess.Slot(0); s < chess.NumSlots; s++ {
		if pos.IsCaptured(s) {
			continue
		}
		v := e.values[s.Kind()]
		if s.Colour() == perspective {
			value += v
		} else {
			value -= v
		}
	}
	return value
}

var defaultEvaluator = NewEvaluator(nil)

// StaticEvaluate scores the position with DefaultPieceValues.
func StaticEvaluate(pos *chess.Position, perspective chess.Colour) int {
	return defaultEvaluator.Evaluate(pos, perspective)
}
