// Package engine provides legal move generation, terminal detection and a
// fixed-depth minimax search over a chess.Position.
package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// allLines holds the diagonal then orthogonal directions, the king and queen order.
var allLines = append(append([][2]int{}, chess.Diagonals[:]...), chess.Orthogonals[:]...)

// PieceActions pairs a slot with its legal target squares.
type PieceActions struct {
	Slot    chess.Slot
	Targets []chess.Square
}

// ActionsFor returns the legal target squares of a slot: its pseudo-legal
// moves minus those that leave its own king attacked. A captured slot has
// no actions.
func ActionsFor(pos *chess.Position, s chess.Slot) ([]chess.Square, error) {
	from, err := pos.PieceSquare(s)
	if err != nil {
		return nil, err
	}
	if from == chess.NoSquare {
		return nil, nil
	}

	colour := s.Colour()
	var candidates []chess.Square

	switch s.Kind() {
	case chess.King:
		candidates = stepTargets(pos, from, colour, allLines)
	case chess.Queen:
		candidates = rayTargets(pos, from, colour, allLines)
	case chess.Bishop:
		candidates = rayTargets(pos, from, colour, chess.Diagonals[:])
	case chess.Knight:
		candidates = stepTargets(pos, from, colour, chess.KnightJumps[:])
	case chess.Rook:
		candidates = rayTargets(pos, from, colour, chess.Orthogonals[:])
	case chess.Pawn:
		candidates = pawnTargets(pos, from, colour)
	}

	var legal []chess.Square
	for _, to := range candidates {
		exposed, err := exposesKing(pos, s, to)
		if err != nil {
			return nil, err
		}
		if !exposed {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// stepTargets returns the single-step destinations not held by a friendly piece.
func stepTargets(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var out []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.InBounds() || pos.ColourAt(to) == colour {
			continue
		}
		out = append(out, to)
	}
	return out
}

// rayTargets extends each direction until blocked. A friendly blocker is
// excluded; an enemy blocker is included and ends the ray.
func rayTargets(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var out []chess.Square
	for _, dir := range dirs {
		for k := 1; k <= chess.MaxRayLength; k++ {
			to := from.Offset(dir[0]*k, dir[1]*k)
			if !to.InBounds() {
				break
			}
			occupant := pos.ColourAt(to)
			if occupant == colour {
				break
			}
			out = append(out, to)
			if occupant != chess.NoColour {
				break
			}
		}
	}
	return out
}

// pawnTargets returns forward pushes onto empty squares (two from the start
// row) and diagonal-forward captures of enemy pieces.
func pawnTargets(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	var out []chess.Square
	forward := colour.Forward()

	steps := 1
	if from.Row == colour.PawnRow() {
		steps = 2
	}
	for k := 1; k <= steps; k++ {
		to := from.Offset(forward*k, 0)
		if !to.InBounds() || pos.SquareOccupant(to) != chess.NoSlot {
			break
		}
		out = append(out, to)
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(forward, dc)
		if pos.ColourAt(to) == colour.Opposite() {
			out = append(out, to)
		}
	}
	return out
}

// exposesKing reports whether moving s to the target leaves the mover's king attacked.
func exposesKing(pos *chess.Position, s chess.Slot, to chess.Square) (bool, error) {
	colour := s.Colour()
	return withMove(pos, s, to, func() (bool, error) {
		return pos.IsSquareAttacked(colour, chess.KingSlot(colour)), nil
	})
}

// PlayerActions returns, in local slot order, every piece of the colour that
// has at least one legal action.
func PlayerActions(pos *chess.Position, colour chess.Colour) ([]PieceActions, error) {
	if colour != chess.White && colour != chess.Black {
		return nil, &errors.MoveError{Err: errors.ErrInvalidSlot, Slot: -1, Ply: pos.Ply()}
	}
	var out []PieceActions
	for local := 0; local < chess.SlotsPerSide; local++ {
		s := chess.MakeSlot(colour, local)
		targets, err := ActionsFor(pos, s)
		if err != nil {
			return nil, err
		}
		if len(targets) > 0 {
			out = append(out, PieceActions{Slot: s, Targets: targets})
		}
	}
	return out, nil
}

// IsTerminal reports whether the colour's king is attacked and has no move
// of its own. Interpositions and captures by other pieces are not considered.
func IsTerminal(pos *chess.Position, colour chess.Colour) bool {
	king := chess.KingSlot(colour)
	if !pos.IsSquareAttacked(colour, king) {
		return false
	}
	targets, err := ActionsFor(pos, king)
	return err == nil && len(targets) == 0
}

// InCheck reports whether the colour's king is attacked.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	return pos.IsSquareAttacked(colour, chess.KingSlot(colour))
}
