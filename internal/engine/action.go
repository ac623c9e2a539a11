package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Action is a move of one slot to a target square.
type Action struct {
	Slot chess.Slot
	To   chess.Square
}

// NoAction is returned when no move applies, e.g. at a terminal node.
var NoAction = Action{Slot: chess.NoSlot, To: chess.NoSquare}

// IsNone reports whether the action is NoAction.
func (a Action) IsNone() bool {
	return a.Slot == chess.NoSlot
}

// Notation returns the action in long algebraic form ("e2e4") as seen from pos,
// which must be the position before the action is applied.
func (a Action) Notation(pos *chess.Position) string {
	if a.IsNone() {
		return "(none)"
	}
	from, err := pos.PieceSquare(a.Slot)
	if err != nil {
		return "(invalid)"
	}
	return from.String() + a.To.String()
}

// String returns the slot and target, e.g. "12->e4".
func (a Action) String() string {
	if a.IsNone() {
		return "(none)"
	}
	return fmt.Sprintf("%d->%s", a.Slot, a.To)
}

// ParseAction converts long algebraic notation ("e2e4") into an action of
// the piece standing on the source square. The move is not checked for
// legality; see Commit.
func ParseAction(pos *chess.Position, text string) (Action, error) {
	if len(text) != 4 {
		return NoAction, fmt.Errorf("move %q: want 4 characters: %w", text, errors.ErrIllegalMove)
	}
	from, ok := chess.ParseSquare(text[:2])
	if !ok {
		return NoAction, &errors.MoveError{Err: errors.ErrInvalidSlot, Slot: -1, From: text[:2], Ply: pos.Ply()}
	}
	to, ok := chess.ParseSquare(text[2:])
	if !ok {
		return NoAction, &errors.MoveError{Err: errors.ErrInvalidSlot, Slot: -1, From: text[:2], To: text[2:], Ply: pos.Ply()}
	}
	s := pos.SquareOccupant(from)
	if s == chess.NoSlot {
		return NoAction, &errors.MoveError{Err: errors.ErrIllegalMove, Slot: -1, From: from.String(), To: to.String(), Ply: pos.Ply()}
	}
	return Action{Slot: s, To: to}, nil
}

// IsLegal reports whether the action is among the legal actions of its slot
// and the slot belongs to the colour to move.
func IsLegal(pos *chess.Position, a Action) (bool, error) {
	if a.Slot.Colour() != pos.CurrentMoverColour() {
		return false, nil
	}
	targets, err := ActionsFor(pos, a.Slot)
	if err != nil {
		return false, err
	}
	return slices.Contains(targets, a.To), nil
}

// Commit applies the action if it is legal for the colour to move,
// returning ErrIllegalMove otherwise.
func Commit(pos *chess.Position, a Action) error {
	legal, err := IsLegal(pos, a)
	if err != nil {
		return err
	}
	if !legal {
		from, _ := pos.PieceSquare(a.Slot)
		return &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Slot: int(a.Slot),
			From: from.String(),
			To:   a.To.String(),
			Ply:  pos.Ply(),
		}
	}
	return pos.ApplyMove(a.Slot, a.To)
}

// CommitNotation parses and commits a long algebraic move.
func CommitNotation(pos *chess.Position, text string) (Action, error) {
	a, err := ParseAction(pos, text)
	if err != nil {
		return NoAction, err
	}
	if err := Commit(pos, a); err != nil {
		return NoAction, err
	}
	return a, nil
}
