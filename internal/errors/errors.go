// Package errors provides sentinel errors and error types for minimax-chess-go.
// It defines the failure conditions of the position, move generator and search
// layers, and a structured error type that preserves move context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSlot indicates a slot index outside [0,32) or a square outside the board.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrIllegalApply indicates a raw apply of a captured piece or a null move.
	ErrIllegalApply = errors.New("illegal apply")

	// ErrEmptyHistory indicates an undo with no prior moves.
	ErrEmptyHistory = errors.New("empty move history")

	// ErrIllegalMove indicates a committed move that is not among the piece's legal actions.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed or unrepresentable FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInconsistentPosition indicates the board grid and piece table disagree.
	ErrInconsistentPosition = errors.New("inconsistent position")
)

// MoveError wraps errors with move context: the slot involved, the squares
// (in algebraic form) and the ply at which the failure occurred.
type MoveError struct {
	Err  error  // The underlying error
	Slot int    // Slot index (-1 if not applicable)
	From string // Source square, e.g. "e2" (if known)
	To   string // Target square, e.g. "e4" (if known)
	Ply  int    // Number of moves in the history when the error occurred
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Slot >= 0 {
		parts = append(parts, fmt.Sprintf("slot %d", e.Slot))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
