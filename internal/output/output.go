// Package output renders positions and search results as text or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// slotGridRule is the rule printed above and below the slot grid.
var slotGridRule = strings.Repeat("-", chess.BoardSize*3+1)

// SlotGrid renders the grid as slot indices, one bracketed row per rank
// from rank 8 down, with blanks for empty squares.
func SlotGrid(pos *chess.Position) string {
	var sb strings.Builder
	grid := pos.Grid()
	sb.WriteString(slotGridRule)
	sb.WriteByte('\n')
	for _, row := range grid {
		cells := make([]string, len(row))
		for col, s := range row {
			if s == chess.NoSlot {
				cells[col] = "  "
			} else {
				cells[col] = fmt.Sprintf("%2d", s)
			}
		}
		sb.WriteString("[" + strings.Join(cells, ",") + "]\n")
	}
	sb.WriteString(slotGridRule)
	sb.WriteByte('\n')
	return sb.String()
}

// Diagram renders the position with FEN piece letters, rank numbers on the
// left and file letters underneath.
func Diagram(pos *chess.Position) string {
	var sb strings.Builder
	grid := pos.Grid()
	for row := range grid {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for col, s := range grid[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if s == chess.NoSlot {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(chess.PieceLetter(s))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Status describes the side to move, e.g. "White to move", "Black to move,
// in check" or "Black is mated".
func Status(pos *chess.Position) string {
	mover := pos.CurrentMoverColour()
	switch {
	case engine.IsTerminal(pos, mover):
		return fmt.Sprintf("%s is mated", mover)
	case engine.InCheck(pos, mover):
		return fmt.Sprintf("%s to move, in check", mover)
	}
	return fmt.Sprintf("%s to move", mover)
}

// HistoryNotation returns the moves played so far in long algebraic form,
// oldest first. pos is not modified.
func HistoryNotation(pos *chess.Position) []string {
	replay := pos.Clone()
	records := replay.History()
	for range records {
		if _, err := replay.UndoLastMove(); err != nil {
			return nil
		}
	}

	out := make([]string, 0, len(records))
	for _, r := range records {
		from, err := replay.PieceSquare(r.Slot)
		if err != nil {
			return out
		}
		to := from.Offset(r.DRow, r.DCol)
		out = append(out, from.String()+to.String())
		if err := replay.ApplyMove(r.Slot, to); err != nil {
			return out
		}
	}
	return out
}

// SearchSummary renders a one-line description of a search result.
func SearchSummary(pos *chess.Position, depth int, maximizing chess.Colour, r engine.Result) string {
	if r.Action.IsNone() {
		return fmt.Sprintf("depth %d: no move, value %d for %s (%d nodes)", depth, r.Value, maximizing, r.Nodes)
	}
	return fmt.Sprintf("depth %d: %s (slot %d) value %d for %s (%d nodes)",
		depth, r.Action.Notation(pos), r.Action.Slot, r.Value, maximizing, r.Nodes)
}
