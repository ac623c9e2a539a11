package output

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN        string      `json:"fen"`
	SideToMove string      `json:"sideToMove"`
	Ply        int         `json:"ply"`
	InCheck    bool        `json:"inCheck"`
	Terminal   bool        `json:"terminal"`
	Key        string      `json:"key"`
	Repeats    int         `json:"repeats"`
	Board      []string    `json:"board"`
	Pieces     []JSONPiece `json:"pieces"`
	History    []string    `json:"history,omitempty"`
}

// JSONPiece represents one slot of the piece table.
type JSONPiece struct {
	Slot     int    `json:"slot"`
	Colour   string `json:"colour"`
	Kind     string `json:"kind"`
	Square   string `json:"square,omitempty"`
	Captured bool   `json:"captured,omitempty"`
}

// JSONActions lists the legal targets of one slot.
type JSONActions struct {
	Slot    int      `json:"slot"`
	From    string   `json:"from,omitempty"`
	Targets []string `json:"targets"`
}

// JSONSearch represents a search result in JSON format.
type JSONSearch struct {
	Depth      int    `json:"depth"`
	Maximizing string `json:"maximizing"`
	Move       string `json:"move,omitempty"`
	Slot       int    `json:"slot"`
	To         string `json:"to,omitempty"`
	Value      int    `json:"value"`
	Nodes      int    `json:"nodes"`
}

// PositionToJSON converts a position to its JSON form.
func PositionToJSON(pos *chess.Position) *JSONPosition {
	mover := pos.CurrentMoverColour()
	jp := &JSONPosition{
		FEN:        pos.FEN(),
		SideToMove: mover.String(),
		Ply:        pos.Ply(),
		InCheck:    engine.InCheck(pos, mover),
		Terminal:   engine.IsTerminal(pos, mover),
		Key:        fmt.Sprintf("%016x", hashing.Key(pos)),
		Repeats:    hashing.Occurrences(pos),
		History:    HistoryNotation(pos),
	}

	grid := pos.Grid()
	for _, row := range grid {
		line := make([]byte, 0, chess.BoardSize)
		for _, s := range row {
			if s == chess.NoSlot {
				line = append(line, '.')
			} else {
				line = append(line, chess.PieceLetter(s))
			}
		}
		jp.Board = append(jp.Board, string(line))
	}

	for i, sq := range pos.Pieces() {
		s := chess.Slot(i)
		p := JSONPiece{
			Slot:   i,
			Colour: s.Colour().String(),
			Kind:   s.Kind().String(),
		}
		if sq == chess.NoSquare {
			p.Captured = true
		} else {
			p.Square = sq.String()
		}
		jp.Pieces = append(jp.Pieces, p)
	}
	return jp
}

// ActionsToJSON converts a slot's legal targets to JSON form.
func ActionsToJSON(pos *chess.Position, s chess.Slot, targets []chess.Square) *JSONActions {
	ja := &JSONActions{Slot: int(s), Targets: make([]string, 0, len(targets))}
	if from, err := pos.PieceSquare(s); err == nil && from != chess.NoSquare {
		ja.From = from.String()
	}
	for _, to := range targets {
		ja.Targets = append(ja.Targets, to.String())
	}
	return ja
}

// SearchToJSON converts a search result to JSON form. pos must be the
// position the search ran on.
func SearchToJSON(pos *chess.Position, depth int, maximizing chess.Colour, r engine.Result) *JSONSearch {
	js := &JSONSearch{
		Depth:      depth,
		Maximizing: maximizing.String(),
		Slot:       int(r.Action.Slot),
		Value:      r.Value,
		Nodes:      r.Nodes,
	}
	if !r.Action.IsNone() {
		js.Move = r.Action.Notation(pos)
		js.To = r.Action.To.String()
	}
	return js
}
