// Package hashing provides Zobrist keys for positions and a tracker that
// counts how often each position occurs.
package hashing

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

var (
	pieceKeys [chess.NumColours][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackKey  uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	blackKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Key returns the Zobrist key of the piece arrangement and side to move.
// Slot identity is not part of the key: two positions with the same kinds
// and colours on the same squares hash alike.
func Key(pos *chess.Position) uint64 {
	var key uint64
	for s, sq := range pos.Pieces() {
		if sq == chess.NoSquare {
			continue
		}
		slot := chess.Slot(s)
		key ^= pieceKeys[slot.Colour()][slot.Kind()][sq.Row*chess.BoardSize+sq.Col]
	}
	if pos.CurrentMoverColour() == chess.Black {
		key ^= blackKey
	}
	return key
}

// Occurrences replays the game of pos from its first position and counts
// how many times the current position has occurred, including now. pos is
// not modified.
func Occurrences(pos *chess.Position) int {
	replay := pos.Clone()
	records := replay.History()
	for range records {
		if _, err := replay.UndoLastMove(); err != nil {
			return 1
		}
	}

	t := NewTracker()
	t.Record(replay)
	for _, r := range records {
		from, err := replay.PieceSquare(r.Slot)
		if err != nil {
			break
		}
		if err := replay.ApplyMove(r.Slot, from.Offset(r.DRow, r.DCol)); err != nil {
			break
		}
		t.Record(replay)
	}
	return t.Count(Key(pos))
}
