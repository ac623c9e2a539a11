package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MaxDepth bounds the search depth; the search is exhaustive so anything
// deeper does not finish in useful time.
const MaxDepth = 8

// SearchConfig holds settings for the minimax search.
type SearchConfig struct {
	// Depth is the number of plies searched
	Depth int

	// Workers is the number of goroutines searching root actions (1 = serial)
	Workers int

	// PieceValues overrides the material table; nil keeps the defaults
	PieceValues map[chess.Kind]int

	// Maximizing is the colour scores are reported for; NoColour means the side to move
	Maximizing chess.Colour

	// SelfPlay is the number of plies to play by searching both sides (0 = one search)
	SelfPlay int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:      2,
		Workers:    1,
		Maximizing: chess.NoColour,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside [0,%d]: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.SelfPlay < 0 {
		return fmt.Errorf("self-play plies %d < 0: %w", s.SelfPlay, errors.ErrInvalidConfig)
	}
	return nil
}

// ParsePieceValues parses a list such as "Q=9,R=5,P=1". Letters are the
// piece letters K Q B N R P in either case.
func ParsePieceValues(spec string) (map[chess.Kind]int, error) {
	values := make(map[chess.Kind]int)
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		letter, number, ok := strings.Cut(field, "=")
		if !ok || len(letter) != 1 {
			return nil, fmt.Errorf("piece value %q: want LETTER=VALUE: %w", field, errors.ErrInvalidConfig)
		}
		kind := chess.KindFromLetter(letter[0])
		if kind == chess.NoKind {
			return nil, fmt.Errorf("piece value %q: unknown piece %q: %w", field, letter, errors.ErrInvalidConfig)
		}
		v, err := strconv.Atoi(strings.TrimSpace(number))
		if err != nil {
			return nil, fmt.Errorf("piece value %q: %w", field, errors.ErrInvalidConfig)
		}
		values[kind] = v
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("piece values %q: empty: %w", spec, errors.ErrInvalidConfig)
	}
	return values, nil
}

// ParseColour parses "white", "black" or "" (the side to move).
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "", "mover":
		return chess.NoColour, nil
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.NoColour, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}
