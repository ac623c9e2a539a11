package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree depth plies deep,
// alternating sides from the colour to move.
func Perft(pos *chess.Position, depth int) (int, error) {
	if depth == 0 {
		return 1, nil
	}
	actions, err := PlayerActions(pos, pos.CurrentMoverColour())
	if err != nil {
		return 0, err
	}

	total := 0
	for _, pa := range actions {
		if depth == 1 {
			total += len(pa.Targets)
			continue
		}
		for _, to := range pa.Targets {
			n, err := withMove(pos, pa.Slot, to, func() (int, error) {
				return Perft(pos, depth-1)
			})
			if err != nil {
				return 0, err
			}
			total += n
		}
	}
	return total, nil
}
