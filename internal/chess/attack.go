package chess

// IsSquareAttacked returns true if the square currently held by the given
// slot is attacked by a piece of the colour opposing defender. A captured or
// invalid slot is never attacked.
func (p *Position) IsSquareAttacked(defender Colour, s Slot) bool {
	if !s.Valid() {
		return false
	}
	sq := p.pieces[s]
	if sq == NoSquare {
		return false
	}
	return p.SquareAttacked(defender, sq)
}

// SquareAttacked returns true if any enemy of defender attacks sq.
func (p *Position) SquareAttacked(defender Colour, sq Square) bool {
	for _, dir := range Diagonals {
		if p.rayAttacked(defender, sq, dir, true) {
			return true
		}
	}
	for _, dir := range Orthogonals {
		if p.rayAttacked(defender, sq, dir, false) {
			return true
		}
	}

	for _, jump := range KnightJumps {
		occ := p.SquareOccupant(sq.Offset(jump[0], jump[1]))
		if occ != NoSlot && occ.Colour() != defender && occ.Kind() == Knight {
			return true
		}
	}
	return false
}

// rayAttacked walks outward from sq until the ray leaves the board or meets a
// piece, and reports whether that piece is an enemy attacking along the ray.
func (p *Position) rayAttacked(defender Colour, sq Square, dir [2]int, diagonal bool) bool {
	for k := 1; k <= MaxRayLength; k++ {
		target := sq.Offset(dir[0]*k, dir[1]*k)
		if !target.InBounds() {
			return false
		}
		occ := p.grid[target.Row][target.Col]
		if occ == NoSlot {
			continue
		}
		attacker := occ.Colour()
		if attacker == defender {
			return false
		}

		switch occ.Kind() {
		case King:
			return k == 1
		case Pawn:
			// The pawn captures toward sq only if sq lies one step along its forward direction.
			return diagonal && k == 1 && -dir[0] == attacker.Forward()
		case Bishop:
			return diagonal
		case Rook:
			return !diagonal
		case Queen:
			return true
		}
		return false
	}
	return false
}
