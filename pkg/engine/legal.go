package engine

// LegalMoves derives the legal subset of the pseudo-legal moves: each
// candidate is applied to a scratch copy and rejected if it leaves the
// mover's own king attacked. Castling candidates arrive here already
// vetted for the king-path rule; both filters compose.
func LegalMoves(p *Position) []Move {
	pseudo := PseudoLegalMoves(p)
	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !kingInCheck(p.applyUnchecked(m), p.turn) {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalMovesFrom returns the legal moves starting on the given square.
// UIs use it to highlight the targets of a selected piece.
func LegalMovesFrom(p *Position, from Square) []Move {
	var moves []Move
	for _, m := range LegalMoves(p) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}
