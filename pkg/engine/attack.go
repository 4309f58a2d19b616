package engine

// IsAttacked reports whether any piece of the given side has a
// pseudo-legal capturing move onto the square. The geometry runs in
// reverse: rays are cast outward from the target for sliders, direct
// offsets are probed for knights, kings and pawns. Every occupant,
// including either king, blocks rays normally.
func IsAttacked(p *Position, sq Square, by Color) bool {
	return pawnAttacks(p, sq, by) ||
		offsetAttacks(p, sq, PieceOf(Knight, by), knightOffsets[:]) ||
		offsetAttacks(p, sq, PieceOf(King, by), kingOffsets[:]) ||
		slideAttacks(p, sq, diagonalDirs[:], PieceOf(Bishop, by), PieceOf(Queen, by)) ||
		slideAttacks(p, sq, straightDirs[:], PieceOf(Rook, by), PieceOf(Queen, by))
}

// InCheck reports whether the side to move's king is attacked.
func InCheck(p *Position) bool {
	return kingInCheck(p, p.turn)
}

// kingInCheck reports whether the given side's king is attacked,
// regardless of whose turn it is.
func kingInCheck(p *Position, side Color) bool {
	king := p.kingSquare(side)
	if king == NoSquare {
		return false
	}
	return IsAttacked(p, king, side.Other())
}

func pawnAttacks(p *Position, sq Square, by Color) bool {
	pawn := PieceOf(Pawn, by)
	// A pawn attacking sq sits one rank back from sq, on an adjacent file.
	rank := sq.Rank() - 1
	if by == Black {
		rank = sq.Rank() + 1
	}
	for _, df := range [2]int{-1, 1} {
		if onBoard(sq.File()+df, rank) && p.board[squareAt(sq.File()+df, rank)] == pawn {
			return true
		}
	}
	return false
}

func offsetAttacks(p *Position, sq Square, attacker Piece, offsets [][2]int) bool {
	for _, off := range offsets {
		if onBoard(sq.File()+off[0], sq.Rank()+off[1]) &&
			p.board[squareAt(sq.File()+off[0], sq.Rank()+off[1])] == attacker {
			return true
		}
	}
	return false
}

func slideAttacks(p *Position, sq Square, dirs [][2]int, attacker1, attacker2 Piece) bool {
	for _, dir := range dirs {
		file, rank := sq.File()+dir[0], sq.Rank()+dir[1]
		for onBoard(file, rank) {
			pc := p.board[squareAt(file, rank)]
			if pc != NoPiece {
				if pc == attacker1 || pc == attacker2 {
					return true
				}
				break
			}
			file += dir[0]
			rank += dir[1]
		}
	}
	return false
}
