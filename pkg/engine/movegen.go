package engine

// Direction offsets for piece movement, as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// promotionKinds are the choices offered when a pawn reaches the far rank.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates every move that obeys piece geometry and
// occupancy for the side to move, ignoring whether the mover's own king
// would be left in check. Castling candidates are the exception: their
// king-path attack test happens here because no capture-based filter
// covers "the king may not pass through check". Callers must not depend
// on the order of the returned moves.
func PseudoLegalMoves(p *Position) []Move {
	moves := make([]Move, 0, 48)
	for sq := A1; sq <= H8; sq++ {
		pc := p.board[sq]
		if pc == NoPiece || pc.Color() != p.turn {
			continue
		}
		switch pc.Kind() {
		case Pawn:
			moves = pawnMoves(p, sq, moves)
		case Knight:
			moves = jumpMoves(p, sq, knightOffsets[:], moves)
		case Bishop:
			moves = slideMoves(p, sq, diagonalDirs[:], moves)
		case Rook:
			moves = slideMoves(p, sq, straightDirs[:], moves)
		case Queen:
			moves = slideMoves(p, sq, diagonalDirs[:], moves)
			moves = slideMoves(p, sq, straightDirs[:], moves)
		case King:
			moves = jumpMoves(p, sq, kingOffsets[:], moves)
			moves = castleMoves(p, sq, moves)
		}
	}
	return moves
}

// appendPawnMove expands a pawn arrival on the far rank into the four
// promotion candidates; anywhere else it appends the single move.
func appendPawnMove(moves []Move, from, to Square, enPassant bool) []Move {
	if to.Rank() == 0 || to.Rank() == 7 {
		for _, k := range promotionKinds {
			moves = append(moves, Move{From: from, To: to, Promotion: k})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, EnPassant: enPassant})
}

func pawnMoves(p *Position, from Square, moves []Move) []Move {
	us := p.turn
	dir := 1
	startRank := 1
	if us == Black {
		dir = -1
		startRank = 6
	}
	file, rank := from.File(), from.Rank()

	// Single and double pushes.
	if onBoard(file, rank+dir) && p.board[squareAt(file, rank+dir)] == NoPiece {
		moves = appendPawnMove(moves, from, squareAt(file, rank+dir), false)
		if rank == startRank && p.board[squareAt(file, rank+2*dir)] == NoPiece {
			moves = append(moves, Move{From: from, To: squareAt(file, rank+2*dir)})
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		if !onBoard(file+df, rank+dir) {
			continue
		}
		to := squareAt(file+df, rank+dir)
		victim := p.board[to]
		if victim != NoPiece && victim.Color() != us {
			moves = appendPawnMove(moves, from, to, false)
		} else if victim == NoPiece && to == p.ep {
			moves = append(moves, Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

func jumpMoves(p *Position, from Square, offsets [][2]int, moves []Move) []Move {
	file, rank := from.File(), from.Rank()
	for _, off := range offsets {
		if !onBoard(file+off[0], rank+off[1]) {
			continue
		}
		to := squareAt(file+off[0], rank+off[1])
		if victim := p.board[to]; victim == NoPiece || victim.Color() != p.turn {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func slideMoves(p *Position, from Square, dirs [][2]int, moves []Move) []Move {
	for _, dir := range dirs {
		file, rank := from.File()+dir[0], from.Rank()+dir[1]
		for onBoard(file, rank) {
			to := squareAt(file, rank)
			victim := p.board[to]
			if victim == NoPiece {
				moves = append(moves, Move{From: from, To: to})
				file += dir[0]
				rank += dir[1]
				continue
			}
			if victim.Color() != p.turn {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// castleMoves emits castling candidates. A right being held implies the
// king and rook still sit on their home squares; what remains to verify
// is emptiness between them and that the king's start, crossing and
// landing squares are not attacked.
func castleMoves(p *Position, from Square, moves []Move) []Move {
	us := p.turn
	them := us.Other()
	rank := 0
	kingside, queenside := WhiteKingside, WhiteQueenside
	if us == Black {
		rank = 7
		kingside, queenside = BlackKingside, BlackQueenside
	}
	if from != squareAt(4, rank) {
		return moves
	}

	if p.castle[kingside] &&
		p.board[squareAt(5, rank)] == NoPiece &&
		p.board[squareAt(6, rank)] == NoPiece &&
		!IsAttacked(p, squareAt(4, rank), them) &&
		!IsAttacked(p, squareAt(5, rank), them) &&
		!IsAttacked(p, squareAt(6, rank), them) {
		moves = append(moves, Move{From: from, To: squareAt(6, rank), Castle: true})
	}
	if p.castle[queenside] &&
		p.board[squareAt(1, rank)] == NoPiece &&
		p.board[squareAt(2, rank)] == NoPiece &&
		p.board[squareAt(3, rank)] == NoPiece &&
		!IsAttacked(p, squareAt(4, rank), them) &&
		!IsAttacked(p, squareAt(3, rank), them) &&
		!IsAttacked(p, squareAt(2, rank), them) {
		moves = append(moves, Move{From: from, To: squareAt(2, rank), Castle: true})
	}
	return moves
}
