package engine

import "fmt"

// Apply executes a legal move and returns the resulting position. The
// input position is not mutated. A move outside LegalMoves(p) returns
// ErrIllegalMove and leaves everything untouched; callers validate
// through LegalMoves first and treat the error as recoverable.
func (p *Position) Apply(m Move) (*Position, error) {
	for _, legal := range LegalMoves(p) {
		if legal == m {
			return p.applyUnchecked(m), nil
		}
	}
	return nil, fmt.Errorf("apply %s: %w", m, ErrIllegalMove)
}

// applyUnchecked trusts that m came out of the generator for p. It is
// shared by Apply and the legality filter's scratch simulations.
func (p *Position) applyUnchecked(m Move) *Position {
	next := *p
	moving := next.board[m.From]
	captured := next.board[m.To]

	if moving.Kind() == Pawn || captured != NoPiece || m.EnPassant {
		next.halfmove = 0
	} else {
		next.halfmove++
	}

	next.board[m.To] = moving
	next.board[m.From] = NoPiece

	switch {
	case m.EnPassant:
		// The captured pawn sits behind the target square: same file
		// as To, same rank as From.
		next.board[squareAt(m.To.File(), m.From.Rank())] = NoPiece
	case m.Castle:
		// The rook lands on the square the king crossed.
		rank := m.From.Rank()
		if m.To.File() == 6 {
			next.board[squareAt(5, rank)] = next.board[squareAt(7, rank)]
			next.board[squareAt(7, rank)] = NoPiece
		} else {
			next.board[squareAt(3, rank)] = next.board[squareAt(0, rank)]
			next.board[squareAt(0, rank)] = NoPiece
		}
	case m.Promotion != NoKind:
		next.board[m.To] = PieceOf(m.Promotion, moving.Color())
	}

	// Rights are revoked by anything touching a king or rook home
	// square: moving off it, or capturing the rook that sat there.
	next.revokeCastling(m.From)
	next.revokeCastling(m.To)

	next.ep = NoSquare
	if moving.Kind() == Pawn && (m.To.Rank()-m.From.Rank() == 2 || m.From.Rank()-m.To.Rank() == 2) {
		next.ep = squareAt(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if next.turn == Black {
		next.fullmove++
	}
	next.turn = next.turn.Other()
	return &next
}

// revokeCastling clears any castling right tied to the square. Rights
// are never regained.
func (p *Position) revokeCastling(sq Square) {
	switch sq {
	case A1:
		p.castle[WhiteQueenside] = false
	case E1:
		p.castle[WhiteKingside] = false
		p.castle[WhiteQueenside] = false
	case H1:
		p.castle[WhiteKingside] = false
	case A8:
		p.castle[BlackQueenside] = false
	case E8:
		p.castle[BlackKingside] = false
		p.castle[BlackQueenside] = false
	case H8:
		p.castle[BlackKingside] = false
	}
}
