package engine

// Move is an immutable candidate produced by the generator and consumed
// by the executor. Castle and EnPassant mark the compound moves whose
// side effects reach beyond the From/To squares.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
	Castle    bool
	EnPassant bool
}

// String renders the move in long algebraic (UCI) form, e.g. "e2e4"
// or "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.letter())
	}
	return s
}

// MoveFromString finds the legal move in p matching the UCI-form string.
// It is a convenience for tests and UIs that address moves by square
// names; the returned move carries the correct castle/en-passant flags.
func MoveFromString(p *Position, uci string) (Move, bool) {
	for _, m := range LegalMoves(p) {
		if m.String() == uci {
			return m, true
		}
	}
	return Move{}, false
}
