package engine

import "errors"

var (
	// ErrIllegalMove is returned by Apply when the move is not a member
	// of the position's legal-move set. Callers recover by re-deriving
	// LegalMoves; the position is left untouched.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds is returned when a square is constructed or parsed
	// outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrBadGrid is returned by ParseGrid for malformed board text.
	ErrBadGrid = errors.New("malformed board grid")
)
