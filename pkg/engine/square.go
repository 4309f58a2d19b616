// Package engine implements the chess rules core: position state,
// pseudo-legal and legal move generation, attack detection, move
// execution and terminal-state classification.
package engine

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square int8

// NoSquare is the zero-ish sentinel for "no square" (en passant cleared).
const NoSquare Square = -1

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from file and rank indices, both in [0,7].
// File 0 is the a-file, rank 0 is White's back rank.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("square file=%d rank=%d: %w", file, rank, ErrOutOfBounds)
	}
	return Square(rank*8 + file), nil
}

// squareAt is the unchecked variant for generator-internal arithmetic
// that has already verified bounds.
func squareAt(file, rank int) Square {
	return Square(rank*8 + file)
}

// onBoard reports whether the file/rank pair lies on the board.
func onBoard(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

// File returns the file index of the square (0 = a-file).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the rank index of the square (0 = rank 1).
func (s Square) Rank() int {
	return int(s) >> 3
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, ErrOutOfBounds)
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	sq, err := NewSquare(file, rank)
	if err != nil {
		return NoSquare, fmt.Errorf("square %q: %w", name, ErrOutOfBounds)
	}
	return sq, nil
}
