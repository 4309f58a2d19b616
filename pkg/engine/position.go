package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CastleRight indexes one of the four independent castling rights.
type CastleRight int8

const (
	WhiteKingside CastleRight = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Position is the canonical game state: piece placement, side to move,
// castling rights, en-passant target and move counters. A Position is
// never partially mutated; Apply returns a fresh one.
type Position struct {
	board    [64]Piece
	turn     Color
	castle   [4]bool
	ep       Square
	halfmove int
	fullmove int
}

// NewPosition returns the standard initial arrangement with White to move.
func NewPosition() *Position {
	p := &Position{
		turn:     White,
		castle:   [4]bool{true, true, true, true},
		ep:       NoSquare,
		fullmove: 1,
	}
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		p.board[squareAt(f, 0)] = PieceOf(back[f], White)
		p.board[squareAt(f, 1)] = WhitePawn
		p.board[squareAt(f, 6)] = BlackPawn
		p.board[squareAt(f, 7)] = PieceOf(back[f], Black)
	}
	return p
}

// PieceAt returns the piece on the square, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if sq < A1 || sq > H8 {
		return NoPiece
	}
	return p.board[sq]
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// CanCastle reports whether the given castling right is still held.
func (p *Position) CanCastle(r CastleRight) bool {
	return p.castle[r]
}

// EnPassantTarget returns the square passed over by the last double pawn
// push, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.ep, p.ep != NoSquare
}

// HalfmoveClock returns the number of half-moves since the last capture
// or pawn advance. Maintained but not consulted for any termination rule.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// FullmoveNumber returns the current move number, starting at 1.
func (p *Position) FullmoveNumber() int {
	return p.fullmove
}

// KingSquare locates the king of the given color. UIs use it to mark
// a checked king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare(c)
}

// kingSquare locates the king of the given color. A well-formed
// position always has exactly one king per side.
func (p *Position) kingSquare(c Color) Square {
	want := PieceOf(King, c)
	for sq := A1; sq <= H8; sq++ {
		if p.board[sq] == want {
			return sq
		}
	}
	return NoSquare
}

var castleLetters = [4]byte{'K', 'Q', 'k', 'q'}

// MarshalGrid renders the position as eight lines of two-letter piece
// codes (rank 8 first, "--" for empty squares) followed by a trailer
// line: side to move, castling rights and en-passant target.
//
//	br bn bb bq bk bb bn br
//	...
//	wr wn wb wq wk wb wn wr
//	w KQkq -
func (p *Position) MarshalGrid() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.board[squareAt(file, rank)].Code())
		}
		b.WriteByte('\n')
	}
	b.WriteByte(p.turn.code())
	b.WriteByte(' ')
	any := false
	for i, l := range castleLetters {
		if p.castle[i] {
			b.WriteByte(l)
			any = true
		}
	}
	if !any {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(p.ep.String())
	fmt.Fprintf(&b, " %d %d\n", p.halfmove, p.fullmove)
	return b.String()
}

// ParseGrid parses the MarshalGrid format back into a Position. The
// halfmove and fullmove counters in the trailer are optional.
func ParseGrid(s string) (*Position, error) {
	lines := []string{}
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) != 9 {
		return nil, fmt.Errorf("want 8 rank lines and a trailer, got %d lines: %w", len(lines), ErrBadGrid)
	}

	p := &Position{ep: NoSquare, fullmove: 1}
	kings := [2]int{}
	for i := 0; i < 8; i++ {
		rank := 7 - i
		cells := strings.Fields(lines[i])
		if len(cells) != 8 {
			return nil, fmt.Errorf("rank %d has %d cells: %w", rank+1, len(cells), ErrBadGrid)
		}
		for file, code := range cells {
			pc, ok := PieceFromCode(code)
			if !ok {
				return nil, fmt.Errorf("bad piece code %q: %w", code, ErrBadGrid)
			}
			p.board[squareAt(file, rank)] = pc
			if pc.Kind() == King {
				kings[pc.Color()]++
			}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("want one king per side, got %d white %d black: %w", kings[White], kings[Black], ErrBadGrid)
	}

	fields := strings.Fields(lines[8])
	if len(fields) < 3 {
		return nil, fmt.Errorf("trailer %q: %w", lines[8], ErrBadGrid)
	}
	switch fields[0] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return nil, fmt.Errorf("side to move %q: %w", fields[0], ErrBadGrid)
	}
	if fields[1] != "-" {
		for i := range fields[1] {
			switch fields[1][i] {
			case 'K':
				p.castle[WhiteKingside] = true
			case 'Q':
				p.castle[WhiteQueenside] = true
			case 'k':
				p.castle[BlackKingside] = true
			case 'q':
				p.castle[BlackQueenside] = true
			default:
				return nil, fmt.Errorf("castling rights %q: %w", fields[1], ErrBadGrid)
			}
		}
	}
	if fields[2] != "-" {
		sq, err := ParseSquare(fields[2])
		if err != nil {
			return nil, fmt.Errorf("en passant target: %w", err)
		}
		p.ep = sq
	}
	if len(fields) >= 5 {
		hm, err1 := strconv.Atoi(fields[3])
		fm, err2 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("move counters %q: %w", lines[8], ErrBadGrid)
		}
		p.halfmove, p.fullmove = hm, fm
	}
	return p, nil
}

// String returns the grid rendering.
func (p *Position) String() string {
	return p.MarshalGrid()
}
