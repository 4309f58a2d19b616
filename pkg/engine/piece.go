package engine

// Color represents the color of a piece or player.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// code returns the color half of a two-letter piece code.
func (c Color) code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents the type of a chess piece.
type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// letter returns the lowercase code letter for the kind ('p', 'n', ...).
func (k Kind) letter() byte {
	letters := [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}
	if k < Pawn || k > King {
		return 0
	}
	return letters[k]
}

// kindFromLetter is the inverse of letter.
func kindFromLetter(b byte) Kind {
	switch b {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoKind
	}
}

// Piece combines Kind and Color into a single value.
// Encoded as kind + color*6; the zero value is an empty square.
type Piece int8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// Piece constants for all twelve colored pieces.
const (
	WhitePawn   = Piece(Pawn) + Piece(White)*6
	WhiteKnight = Piece(Knight) + Piece(White)*6
	WhiteBishop = Piece(Bishop) + Piece(White)*6
	WhiteRook   = Piece(Rook) + Piece(White)*6
	WhiteQueen  = Piece(Queen) + Piece(White)*6
	WhiteKing   = Piece(King) + Piece(White)*6
	BlackPawn   = Piece(Pawn) + Piece(Black)*6
	BlackKnight = Piece(Knight) + Piece(Black)*6
	BlackBishop = Piece(Bishop) + Piece(Black)*6
	BlackRook   = Piece(Rook) + Piece(Black)*6
	BlackQueen  = Piece(Queen) + Piece(Black)*6
	BlackKing   = Piece(King) + Piece(Black)*6
)

// PieceOf builds a piece from a kind and color.
func PieceOf(k Kind, c Color) Piece {
	if k == NoKind {
		return NoPiece
	}
	return Piece(k) + Piece(c)*6
}

// Kind returns the piece's kind, or NoKind for an empty square.
func (p Piece) Kind() Kind {
	if p == NoPiece {
		return NoKind
	}
	return Kind((p-1)%6 + 1)
}

// Color returns the piece's color. Meaningless for NoPiece.
func (p Piece) Color() Color {
	return Color((p - 1) / 6)
}

// Code returns the two-letter code for the piece ("wp", "bk"),
// or "--" for an empty square.
func (p Piece) Code() string {
	if p == NoPiece {
		return "--"
	}
	return string([]byte{p.Color().code(), p.Kind().letter()})
}

// PieceFromCode parses a two-letter piece code such as "wp" or "bk".
// "--" parses to NoPiece.
func PieceFromCode(code string) (Piece, bool) {
	if code == "--" {
		return NoPiece, true
	}
	if len(code) != 2 {
		return NoPiece, false
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return NoPiece, false
	}
	k := kindFromLetter(code[1])
	if k == NoKind {
		return NoPiece, false
	}
	return PieceOf(k, c), true
}

// String returns the piece code.
func (p Piece) String() string {
	return p.Code()
}
