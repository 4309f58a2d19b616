package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDoesNotMutateInput(t *testing.T) {
	p := NewPosition()
	before := p.MarshalGrid()
	m, ok := MoveFromString(p, "e2e4")
	require.True(t, ok)
	next, err := p.Apply(m)
	require.NoError(t, err)
	require.Equal(t, before, p.MarshalGrid(), "input position changed")
	require.NotEqual(t, before, next.MarshalGrid())
	require.Equal(t, Black, next.Turn())
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	p := NewPosition()
	before := p.MarshalGrid()

	// A rook lift through its own pawn.
	next, err := p.Apply(Move{From: A1, To: A5})
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Nil(t, next)
	require.Equal(t, before, p.MarshalGrid())
	require.Equal(t, White, p.Turn())
}

func TestEnPassantCaptureRemovesPassedPawn(t *testing.T) {
	p := playUCI(t, "e2e4", "a7a6", "e4e5", "d7d5")

	ep, ok := p.EnPassantTarget()
	require.True(t, ok)
	require.Equal(t, D6, ep)

	m, ok := MoveFromString(p, "e5d6")
	require.True(t, ok, "en-passant capture must be legal")
	require.True(t, m.EnPassant)

	next, err := p.Apply(m)
	require.NoError(t, err)
	require.Equal(t, WhitePawn, next.PieceAt(D6))
	require.Equal(t, NoPiece, next.PieceAt(D5), "captured pawn is removed from d5, not d6")
	require.Equal(t, NoPiece, next.PieceAt(E5))

	_, ok = next.EnPassantTarget()
	require.False(t, ok, "target cleared after any other move")
}

func TestEnPassantWindowClosesAfterOneMove(t *testing.T) {
	p := playUCI(t, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "a6a5")
	_, ok := MoveFromString(p, "e5d6")
	require.False(t, ok, "en passant is only available immediately")
}

func TestKingsideCastling(t *testing.T) {
	p := mustGrid(t, `
-- -- -- -- bk -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- wk -- -- wr
w K -
`)
	m, ok := MoveFromString(p, "e1g1")
	require.True(t, ok, "O-O must be legal")
	require.True(t, m.Castle)

	next, err := p.Apply(m)
	require.NoError(t, err)
	require.Equal(t, WhiteKing, next.PieceAt(G1))
	require.Equal(t, WhiteRook, next.PieceAt(F1))
	require.Equal(t, NoPiece, next.PieceAt(E1))
	require.Equal(t, NoPiece, next.PieceAt(H1))
	require.False(t, next.CanCastle(WhiteKingside), "right is spent")
}

func TestQueensideCastling(t *testing.T) {
	p := mustGrid(t, `
br -- -- -- bk -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
wr -- -- -- wk -- -- --
b q -
`)
	m, ok := MoveFromString(p, "e8c8")
	require.True(t, ok)
	next, err := p.Apply(m)
	require.NoError(t, err)
	require.Equal(t, BlackKing, next.PieceAt(C8))
	require.Equal(t, BlackRook, next.PieceAt(D8))
	require.False(t, next.CanCastle(BlackQueenside))
}

func TestCastlingRightRevokedByKingMove(t *testing.T) {
	p := playUCI(t, "e2e4", "e7e5", "e1e2", "d7d6", "e2e1", "d6d5")
	require.False(t, p.CanCastle(WhiteKingside), "rights never come back")
	require.False(t, p.CanCastle(WhiteQueenside))
	require.True(t, p.CanCastle(BlackKingside))
}

func TestCastlingRightRevokedByRookMove(t *testing.T) {
	p := playUCI(t, "h2h4", "a7a5", "h1h3", "a8a6")
	require.False(t, p.CanCastle(WhiteKingside))
	require.True(t, p.CanCastle(WhiteQueenside))
	require.False(t, p.CanCastle(BlackQueenside))
	require.True(t, p.CanCastle(BlackKingside))
}

func TestCastlingRightRevokedByRookCapture(t *testing.T) {
	// Bxh8 takes the rook on its home square; Black's kingside right dies.
	p := mustGrid(t, `
br -- -- -- bk -- -- br
-- -- -- -- -- -- wb --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- wk -- -- --
w kq -
`)
	m, ok := MoveFromString(p, "g7h8")
	require.True(t, ok)
	next, err := p.Apply(m)
	require.NoError(t, err)
	require.False(t, next.CanCastle(BlackKingside))
	require.True(t, next.CanCastle(BlackQueenside))
}

func TestPromotionPlacesChosenKind(t *testing.T) {
	p := mustGrid(t, `
-- -- -- -- -- -- -- --
-- -- wp -- -- -- -- bk
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
wk -- -- -- -- -- -- --
w - -
`)
	for _, want := range []Kind{Queen, Rook, Bishop, Knight} {
		m := Move{From: C7, To: C8, Promotion: want}
		next, err := p.Apply(m)
		require.NoError(t, err)
		got := next.PieceAt(C8)
		require.Equal(t, want, got.Kind())
		require.Equal(t, White, got.Color())
	}
}

func TestMoveCounters(t *testing.T) {
	p := NewPosition()
	require.Equal(t, 0, p.HalfmoveClock())
	require.Equal(t, 1, p.FullmoveNumber())

	p = playUCI(t, "g1f3", "g8f6")
	require.Equal(t, 2, p.HalfmoveClock(), "quiet piece moves tick the clock")
	require.Equal(t, 2, p.FullmoveNumber())

	p = playUCI(t, "g1f3", "g8f6", "d2d4")
	require.Equal(t, 0, p.HalfmoveClock(), "pawn advance resets the clock")
}
