package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartPositionIsOngoing(t *testing.T) {
	outcome, method := Classify(NewPosition())
	require.Equal(t, NoOutcome, outcome)
	require.Equal(t, NoMethod, method)
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	p := playUCI(t, "f2f3", "e7e5", "g2g4", "d8h4")

	require.True(t, InCheck(p))
	require.Empty(t, LegalMoves(p))

	outcome, method := Classify(p)
	require.Equal(t, BlackWon, outcome)
	require.Equal(t, Checkmate, method)
	require.Equal(t, White, Loser(p))
}

func TestBackRankMateFromGrid(t *testing.T) {
	p := mustGrid(t, `
-- -- -- -- -- -- bk --
-- -- -- -- -- bp bp bp
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
wr -- -- -- -- -- wk --
w - -
`)
	m, ok := MoveFromString(p, "a1a8")
	require.True(t, ok)
	next, err := p.Apply(m)
	require.NoError(t, err)

	outcome, method := Classify(next)
	require.Equal(t, WhiteWon, outcome)
	require.Equal(t, Checkmate, method)
	require.Equal(t, Black, Loser(next))
}

func TestStalemateIsNotCheckmate(t *testing.T) {
	// Black to move: the king on h8 has no safe square and is not in
	// check from the queen on g6.
	p := mustGrid(t, `
-- -- -- -- -- -- -- bk
-- -- -- -- -- -- -- --
-- -- -- -- -- -- wq --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- -- -- -- --
-- -- -- -- wk -- -- --
b - -
`)
	require.False(t, InCheck(p))
	require.Empty(t, LegalMoves(p))

	outcome, method := Classify(p)
	require.Equal(t, Draw, outcome)
	require.Equal(t, Stalemate, method)
}

func TestCheckWithEscapeIsNotTerminal(t *testing.T) {
	// Qxf7+ without the bishop on c4 is just a check: the king takes.
	p := playUCI(t, "e2e4", "e7e5", "d1h5", "b8c6", "h5f7")
	require.True(t, InCheck(p))

	outcome, method := Classify(p)
	require.Equal(t, NoOutcome, outcome)
	require.Equal(t, NoMethod, method)

	_, ok := MoveFromString(p, "e8f7")
	require.True(t, ok, "the undefended queen can be captured")
}
