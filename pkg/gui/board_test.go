package gui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dualchess/pkg/engine"
)

func TestPosToSquareWhiteView(t *testing.T) {
	b := NewBoard(engine.White, DefaultTheme, func(engine.Color, engine.Square) {})

	tests := []struct {
		row, col int
		want     engine.Square
	}{
		{0, 1, engine.A8},
		{0, 8, engine.H8},
		{7, 1, engine.A1},
		{7, 8, engine.H1},
		{6, 5, engine.E2},
	}
	for _, tt := range tests {
		sq, ok := b.posToSquare(tt.row, tt.col)
		require.True(t, ok)
		require.Equal(t, tt.want, sq, "row=%d col=%d", tt.row, tt.col)
	}
}

func TestPosToSquareBlackViewFlipsBack(t *testing.T) {
	b := NewBoard(engine.Black, DefaultTheme, func(engine.Color, engine.Square) {})

	tests := []struct {
		row, col int
		want     engine.Square
	}{
		{0, 1, engine.H1},
		{0, 8, engine.A1},
		{7, 1, engine.H8},
		{7, 8, engine.A8},
		{1, 4, engine.E2},
	}
	for _, tt := range tests {
		sq, ok := b.posToSquare(tt.row, tt.col)
		require.True(t, ok)
		require.Equal(t, tt.want, sq, "row=%d col=%d", tt.row, tt.col)
	}
}

func TestPosToSquareRejectsLabelCells(t *testing.T) {
	b := NewBoard(engine.White, DefaultTheme, func(engine.Color, engine.Square) {})
	for _, cell := range [][2]int{{0, 0}, {3, 0}, {8, 1}, {8, 8}, {9, 1}, {0, 9}} {
		_, ok := b.posToSquare(cell[0], cell[1])
		require.False(t, ok, "cell %v is not a square", cell)
	}
}

func TestRenderPlacesPiecesAndLabels(t *testing.T) {
	b := NewBoard(engine.White, DefaultTheme, func(engine.Color, engine.Square) {})
	pos := engine.NewPosition()
	b.Render(pos, engine.NoSquare, nil, engine.NoSquare)

	require.Equal(t, " ♜", b.Table.GetCell(0, 1).Text, "a8 holds the black rook")
	require.Equal(t, " ♔", b.Table.GetCell(7, 5).Text, "e1 holds the white king")
	require.Equal(t, "  ", b.Table.GetCell(3, 5).Text, "e5 is empty")
	require.Equal(t, "8", b.Table.GetCell(0, 0).Text)
	require.Equal(t, " a", b.Table.GetCell(8, 1).Text)

	flipped := NewBoard(engine.Black, DefaultTheme, func(engine.Color, engine.Square) {})
	flipped.Render(pos, engine.NoSquare, nil, engine.NoSquare)
	require.Equal(t, " ♖", flipped.Table.GetCell(0, 1).Text, "h1 tops the flipped view")
	require.Equal(t, "1", flipped.Table.GetCell(0, 0).Text)
	require.Equal(t, " h", flipped.Table.GetCell(8, 1).Text)
}
