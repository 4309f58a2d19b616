package gui

import (
	"fmt"

	"github.com/rivo/tview"

	"dualchess/pkg/engine"
)

const numRows = 8

// glyphs maps pieces to their figurine runes.
var glyphs = map[engine.Piece]rune{
	engine.WhiteKing:   '♔',
	engine.WhiteQueen:  '♕',
	engine.WhiteRook:   '♖',
	engine.WhiteBishop: '♗',
	engine.WhiteKnight: '♘',
	engine.WhitePawn:   '♙',
	engine.BlackKing:   '♚',
	engine.BlackQueen:  '♛',
	engine.BlackRook:   '♜',
	engine.BlackBishop: '♝',
	engine.BlackKnight: '♞',
	engine.BlackPawn:   '♟',
}

// Board is one panel: a selectable table showing the shared position
// from a fixed perspective. The left panel views as White, the right
// as Black, mirroring the source's dual boards.
type Board struct {
	*tview.Table
	view  engine.Color
	theme Theme
}

// NewBoard builds a board panel. Selecting a square reports the
// canonical square (White-at-bottom coordinates) to onSelect.
func NewBoard(view engine.Color, theme Theme, onSelect func(view engine.Color, sq engine.Square)) *Board {
	b := &Board{
		Table: tview.NewTable(),
		view:  view,
		theme: theme,
	}
	b.Table.SetSelectable(true, true)
	b.Table.SetSelectedFunc(func(row, col int) {
		if sq, ok := b.posToSquare(row, col); ok {
			onSelect(b.view, sq)
		}
	})
	return b
}

// posToSquare translates a table cell to a canonical square. Column 0
// carries rank labels and row 8 file labels; both views flip back to
// canonical coordinates the way the source's right board does.
func (b *Board) posToSquare(row, col int) (engine.Square, bool) {
	if col < 1 || col > numRows || row < 0 || row >= numRows {
		return engine.NoSquare, false
	}
	file := col - 1
	rank := numRows - row - 1
	if b.view == engine.Black {
		file = numRows - col
		rank = row
	}
	sq, err := engine.NewSquare(file, rank)
	if err != nil {
		return engine.NoSquare, false
	}
	return sq, true
}

// Render redraws the panel from the position, marking the current
// selection, its legal targets and a checked king square.
func (b *Board) Render(pos *engine.Position, selected engine.Square, targets map[engine.Square]bool, checked engine.Square) {
	for row := 0; row <= numRows; row++ {
		for col := 0; col <= numRows; col++ {
			if col == 0 && row < numRows {
				rank := numRows - row
				if b.view == engine.Black {
					rank = row + 1
				}
				b.Table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf("%d", rank)).
					SetTextColor(b.theme.Label).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}
			if row == numRows {
				if col == 0 {
					b.Table.SetCell(row, col, tview.NewTableCell(" ").SetSelectable(false))
					continue
				}
				file := col - 1
				if b.view == engine.Black {
					file = numRows - col
				}
				b.Table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf(" %c", 'a'+file)).
					SetTextColor(b.theme.Label).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}

			sq, _ := b.posToSquare(row, col)
			pc := pos.PieceAt(sq)
			text := "  "
			fg := b.theme.WhitePiece
			if pc != engine.NoPiece {
				text = fmt.Sprintf(" %c", glyphs[pc])
				if pc.Color() == engine.Black {
					fg = b.theme.BlackPiece
				}
			}
			dark := (sq.File()+sq.Rank())%2 == 0
			bg := b.theme.squareBg(dark, sq == selected, targets[sq], sq == checked)
			b.Table.SetCell(row, col, tview.NewTableCell(text).
				SetTextColor(fg).
				SetBackgroundColor(bg).
				SetAlign(tview.AlignCenter))
		}
	}
}
