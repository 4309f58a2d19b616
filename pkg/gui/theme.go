package gui

import "github.com/gdamore/tcell/v2"

// Theme colors the board and its overlays.
type Theme struct {
	SquareDark  tcell.Color
	SquareLight tcell.Color
	Selected    tcell.Color
	Target      tcell.Color
	Check       tcell.Color
	WhitePiece  tcell.Color
	BlackPiece  tcell.Color
	Banner      tcell.Color
	Label       tcell.Color
}

// DefaultTheme keeps the terminal-safe palette of the original client:
// alternating blue/green squares with red selection.
var DefaultTheme = Theme{
	SquareDark:  tcell.ColorBlue,
	SquareLight: tcell.ColorGreen,
	Selected:    tcell.ColorRed,
	Target:      tcell.ColorYellow,
	Check:       tcell.ColorFuchsia,
	WhitePiece:  tcell.ColorWhite,
	BlackPiece:  tcell.ColorBlack,
	Banner:      tcell.ColorRed,
	Label:       tcell.ColorGray,
}

// squareBg picks the square color, honoring selection and target
// highlights first.
func (t Theme) squareBg(dark, selected, target, check bool) tcell.Color {
	switch {
	case selected:
		return t.Selected
	case target:
		return t.Target
	case check:
		return t.Check
	case dark:
		return t.SquareDark
	default:
		return t.SquareLight
	}
}
