// Package gui renders two board panels side by side, one per player
// perspective, and drives the click-select-click move flow against the
// rules engine.
package gui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"dualchess/pkg/engine"
	"dualchess/pkg/game"
	"dualchess/pkg/score"
)

const (
	pageGame       = "game"
	pagePromotion  = "promotion"
	pageGameOver   = "gameover"
	pageScoreboard = "scoreboard"
)

// App wires the game session, the result store and the tview widgets.
type App struct {
	app   *tview.Application
	pages *tview.Pages
	theme Theme

	g     *game.Game
	store *score.Store // nil disables persistence

	left  *Board // White's perspective
	right *Board // Black's perspective

	leftTurn  *tview.TextView
	rightTurn *tview.TextView
	message   *tview.TextView

	selecting bool
	selected  engine.Square
	targets   map[engine.Square]bool
}

// New assembles the dual-board application around a game session.
func New(g *game.Game, store *score.Store) *App {
	a := &App{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		theme:   DefaultTheme,
		g:       g,
		store:   store,
		targets: map[engine.Square]bool{},
	}

	a.left = NewBoard(engine.White, a.theme, a.onSquareSelected)
	a.right = NewBoard(engine.Black, a.theme, a.onSquareSelected)

	banner := func(text string) *tview.TextView {
		tv := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(text)
		tv.SetTextColor(a.theme.Banner)
		return tv
	}
	a.leftTurn = banner("")
	a.rightTurn = banner("")
	a.message = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	layout := tview.NewGrid().
		SetRows(1, 1, 9, 1, 1).
		SetColumns(-1, 28, 4, 28, -1).
		AddItem(banner("YOU ARE WHITE"), 1, 1, 1, 1, 0, 0, false).
		AddItem(banner("YOU ARE BLACK"), 1, 3, 1, 1, 0, 0, false).
		AddItem(a.left, 2, 1, 1, 1, 0, 0, true).
		AddItem(a.right, 2, 3, 1, 1, 0, 0, false).
		AddItem(a.leftTurn, 3, 1, 1, 1, 0, 0, false).
		AddItem(a.rightTurn, 3, 3, 1, 1, 0, 0, false).
		AddItem(a.message, 4, 1, 1, 3, 0, 0, false)

	a.pages.AddPage(pageGame, layout, true, true)
	a.render()
	return a
}

// Run starts the terminal UI. Blocks until quit.
func (a *App) Run() error {
	a.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		onOverlay := a.pages.HasPage(pagePromotion) ||
			a.pages.HasPage(pageGameOver) ||
			a.pages.HasPage(pageScoreboard)
		if ev.Key() == tcell.KeyEscape && !onOverlay {
			a.app.Stop()
			return nil
		}
		return ev
	})
	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

// onSquareSelected drives the click state machine: the first click
// picks an own piece on the side-to-move's board, the second moves,
// re-selects or clears. Illegal clicks are swallowed.
func (a *App) onSquareSelected(view engine.Color, sq engine.Square) {
	if a.g.Over() {
		return
	}
	turn := a.g.Turn()
	if view != turn {
		a.setMessage(fmt.Sprintf("%s moves on the %s board", turn, boardSide(turn)))
		return
	}
	pc := a.g.Position().PieceAt(sq)

	if !a.selecting {
		if pc != engine.NoPiece && pc.Color() == turn {
			a.selectSquare(sq)
		}
		a.render()
		return
	}

	switch {
	case sq == a.selected:
		a.clearSelection()
	case a.targets[sq]:
		if a.g.NeedsPromotion(a.selected, sq) {
			a.promptPromotion(a.selected, sq)
			return
		}
		a.play(a.selected, sq, engine.NoKind)
		return
	case pc != engine.NoPiece && pc.Color() == turn:
		a.selectSquare(sq)
	default:
		// Keep the prior selection; the click is ignored.
	}
	a.render()
}

func boardSide(c engine.Color) string {
	if c == engine.White {
		return "left"
	}
	return "right"
}

func (a *App) selectSquare(sq engine.Square) {
	a.selecting = true
	a.selected = sq
	a.targets = a.g.LegalTargets(sq)
}

func (a *App) clearSelection() {
	a.selecting = false
	a.selected = engine.NoSquare
	a.targets = map[engine.Square]bool{}
}

// play applies the chosen move and, on a terminal position, opens the
// game-over flow.
func (a *App) play(from, to engine.Square, promotion engine.Kind) {
	if err := a.g.Play(from, to, promotion); err != nil {
		// Targets were derived from LegalMoves, so this is unexpected;
		// per the error contract the click is simply ignored.
		log.Printf("rejected move %s%s: %v", from, to, err)
		a.setMessage("move rejected")
		return
	}
	a.clearSelection()
	a.setMessage("")
	a.render()
	if a.g.Over() {
		a.showGameOver()
	}
}

// promptPromotion raises the four-way picker. Dismissing it falls back
// to Queen; the engine itself never defaults.
func (a *App) promptPromotion(from, to engine.Square) {
	kinds := map[string]engine.Kind{
		"Queen":  engine.Queen,
		"Rook":   engine.Rook,
		"Bishop": engine.Bishop,
		"Knight": engine.Knight,
	}
	modal := tview.NewModal().
		SetText("Promote pawn to:").
		AddButtons([]string{"Queen", "Rook", "Bishop", "Knight"}).
		SetDoneFunc(func(_ int, label string) {
			kind, ok := kinds[label]
			if !ok {
				kind = engine.Queen
			}
			a.pages.RemovePage(pagePromotion)
			a.play(from, to, kind)
		})
	a.pages.AddPage(pagePromotion, modal, true, true)
}

// showGameOver announces the verdict and offers to record the result
// under edited names before a rematch.
func (a *App) showGameOver() {
	outcome, method := a.g.Status()
	var verdict string
	if method == engine.Checkmate {
		verdict = fmt.Sprintf("Checkmate, %s wins", a.g.WinnerName())
	} else {
		verdict = "Stalemate, draw"
	}

	white, black := a.g.White, a.g.Black
	form := tview.NewForm().
		AddInputField("White player", white, 24, nil, func(text string) { white = text }).
		AddInputField("Black player", black, 24, nil, func(text string) { black = text })
	form.AddButton("Save result", func() {
		a.recordResult(game.DefaultName(white), game.DefaultName(black), outcome, method)
		a.pages.RemovePage(pageGameOver)
		a.showScoreboard()
	})
	form.AddButton("Rematch", func() {
		a.pages.RemovePage(pageGameOver)
		a.rematch(white, black)
	})
	form.AddButton("Quit", func() { a.app.Stop() })
	form.SetBorder(true).SetTitle(" " + verdict + " ")

	wrap := tview.NewGrid().
		SetRows(-1, 11, -1).
		SetColumns(-1, 44, -1).
		AddItem(form, 1, 1, 1, 1, 0, 0, true)
	a.pages.AddPage(pageGameOver, wrap, true, true)
}

func (a *App) recordResult(white, black string, outcome engine.Outcome, method engine.Method) {
	if a.store == nil {
		return
	}
	err := a.store.Record(score.Result{
		White:   white,
		Black:   black,
		Outcome: outcome.String(),
		Method:  method.String(),
	})
	if err != nil {
		log.Printf("record result: %v", err)
		a.setMessage("could not save result")
	}
}

// showScoreboard displays the aggregated results table; Enter or
// Escape returns to a fresh game.
func (a *App) showScoreboard() {
	table := tview.NewTable().SetBorders(false)
	headers := []string{"PLAYER", "GAMES", "WINS", "DRAWS", "LOSSES"}
	for i, h := range headers {
		table.SetCell(0, i, tview.NewTableCell(h).
			SetTextColor(a.theme.Banner).
			SetSelectable(false))
	}
	if a.store != nil {
		board, err := a.store.Scoreboard()
		if err != nil {
			log.Printf("scoreboard: %v", err)
		}
		for i, r := range board {
			table.SetCell(i+1, 0, tview.NewTableCell(r.Name))
			table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%d", r.Games)))
			table.SetCell(i+1, 2, tview.NewTableCell(fmt.Sprintf("%d", r.Wins)))
			table.SetCell(i+1, 3, tview.NewTableCell(fmt.Sprintf("%d", r.Draws)))
			table.SetCell(i+1, 4, tview.NewTableCell(fmt.Sprintf("%d", r.Losses)))
		}
	}
	table.SetDoneFunc(func(tcell.Key) {
		a.pages.RemovePage(pageScoreboard)
		a.rematch(a.g.White, a.g.Black)
	})
	table.SetBorder(true).SetTitle(" Scoreboard (Esc for a new game) ")

	wrap := tview.NewGrid().
		SetRows(-1, 14, -1).
		SetColumns(-1, 52, -1).
		AddItem(table, 1, 1, 1, 1, 0, 0, true)
	a.pages.AddPage(pageScoreboard, wrap, true, true)
}

func (a *App) rematch(white, black string) {
	a.g = game.New(white, black)
	a.clearSelection()
	a.setMessage("")
	a.render()
}

func (a *App) setMessage(text string) {
	a.message.SetText(text)
}

// render redraws both panels and the turn banners.
func (a *App) render() {
	pos := a.g.Position()
	checked := engine.NoSquare
	if engine.InCheck(pos) {
		checked = pos.KingSquare(pos.Turn())
	}
	sel := engine.NoSquare
	if a.selecting {
		sel = a.selected
	}
	a.left.Render(pos, sel, a.targets, checked)
	a.right.Render(pos, sel, a.targets, checked)

	whiteTurn := pos.Turn() == engine.White
	a.leftTurn.SetText(turnBanner(whiteTurn, a.g, engine.White))
	a.rightTurn.SetText(turnBanner(!whiteTurn, a.g, engine.Black))
}

func turnBanner(myTurn bool, g *game.Game, c engine.Color) string {
	label := "THEIR TURN"
	if myTurn {
		label = "YOUR TURN"
	}
	return fmt.Sprintf("%s  %s %s", label, g.NameOf(c), g.ClockOf(c))
}
