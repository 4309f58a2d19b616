// Package game holds one session between two local players: names,
// the live position, move history and the display clocks.
package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"dualchess/pkg/engine"
)

// Game owns the only live Position. The UI holds the Game as an opaque
// handle: it reads state and requests move applications, nothing else.
type Game struct {
	White   string
	Black   string
	pos     *engine.Position
	history []engine.Move
	clocks  [2]*Clock
	started time.Time
}

// New starts a fresh game from the standard initial arrangement.
// Blank names get a generated default.
func New(white, black string) *Game {
	g := &Game{
		White:   DefaultName(white),
		Black:   DefaultName(black),
		pos:     engine.NewPosition(),
		clocks:  [2]*Clock{NewClock(), NewClock()},
		started: time.Now(),
	}
	g.clocks[engine.White].Start()
	return g
}

// DefaultName substitutes a generated two-word name for blank input.
func DefaultName(name string) string {
	if strings.TrimSpace(name) == "" {
		return petname.Generate(2, "-")
	}
	return strings.TrimSpace(name)
}

// Position returns the current position.
func (g *Game) Position() *engine.Position {
	return g.pos
}

// Turn returns the side to move.
func (g *Game) Turn() engine.Color {
	return g.pos.Turn()
}

// NameOf returns the display name playing the given color.
func (g *Game) NameOf(c engine.Color) string {
	if c == engine.White {
		return g.White
	}
	return g.Black
}

// ClockOf returns the display clock for the given color.
func (g *Game) ClockOf(c engine.Color) *Clock {
	return g.clocks[c]
}

// History returns the applied moves in order.
func (g *Game) History() []engine.Move {
	return g.history
}

// LegalTargets returns the destination squares reachable from the
// square, for click highlighting.
func (g *Game) LegalTargets(from engine.Square) map[engine.Square]bool {
	targets := make(map[engine.Square]bool)
	for _, m := range engine.LegalMovesFrom(g.pos, from) {
		targets[m.To] = true
	}
	return targets
}

// NeedsPromotion reports whether moving from->to requires a promotion
// choice, so the UI can raise its picker before calling Play.
func (g *Game) NeedsPromotion(from, to engine.Square) bool {
	for _, m := range engine.LegalMovesFrom(g.pos, from) {
		if m.To == to && m.Promotion != engine.NoKind {
			return true
		}
	}
	return false
}

// Play applies the move identified by its squares and, for promotions,
// the chosen kind. Illegal input returns engine.ErrIllegalMove and
// leaves the game untouched; the UI treats that as "click ignored".
func (g *Game) Play(from, to engine.Square, promotion engine.Kind) error {
	var move engine.Move
	found := false
	for _, m := range engine.LegalMovesFrom(g.pos, from) {
		if m.To == to && m.Promotion == promotion {
			move = m
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("play %s%s: %w", from, to, engine.ErrIllegalMove)
	}

	next, err := g.pos.Apply(move)
	if err != nil {
		return err
	}
	mover := g.pos.Turn()
	g.pos = next
	g.history = append(g.history, move)
	g.clocks[mover].Pause()
	if !g.Over() {
		g.clocks[mover.Other()].Start()
	} else {
		g.clocks[mover.Other()].Pause()
	}
	log.Printf("%s played %s", g.NameOf(mover), move)
	return nil
}

// Status classifies the current position.
func (g *Game) Status() (engine.Outcome, engine.Method) {
	return engine.Classify(g.pos)
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	outcome, _ := g.Status()
	return outcome != engine.NoOutcome
}

// WinnerName returns the name of the winning player for a decided
// game, or "" for a draw or an ongoing game.
func (g *Game) WinnerName() string {
	switch outcome, _ := g.Status(); outcome {
	case engine.WhiteWon:
		return g.White
	case engine.BlackWon:
		return g.Black
	default:
		return ""
	}
}
