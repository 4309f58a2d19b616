package score

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Fprint writes the scoreboard as a colored table.
func Fprint(w io.Writer, board []Row) {
	if len(board) == 0 {
		fmt.Fprintln(w, "no results recorded yet")
		return
	}
	header := color.New(color.Bold)
	header.Fprintf(w, "%-20s %6s %6s %6s %8s\n", "PLAYER", "GAMES", "WINS", "DRAWS", "LOSSES")
	for _, r := range board {
		fmt.Fprintf(w, "%-20s %6d %s %s %s\n",
			r.Name, r.Games,
			color.GreenString("%6d", r.Wins),
			color.YellowString("%6d", r.Draws),
			color.RedString("%8d", r.Losses))
	}
}

// FprintRecent writes the latest results, newest first.
func FprintRecent(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s  %s vs %s  %s (%s)\n",
			r.PlayedAt.Format("2006-01-02 15:04"),
			r.White, r.Black, r.Outcome, r.Method)
	}
}
