package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dualchess/pkg/game"
	"dualchess/pkg/gui"
	"dualchess/pkg/score"
)

func main() {
	logPath := flag.String("log", "./dualchess.log", "path to log file")
	dbPath := flag.String("db", "./dualchess.db", "path to the results database")
	white := flag.String("white", "", "White player name (generated if empty)")
	black := flag.String("black", "", "Black player name (generated if empty)")
	scores := flag.Bool("scores", false, "print the scoreboard and exit")
	flag.Parse()

	if *scores {
		printScores(*dbPath)
		return
	}

	game.InitLog(*logPath, "DUALCHESS: ")
	log.Println("New session")

	store, err := score.Open(*dbPath)
	if err != nil {
		// The board stays playable without persistence.
		log.Printf("results store disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	g := game.New(*white, *black)
	log.Printf("%s vs %s", g.White, g.Black)
	if err := gui.New(g, store).Run(); err != nil {
		log.Fatal(err)
	}
}

func printScores(dbPath string) {
	store, err := score.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	board, err := store.Scoreboard()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	score.Fprint(os.Stdout, board)

	recent, err := store.Recent(5)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(recent) > 0 {
		fmt.Println()
		score.FprintRecent(os.Stdout, recent)
	}
}
