package engine

// Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that White won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that Black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that the game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// Method is how an outcome came about.
type Method int8

const (
	// NoMethod indicates the game has not ended.
	NoMethod Method = iota
	// Checkmate indicates the side to move has no legal move and is in check.
	Checkmate
	// Stalemate indicates the side to move has no legal move and is not in check.
	Stalemate
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "NoMethod"
	}
}

// Classify inspects the legal-move set and reports whether the game is
// ongoing, won by checkmate (the side to move is the loser) or drawn by
// stalemate. Repetition, fifty-move and insufficient-material draws are
// deliberately not detected; this function is the single extension
// point for adding them.
func Classify(p *Position) (Outcome, Method) {
	if len(LegalMoves(p)) > 0 {
		return NoOutcome, NoMethod
	}
	if InCheck(p) {
		if p.turn == White {
			return BlackWon, Checkmate
		}
		return WhiteWon, Checkmate
	}
	return Draw, Stalemate
}

// Loser returns the checkmated side for a terminal Checkmate position.
// Meaningful only when Classify reported Checkmate.
func Loser(p *Position) Color {
	return p.turn
}
