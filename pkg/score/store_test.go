package score

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record(Result{White: "Alice", Black: "Bob", Outcome: "1-0", Method: "Checkmate"}))
	require.NoError(t, s.Record(Result{White: "Bob", Black: "Alice", Outcome: "1/2-1/2", Method: "Stalemate"}))

	recent, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "Bob", recent[0].White, "newest first")
	require.Equal(t, "Stalemate", recent[0].Method)
	require.False(t, recent[0].PlayedAt.IsZero())
}

func TestScoreboardAggregation(t *testing.T) {
	s := openTestStore(t)

	games := []Result{
		{White: "Alice", Black: "Bob", Outcome: "1-0", Method: "Checkmate"},
		{White: "Bob", Black: "Alice", Outcome: "0-1", Method: "Checkmate"},
		{White: "Alice", Black: "Carol", Outcome: "1/2-1/2", Method: "Stalemate"},
		{White: "Carol", Black: "Bob", Outcome: "1-0", Method: "Checkmate"},
	}
	for _, g := range games {
		require.NoError(t, s.Record(g))
	}

	board, err := s.Scoreboard()
	require.NoError(t, err)
	require.Len(t, board, 3)

	byName := map[string]Row{}
	for _, r := range board {
		byName[r.Name] = r
	}
	require.Equal(t, Row{Name: "Alice", Games: 3, Wins: 2, Draws: 1, Losses: 0}, byName["Alice"])
	require.Equal(t, Row{Name: "Bob", Games: 3, Wins: 0, Draws: 0, Losses: 3}, byName["Bob"])
	require.Equal(t, Row{Name: "Carol", Games: 2, Wins: 1, Draws: 1, Losses: 0}, byName["Carol"])

	require.Equal(t, "Alice", board[0].Name, "most wins first")
}

func TestFprintScoreboard(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(Result{
		White: "Alice", Black: "Bob", Outcome: "1-0", Method: "Checkmate",
		PlayedAt: time.Date(2021, 3, 9, 12, 0, 0, 0, time.UTC),
	}))

	board, err := s.Scoreboard()
	require.NoError(t, err)

	var buf bytes.Buffer
	Fprint(&buf, board)
	require.Contains(t, buf.String(), "Alice")
	require.Contains(t, buf.String(), "PLAYER")

	Fprint(&buf, nil)
	require.Contains(t, buf.String(), "no results")
}
