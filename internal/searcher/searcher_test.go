package searcher //nolint:testpackage

import (
	"testing"
	"time"

	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/jobs"
	"github.com/lk16/tackle/internal/tackle"
	"github.com/stretchr/testify/require"
)

func mustJob(t *testing.T, name string) jobs.Job {
	t.Helper()
	job, err := jobs.ByName(name)
	require.NoError(t, err)
	return job
}

func mustPlace(t *testing.T, board *tackle.Board, content tackle.SquareContent, positions ...string) {
	t.Helper()
	for _, s := range positions {
		pos, err := tackle.ParsePosition(s)
		require.NoError(t, err)
		require.NoError(t, board.Place(content, pos))
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(1)
	require.Error(t, err)

	_, err = New(0, WithEpisodes(10))
	require.Error(t, err)

	m, err := New(2, WithEpisodes(10), WithCutoff(5))
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestSearchFindsImmediateWin(t *testing.T) {
	// White completes the square job by moving E8 down to E5.
	board := tackle.NewBoard()
	mustPlace(t, &board, tackle.White, "D4", "E4", "D5", "E8")
	mustPlace(t, &board, tackle.Black, "H2")

	g := game.NewGameAt(board, tackle.White, mustJob(t, "square"), mustJob(t, "spear"))

	m, err := New(1, WithEpisodes(3000), WithCutoff(20))
	require.NoError(t, err)

	action, err := m.Search(g)
	require.NoError(t, err)
	require.Equal(t, "E8-E5", action.String())

	next, err := g.Play(action)
	require.NoError(t, err)
	winner, ok := next.Winner()
	require.True(t, ok)
	require.Equal(t, tackle.White, winner)
}

func TestSearchFinishedGame(t *testing.T) {
	board := tackle.NewBoard()
	mustPlace(t, &board, tackle.White, "D4", "E4", "D5", "E8")

	g := game.NewGameAt(board, tackle.White, mustJob(t, "square"), mustJob(t, "spear"))

	// Completing the square finishes the game.
	action, err := game.ParseAction(game.MovementPhase, "E8-E5")
	require.NoError(t, err)
	require.NoError(t, g.Apply(action))

	m, err := New(1, WithEpisodes(10))
	require.NoError(t, err)

	_, err = m.Search(g)
	require.ErrorIs(t, err, ErrNoLegalActions)
}

func TestSearchWithDuration(t *testing.T) {
	g := game.NewGame(mustJob(t, "square"), mustJob(t, "spear"))

	m, err := New(4, WithDuration(50*time.Millisecond), WithCutoff(30))
	require.NoError(t, err)

	action, err := m.Search(g)
	require.NoError(t, err)
	require.Equal(t, game.PlacePieceAction, action.Kind)

	_, err = g.Play(action)
	require.NoError(t, err)
}

func TestEvaluateCourtControl(t *testing.T) {
	board := tackle.NewBoard()
	mustPlace(t, &board, tackle.White, "D4", "E4", "A1")
	mustPlace(t, &board, tackle.Black, "H8")

	g := game.NewGameAt(board, tackle.White, mustJob(t, "square"), mustJob(t, "spear"))

	// White has two court pieces against one; the border piece does not count.
	score := EvaluateCourtControl(&g)
	require.InDelta(t, 0.5+1.0/24, score, 1e-9)

	opposite := game.NewGameAt(*g.Board(), tackle.Black, mustJob(t, "square"), mustJob(t, "spear"))
	require.InDelta(t, 0.5-1.0/24, EvaluateCourtControl(&opposite), 1e-9)
}
