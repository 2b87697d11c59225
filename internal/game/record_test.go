package game //nolint:testpackage

import (
	"strings"
	"testing"

	"github.com/lk16/tackle/internal/tackle"
	"github.com/stretchr/testify/require"
)

// fullGameTokens is a complete game: 24 placements, the gold placement, and
// eleven moves ending with white completing the square job on D4-E5.
func fullGameTokens() []string {
	tokens := make([]string, 0, 36)
	for i := range PiecesPerPlayer {
		tokens = append(tokens, whitePlacements[i], blackPlacements[i])
	}
	tokens = append(tokens, "F6")
	tokens = append(tokens,
		"C1-C4", "J3-H3",
		"E1-E4", "J5-H5",
		"C4-D4", "J7-H7",
		"C10-C5", "J9-H9",
		"C5-D5", "H3-H4",
		"E10-E5",
	)
	return tokens
}

func TestRecordReplayFullGame(t *testing.T) {
	rec := NewRecord(mustJob(t, "square"), mustJob(t, "spear"))
	rec.Tokens = fullGameTokens()

	g, err := rec.Replay()
	require.NoError(t, err)

	winner, ok := g.Winner()
	require.True(t, ok)
	require.Equal(t, tackle.White, winner)
	require.Equal(t, 36, g.PlyCount())

	// The gold piece stays on the board while the border is occupied.
	goldPos, ok := g.Board().GoldPosition()
	require.True(t, ok)
	require.Equal(t, "F6", goldPos.String())
}

func TestRecordStringParseRoundTrip(t *testing.T) {
	rec := NewRecord(mustJob(t, "square"), mustJob(t, "spear"))
	rec.Tags["White"] = "alice"
	rec.Tags["Black"] = "bob"
	rec.Tokens = fullGameTokens()

	parsed, err := ParseRecord(strings.NewReader(rec.String()))
	require.NoError(t, err)

	require.Equal(t, rec.Tags, parsed.Tags)
	require.Equal(t, rec.Tokens, parsed.Tokens)

	replayed, err := parsed.Replay()
	require.NoError(t, err)
	_, ok := replayed.Winner()
	require.True(t, ok)
}

func TestParseRecordSkipsMoveNumbers(t *testing.T) {
	input := `[WhiteJob "square"]
[BlackJob "spear"]

1. A1 B1
2. C1 D1
`
	rec, err := ParseRecord(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, "square", rec.Tags["WhiteJob"])
	require.Equal(t, []string{"A1", "B1", "C1", "D1"}, rec.Tokens)

	g, err := rec.Replay()
	require.NoError(t, err)
	require.Equal(t, 4, g.PlyCount())
	require.Equal(t, PlacementPhase, g.Phase())
}

func TestReplayErrors(t *testing.T) {
	t.Run("missing job tag", func(t *testing.T) {
		rec := Record{Tags: map[string]string{"WhiteJob": "square"}}
		_, err := rec.Replay()
		require.Error(t, err)
	})

	t.Run("illegal action", func(t *testing.T) {
		rec := NewRecord(mustJob(t, "square"), mustJob(t, "spear"))
		rec.Tokens = []string{"E5"}

		_, err := rec.Replay()
		require.ErrorIs(t, err, tackle.ErrPlaceOffBorder)
	})

	t.Run("malformed tag", func(t *testing.T) {
		_, err := ParseRecord(strings.NewReader("[Broken]\n"))
		require.Error(t, err)
	})
}

func TestRecordAddAction(t *testing.T) {
	rec := NewRecord(mustJob(t, "square"), mustJob(t, "spear"))

	pos, err := tackle.ParsePosition("A1")
	require.NoError(t, err)
	rec.AddAction(PlacePiece(pos))

	move, err := tackle.NewMove(pos, tackle.Position{Col: 4, Row: 1})
	require.NoError(t, err)
	rec.AddAction(MakeMove(move))

	require.Equal(t, []string{"A1", "A1-D1"}, rec.Tokens)
}
