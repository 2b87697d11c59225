package game //nolint:testpackage

import (
	"testing"

	"github.com/lk16/tackle/internal/tackle"
	"github.com/stretchr/testify/require"
)

func TestActionNotationRoundTrip(t *testing.T) {
	tests := []struct {
		phase    Phase
		token    string
		wantKind ActionKind
	}{
		{PlacementPhase, "B5", PlacePieceAction},
		{PlacementPhase, "J10", PlacePieceAction},
		{GoldPhase, "E5", PlaceGoldAction},
		{MovementPhase, "B5-D5", MoveAction},
		{MovementPhase, "B10-D10", MoveAction},
		{MovementPhase, "B2:B4-D2", MoveAction},
		{MovementPhase, "C3:E3-C7", MoveAction},
		{MovementPhase, "A1/D4", MoveAction},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			action, err := ParseAction(test.phase, test.token)
			require.NoError(t, err)
			require.Equal(t, test.wantKind, action.Kind)
			require.Equal(t, test.token, action.String())
		})
	}
}

func TestParseActionBlockMove(t *testing.T) {
	action, err := ParseAction(MovementPhase, "B2:B4-D2")
	require.NoError(t, err)

	require.Equal(t, tackle.HorizontalMove, action.Move.Kind)
	require.Equal(t, 3, action.Move.Breadth)
	require.Equal(t, "B2", action.Move.From.String())
	require.Equal(t, "D2", action.Move.To.String())

	action, err = ParseAction(MovementPhase, "C3:E3-C7")
	require.NoError(t, err)
	require.Equal(t, tackle.VerticalMove, action.Move.Kind)
	require.Equal(t, 3, action.Move.Breadth)
}

func TestParseActionErrors(t *testing.T) {
	for _, token := range []string{
		"",
		"Z5",
		"B5_D5",
		"B5-B5",
		"B2:C4-D2", // rear edge not aligned with the travel direction
		"B2:B9-D2", // breadth above the block maximum
		"B5/D7",    // diagonal move not from a corner
		"A1/B3",    // not a diagonal
		"B5-D5-E5", // trailing garbage
		"B11-C11",  // off board
	} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseAction(MovementPhase, token)
			require.Error(t, err)
		})
	}

	_, err := ParseAction(PlacementPhase, "B5-D5")
	require.Error(t, err)

	_, err = ParseAction(FinishedPhase, "B5")
	require.ErrorIs(t, err, ErrGameOver)
}
