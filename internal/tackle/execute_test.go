package tackle //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustMove(t *testing.T, from, to string) Move {
	t.Helper()
	move, err := NewMove(mustPosition(t, from), mustPosition(t, to))
	require.NoError(t, err)
	return move
}

func mustBlockMove(t *testing.T, from, to string, breadth int) Move {
	t.Helper()
	move, err := NewBlockMove(mustPosition(t, from), mustPosition(t, to), breadth)
	require.NoError(t, err)
	return move
}

func mustDiagonalMove(t *testing.T, from, to string) Move {
	t.Helper()
	move, err := NewDiagonalMove(mustPosition(t, from), mustPosition(t, to))
	require.NoError(t, err)
	return move
}

func TestExecuteMoveSimplePush(t *testing.T) {
	board := setupBoard(t, map[string]SquareContent{
		"B5": White, "C5": White, "D5": White,
		"E5": Black, "F5": Black,
	})

	require.NoError(t, board.ExecuteMove(White, mustMove(t, "B5", "D5")))

	require.Equal(t, "", diffSquares(&board, map[string]SquareContent{
		"D5": White, "E5": White, "F5": White,
		"G5": Black, "H5": Black,
	}))
	requireConsistent(t, &board)
}

func TestExecuteMoveBlockedPush(t *testing.T) {
	board := setupBoard(t, map[string]SquareContent{
		"B5": White,
		"C5": Black,
	})
	before := board

	err := board.ExecuteMove(White, mustMove(t, "B5", "C5"))
	require.ErrorIs(t, err, ErrPathBlocked)
	require.Equal(t, before, board)
}

func TestExecuteMoveEqualRunsRejected(t *testing.T) {
	board := setupBoard(t, map[string]SquareContent{
		"B5": White, "C5": White,
		"D5": Black, "E5": Black,
	})
	before := board

	err := board.ExecuteMove(White, mustMove(t, "B5", "C5"))
	require.ErrorIs(t, err, ErrPathBlocked)
	require.Equal(t, before, board)
}

func TestExecuteMoveWrongColor(t *testing.T) {
	board := setupBoard(t, map[string]SquareContent{"B5": Black})
	before := board

	require.ErrorIs(t, board.ExecuteMove(White, mustMove(t, "B5", "C5")), ErrWrongColor)
	require.ErrorIs(t, board.ExecuteMove(White, mustMove(t, "D5", "E5")), ErrWrongColor)
	require.ErrorIs(t, board.ExecuteMove(Gold, mustMove(t, "B5", "C5")), ErrWrongColor)
	require.Equal(t, before, board)
}

func TestExecuteMoveDistanceExceedsMaximum(t *testing.T) {
	board := setupBoard(t, map[string]SquareContent{
		"B5": White,
		"E5": Black, "F5": Black,
	})
	before := board

	// Two empty squares ahead, asking for three.
	require.ErrorIs(t, board.ExecuteMove(White, mustMove(t, "B5", "E5")), ErrPathBlocked)
	require.Equal(t, before, board)

	require.NoError(t, board.ExecuteMove(White, mustMove(t, "B5", "D5")))
	require.Equal(t, White, board.Get(mustPosition(t, "D5")))
}

func TestExecuteMoveDiagonal(t *testing.T) {
	t.Run("clear path", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{"A1": White})

		require.NoError(t, board.ExecuteMove(White, mustDiagonalMove(t, "A1", "D4")))
		require.Equal(t, "", diffSquares(&board, map[string]SquareContent{"D4": White}))
		requireConsistent(t, &board)
	})

	t.Run("obstruction one square before the destination", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"A1": White,
			"C3": Black,
		})
		before := board

		err := board.ExecuteMove(White, mustDiagonalMove(t, "A1", "D4"))
		require.ErrorIs(t, err, ErrPathBlocked)
		require.Equal(t, before, board)
	})

	t.Run("occupied destination", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"J10": Black,
			"G7":  White,
		})
		before := board

		err := board.ExecuteMove(Black, mustDiagonalMove(t, "J10", "G7"))
		require.ErrorIs(t, err, ErrPathBlocked)
		require.Equal(t, before, board)
	})

	t.Run("from all four corners", func(t *testing.T) {
		for corner, target := range map[string]string{
			"A1":  "C3",
			"A10": "C8",
			"J1":  "H3",
			"J10": "H8",
		} {
			board := setupBoard(t, map[string]SquareContent{corner: White})
			require.NoError(t, board.ExecuteMove(White, mustDiagonalMove(t, corner, target)))
			require.Equal(t, White, board.Get(mustPosition(t, target)))
		}
	})
}

func TestExecuteMoveBlock(t *testing.T) {
	t.Run("two wide block push", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"B5": White, "B6": White,
			"C5": White, "C6": White,
			"D5": Black, "D6": Black,
		})

		require.NoError(t, board.ExecuteMove(White, mustBlockMove(t, "B5", "C5", 2)))

		require.Equal(t, "", diffSquares(&board, map[string]SquareContent{
			"C5": White, "C6": White,
			"D5": White, "D6": White,
			"E5": Black, "E6": Black,
		}))
		requireConsistent(t, &board)
	})

	t.Run("vertical block move", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"D2": White, "E2": White,
			"D3": White, "E3": White,
		})

		require.NoError(t, board.ExecuteMove(White, mustBlockMove(t, "D2", "D5", 2)))

		require.Equal(t, "", diffSquares(&board, map[string]SquareContent{
			"D5": White, "E5": White,
			"D6": White, "E6": White,
		}))
		requireConsistent(t, &board)
	})

	t.Run("L shape is not a block", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"B5": White, "C5": White,
			"B6": White,
		})
		before := board

		err := board.ExecuteMove(White, mustBlockMove(t, "B5", "C5", 2))
		require.ErrorIs(t, err, ErrInvalidBlockShape)
		require.Equal(t, before, board)
	})

	t.Run("rear edge square not owned", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"B5": White, "C5": White,
			"B6": Black, "C6": Black,
		})
		before := board

		err := board.ExecuteMove(White, mustBlockMove(t, "B5", "C5", 2))
		require.ErrorIs(t, err, ErrInvalidBlockShape)
		require.Equal(t, before, board)
	})

	t.Run("block too narrow to move sideways", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"B5": White,
			"B6": White,
		})
		before := board

		err := board.ExecuteMove(White, mustBlockMove(t, "B5", "C5", 2))
		require.ErrorIs(t, err, ErrBlockCannotMoveSideways)
		require.Equal(t, before, board)
	})

	t.Run("one line blocked blocks the whole move", func(t *testing.T) {
		board := setupBoard(t, map[string]SquareContent{
			"B5": White, "C5": White,
			"B6": White, "C6": White,
			"D6": Gold,
		})
		before := board

		err := board.ExecuteMove(White, mustBlockMove(t, "B5", "C5", 2))
		require.ErrorIs(t, err, ErrPathBlocked)
		require.Equal(t, before, board)
	})
}

func TestPlacePiece(t *testing.T) {
	t.Run("off border", func(t *testing.T) {
		board := NewBoard()
		require.ErrorIs(t, board.PlacePiece(White, mustPosition(t, "E5")), ErrPlaceOffBorder)
	})

	t.Run("same color neighbor blocks placement", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlacePiece(White, mustPosition(t, "C1")))

		require.ErrorIs(t, board.PlacePiece(White, mustPosition(t, "B1")), ErrBlockedByRightNeighbor)
		require.ErrorIs(t, board.PlacePiece(White, mustPosition(t, "D1")), ErrBlockedByLeftNeighbor)

		// One square further is fine.
		require.NoError(t, board.PlacePiece(White, mustPosition(t, "E1")))

		// The opponent may place next to it.
		require.NoError(t, board.PlacePiece(Black, mustPosition(t, "B1")))
	})

	t.Run("vertical neighbors", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlacePiece(Black, mustPosition(t, "A5")))

		require.ErrorIs(t, board.PlacePiece(Black, mustPosition(t, "A4")), ErrBlockedByUpperNeighbor)
		require.ErrorIs(t, board.PlacePiece(Black, mustPosition(t, "A6")), ErrBlockedByLowerNeighbor)
	})

	t.Run("occupied square", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlacePiece(White, mustPosition(t, "A1")))
		require.ErrorIs(t, board.PlacePiece(Black, mustPosition(t, "A1")), ErrSquareOccupied)
	})
}

func TestPlaceGold(t *testing.T) {
	board := NewBoard()

	require.ErrorIs(t, board.PlaceGold(mustPosition(t, "B2")), ErrGoldNotInCore)
	require.ErrorIs(t, board.PlaceGold(mustPosition(t, "C4")), ErrGoldNotInCore)

	require.NoError(t, board.PlaceGold(mustPosition(t, "E5")))
	require.ErrorIs(t, board.PlaceGold(mustPosition(t, "F6")), ErrGoldAlreadyPlaced)
}

func TestExecuteMoveRoundTrip(t *testing.T) {
	// Two rule-equivalent paths to the same position must produce the same
	// square array.
	setup := map[string]SquareContent{
		"B2": White, "B3": White,
		"H8": Black,
	}

	first := setupBoard(t, setup)
	require.NoError(t, first.ExecuteMove(White, mustMove(t, "B2", "E2")))
	require.NoError(t, first.ExecuteMove(Black, mustMove(t, "H8", "H5")))
	require.NoError(t, first.ExecuteMove(White, mustMove(t, "B3", "E3")))

	second := setupBoard(t, setup)
	require.NoError(t, second.ExecuteMove(White, mustMove(t, "B3", "E3")))
	require.NoError(t, second.ExecuteMove(White, mustMove(t, "B2", "E2")))
	require.NoError(t, second.ExecuteMove(Black, mustMove(t, "H8", "H5")))

	require.Equal(t, first.String(), second.String())
	requireConsistent(t, &first)
	requireConsistent(t, &second)
}

func TestInvariantPreservation(t *testing.T) {
	board := NewBoard()

	steps := []func() error{
		func() error { return board.PlacePiece(White, mustPosition(t, "A3")) },
		func() error { return board.PlacePiece(Black, mustPosition(t, "J3")) },
		func() error { return board.PlacePiece(White, mustPosition(t, "C1")) },
		func() error { return board.PlacePiece(Black, mustPosition(t, "C10")) },
		func() error { return board.PlaceGold(mustPosition(t, "F6")) },
		func() error { return board.ExecuteMove(White, mustMove(t, "A3", "E3")) },
		func() error { return board.ExecuteMove(Black, mustMove(t, "J3", "F3")) },
		func() error { return board.ExecuteMove(White, mustMove(t, "C1", "C5")) },
		func() error { return board.ExecuteMove(Black, mustMove(t, "C10", "C6")) },
	}

	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		requireConsistent(t, &board)
	}
}
