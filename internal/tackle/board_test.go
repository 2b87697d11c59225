package tackle //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConsistent checks the bijection between the square array and the
// per-color index arrays.
func requireConsistent(t *testing.T, b *Board) {
	t.Helper()

	for slot, color := range []SquareContent{White, Black} {
		seen := map[uint8]bool{}
		for i := uint8(0); i < b.counts[slot]; i++ {
			index := b.pieces[slot][i]
			require.False(t, seen[index], "duplicate index entry %d for %s", index, color)
			seen[index] = true
			require.Equal(t, color, b.squares[index], "index entry %d does not address a %s square", index, color)
		}

		count := 0
		for index, content := range b.squares {
			if content == color {
				count++
				require.True(t, seen[uint8(index)], "%s square %d missing from index array", color, index)
			}
		}
		require.Equal(t, int(b.counts[slot]), count)
	}

	goldCount := 0
	for index, content := range b.squares {
		if content == Gold {
			goldCount++
			require.Equal(t, int8(index), b.gold)
		}
	}
	if goldCount == 0 {
		require.Equal(t, int8(noGold), b.gold)
	}
	require.LessOrEqual(t, goldCount, 1)
}

// mustPlace places content on the board and fails the test on error.
func mustPlace(t *testing.T, b *Board, content SquareContent, pos string) {
	t.Helper()
	require.NoError(t, b.Place(content, mustPosition(t, pos)))
}

func TestBoardPlaceAndRemove(t *testing.T) {
	board := NewBoard()
	requireConsistent(t, &board)

	mustPlace(t, &board, White, "A1")
	mustPlace(t, &board, Black, "J10")
	mustPlace(t, &board, Gold, "E5")
	requireConsistent(t, &board)

	require.Equal(t, White, board.Get(mustPosition(t, "A1")))
	require.Equal(t, Black, board.Get(mustPosition(t, "J10")))
	require.Equal(t, Gold, board.Get(mustPosition(t, "E5")))
	require.Equal(t, 1, board.Count(White))
	require.Equal(t, 1, board.Count(Black))

	goldPos, ok := board.GoldPosition()
	require.True(t, ok)
	require.Equal(t, mustPosition(t, "E5"), goldPos)

	// Occupied square and second gold piece are rejected.
	require.ErrorIs(t, board.Place(White, mustPosition(t, "A1")), ErrSquareOccupied)
	require.ErrorIs(t, board.Place(Gold, mustPosition(t, "F6")), ErrGoldAlreadyPlaced)

	require.NoError(t, board.Remove(mustPosition(t, "E5")))
	_, ok = board.GoldPosition()
	require.False(t, ok)

	require.NoError(t, board.Remove(mustPosition(t, "A1")))
	require.Equal(t, 0, board.Count(White))
	require.ErrorIs(t, board.Remove(mustPosition(t, "A1")), ErrSquareEmpty)
	requireConsistent(t, &board)
}

func TestBoardPlaceTooManyPieces(t *testing.T) {
	board := NewBoard()

	for i := range MaxPieces {
		// MaxPieces exceeds the board width, wrap onto row 3.
		pos, err := NewPosition(i%BoardSize+1, i/BoardSize*2+1)
		require.NoError(t, err)
		require.NoError(t, board.Place(White, pos))
	}

	extra, err := NewPosition(1, 5)
	require.NoError(t, err)
	require.ErrorIs(t, board.Place(White, extra), ErrTooManyPieces)
	requireConsistent(t, &board)
}

func TestBoardRelocateOne(t *testing.T) {
	board := NewBoard()
	mustPlace(t, &board, White, "B5")
	mustPlace(t, &board, Black, "C5")
	mustPlace(t, &board, Gold, "E5")

	require.ErrorIs(t, board.relocateOne(mustPosition(t, "D5"), mustPosition(t, "D6")), ErrSquareEmpty)
	require.ErrorIs(t, board.relocateOne(mustPosition(t, "E5"), mustPosition(t, "E6")), ErrMovingGoldForbidden)
	require.ErrorIs(t, board.relocateOne(mustPosition(t, "B5"), mustPosition(t, "C5")), ErrSquareOccupied)

	require.NoError(t, board.relocateOne(mustPosition(t, "B5"), mustPosition(t, "B8")))
	require.Equal(t, Empty, board.Get(mustPosition(t, "B5")))
	require.Equal(t, White, board.Get(mustPosition(t, "B8")))
	requireConsistent(t, &board)
}

func TestBoardRelocateManyAtomic(t *testing.T) {
	board := NewBoard()
	mustPlace(t, &board, White, "B5")
	mustPlace(t, &board, White, "C5")
	mustPlace(t, &board, Black, "D5")
	mustPlace(t, &board, Black, "F5")

	before := board

	// F5 is occupied: the whole batch must fail without touching the board.
	positions := []Position{
		mustPosition(t, "B5"),
		mustPosition(t, "C5"),
		mustPosition(t, "D5"),
	}
	require.ErrorIs(t, board.relocateMany(positions, Right, 2), ErrSquareOccupied)
	require.Equal(t, before, board)

	// With distance 1 every destination is free.
	require.NoError(t, board.relocateMany(positions, Right, 1))
	require.Equal(t, "", diffSquares(&board, map[string]SquareContent{
		"C5": White, "D5": White, "E5": Black, "F5": Black,
	}))
	requireConsistent(t, &board)
}

// diffSquares returns a description of the first square whose content does
// not match want, with all unmentioned squares expected to be empty.
func diffSquares(b *Board, want map[string]SquareContent) string {
	expected := NewBoard()
	for pos, content := range want {
		parsed, err := ParsePosition(pos)
		if err != nil {
			return err.Error()
		}
		if err := expected.Place(content, parsed); err != nil {
			return err.Error()
		}
	}

	for index := range b.squares {
		if b.squares[index] != expected.squares[index] {
			return positionFromIndex(index).String() + ": got " + b.squares[index].String() +
				", want " + expected.squares[index].String()
		}
	}
	return ""
}

func TestBoardStringRoundTrip(t *testing.T) {
	board := NewBoard()
	mustPlace(t, &board, White, "A1")
	mustPlace(t, &board, White, "C1")
	mustPlace(t, &board, Black, "J10")
	mustPlace(t, &board, Gold, "F6")

	s := board.String()
	require.Len(t, s, BoardSize*BoardSize)

	parsed, err := NewBoardFromString(s)
	require.NoError(t, err)
	require.Equal(t, s, parsed.String())
	require.Equal(t, board.squares, parsed.squares)
	requireConsistent(t, &parsed)
}

func TestNewBoardFromStringErrors(t *testing.T) {
	_, err := NewBoardFromString("too short")
	require.Error(t, err)

	bad := make([]byte, BoardSize*BoardSize)
	for i := range bad {
		bad[i] = '.'
	}
	bad[13] = 'x'
	_, err = NewBoardFromString(string(bad))
	require.Error(t, err)
}

func TestBoardCopyIsIndependent(t *testing.T) {
	board := NewBoard()
	mustPlace(t, &board, White, "B5")

	boardCopy := board
	mustPlace(t, &boardCopy, Black, "C5")

	require.Equal(t, Empty, board.Get(mustPosition(t, "C5")))
	require.Equal(t, Black, boardCopy.Get(mustPosition(t, "C5")))
}
