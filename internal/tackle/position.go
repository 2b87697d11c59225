package tackle

import (
	"fmt"
	"strconv"
)

const (
	// BoardSize is the number of columns and rows of the board.
	BoardSize = 10

	// MaxPieces is the maximum number of pieces one player may have on the board.
	MaxPieces = 12
)

// Direction is one of the four orthogonal travel directions. Diagonal motion
// is a separate move kind, not a direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// delta returns the per-step column and row offsets of the direction.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// perpendicular returns the axis along which a block's breadth extends:
// up for horizontal travel and right for vertical travel.
func (d Direction) perpendicular() Direction {
	if d == Up || d == Down {
		return Right
	}
	return Up
}

// Position is a single square on the board. Columns and rows are 1-based,
// so A1 is {1, 1} and J10 is {10, 10}.
type Position struct {
	Col uint8
	Row uint8
}

// NewPosition creates a position, validating board bounds.
func NewPosition(col, row int) (Position, error) {
	if col < 1 || col > BoardSize || row < 1 || row > BoardSize {
		return Position{}, fmt.Errorf("position out of bounds: column %d, row %d", col, row)
	}
	return Position{Col: uint8(col), Row: uint8(row)}, nil
}

// ParsePosition parses a position like "B5". Columns are letters A-J, rows
// are numbers 1-10.
func ParsePosition(s string) (Position, error) {
	if len(s) < 2 || len(s) > 3 {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}

	col := int(s[0]-'A') + 1

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}

	return NewPosition(col, row)
}

// String returns the position in letter-number notation, like "B5".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col-1, p.Row)
}

// index maps the position to its offset in the square array, column-major.
func (p Position) index() int {
	return int(p.Col-1)*BoardSize + int(p.Row-1)
}

// positionFromIndex is the inverse of index.
func positionFromIndex(index int) Position {
	return Position{Col: uint8(index/BoardSize) + 1, Row: uint8(index%BoardSize) + 1}
}

// Translate moves the position by distance steps in the given direction
// without bounds checking. The caller must already know the result is on the
// board.
func (p Position) Translate(dir Direction, distance int) Position {
	dc, dr := dir.delta()
	return Position{
		Col: uint8(int(p.Col) + dc*distance),
		Row: uint8(int(p.Row) + dr*distance),
	}
}

// TranslateChecked is like Translate but reports ok=false when the result
// would leave the board or when distance exceeds the longest possible
// single-axis travel.
func (p Position) TranslateChecked(dir Direction, distance int) (Position, bool) {
	if distance < 0 || distance > BoardSize-1 {
		return Position{}, false
	}

	dc, dr := dir.delta()
	col := int(p.Col) + dc*distance
	row := int(p.Row) + dr*distance

	if col < 1 || col > BoardSize || row < 1 || row > BoardSize {
		return Position{}, false
	}
	return Position{Col: uint8(col), Row: uint8(row)}, true
}

// IsBorder reports whether the position lies on the outer edge of the board.
func (p Position) IsBorder() bool {
	return p.Col == 1 || p.Col == BoardSize || p.Row == 1 || p.Row == BoardSize
}

// IsCourt reports whether the position lies inside the border. Jobs are only
// satisfied by pieces in the court.
func (p Position) IsCourt() bool {
	return !p.IsBorder()
}

// IsCorner reports whether the position is one of the four board corners.
func (p Position) IsCorner() bool {
	return (p.Col == 1 || p.Col == BoardSize) && (p.Row == 1 || p.Row == BoardSize)
}

// IsCore reports whether the position lies in the innermost 4×4 region where
// the gold piece may be placed.
func (p Position) IsCore() bool {
	return p.Col >= 4 && p.Col <= 7 && p.Row >= 4 && p.Row <= 7
}
