package tackle

import "fmt"

// MoveKind discriminates the three move families.
type MoveKind uint8

const (
	DiagonalMove MoveKind = iota
	HorizontalMove
	VerticalMove
)

// Move is a caller-supplied move request: a diagonal move from a corner, or
// an orthogonal slide/push of a single piece (Breadth 1) or a rectangular
// block (Breadth 2-4). A Move is constructed once, validated and consumed
// exactly once by ExecuteMove, and never stored by the engine.
type Move struct {
	Kind MoveKind
	From Position
	To   Position

	// Breadth is the block width perpendicular to the travel direction;
	// 1 means a single-piece move. For block moves, From is the rear-edge
	// square closest to A1 and the edge extends up (horizontal travel) or
	// right (vertical travel).
	Breadth int
}

// NewMove builds a single-piece orthogonal move.
func NewMove(from, to Position) (Move, error) {
	return NewBlockMove(from, to, 1)
}

// NewBlockMove builds an orthogonal move of a block that is breadth squares
// wide perpendicular to the travel direction.
func NewBlockMove(from, to Position, breadth int) (Move, error) {
	if breadth < 1 || breadth > MaxBlockBreadth {
		return Move{}, fmt.Errorf("invalid block breadth %d", breadth)
	}
	if from == to {
		return Move{}, fmt.Errorf("move from %s does not change position", from)
	}

	switch {
	case from.Row == to.Row:
		return Move{Kind: HorizontalMove, From: from, To: to, Breadth: breadth}, nil
	case from.Col == to.Col:
		return Move{Kind: VerticalMove, From: from, To: to, Breadth: breadth}, nil
	default:
		return Move{}, fmt.Errorf("move %s-%s must stay on one row or column", from, to)
	}
}

// NewDiagonalMove builds a diagonal move. Diagonal moves start on one of the
// four corners and travel along that corner's inward diagonal.
func NewDiagonalMove(from, to Position) (Move, error) {
	if !from.IsCorner() {
		return Move{}, fmt.Errorf("diagonal move must start on a corner, got %s", from)
	}

	dc := int(to.Col) - int(from.Col)
	dr := int(to.Row) - int(from.Row)
	if dc == 0 || abs(dc) != abs(dr) {
		return Move{}, fmt.Errorf("move %s-%s is not diagonal", from, to)
	}

	return Move{Kind: DiagonalMove, From: from, To: to, Breadth: 1}, nil
}

// Direction returns the travel direction of an orthogonal move.
func (m Move) Direction() Direction {
	if m.Kind == HorizontalMove {
		if m.To.Col > m.From.Col {
			return Right
		}
		return Left
	}
	if m.To.Row > m.From.Row {
		return Up
	}
	return Down
}

// Distance returns the number of squares the move travels.
func (m Move) Distance() int {
	if dc := abs(int(m.To.Col) - int(m.From.Col)); dc != 0 {
		return dc
	}
	return abs(int(m.To.Row) - int(m.From.Row))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
