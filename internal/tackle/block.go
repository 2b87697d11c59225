package tackle

// MaxBlockBreadth is the widest block of pieces that may move as a unit.
const MaxBlockBreadth = 4

// Block is the axis-aligned rectangle bounded by two corner positions. It is
// a transient value derived while interpreting a move request, never stored.
type Block struct {
	corner Position // lower-left corner
	width  int
	height int
}

// BlockFromCorners normalizes an arbitrary pair of corners into a block.
// Width and height are always at least 1.
func BlockFromCorners(a, b Position) Block {
	minCol, maxCol := a.Col, b.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}

	minRow, maxRow := a.Row, b.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}

	return Block{
		corner: Position{Col: minCol, Row: minRow},
		width:  int(maxCol-minCol) + 1,
		height: int(maxRow-minRow) + 1,
	}
}

// Width returns the number of columns the block covers.
func (b Block) Width() int {
	return b.width
}

// Height returns the number of rows the block covers.
func (b Block) Height() int {
	return b.height
}

// OrderedSquares appends every square of the block to buf so that the squares
// on the side the block travels toward come first. Walking the result
// front-to-back is what keeps a multi-piece commit from colliding with its
// own still-occupied origins. Ordering along the perpendicular axis is
// unspecified.
func (b Block) OrderedSquares(dir Direction, buf []Position) []Position {
	maxCol := b.corner.Col + uint8(b.width) - 1
	maxRow := b.corner.Row + uint8(b.height) - 1

	switch dir {
	case Up:
		for r := maxRow; r >= b.corner.Row; r-- {
			for c := b.corner.Col; c <= maxCol; c++ {
				buf = append(buf, Position{Col: c, Row: r})
			}
		}
	case Down:
		for r := b.corner.Row; r <= maxRow; r++ {
			for c := b.corner.Col; c <= maxCol; c++ {
				buf = append(buf, Position{Col: c, Row: r})
			}
		}
	case Right:
		for c := maxCol; c >= b.corner.Col; c-- {
			for r := b.corner.Row; r <= maxRow; r++ {
				buf = append(buf, Position{Col: c, Row: r})
			}
		}
	case Left:
		for c := b.corner.Col; c <= maxCol; c++ {
			for r := b.corner.Row; r <= maxRow; r++ {
				buf = append(buf, Position{Col: c, Row: r})
			}
		}
	}
	return buf
}
