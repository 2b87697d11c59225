package tackle

// maxBlockSquares bounds the squares a block move can involve: one scan line
// per rear-edge square.
const maxBlockSquares = MaxBlockBreadth * maxLineSquares

// ExecuteMove validates and applies a move for the given player. It is the
// single entry point for all move kinds. On any error the board is left
// completely unchanged.
func (b *Board) ExecuteMove(player SquareContent, move Move) error {
	if player != White && player != Black {
		return ErrWrongColor
	}
	if b.Get(move.From) != player {
		return ErrWrongColor
	}

	if move.Kind == DiagonalMove {
		return b.executeDiagonal(move)
	}
	return b.executeLine(player, move)
}

// executeDiagonal moves a single piece along a corner diagonal. The whole
// path, destination included, must be empty.
func (b *Board) executeDiagonal(move Move) error {
	dc := sign(int(move.To.Col) - int(move.From.Col))
	dr := sign(int(move.To.Row) - int(move.From.Row))
	steps := abs(int(move.To.Col) - int(move.From.Col))

	if !move.From.IsCorner() || dc == 0 || steps != abs(int(move.To.Row)-int(move.From.Row)) {
		return ErrPathBlocked
	}

	for i := 1; i <= steps; i++ {
		pos := Position{
			Col: uint8(int(move.From.Col) + dc*i),
			Row: uint8(int(move.From.Row) + dr*i),
		}
		if b.Get(pos) != Empty {
			return ErrPathBlocked
		}
	}

	return b.relocateOne(move.From, move.To)
}

// executeLine applies an orthogonal move, single piece or block. Every line
// of the block's rear edge is resolved independently; the lines must agree on
// the block length (rectangularity) and each must support the requested
// distance. All involved squares are then committed in one atomic batch.
func (b *Board) executeLine(player SquareContent, move Move) error {
	dir := move.Direction()
	distance := move.Distance()

	if distance < 1 {
		return ErrPathBlocked
	}
	if move.Breadth < 1 || move.Breadth > MaxBlockBreadth {
		return ErrInvalidBlockShape
	}

	rearFar, ok := move.From.TranslateChecked(dir.perpendicular(), move.Breadth-1)
	if !ok {
		return ErrInvalidBlockShape
	}
	rear := BlockFromCorners(move.From, rearFar)

	var rearBuf [MaxBlockBreadth]Position
	rearSquares := rear.OrderedSquares(dir, rearBuf[:0])

	var squaresBuf [maxBlockSquares]Position
	combined := squaresBuf[:0]

	blockLength := 0
	for i, start := range rearSquares {
		if b.Get(start) != player {
			return ErrInvalidBlockShape
		}

		list := b.GetMaxMoveList(start, dir)
		if list.MaxDistance < distance {
			return ErrPathBlocked
		}
		if i == 0 {
			blockLength = list.BlockLength
		} else if list.BlockLength != blockLength {
			return ErrInvalidBlockShape
		}

		combined = append(combined, list.Squares()...)
	}

	if blockLength < move.Breadth {
		return ErrBlockCannotMoveSideways
	}

	return b.relocateMany(combined, dir, distance)
}

// PlacePiece places a colored piece under the opening placement rules: only
// border squares are allowed, and an orthogonally neighboring piece of the
// same color blocks the placement.
func (b *Board) PlacePiece(player SquareContent, pos Position) error {
	if player != White && player != Black {
		return ErrWrongColor
	}
	if !pos.IsBorder() {
		return ErrPlaceOffBorder
	}

	neighbors := [4]struct {
		dir     Direction
		blocked error
	}{
		{Up, ErrBlockedByUpperNeighbor},
		{Down, ErrBlockedByLowerNeighbor},
		{Left, ErrBlockedByLeftNeighbor},
		{Right, ErrBlockedByRightNeighbor},
	}

	for _, neighbor := range neighbors {
		adjacent, ok := pos.TranslateChecked(neighbor.dir, 1)
		if ok && b.Get(adjacent) == player {
			return neighbor.blocked
		}
	}

	return b.Place(player, pos)
}

// PlaceGold places the single gold piece inside the 4×4 core.
func (b *Board) PlaceGold(pos Position) error {
	if !pos.IsCore() {
		return ErrGoldNotInCore
	}
	return b.Place(Gold, pos)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
