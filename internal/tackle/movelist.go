package tackle

// maxLineSquares is the most squares a single scan line can involve.
const maxLineSquares = BoardSize

// MoveList is the outcome of resolving one line of squares in one direction:
// how far the line may legally travel and which squares take part. It is a
// transient value with a fixed-capacity square buffer.
type MoveList struct {
	// MaxDistance is the farthest legal travel distance for the line. Zero
	// means the line cannot move at all.
	MaxDistance int

	// BlockLength is the length of the mover's contiguous same-color run,
	// the block strength in game terms. Zero when the start square cannot
	// initiate a move.
	BlockLength int

	squares [maxLineSquares]Position
	count   int
}

// Squares returns the involved squares in rear-to-front scan order: the
// mover's own run first, then any opponent pieces that would be pushed. This
// is exactly the order relocateMany expects.
func (ml *MoveList) Squares() []Position {
	return ml.squares[:ml.count]
}

func (ml *MoveList) push(pos Position) {
	ml.squares[ml.count] = pos
	ml.count++
}

// GetMaxMoveList scans from start in the given direction and resolves the
// farthest legal slide or push along that single line.
//
// The scan has three phases: the mover's own contiguous run, an optional
// opponent run that would be pushed, and the run of empty squares that bounds
// the travel distance. A push is only legal while the opponent run stays
// strictly shorter than the mover's own run. An obstruction behind the
// opponent run, or the gold piece anywhere ahead, makes the whole line
// immovable.
func (b *Board) GetMaxMoveList(start Position, dir Direction) MoveList {
	var ml MoveList

	mover := b.Get(start)
	if mover != White && mover != Black {
		// Empty squares and the gold piece cannot initiate a move.
		return MoveList{}
	}
	opponent := mover.Opponent()

	ml.push(start)
	ml.BlockLength = 1
	pos := start

	// Own-run phase: extend over the mover's contiguous pieces.
	for {
		next, ok := pos.TranslateChecked(dir, 1)
		if !ok {
			// The own run ends at the board edge; nowhere to go.
			return ml
		}
		if b.Get(next) != mover {
			break
		}
		ml.push(next)
		ml.BlockLength++
		pos = next
	}

	// Opponent-run phase: a strictly shorter opponent run may be pushed.
	opponentRun := 0
	for {
		next, ok := pos.TranslateChecked(dir, 1)
		if !ok {
			// The run ends at the board edge; pieces are never pushed off.
			return ml
		}

		switch b.Get(next) {
		case opponent:
			opponentRun++
			if opponentRun >= ml.BlockLength {
				return MoveList{}
			}
			ml.push(next)
			pos = next
		case Empty:
			// Empty-run phase: consecutive empty squares bound the distance.
			for {
				next, ok := pos.TranslateChecked(dir, 1)
				if !ok || b.Get(next) != Empty {
					return ml
				}
				ml.MaxDistance++
				pos = next
			}
		default:
			// The mover's own color behind an opponent run, or gold.
			return MoveList{}
		}
	}
}
