package tackle

import (
	"fmt"
)

// SquareContent is what occupies a single board square.
type SquareContent uint8

const (
	Empty SquareContent = iota
	White
	Black
	Gold
)

// String returns the content name.
func (c SquareContent) String() string {
	switch c {
	case Empty:
		return "empty"
	case White:
		return "white"
	case Black:
		return "black"
	case Gold:
		return "gold"
	}
	return "unknown"
}

// Opponent returns the other player's color. Only valid for White and Black.
func (c SquareContent) Opponent() SquareContent {
	if c == White {
		return Black
	}
	return White
}

// rune returns the single-character codec representation of the content.
func (c SquareContent) rune() byte {
	switch c {
	case White:
		return 'W'
	case Black:
		return 'B'
	case Gold:
		return 'G'
	}
	return '.'
}

// noGold marks the gold piece as not yet placed.
const noGold = -1

// Board holds a full game position: the square grid plus per-color index
// arrays for fast piece iteration. Board is a plain value with no heap
// indirection: assigning it copies the whole position, which is what the
// search driver relies on when it clones states per tree node.
//
// Invariant: the square array and the index arrays always describe the same
// position. Every mutating method either upholds that or returns an error
// while leaving the board untouched.
type Board struct {
	squares [BoardSize * BoardSize]SquareContent
	pieces  [2][MaxPieces]uint8 // square indices per color, unordered
	counts  [2]uint8
	gold    int8 // square index of the gold piece, noGold if not placed
}

// NewBoard creates an empty board.
func NewBoard() Board {
	return Board{gold: noGold}
}

// NewBoardFromString parses a board from its 100-character string
// representation, column-major from A1.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", BoardSize*BoardSize, len(s))
	}

	board := NewBoard()
	for i := range len(s) {
		var content SquareContent
		switch s[i] {
		case '.':
			continue
		case 'W':
			content = White
		case 'B':
			content = Black
		case 'G':
			content = Gold
		default:
			return Board{}, fmt.Errorf("invalid square character %q at offset %d", s[i], i)
		}

		if err := board.Place(content, positionFromIndex(i)); err != nil {
			return Board{}, fmt.Errorf("invalid board string: %w", err)
		}
	}

	return board, nil
}

// String returns the 100-character representation of the board, column-major
// from A1: '.' empty, 'W' white, 'B' black, 'G' gold.
func (b *Board) String() string {
	buf := make([]byte, len(b.squares))
	for i, content := range b.squares {
		buf[i] = content.rune()
	}
	return string(buf)
}

// Get returns the content of the given square.
func (b *Board) Get(pos Position) SquareContent {
	return b.squares[pos.index()]
}

// Count returns the number of pieces the given player has on the board.
func (b *Board) Count(player SquareContent) int {
	return int(b.counts[colorSlot(player)])
}

// Pieces appends the positions of the player's pieces to buf, in no
// particular order.
func (b *Board) Pieces(player SquareContent, buf []Position) []Position {
	slot := colorSlot(player)
	for i := uint8(0); i < b.counts[slot]; i++ {
		buf = append(buf, positionFromIndex(int(b.pieces[slot][i])))
	}
	return buf
}

// GoldPosition returns the gold piece's square, reporting ok=false when the
// gold piece is not on the board.
func (b *Board) GoldPosition() (Position, bool) {
	if b.gold == noGold {
		return Position{}, false
	}
	return positionFromIndex(int(b.gold)), true
}

// colorSlot maps a player color to its index-array slot.
func colorSlot(c SquareContent) int {
	if c == White {
		return 0
	}
	return 1
}

// Place puts a piece on an empty square.
func (b *Board) Place(content SquareContent, pos Position) error {
	index := pos.index()

	if b.squares[index] != Empty {
		return ErrSquareOccupied
	}

	if content == Gold {
		if b.gold != noGold {
			return ErrGoldAlreadyPlaced
		}
		b.gold = int8(index)
		b.squares[index] = Gold
		return nil
	}

	slot := colorSlot(content)
	if b.counts[slot] == MaxPieces {
		return ErrTooManyPieces
	}
	b.pieces[slot][b.counts[slot]] = uint8(index)
	b.counts[slot]++
	b.squares[index] = content
	return nil
}

// Remove clears a square, swap-removing its index entry.
func (b *Board) Remove(pos Position) error {
	index := pos.index()
	content := b.squares[index]

	if content == Empty {
		return ErrSquareEmpty
	}

	if content == Gold {
		b.gold = noGold
	} else {
		b.removeIndex(colorSlot(content), uint8(index))
	}

	b.squares[index] = Empty
	return nil
}

// removeIndex drops the index entry by swapping in the last entry.
func (b *Board) removeIndex(slot int, index uint8) {
	n := b.counts[slot]
	for i := uint8(0); i < n; i++ {
		if b.pieces[slot][i] == index {
			b.pieces[slot][i] = b.pieces[slot][n-1]
			b.counts[slot]--
			return
		}
	}
}

// replaceIndex rewrites the index entry of a moved piece.
func (b *Board) replaceIndex(slot int, oldIndex, newIndex uint8) {
	for i := uint8(0); i < b.counts[slot]; i++ {
		if b.pieces[slot][i] == oldIndex {
			b.pieces[slot][i] = newIndex
			return
		}
	}
}

// relocateOne moves a single piece to an empty square.
func (b *Board) relocateOne(from, to Position) error {
	content := b.squares[from.index()]

	if content == Empty {
		return ErrSquareEmpty
	}
	if content == Gold {
		return ErrMovingGoldForbidden
	}
	if b.squares[to.index()] != Empty {
		return ErrSquareOccupied
	}

	b.squares[to.index()] = content
	b.squares[from.index()] = Empty
	b.replaceIndex(colorSlot(content), uint8(from.index()), uint8(to.index()))
	return nil
}

// relocateMany moves every listed piece by the same direction and distance in
// one atomic batch. The list must be ordered rear-to-front along the travel
// direction; the walk runs front-to-back so no destination collides with a
// still-occupied origin. Sub-moves are first applied to a scratch copy of the
// square array, so a failing sub-move leaves the live board untouched.
func (b *Board) relocateMany(positions []Position, dir Direction, distance int) error {
	scratch := b.squares

	for i := len(positions) - 1; i >= 0; i-- {
		from := positions[i]
		content := scratch[from.index()]

		if content == Empty {
			return ErrSquareEmpty
		}
		if content == Gold {
			return ErrMovingGoldForbidden
		}

		to, ok := from.TranslateChecked(dir, distance)
		if !ok {
			return ErrPathBlocked
		}
		if scratch[to.index()] != Empty {
			return ErrSquareOccupied
		}

		scratch[to.index()] = content
		scratch[from.index()] = Empty
	}

	// Every sub-move succeeded: commit the scratch squares and fix up the
	// index entries, front-to-back so entries stay unique at every step.
	for i := len(positions) - 1; i >= 0; i-- {
		from := positions[i]
		content := b.squares[from.index()]
		to := from.Translate(dir, distance)
		b.replaceIndex(colorSlot(content), uint8(from.index()), uint8(to.index()))
	}
	b.squares = scratch
	return nil
}

// ASCIIArtLines returns the ascii art lines for the board.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, 0, BoardSize+2)
	lines = append(lines, "+-A-B-C-D-E-F-G-H-I-J--+")

	for row := BoardSize; row >= 1; row-- {
		line := fmt.Sprintf("%2d", row)
		for col := 1; col <= BoardSize; col++ {
			pos := Position{Col: uint8(col), Row: uint8(row)}
			switch b.Get(pos) {
			case White:
				line += "○ "
			case Black:
				line += "● "
			case Gold:
				line += "◆ "
			default:
				line += "· "
			}
		}
		lines = append(lines, line+"|")
	}

	lines = append(lines, "+----------------------+")
	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}
