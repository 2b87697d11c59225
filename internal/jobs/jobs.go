package jobs

import (
	"fmt"

	"github.com/lk16/tackle/internal/tackle"
)

// Offset is a square of a job pattern relative to its anchor.
type Offset struct {
	Col int
	Row int
}

// Job is a geometric pattern of required and forbidden piece placements. A
// player wins by matching their job anywhere in the court, in any of the four
// rotations. Jobs only read the board through its square query.
type Job struct {
	Name string

	// Own lists the squares that must hold the player's color. All of them
	// must lie in the court.
	Own []Offset

	// Empty lists the squares that must be empty.
	Empty []Offset
}

// rotate returns the offset rotated a quarter turn counterclockwise.
func (o Offset) rotate() Offset {
	return Offset{Col: -o.Row, Row: o.Col}
}

func rotateAll(offsets []Offset) []Offset {
	rotated := make([]Offset, len(offsets))
	for i, o := range offsets {
		rotated[i] = o.rotate()
	}
	return rotated
}

// MatchedBy reports whether the player's pieces fulfill the job.
func (j Job) MatchedBy(board *tackle.Board, player tackle.SquareContent) bool {
	own := j.Own
	empty := j.Empty

	for range 4 {
		if matchesAnywhere(board, player, own, empty) {
			return true
		}
		own = rotateAll(own)
		empty = rotateAll(empty)
	}
	return false
}

// matchesAnywhere tries every board square as the pattern anchor.
func matchesAnywhere(board *tackle.Board, player tackle.SquareContent, own, empty []Offset) bool {
	for col := 1; col <= tackle.BoardSize; col++ {
		for row := 1; row <= tackle.BoardSize; row++ {
			if matchesAt(board, player, col, row, own, empty) {
				return true
			}
		}
	}
	return false
}

func matchesAt(board *tackle.Board, player tackle.SquareContent, col, row int, own, empty []Offset) bool {
	for _, o := range own {
		pos, err := tackle.NewPosition(col+o.Col, row+o.Row)
		if err != nil || !pos.IsCourt() || board.Get(pos) != player {
			return false
		}
	}

	for _, o := range empty {
		pos, err := tackle.NewPosition(col+o.Col, row+o.Row)
		if err != nil || board.Get(pos) != tackle.Empty {
			return false
		}
	}
	return true
}

// Deck returns the standard set of jobs players are dealt from.
func Deck() []Job {
	return []Job{
		{
			Name: "square",
			Own:  []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		},
		{
			Name: "spear",
			Own:  []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			Name: "hook",
			Own:  []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		},
		{
			Name: "gate",
			Own:  []Offset{{0, 0}, {2, 0}},
			Empty: []Offset{
				{1, 0},
			},
		},
		{
			Name: "steps",
			Own:  []Offset{{0, 0}, {1, 1}, {2, 2}},
		},
	}
}

// ByName returns the job with the given name from the standard deck.
func ByName(name string) (Job, error) {
	for _, job := range Deck() {
		if job.Name == name {
			return job, nil
		}
	}
	return Job{}, fmt.Errorf("unknown job %q", name)
}
