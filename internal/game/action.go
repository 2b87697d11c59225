package game

import (
	"fmt"
	"strings"

	"github.com/lk16/tackle/internal/tackle"
)

// ActionKind discriminates the three things a player can do on their turn.
type ActionKind uint8

const (
	PlacePieceAction ActionKind = iota
	PlaceGoldAction
	MoveAction
)

// Action is one turn's worth of play. Which kinds are accepted depends on the
// game phase.
type Action struct {
	Kind ActionKind
	Pos  tackle.Position
	Move tackle.Move
}

// PlacePiece builds a placement phase action.
func PlacePiece(pos tackle.Position) Action {
	return Action{Kind: PlacePieceAction, Pos: pos}
}

// PlaceGold builds a gold phase action.
func PlaceGold(pos tackle.Position) Action {
	return Action{Kind: PlaceGoldAction, Pos: pos}
}

// MakeMove builds a movement phase action.
func MakeMove(move tackle.Move) Action {
	return Action{Kind: MoveAction, Move: move}
}

// String returns the action in game notation: "B5" for placements, "B5-D5"
// for single-piece moves, "B2:B4-D2" for block moves where the middle
// position is the far corner of the rear edge, and "A1/D4" for diagonal
// moves.
func (a Action) String() string {
	switch a.Kind {
	case PlacePieceAction, PlaceGoldAction:
		return a.Pos.String()
	case MoveAction:
		return formatMove(a.Move)
	}
	return "unknown"
}

func formatMove(move tackle.Move) string {
	if move.Kind == tackle.DiagonalMove {
		return move.From.String() + "/" + move.To.String()
	}

	if move.Breadth == 1 {
		return move.From.String() + "-" + move.To.String()
	}

	far := move.From.Translate(breadthAxis(move.Direction()), move.Breadth-1)
	return move.From.String() + ":" + far.String() + "-" + move.To.String()
}

// breadthAxis returns the direction along which a block's rear edge extends.
func breadthAxis(travel tackle.Direction) tackle.Direction {
	if travel == tackle.Up || travel == tackle.Down {
		return tackle.Right
	}
	return tackle.Up
}

// ParseAction parses a notation token. The phase decides how bare positions
// are interpreted.
func ParseAction(phase Phase, token string) (Action, error) {
	switch phase {
	case PlacementPhase:
		pos, err := tackle.ParsePosition(token)
		if err != nil {
			return Action{}, err
		}
		return PlacePiece(pos), nil
	case GoldPhase:
		pos, err := tackle.ParsePosition(token)
		if err != nil {
			return Action{}, err
		}
		return PlaceGold(pos), nil
	case MovementPhase:
		move, err := parseMove(token)
		if err != nil {
			return Action{}, err
		}
		return MakeMove(move), nil
	default:
		return Action{}, ErrGameOver
	}
}

func parseMove(token string) (tackle.Move, error) {
	if fromStr, toStr, ok := strings.Cut(token, "/"); ok {
		from, err := tackle.ParsePosition(fromStr)
		if err != nil {
			return tackle.Move{}, err
		}
		to, err := tackle.ParsePosition(toStr)
		if err != nil {
			return tackle.Move{}, err
		}
		return tackle.NewDiagonalMove(from, to)
	}

	left, toStr, ok := strings.Cut(token, "-")
	if !ok {
		return tackle.Move{}, fmt.Errorf("invalid move token %q", token)
	}
	to, err := tackle.ParsePosition(toStr)
	if err != nil {
		return tackle.Move{}, err
	}

	fromStr, farStr, isBlock := strings.Cut(left, ":")
	from, err := tackle.ParsePosition(fromStr)
	if err != nil {
		return tackle.Move{}, err
	}
	if !isBlock {
		return tackle.NewMove(from, to)
	}

	far, err := tackle.ParsePosition(farStr)
	if err != nil {
		return tackle.Move{}, err
	}
	return blockMoveFromCorners(from, far, to)
}

// blockMoveFromCorners recovers the block breadth from the two rear edge
// corners of a token like "B2:B4-D2".
func blockMoveFromCorners(from, far, to tackle.Position) (tackle.Move, error) {
	var breadth int
	switch {
	case from.Row == to.Row && far.Col == from.Col && far.Row >= from.Row:
		breadth = int(far.Row-from.Row) + 1
	case from.Col == to.Col && far.Row == from.Row && far.Col >= from.Col:
		breadth = int(far.Col-from.Col) + 1
	default:
		return tackle.Move{}, fmt.Errorf("rear edge %s:%s does not fit a move to %s", from, far, to)
	}
	return tackle.NewBlockMove(from, to, breadth)
}
