package game

import (
	"errors"
	"fmt"

	"github.com/lk16/tackle/internal/jobs"
	"github.com/lk16/tackle/internal/tackle"
)

// PiecesPerPlayer is the number of pieces each player puts down during the
// placement phase.
const PiecesPerPlayer = tackle.MaxPieces

var (
	ErrGameOver   = errors.New("game is already finished")
	ErrWrongPhase = errors.New("action not allowed in this phase")
)

// Phase is the stage a game is in.
type Phase uint8

const (
	// PlacementPhase: players alternate putting their pieces on the border.
	PlacementPhase Phase = iota

	// GoldPhase: black puts the gold piece somewhere in the core.
	GoldPhase

	// MovementPhase: players alternate moving until a job is fulfilled.
	MovementPhase

	// FinishedPhase: one of the players fulfilled their job.
	FinishedPhase
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PlacementPhase:
		return "placement"
	case GoldPhase:
		return "gold"
	case MovementPhase:
		return "movement"
	case FinishedPhase:
		return "finished"
	}
	return "unknown"
}

// Game carries a full game progression: the board plus turn, phase and job
// bookkeeping. Game is a plain value like the board it embeds, so copying one
// yields an independent game. The search driver relies on that.
type Game struct {
	board  tackle.Board
	turn   tackle.SquareContent
	phase  Phase
	plies  int
	jobs   [2]jobs.Job
	winner tackle.SquareContent
}

// NewGame deals the given jobs and starts the placement phase, white to act.
func NewGame(whiteJob, blackJob jobs.Job) Game {
	return Game{
		board: tackle.NewBoard(),
		turn:  tackle.White,
		phase: PlacementPhase,
		jobs:  [2]jobs.Job{whiteJob, blackJob},
	}
}

// NewGameAt starts a game mid-way through the movement phase from an
// arbitrary board. Used by replays, tests and the search driver.
func NewGameAt(board tackle.Board, turn tackle.SquareContent, whiteJob, blackJob jobs.Job) Game {
	return Game{
		board: board,
		turn:  turn,
		phase: MovementPhase,
		jobs:  [2]jobs.Job{whiteJob, blackJob},
	}
}

// Board returns the current board.
func (g *Game) Board() *tackle.Board {
	return &g.board
}

// Turn returns the color that acts next.
func (g *Game) Turn() tackle.SquareContent {
	return g.turn
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// PlyCount returns the number of actions applied so far, placements included.
func (g *Game) PlyCount() int {
	return g.plies
}

// Job returns the job dealt to the given player.
func (g *Game) Job(player tackle.SquareContent) jobs.Job {
	if player == tackle.White {
		return g.jobs[0]
	}
	return g.jobs[1]
}

// Winner returns the winning color, with ok=false while the game is running.
func (g *Game) Winner() (tackle.SquareContent, bool) {
	if g.phase != FinishedPhase {
		return tackle.Empty, false
	}
	return g.winner, true
}

// Apply plays one action for the color whose turn it is, advancing phase and
// turn bookkeeping. On error the game is unchanged.
func (g *Game) Apply(action Action) error {
	switch g.phase {
	case PlacementPhase:
		return g.applyPlacement(action)
	case GoldPhase:
		return g.applyGold(action)
	case MovementPhase:
		return g.applyMove(action)
	default:
		return ErrGameOver
	}
}

// Play returns a copy of the game with the action applied.
func (g Game) Play(action Action) (Game, error) {
	err := g.Apply(action)
	return g, err
}

func (g *Game) applyPlacement(action Action) error {
	if action.Kind != PlacePieceAction {
		return fmt.Errorf("%s during placement: %w", action, ErrWrongPhase)
	}

	if err := g.board.PlacePiece(g.turn, action.Pos); err != nil {
		return err
	}
	g.plies++

	if g.board.Count(tackle.White) == PiecesPerPlayer && g.board.Count(tackle.Black) == PiecesPerPlayer {
		g.phase = GoldPhase
		g.turn = tackle.Black
		return nil
	}

	g.turn = g.turn.Opponent()
	return nil
}

func (g *Game) applyGold(action Action) error {
	if action.Kind != PlaceGoldAction {
		return fmt.Errorf("%s during gold placement: %w", action, ErrWrongPhase)
	}

	if err := g.board.PlaceGold(action.Pos); err != nil {
		return err
	}
	g.plies++

	g.phase = MovementPhase
	g.turn = tackle.White
	return nil
}

func (g *Game) applyMove(action Action) error {
	if action.Kind != MoveAction {
		return fmt.Errorf("%s during movement: %w", action, ErrWrongPhase)
	}

	if err := g.board.ExecuteMove(g.turn, action.Move); err != nil {
		return err
	}
	g.plies++

	g.afterMove()
	if g.phase == MovementPhase {
		g.turn = g.turn.Opponent()
	}
	return nil
}

// afterMove handles the side effects of a completed move: the gold piece
// leaves the board once the border is vacated, and fulfilled jobs end the
// game. A push can complete the opponent's job, so both jobs are checked with
// the mover's first.
func (g *Game) afterMove() {
	if goldPos, ok := g.board.GoldPosition(); ok && g.borderVacated() {
		// Cannot fail: goldPos addresses the gold piece.
		_ = g.board.Remove(goldPos)
	}

	for _, player := range []tackle.SquareContent{g.turn, g.turn.Opponent()} {
		if g.Job(player).MatchedBy(&g.board, player) {
			g.winner = player
			g.phase = FinishedPhase
			return
		}
	}
}

func (g *Game) borderVacated() bool {
	var buf [2 * tackle.MaxPieces]tackle.Position

	for _, player := range []tackle.SquareContent{tackle.White, tackle.Black} {
		for _, pos := range g.board.Pieces(player, buf[:0]) {
			if pos.IsBorder() {
				return false
			}
		}
	}
	return true
}

// LegalActions lists every action the player to act may take. During the
// movement phase only single-piece orthogonal moves are generated; block and
// diagonal moves remain playable through Apply but are left out of the
// generated set to keep the branching factor workable for search.
func (g *Game) LegalActions() []Action {
	switch g.phase {
	case PlacementPhase:
		return g.legalPlacements()
	case GoldPhase:
		return g.legalGoldPlacements()
	case MovementPhase:
		return g.legalMoves()
	default:
		return nil
	}
}

func (g *Game) legalPlacements() []Action {
	var actions []Action

	for col := 1; col <= tackle.BoardSize; col++ {
		for row := 1; row <= tackle.BoardSize; row++ {
			pos, _ := tackle.NewPosition(col, row)
			if !pos.IsBorder() {
				continue
			}

			trial := g.board
			if trial.PlacePiece(g.turn, pos) == nil {
				actions = append(actions, PlacePiece(pos))
			}
		}
	}
	return actions
}

func (g *Game) legalGoldPlacements() []Action {
	var actions []Action

	for col := 1; col <= tackle.BoardSize; col++ {
		for row := 1; row <= tackle.BoardSize; row++ {
			pos, _ := tackle.NewPosition(col, row)
			if pos.IsCore() && g.board.Get(pos) == tackle.Empty {
				actions = append(actions, PlaceGold(pos))
			}
		}
	}
	return actions
}

func (g *Game) legalMoves() []Action {
	var buf [tackle.MaxPieces]tackle.Position
	var actions []Action

	for _, from := range g.board.Pieces(g.turn, buf[:0]) {
		for _, dir := range []tackle.Direction{tackle.Up, tackle.Down, tackle.Left, tackle.Right} {
			list := g.board.GetMaxMoveList(from, dir)

			for distance := 1; distance <= list.MaxDistance; distance++ {
				move, err := tackle.NewMove(from, from.Translate(dir, distance))
				if err != nil {
					continue
				}
				actions = append(actions, MakeMove(move))
			}
		}
	}
	return actions
}
