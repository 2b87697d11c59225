package searcher

import (
	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/tackle"
)

// EvalFunc estimates the winning chance of the player to act, in [0, 1].
type EvalFunc func(*game.Game) float64

// EvaluateCourtControl scores a state by court presence: jobs are only
// fulfilled by pieces in the court, so having more of them there than the
// opponent is a reasonable proxy for progress.
func EvaluateCourtControl(g *game.Game) float64 {
	player := g.Turn()

	diff := countCourt(g, player) - countCourt(g, player.Opponent())
	return 0.5 + float64(diff)/(2*game.PiecesPerPlayer)
}

func countCourt(g *game.Game, player tackle.SquareContent) int {
	var buf [tackle.MaxPieces]tackle.Position

	count := 0
	for _, pos := range g.Board().Pieces(player, buf[:0]) {
		if pos.IsCourt() {
			count++
		}
	}
	return count
}
