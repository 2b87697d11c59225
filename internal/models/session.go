package models

import (
	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/jobs"
)

// GameSession is a live game as stored in Redis: the dealt jobs plus the
// action tokens played so far. The board is rebuilt by replaying the tokens.
type GameSession struct {
	ID       string   `json:"id"`
	WhiteJob string   `json:"white_job"`
	BlackJob string   `json:"black_job"`
	Tokens   []string `json:"tokens"`
}

// Rebuild replays the session into a game state.
func (s GameSession) Rebuild() (game.Game, error) {
	rec := game.Record{
		Tags: map[string]string{
			"WhiteJob": s.WhiteJob,
			"BlackJob": s.BlackJob,
		},
		Tokens: s.Tokens,
	}
	return rec.Replay()
}

// Record converts the session into a notation record, tagged with the result
// when the game is over.
func (s GameSession) Record() (game.Record, error) {
	whiteJob, err := jobs.ByName(s.WhiteJob)
	if err != nil {
		return game.Record{}, err
	}
	blackJob, err := jobs.ByName(s.BlackJob)
	if err != nil {
		return game.Record{}, err
	}

	rec := game.NewRecord(whiteJob, blackJob)
	rec.Tokens = append(rec.Tokens, s.Tokens...)

	g, err := s.Rebuild()
	if err != nil {
		return game.Record{}, err
	}
	if winner, ok := g.Winner(); ok {
		rec.Tags["Result"] = winner.String()
	}
	return rec, nil
}
