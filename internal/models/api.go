package models

import (
	"fmt"
	"strings"

	"github.com/lk16/tackle/internal/game"
)

// CreateGamePayload starts a new game with the given jobs from the standard
// deck.
type CreateGamePayload struct {
	WhiteJob string `json:"white_job"`
	BlackJob string `json:"black_job"`
}

// ActionPayload submits one action in game notation.
type ActionPayload struct {
	Action string `json:"action"`
}

// GameResponse is the API view of a live game.
type GameResponse struct {
	ID       string   `json:"id"`
	Board    string   `json:"board"`
	Turn     string   `json:"turn"`
	Phase    string   `json:"phase"`
	Winner   string   `json:"winner,omitempty"`
	Plies    int      `json:"plies"`
	WhiteJob string   `json:"white_job"`
	BlackJob string   `json:"black_job"`
	Tokens   []string `json:"tokens"`
}

// NewGameResponse renders a session and its rebuilt game state.
func NewGameResponse(session GameSession, g *game.Game) GameResponse {
	resp := GameResponse{
		ID:       session.ID,
		Board:    g.Board().String(),
		Turn:     g.Turn().String(),
		Phase:    g.Phase().String(),
		Plies:    g.PlyCount(),
		WhiteJob: session.WhiteJob,
		BlackJob: session.BlackJob,
		Tokens:   session.Tokens,
	}
	if winner, ok := g.Winner(); ok {
		resp.Winner = winner.String()
	}
	return resp
}

// ArchiveGamePayload submits a finished game in Tackle Game Notation.
type ArchiveGamePayload struct {
	Record string `json:"record"`
}

// Validate replays the record and checks it describes a finished game.
func (p ArchiveGamePayload) Validate() (game.Record, game.Game, error) {
	rec, err := game.ParseRecord(strings.NewReader(p.Record))
	if err != nil {
		return game.Record{}, game.Game{}, err
	}

	g, err := rec.Replay()
	if err != nil {
		return game.Record{}, game.Game{}, err
	}

	if _, ok := g.Winner(); !ok {
		return game.Record{}, game.Game{}, fmt.Errorf("record does not describe a finished game")
	}
	return rec, g, nil
}

// AIActionPayload tunes the searcher for one server-side move.
type AIActionPayload struct {
	Episodes int `json:"episodes"`
}
