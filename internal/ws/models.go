package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type ActionRequest struct {
	GameID string `json:"game_id"`
	Action string `json:"action"`
}
