package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/tackle/internal/models"
	"github.com/lk16/tackle/internal/repository"
	"github.com/lk16/tackle/internal/services"
)

const (
	requestTimeout = 2 * time.Second
)

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "game_request":
		return h.handleGameRequest(req)
	case "action_request":
		return h.handleActionRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleGameRequest(req *Incoming) (*Outgoing, error) {
	var reqData GameRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws game request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewSessionRepositoryFromServices(h.services)

	session, err := repo.GetGame(ctx, reqData.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	g, err := session.Rebuild()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild game: %w", err)
	}

	return &Outgoing{
		ID:   req.ID,
		Data: models.NewGameResponse(session, &g),
	}, nil
}

func (h *Handler) handleActionRequest(req *Incoming) (*Outgoing, error) {
	var reqData ActionRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws action request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewSessionRepositoryFromServices(h.services)

	session, g, err := repo.ApplyAction(ctx, reqData.GameID, reqData.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to apply action: %w", err)
	}

	if _, ok := g.Winner(); ok {
		rec, err := session.Record()
		if err != nil {
			return nil, fmt.Errorf("failed to build record: %w", err)
		}

		archive := repository.NewArchiveRepositoryFromServices(h.services)
		if _, err := archive.SaveGame(ctx, rec, g); err != nil {
			return nil, fmt.Errorf("failed to archive game: %w", err)
		}
	}

	return &Outgoing{
		ID:   req.ID,
		Data: models.NewGameResponse(session, &g),
	}, nil
}
