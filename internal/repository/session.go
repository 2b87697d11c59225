package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/jobs"
	"github.com/lk16/tackle/internal/models"
	"github.com/lk16/tackle/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "games:"
	sessionTTL       = 24 * time.Hour
)

var ErrGameNotFound = errors.New("game not found")

// SessionRepository stores live games in Redis. A session holds the dealt
// jobs and the tokens played so far; every read rebuilds the board by replay.
type SessionRepository struct {
	services *services.Services
}

func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	return &SessionRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewSessionRepositoryFromServices(services *services.Services) *SessionRepository {
	return &SessionRepository{
		services: services,
	}
}

// CreateGame starts a new session with jobs from the standard deck.
func (repo *SessionRepository) CreateGame(ctx context.Context, whiteJob, blackJob string) (models.GameSession, error) {
	if _, err := jobs.ByName(whiteJob); err != nil {
		return models.GameSession{}, err
	}
	if _, err := jobs.ByName(blackJob); err != nil {
		return models.GameSession{}, err
	}

	session := models.GameSession{
		ID:       uuid.New().String(),
		WhiteJob: whiteJob,
		BlackJob: blackJob,
	}

	if err := repo.save(ctx, session); err != nil {
		return models.GameSession{}, err
	}
	return session, nil
}

// GetGame loads a session by ID.
func (repo *SessionRepository) GetGame(ctx context.Context, id string) (models.GameSession, error) {
	jsonData, err := repo.services.Redis.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.GameSession{}, ErrGameNotFound
		}
		return models.GameSession{}, fmt.Errorf("error getting game: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal(jsonData, &session); err != nil {
		return models.GameSession{}, fmt.Errorf("error unmarshaling game session: %w", err)
	}
	return session, nil
}

// ApplyAction plays one notation token on a session and stores the result.
// It returns the updated session and the rebuilt game state.
func (repo *SessionRepository) ApplyAction(ctx context.Context, id, token string) (models.GameSession, game.Game, error) {
	session, err := repo.GetGame(ctx, id)
	if err != nil {
		return models.GameSession{}, game.Game{}, err
	}

	g, err := session.Rebuild()
	if err != nil {
		return models.GameSession{}, game.Game{}, fmt.Errorf("error rebuilding game %s: %w", id, err)
	}

	action, err := game.ParseAction(g.Phase(), token)
	if err != nil {
		return models.GameSession{}, game.Game{}, err
	}
	if err := g.Apply(action); err != nil {
		return models.GameSession{}, game.Game{}, err
	}

	session.Tokens = append(session.Tokens, token)
	if err := repo.save(ctx, session); err != nil {
		return models.GameSession{}, game.Game{}, err
	}
	return session, g, nil
}

func (repo *SessionRepository) save(ctx context.Context, session models.GameSession) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling game session: %w", err)
	}

	err = repo.services.Redis.Set(ctx, sessionKeyPrefix+session.ID, jsonData, sessionTTL).Err()
	if err != nil {
		return fmt.Errorf("error storing game session: %w", err)
	}
	return nil
}
