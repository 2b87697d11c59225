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
	"github.com/lk16/tackle/internal/models"
	"github.com/lk16/tackle/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	archiveStatsKey = "archive_stats"
	archiveStatsTTL = 1 * time.Minute

	defaultListLimit = 50
	maxListLimit     = 500
)

// ArchiveRepository stores finished games in Postgres, with the aggregate
// stats cached in Redis.
type ArchiveRepository struct {
	services *services.Services
}

func NewArchiveRepository(c *fiber.Ctx) *ArchiveRepository {
	return &ArchiveRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewArchiveRepositoryFromServices(services *services.Services) *ArchiveRepository {
	return &ArchiveRepository{
		services: services,
	}
}

// SaveGame archives a finished game.
func (repo *ArchiveRepository) SaveGame(ctx context.Context, rec game.Record, g game.Game) (models.ArchivedGame, error) {
	winner, ok := g.Winner()
	if !ok {
		return models.ArchivedGame{}, errors.New("cannot archive an unfinished game")
	}

	row := models.ArchivedGame{
		ID:        uuid.New(),
		WhiteJob:  rec.Tags["WhiteJob"],
		BlackJob:  rec.Tags["BlackJob"],
		Winner:    winner.String(),
		Plies:     g.PlyCount(),
		Record:    rec.String(),
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO games (id, white_job, black_job, winner, plies, record, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := repo.services.Postgres.ExecContext(ctx, query,
		row.ID, row.WhiteJob, row.BlackJob, row.Winner, row.Plies, row.Record, row.CreatedAt)
	if err != nil {
		return models.ArchivedGame{}, fmt.Errorf("error inserting game: %w", err)
	}

	// The cached stats are stale now.
	if err := repo.services.Redis.Del(ctx, archiveStatsKey).Err(); err != nil {
		return models.ArchivedGame{}, fmt.Errorf("error invalidating stats cache: %w", err)
	}

	return row, nil
}

// ListGames returns the most recently archived games.
func (repo *ArchiveRepository) ListGames(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := `
		SELECT id, white_job, black_job, winner, plies, record, created_at
		FROM games
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows := []models.ArchivedGame{}
	if err := repo.services.Postgres.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	return rows, nil
}

// GetStats returns aggregate archive statistics, served from the Redis cache
// and rebuilt from Postgres on a miss.
func (repo *ArchiveRepository) GetStats(ctx context.Context) (models.ArchiveStats, error) {
	jsonData, err := repo.services.Redis.Get(ctx, archiveStatsKey).Bytes()
	if err == nil {
		var stats models.ArchiveStats
		if err := json.Unmarshal(jsonData, &stats); err != nil {
			return models.ArchiveStats{}, fmt.Errorf("error unmarshaling stats: %w", err)
		}
		return stats, nil
	}
	if !errors.Is(err, redis.Nil) {
		return models.ArchiveStats{}, fmt.Errorf("error getting stats cache: %w", err)
	}

	stats, err := repo.computeStats(ctx)
	if err != nil {
		return models.ArchiveStats{}, err
	}

	jsonData, err = json.Marshal(stats)
	if err != nil {
		return models.ArchiveStats{}, fmt.Errorf("error marshaling stats: %w", err)
	}
	if err := repo.services.Redis.Set(ctx, archiveStatsKey, jsonData, archiveStatsTTL).Err(); err != nil {
		return models.ArchiveStats{}, fmt.Errorf("error caching stats: %w", err)
	}
	return stats, nil
}

func (repo *ArchiveRepository) computeStats(ctx context.Context) (models.ArchiveStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_games,
			COUNT(*) FILTER (WHERE winner = 'white') AS white_wins,
			COUNT(*) FILTER (WHERE winner = 'black') AS black_wins,
			COALESCE(AVG(plies), 0) AS avg_plies
		FROM games
	`

	var stats models.ArchiveStats
	if err := repo.services.Postgres.GetContext(ctx, &stats, query); err != nil {
		return models.ArchiveStats{}, fmt.Errorf("error computing stats: %w", err)
	}
	return stats, nil
}
