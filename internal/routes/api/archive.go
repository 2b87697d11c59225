package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/models"
	"github.com/lk16/tackle/internal/repository"
)

// archiveIfFinished stores a finished session in the archive. Unfinished
// games are left alone.
func archiveIfFinished(c *fiber.Ctx, session models.GameSession, g game.Game) error {
	if _, ok := g.Winner(); !ok {
		return nil
	}

	rec, err := session.Record()
	if err != nil {
		return err
	}

	repo := repository.NewArchiveRepository(c)
	_, err = repo.SaveGame(c.Context(), rec, g)
	return err
}

// ArchiveGame stores an externally played, finished game.
func ArchiveGame(c *fiber.Ctx) error {
	var payload models.ArchiveGamePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, g, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewArchiveRepository(c)
	row, err := repo.SaveGame(c.Context(), rec, g)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// ListArchive returns the most recently archived games.
func ListArchive(c *fiber.Ctx) error {
	repo := repository.NewArchiveRepository(c)

	rows, err := repo.ListGames(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetArchiveStats returns aggregate statistics about the archive.
func GetArchiveStats(c *fiber.Ctx) error {
	repo := repository.NewArchiveRepository(c)

	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
