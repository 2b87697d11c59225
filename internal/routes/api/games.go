package api

import (
	"errors"
	"math/rand/v2"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/tackle/internal/jobs"
	"github.com/lk16/tackle/internal/models"
	"github.com/lk16/tackle/internal/repository"
	"github.com/lk16/tackle/internal/searcher"
)

const (
	defaultSearchEpisodes = 1000
	maxSearchEpisodes     = 20000
	searchGoroutines      = 4
)

// CreateGame starts a new game. Jobs left empty are dealt at random.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGamePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	deck := jobs.Deck()
	if payload.WhiteJob == "" {
		payload.WhiteJob = deck[rand.IntN(len(deck))].Name
	}
	if payload.BlackJob == "" {
		payload.BlackJob = deck[rand.IntN(len(deck))].Name
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.CreateGame(c.Context(), payload.WhiteJob, payload.BlackJob)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g, err := session.Rebuild()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewGameResponse(session, &g))
}

// GetGame returns the current state of a live game.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)

	session, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g, err := session.Rebuild()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(session, &g))
}

// SubmitAction plays one action token on a live game. Finished games are
// archived automatically.
func SubmitAction(c *fiber.Ctx) error {
	var payload models.ActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewSessionRepository(c)
	session, g, err := repo.ApplyAction(c.Context(), c.Params("id"), payload.Action)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := archiveIfFinished(c, session, g); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(session, &g))
}

// AIAction has the searcher pick and play the next action of a live game.
func AIAction(c *fiber.Ctx) error {
	var payload models.AIActionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	episodes := payload.Episodes
	if episodes <= 0 {
		episodes = defaultSearchEpisodes
	}
	if episodes > maxSearchEpisodes {
		episodes = maxSearchEpisodes
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g, err := session.Rebuild()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	mcts, err := searcher.New(searchGoroutines, searcher.WithEpisodes(episodes))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	action, err := mcts.Search(g)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session, g, err = repo.ApplyAction(c.Context(), session.ID, action.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := archiveIfFinished(c, session, g); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(session, &g))
}
