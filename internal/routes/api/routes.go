package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/tackle/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Live game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/actions", SubmitAction)
	apiGroup.Post("/games/:id/ai-action", AIAction)

	// Archive routes
	apiGroup.Post("/archive", ArchiveGame)
	apiGroup.Get("/archive", ListArchive)
	apiGroup.Get("/archive/stats", GetArchiveStats)
}
