package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	apiGroup.Post("/moves", AvailableMoves)
	apiGroup.Post("/apply", ApplyMove)
	apiGroup.Post("/score", Score)
}
