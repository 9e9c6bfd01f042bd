package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/routes/api"
	"github.com/lk16/othello/internal/routes/version"
	"github.com/lk16/othello/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/version")
}

func SetupRoutes(app *fiber.App) {
	// Serve rules API routes
	api.SetupRoutes(app)

	// Serve rules over websocket
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
