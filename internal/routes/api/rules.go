package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/rules"
)

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(rules.StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}

// AvailableMoves returns the legal moves for a side on the posted board.
func AvailableMoves(c *fiber.Ctx) error {
	var payload models.MovesPayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := rules.Moves(payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ApplyMove plays a move on the posted board.
func ApplyMove(c *fiber.Ctx) error {
	var payload models.ApplyMovePayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := rules.Apply(payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Score counts the discs of the posted board.
func Score(c *fiber.Ctx) error {
	var payload models.ScorePayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	resp, err := rules.Score(payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
