package http

import (
	"cardvault/internal/core"

	"github.com/gofiber/fiber/v2"
)

// ListGames returns all games.
func (h *Handler) ListGames(c *fiber.Ctx) error {
	return respond(c, h.api.Games.ListGames(c.UserContext()), fiber.StatusOK)
}

// GetGame returns one game by ID.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	return respond(c, h.api.Games.GetGame(c.UserContext(), c.Params("gameId")), fiber.StatusOK)
}

// CreateGame creates a game from a validated body.
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	in, err := validatedBody[*core.GameInput](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Games.CreateGame(c.UserContext(), *in), fiber.StatusCreated)
}

// UpdateGame applies a partial game update.
func (h *Handler) UpdateGame(c *fiber.Ctx) error {
	in, err := validatedBody[*core.GameUpdate](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Games.UpdateGame(c.UserContext(), c.Params("gameId"), *in), fiber.StatusOK)
}

// DeleteGame removes a game and cascades to its cards and decks.
func (h *Handler) DeleteGame(c *fiber.Ctx) error {
	return respond(c, h.api.Games.DeleteGame(c.UserContext(), c.Params("gameId")), fiber.StatusOK)
}
