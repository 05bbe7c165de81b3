package http

import (
	"cardvault/internal/core"

	"github.com/gofiber/fiber/v2"
)

// ListDecks returns one page of a game's decks.
func (h *Handler) ListDecks(c *fiber.Ctx) error {
	params := core.DeckListParams{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}
	return respond(c, h.api.Decks.ListDecks(c.UserContext(), c.Params("gameId"), params), fiber.StatusOK)
}

// GetDeck returns one deck with expanded card details.
func (h *Handler) GetDeck(c *fiber.Ctx) error {
	return respond(c, h.api.Decks.GetDeck(c.UserContext(), c.Params("deckId")), fiber.StatusOK)
}

// CreateDeck creates a deck under the path game.
func (h *Handler) CreateDeck(c *fiber.Ctx) error {
	in, err := validatedBody[*core.DeckInput](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Decks.CreateDeck(c.UserContext(), c.Params("gameId"), *in), fiber.StatusCreated)
}

// UpdateDeck applies a partial deck update.
func (h *Handler) UpdateDeck(c *fiber.Ctx) error {
	in, err := validatedBody[*core.DeckUpdate](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Decks.UpdateDeck(c.UserContext(), c.Params("deckId"), *in), fiber.StatusOK)
}

// DeleteDeck removes a deck.
func (h *Handler) DeleteDeck(c *fiber.Ctx) error {
	return respond(c, h.api.Decks.DeleteDeck(c.UserContext(), c.Params("deckId")), fiber.StatusOK)
}

// ExportDeck renders a deck in json or text form per the format query.
func (h *Handler) ExportDeck(c *fiber.Ctx) error {
	format := c.Query("format", "json")
	return respond(c, h.api.Decks.ExportDeck(c.UserContext(), c.Params("deckId"), format), fiber.StatusOK)
}

// ImportDeck forwards the raw body; payload parsing and the
// partial-success policy live in the deck API.
func (h *Handler) ImportDeck(c *fiber.Ctx) error {
	body := make([]byte, len(c.Body()))
	copy(body, c.Body())
	return respond(c, h.api.Decks.ImportDeck(c.UserContext(), c.Params("gameId"), body), fiber.StatusCreated)
}
