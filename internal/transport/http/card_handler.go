package http

import (
	"cardvault/internal/core"

	"github.com/gofiber/fiber/v2"
)

// ListCards returns one page of a game's cards, filtered by the query
// string.
func (h *Handler) ListCards(c *fiber.Ctx) error {
	params := core.CardListParams{
		Page:   c.QueryInt("page"),
		Limit:  c.QueryInt("limit"),
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Rarity: c.Query("rarity"),
	}
	return respond(c, h.api.Cards.ListCards(c.UserContext(), c.Params("gameId"), params), fiber.StatusOK)
}

// GetCard returns one card by ID.
func (h *Handler) GetCard(c *fiber.Ctx) error {
	return respond(c, h.api.Cards.GetCard(c.UserContext(), c.Params("cardId")), fiber.StatusOK)
}

// CreateCard creates a card under the path game.
func (h *Handler) CreateCard(c *fiber.Ctx) error {
	in, err := validatedBody[*core.CardInput](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Cards.CreateCard(c.UserContext(), c.Params("gameId"), *in), fiber.StatusCreated)
}

// UpdateCard applies a partial card update.
func (h *Handler) UpdateCard(c *fiber.Ctx) error {
	in, err := validatedBody[*core.CardUpdate](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Cards.UpdateCard(c.UserContext(), c.Params("cardId"), *in), fiber.StatusOK)
}

// DeleteCard removes one card with deck cascade.
func (h *Handler) DeleteCard(c *fiber.Ctx) error {
	return respond(c, h.api.Cards.DeleteCard(c.UserContext(), c.Params("cardId")), fiber.StatusOK)
}

// DeleteCards removes a batch of cards.
func (h *Handler) DeleteCards(c *fiber.Ctx) error {
	in, err := validatedBody[*core.BulkDeleteInput](c)
	if err != nil {
		return err
	}
	return respond(c, h.api.Cards.DeleteCards(c.UserContext(), in.CardIDs), fiber.StatusOK)
}
