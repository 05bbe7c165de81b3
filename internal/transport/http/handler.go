// Package http exposes the entity APIs over REST so live-mode clients
// have a real backend to talk to. The envelope produced by the APIs is
// passed through verbatim on both success and failure; only the HTTP
// status is derived from it.
package http

import (
	"fmt"
	"strings"
	"time"

	"cardvault/internal/core"
	"cardvault/internal/mockapi"
	"cardvault/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const rateLimitRate = 10 // req/sec

// Handler routes HTTP requests to the entity APIs.
type Handler struct {
	api   *mockapi.API
	store *store.Store
}

func NewHandler(api *mockapi.API, st *store.Store) *Handler {
	return &Handler{api: api, store: st}
}

func NewFiberApp(api *mockapi.API, st *store.Store, devMode bool) *fiber.App {
	h := NewHandler(api, st)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	// API v1 routes with rate limiting
	v1 := app.Group("/api/v1")

	maxReq := rateLimitRate
	if devMode {
		maxReq = rateLimitRate * 2
	}
	v1.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				if idx := strings.Index(xff, ","); idx != -1 {
					return strings.TrimSpace(xff[:idx])
				}
				return xff
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(
				core.Fail(core.ErrInvalidRequest, fmt.Sprintf("rate limit exceeded: %d requests per second allowed", maxReq)))
		},
	}))

	// Content-Type validation for POST and PUT requests
	v1.Use(contentTypeValidator)

	// Body validation for mutating endpoints
	v1.Use(validationMiddleware)

	// Games
	v1.Get("/games", h.ListGames)
	v1.Post("/games", h.CreateGame)
	v1.Get("/games/:gameId", h.GetGame)
	v1.Put("/games/:gameId", h.UpdateGame)
	v1.Delete("/games/:gameId", h.DeleteGame)

	// Cards
	v1.Get("/games/:gameId/cards", h.ListCards)
	v1.Post("/games/:gameId/cards", h.CreateCard)
	v1.Get("/cards/:cardId", h.GetCard)
	v1.Put("/cards/:cardId", h.UpdateCard)
	v1.Delete("/cards/:cardId", h.DeleteCard)
	v1.Post("/cards/bulk-delete", h.DeleteCards)

	// Decks
	v1.Get("/games/:gameId/decks", h.ListDecks)
	v1.Post("/games/:gameId/decks", h.CreateDeck)
	v1.Post("/games/:gameId/decks/import", h.ImportDeck)
	v1.Get("/decks/:deckId", h.GetDeck)
	v1.Put("/decks/:deckId", h.UpdateDeck)
	v1.Delete("/decks/:deckId", h.DeleteDeck)
	v1.Get("/decks/:deckId/export", h.ExportDeck)

	// Store maintenance
	v1.Post("/reset", h.Reset)

	return app
}

// contentTypeValidator ensures POST and PUT requests have application/json
func contentTypeValidator(c *fiber.Ctx) error {
	method := c.Method()
	if method == fiber.MethodPost || method == fiber.MethodPut {
		contentType := c.Get("Content-Type")
		if contentType != "application/json" && contentType != "" {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(
				core.Fail(core.ErrInvalidRequest, "Content-Type must be application/json"))
		}
	}
	return c.Next()
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	response := core.Fail(core.ErrUnknown, "internal server error")

	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
		response.Error.Message = e.Message
		switch status {
		case fiber.StatusNotFound:
			response.Error.Code = core.ErrInvalidRequest
			response.Error.Message = "unknown route"
		case fiber.StatusBadRequest:
			response.Error.Code = core.ErrInvalidRequest
		}
	}

	return c.Status(status).JSON(response)
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case core.ErrGameNotFound, core.ErrCardNotFound, core.ErrCardsNotFound, core.ErrDeckNotFound:
		return fiber.StatusNotFound
	case core.ErrInvalidRequest, core.ErrInvalidCards, core.ErrInvalidImport, core.ErrImportError:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respond writes the envelope with a status derived from it.
func respond(c *fiber.Ctx, resp *core.Response, successStatus int) error {
	if !resp.Success {
		return c.Status(statusFor(resp.Error.Code)).JSON(resp)
	}
	return c.Status(successStatus).JSON(resp)
}

// Health check endpoint
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// Reset restores the store to its seed dataset.
func (h *Handler) Reset(c *fiber.Ctx) error {
	h.store.Reset()
	return c.JSON(core.OK(core.DeleteResult{Message: "Store reset to seed data"}))
}
