package http

import (
	"fmt"
	"reflect"
	"strings"

	"cardvault/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// requestTypeFor maps a mutating endpoint to its request struct. Routes
// with no entry (deck import, reset) skip body validation; import in
// particular must receive the raw payload so parse failures surface as
// IMPORT_ERROR from the deck API.
func requestTypeFor(method, path string) any {
	rest := strings.TrimPrefix(path, "/api/v1")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch method {
	case fiber.MethodPost:
		switch {
		case len(parts) == 1 && parts[0] == "games":
			return &core.GameInput{}
		case len(parts) == 3 && parts[0] == "games" && parts[2] == "cards":
			return &core.CardInput{}
		case len(parts) == 3 && parts[0] == "games" && parts[2] == "decks":
			return &core.DeckInput{}
		case len(parts) == 2 && parts[0] == "cards" && parts[1] == "bulk-delete":
			return &core.BulkDeleteInput{}
		}
	case fiber.MethodPut:
		switch {
		case len(parts) == 2 && parts[0] == "games":
			return &core.GameUpdate{}
		case len(parts) == 2 && parts[0] == "cards":
			return &core.CardUpdate{}
		case len(parts) == 2 && parts[0] == "decks":
			return &core.DeckUpdate{}
		}
	}
	return nil
}

// validationMiddleware parses and validates mutating request bodies,
// storing the typed result for the handler.
func validationMiddleware(c *fiber.Ctx) error {
	method := c.Method()
	if method == fiber.MethodGet || method == fiber.MethodDelete || method == fiber.MethodOptions {
		return c.Next()
	}

	requestType := requestTypeFor(method, c.Path())
	if requestType == nil {
		return c.Next()
	}

	if err := c.BodyParser(requestType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			core.FailDetails(core.ErrInvalidRequest, "invalid request body",
				map[string]any{"error": err.Error()}))
	}

	if errs := validate.Struct(requestType); errs != nil {
		var details strings.Builder
		for _, err := range errs.(validator.ValidationErrors) {
			if details.Len() > 0 {
				details.WriteString("; ")
			}
			switch err.Tag() {
			case "required":
				details.WriteString(fmt.Sprintf("%s is required", err.Field()))
			case "min":
				if err.Type().Kind() == reflect.String {
					details.WriteString(fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param()))
				} else {
					details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
				}
			case "max":
				if err.Type().Kind() == reflect.String {
					details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
				} else {
					details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
				}
			case "omitempty", "dive": // Control tags, not failures
				continue
			default:
				details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
			}
		}

		return c.Status(fiber.StatusBadRequest).JSON(
			core.FailDetails(core.ErrInvalidRequest, "validation failed",
				map[string]any{"fields": details.String()}))
	}

	c.Locals("validatedBody", requestType)
	return c.Next()
}

// validatedBody retrieves the typed request stored by the middleware.
func validatedBody[T any](c *fiber.Ctx) (T, error) {
	v, ok := c.Locals("validatedBody").(T)
	if !ok {
		var zero T
		return zero, fiber.NewError(fiber.StatusInternalServerError, "validation data missing")
	}
	return v, nil
}
