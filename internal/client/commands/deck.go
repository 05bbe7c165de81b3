package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cardvault/internal/client/display"
	"cardvault/internal/client/session"
	"cardvault/internal/core"
)

func (r *Registry) registerDeckCommands() {
	r.Register(&Command{
		Name:        "decks",
		ShortName:   "d",
		Description: "List decks of the working game",
		Usage:       "decks [page]",
		Handler:     listDecksHandler,
	})

	r.Register(&Command{
		Name:        "deck",
		Description: "Show one deck with card details",
		Usage:       "deck <deckId>",
		Handler:     getDeckHandler,
	})

	r.Register(&Command{
		Name:        "deck-create",
		Description: "Create an empty deck in the working game",
		Usage:       "deck-create <name...>",
		Handler:     createDeckHandler,
	})

	r.Register(&Command{
		Name:        "deck-delete",
		Description: "Delete a deck",
		Usage:       "deck-delete <deckId>",
		Handler:     deleteDeckHandler,
	})

	r.Register(&Command{
		Name:        "export",
		ShortName:   "e",
		Description: "Export a deck as json or text",
		Usage:       "export <deckId> [json|text]",
		Handler:     exportDeckHandler,
	})

	r.Register(&Command{
		Name:        "import",
		ShortName:   "i",
		Description: "Import a deck file into the working game",
		Usage:       "import <file.json>",
		Handler:     importDeckHandler,
	})
}

func listDecksHandler(s *session.Session, args []string) error {
	if err := requireGame(s); err != nil {
		return err
	}
	params := core.DeckListParams{}
	if len(args) > 0 {
		if page, err := strconv.Atoi(args[0]); err == nil {
			params.Page = page
		}
	}
	return printResponse(s.Client.ListDecks(ctx(), s.CurrentGame, params))
}

func getDeckHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: deck <deckId>")
	}
	return printResponse(s.Client.GetDeck(ctx(), args[0]))
}

func createDeckHandler(s *session.Session, args []string) error {
	if err := requireGame(s); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: deck-create <name...>")
	}
	in := core.DeckInput{Name: strings.Join(args, " ")}
	return printResponse(s.Client.CreateDeck(ctx(), s.CurrentGame, in))
}

func deleteDeckHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: deck-delete <deckId>")
	}
	return printResponse(s.Client.DeleteDeck(ctx(), args[0]))
}

func exportDeckHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: export <deckId> [json|text]")
	}
	format := "json"
	if len(args) > 1 {
		format = args[1]
	}
	resp, err := s.Client.ExportDeck(ctx(), args[0], format)
	if err != nil {
		return err
	}
	if !resp.Success {
		return printResponse(resp, nil)
	}

	// Text exports read better raw than JSON-escaped.
	if m, ok := resp.Data.(map[string]any); ok {
		if content, ok := m["content"].(string); ok {
			fmt.Printf("%s%s%s\n", display.Green, content, display.Reset)
			return nil
		}
	}
	return printResponse(resp, nil)
}

func importDeckHandler(s *session.Session, args []string) error {
	if err := requireGame(s); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: import <file.json>")
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	return printResponse(s.Client.ImportDeck(ctx(), s.CurrentGame, payload))
}
