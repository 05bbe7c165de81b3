package commands

import (
	"fmt"
	"strconv"
	"strings"

	"cardvault/internal/client/session"
	"cardvault/internal/core"
)

func (r *Registry) registerCardCommands() {
	r.Register(&Command{
		Name:        "cards",
		ShortName:   "c",
		Description: "List cards of the working game",
		Usage:       "cards [page] [search...]",
		Handler:     listCardsHandler,
	})

	r.Register(&Command{
		Name:        "card",
		Description: "Show one card",
		Usage:       "card <cardId>",
		Handler:     getCardHandler,
	})

	r.Register(&Command{
		Name:        "card-create",
		Description: "Create a card in the working game",
		Usage:       "card-create <name> <type> <rarity> [description...]",
		Handler:     createCardHandler,
	})

	r.Register(&Command{
		Name:        "card-update",
		Description: "Rename a card",
		Usage:       "card-update <cardId> <name...>",
		Handler:     updateCardHandler,
	})

	r.Register(&Command{
		Name:        "card-delete",
		Description: "Delete one or more cards",
		Usage:       "card-delete <cardId> [cardId...]",
		Handler:     deleteCardsHandler,
	})
}

func requireGame(s *session.Session) error {
	if s.CurrentGame == "" {
		return fmt.Errorf("no working game; run: use <gameId>")
	}
	return nil
}

func listCardsHandler(s *session.Session, args []string) error {
	if err := requireGame(s); err != nil {
		return err
	}
	params := core.CardListParams{}
	if len(args) > 0 {
		if page, err := strconv.Atoi(args[0]); err == nil {
			params.Page = page
			args = args[1:]
		}
	}
	params.Search = strings.Join(args, " ")
	return printResponse(s.Client.ListCards(ctx(), s.CurrentGame, params))
}

func getCardHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: card <cardId>")
	}
	return printResponse(s.Client.GetCard(ctx(), args[0]))
}

func createCardHandler(s *session.Session, args []string) error {
	if err := requireGame(s); err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("usage: card-create <name> <type> <rarity> [description...]")
	}
	in := core.CardInput{
		Name:        args[0],
		Type:        args[1],
		Rarity:      args[2],
		Description: strings.Join(args[3:], " "),
	}
	return printResponse(s.Client.CreateCard(ctx(), s.CurrentGame, in))
}

func updateCardHandler(s *session.Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: card-update <cardId> <name...>")
	}
	name := strings.Join(args[1:], " ")
	return printResponse(s.Client.UpdateCard(ctx(), args[0], core.CardUpdate{Name: &name}))
}

func deleteCardsHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: card-delete <cardId> [cardId...]")
	}
	if len(args) == 1 {
		return printResponse(s.Client.DeleteCard(ctx(), args[0]))
	}
	return printResponse(s.Client.DeleteCards(ctx(), args))
}
