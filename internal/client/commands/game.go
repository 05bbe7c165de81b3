package commands

import (
	"fmt"
	"strings"

	"cardvault/internal/client/display"
	"cardvault/internal/client/session"
	"cardvault/internal/core"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "games",
		ShortName:   "g",
		Description: "List all games",
		Usage:       "games",
		Handler:     listGamesHandler,
	})

	r.Register(&Command{
		Name:        "game",
		Description: "Show one game",
		Usage:       "game [gameId]",
		Handler:     getGameHandler,
	})

	r.Register(&Command{
		Name:        "use",
		ShortName:   "u",
		Description: "Select the working game",
		Usage:       "use <gameId>",
		Handler:     useGameHandler,
	})

	r.Register(&Command{
		Name:        "game-create",
		Description: "Create a game",
		Usage:       "game-create <title> [description...]",
		Handler:     createGameHandler,
	})

	r.Register(&Command{
		Name:        "game-update",
		Description: "Rename a game",
		Usage:       "game-update <gameId> <title...>",
		Handler:     updateGameHandler,
	})

	r.Register(&Command{
		Name:        "game-delete",
		Description: "Delete a game and everything in it",
		Usage:       "game-delete <gameId>",
		Handler:     deleteGameHandler,
	})
}

func listGamesHandler(s *session.Session, args []string) error {
	return printResponse(s.Client.ListGames(ctx()))
}

func getGameHandler(s *session.Session, args []string) error {
	id := s.CurrentGame
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		return fmt.Errorf("no game selected; usage: game <gameId>")
	}
	return printResponse(s.Client.GetGame(ctx(), id))
}

func useGameHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: use <gameId>")
	}
	resp, err := s.Client.GetGame(ctx(), args[0])
	if err != nil {
		return err
	}
	if !resp.Success {
		return printResponse(resp, nil)
	}

	title := ""
	if m, ok := resp.Data.(map[string]any); ok {
		title, _ = m["title"].(string)
	}
	s.SelectGame(args[0], title)
	fmt.Printf("%sWorking game: %s%s\n", display.Green, args[0], display.Reset)
	return nil
}

func createGameHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: game-create <title> [description...]")
	}
	in := core.GameInput{
		Title:       args[0],
		Description: strings.Join(args[1:], " "),
	}
	return printResponse(s.Client.CreateGame(ctx(), in))
}

func updateGameHandler(s *session.Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: game-update <gameId> <title...>")
	}
	title := strings.Join(args[1:], " ")
	return printResponse(s.Client.UpdateGame(ctx(), args[0], core.GameUpdate{Title: &title}))
}

func deleteGameHandler(s *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: game-delete <gameId>")
	}
	resp, err := s.Client.DeleteGame(ctx(), args[0])
	if err == nil && resp.Success && args[0] == s.CurrentGame {
		s.ClearGame()
	}
	return printResponse(resp, err)
}
