package commands

import (
	"fmt"

	"cardvault/internal/client/display"
	"cardvault/internal/client/session"
)

func (r *Registry) registerStoreCommands() {
	r.Register(&Command{
		Name:        "reset",
		Description: "Reset the server store to its seed data",
		Usage:       "reset",
		Handler:     resetHandler,
	})

	r.Register(&Command{
		Name:        "health",
		Description: "Check server health",
		Usage:       "health",
		Handler:     healthHandler,
	})
}

func resetHandler(s *session.Session, args []string) error {
	return printResponse(s.Client.Reset(ctx()))
}

func healthHandler(s *session.Session, args []string) error {
	if err := s.Client.Health(ctx()); err != nil {
		return err
	}
	fmt.Printf("%sServer is healthy%s\n", display.Green, display.Reset)
	return nil
}
