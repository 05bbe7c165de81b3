// Package main implements an interactive debugging client for the cardvault API.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"cardvault/internal/client/api"
	"cardvault/internal/client/commands"
	"cardvault/internal/client/display"
	"cardvault/internal/client/session"
	"cardvault/internal/service"

	"github.com/chzyer/readline"
)

func main() {
	cfg, err := service.ParseEnv()
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}

	apiURL := flag.String("api", cfg.APIBaseURL, "API base URL")
	flag.Parse()

	s := &session.Session{
		APIBaseURL: *apiURL,
		Client:     api.New(*apiURL),
		Verbose:    false,
	}

	// Initialize readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("cardvault"),
		HistoryFile:     ".cardvault_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sCardvault Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, s.APIBaseURL, display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}
		s.Client.SetVerbose(s.Verbose)

		registry.Execute(line)
	}
}

func buildPrompt(s *session.Session) string {
	promptStr := "cardvault"
	if s.CurrentGame != "" {
		label := s.CurrentGameTitle
		if label == "" {
			label = s.CurrentGame
		}
		promptStr += display.Yellow + " [" + display.Reset +
			display.White + label + display.Reset +
			display.Yellow + "]"
	}
	return display.Prompt(promptStr)
}
