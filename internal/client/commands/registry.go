// Package commands implements the interactive client's command set.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"cardvault/internal/client/display"
	"cardvault/internal/client/session"
)

// Command defines a client command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*session.Session, []string) error
}

// Registry manages command registration and execution
type Registry struct {
	session  *session.Session
	commands map[string]*Command
}

func NewRegistry(s *session.Session) *Registry {
	r := &Registry{
		session:  s,
		commands: make(map[string]*Command),
	}

	// Register all commands
	r.registerGameCommands()
	r.registerCardCommands()
	r.registerDeckCommands()
	r.registerStoreCommands()
	r.registerDebugCommands()

	// Help command
	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
}

func (r *Registry) Execute(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmd, ok := r.commands[parts[0]]
	if !ok {
		fmt.Printf("%sUnknown command: %s (try 'help')%s\n", display.Red, parts[0], display.Reset)
		return
	}

	if err := cmd.Handler(r.session, parts[1:]); err != nil {
		fmt.Printf("%sError: %s%s\n", display.Red, err.Error(), display.Reset)
	}
}

func (r *Registry) helpHandler(s *session.Session, args []string) error {
	if len(args) > 0 {
		cmd, ok := r.commands[args[0]]
		if !ok {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Printf("%s%s%s - %s\n", display.Cyan, cmd.Name, display.Reset, cmd.Description)
		fmt.Printf("Usage: %s\n", cmd.Usage)
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, cmd := range r.commands {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	sort.Strings(names)

	fmt.Printf("%sAvailable commands:%s\n", display.Cyan, display.Reset)
	for _, name := range names {
		cmd := r.commands[name]
		short := ""
		if cmd.ShortName != "" {
			short = " (" + cmd.ShortName + ")"
		}
		fmt.Printf("  %s%-12s%s%s - %s\n", display.Yellow, cmd.Name, display.Reset, short, cmd.Description)
	}
	fmt.Println("\nAppend -v to any command for full request/response dumps")
	return nil
}
