// Package session holds the interactive client's state between
// commands: the API client, the selected game, and output options.
package session

import "cardvault/internal/client/api"

type Session struct {
	APIBaseURL string
	Client     *api.Client
	Verbose    bool

	// Currently selected game, used as the parent for card and deck
	// commands.
	CurrentGame      string
	CurrentGameTitle string
}

// SelectGame records the working game for subsequent commands.
func (s *Session) SelectGame(id, title string) {
	s.CurrentGame = id
	s.CurrentGameTitle = title
}

// ClearGame drops the selection, e.g. after the game is deleted.
func (s *Session) ClearGame() {
	s.CurrentGame = ""
	s.CurrentGameTitle = ""
}
