// Package store holds the mock relational tables for games, cards, and
// decks within one process, plus the integrity-maintenance helpers that
// keep derived counts and cross-table references consistent.
package store

import (
	"sync"
	"time"

	"cardvault/internal/core"
)

// Store is the single source of truth for the three entity tables.
// Instances are created from seed data and passed by handle to the API
// modules; there is no package-level singleton. The mutex serializes
// whole API operation bodies: callers lock, run their validate+mutate
// sequence, and unlock. Table slices preserve insertion order.
type Store struct {
	mu sync.Mutex

	Games []core.Game
	Cards []core.Card
	Decks []core.Deck
}

// New creates a store populated with the seed dataset.
func New() *Store {
	return &Store{
		Games: seedGames(),
		Cards: seedCards(),
		Decks: seedDecks(),
	}
}

// NewWithData creates a store with caller-provided tables, for tests
// that need a specific starting state. The slices are owned by the
// store after the call.
func NewWithData(games []core.Game, cards []core.Card, decks []core.Deck) *Store {
	return &Store{Games: games, Cards: cards, Decks: decks}
}

// Lock acquires the store for one logical operation.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store.
func (s *Store) Unlock() { s.mu.Unlock() }

// Reset discards all mutations and restores the seeded initial dataset.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games = seedGames()
	s.Cards = seedCards()
	s.Decks = seedDecks()
}

// FindGame returns a pointer into the game table, or nil. Callers must
// hold the lock.
func (s *Store) FindGame(gameID string) *core.Game {
	for i := range s.Games {
		if s.Games[i].ID == gameID {
			return &s.Games[i]
		}
	}
	return nil
}

// FindCard returns a pointer into the card table, or nil. Callers must
// hold the lock.
func (s *Store) FindCard(cardID string) *core.Card {
	for i := range s.Cards {
		if s.Cards[i].ID == cardID {
			return &s.Cards[i]
		}
	}
	return nil
}

// FindDeck returns a pointer into the deck table, or nil. Callers must
// hold the lock.
func (s *Store) FindDeck(deckID string) *core.Deck {
	for i := range s.Decks {
		if s.Decks[i].ID == deckID {
			return &s.Decks[i]
		}
	}
	return nil
}

// UpdateGameCardCount recomputes the derived card count for one game
// from the current card table. Silently a no-op if the game no longer
// exists, so delete paths can call it unconditionally. Must run after
// any card create or delete that changes membership for the game.
// Callers must hold the lock.
func (s *Store) UpdateGameCardCount(gameID string) {
	g := s.FindGame(gameID)
	if g == nil {
		return
	}
	n := 0
	for i := range s.Cards {
		if s.Cards[i].GameID == gameID {
			n++
		}
	}
	g.CardCount = n
	g.UpdatedAt = time.Now().UTC()
}

// UpdateGameDeckCount recomputes the derived deck count for one game
// from the current deck table. Same no-op and ordering rules as
// UpdateGameCardCount. Callers must hold the lock.
func (s *Store) UpdateGameDeckCount(gameID string) {
	g := s.FindGame(gameID)
	if g == nil {
		return
	}
	n := 0
	for i := range s.Decks {
		if s.Decks[i].GameID == gameID {
			n++
		}
	}
	g.DeckCount = n
	g.UpdatedAt = time.Now().UTC()
}

// RemoveDeletedCardFromDecks prunes the card from every deck that
// references it and recomputes each touched deck's cardCount. Must run
// before the card row itself is removed so no deck ever references a
// missing card across an operation boundary. Callers must hold the lock.
func (s *Store) RemoveDeletedCardFromDecks(cardID string) {
	for i := range s.Decks {
		d := &s.Decks[i]
		contains := false
		for _, ref := range d.Cards {
			if ref.CardID == cardID {
				contains = true
				break
			}
		}
		if !contains {
			continue
		}

		kept := make([]core.DeckCardRef, 0, len(d.Cards)-1)
		count := 0
		for _, ref := range d.Cards {
			if ref.CardID == cardID {
				continue
			}
			kept = append(kept, ref)
			count += ref.Quantity
		}
		d.Cards = kept
		d.CardCount = count
		d.UpdatedAt = time.Now().UTC()
	}
}

// CleanupDeletedGame removes all cards and decks belonging to the game.
// Must run before the game row itself is removed. Callers must hold the
// lock.
func (s *Store) CleanupDeletedGame(gameID string) {
	cards := s.Cards[:0]
	for _, c := range s.Cards {
		if c.GameID != gameID {
			cards = append(cards, c)
		}
	}
	s.Cards = cards

	decks := s.Decks[:0]
	for _, d := range s.Decks {
		if d.GameID != gameID {
			decks = append(decks, d)
		}
	}
	s.Decks = decks
}
