package store

import (
	"testing"
	"time"

	"cardvault/internal/core"
)

func TestNew_SeedData(t *testing.T) {
	s := New()

	if got := len(s.Games); got != 3 {
		t.Fatalf("len(Games) = %d, want 3", got)
	}
	if got := len(s.Cards); got != 7 {
		t.Fatalf("len(Cards) = %d, want 7", got)
	}
	if got := len(s.Decks); got != 3 {
		t.Fatalf("len(Decks) = %d, want 3", got)
	}

	g := s.FindGame("game_001")
	if g == nil {
		t.Fatal("FindGame(game_001) = nil")
	}
	if g.Title != "Fantasy Realms" {
		t.Errorf("game_001 title = %q, want Fantasy Realms", g.Title)
	}
	if g.CardCount != 120 || g.DeckCount != 15 {
		t.Errorf("game_001 counts = %d/%d, want 120/15", g.CardCount, g.DeckCount)
	}

	d := s.FindDeck("deck_001")
	if d == nil {
		t.Fatal("FindDeck(deck_001) = nil")
	}
	if len(d.Cards) != 3 || d.CardCount != 6 {
		t.Errorf("deck_001 has %d entries, cardCount %d, want 3 entries, count 6", len(d.Cards), d.CardCount)
	}
}

func TestReset_RestoresSeed(t *testing.T) {
	s := New()

	s.Lock()
	s.Games = s.Games[:1]
	s.Cards = nil
	s.FindGame("game_001").Title = "Mutated"
	s.Unlock()

	s.Reset()

	if got := len(s.Games); got != 3 {
		t.Fatalf("after Reset len(Games) = %d, want 3", got)
	}
	if got := len(s.Cards); got != 7 {
		t.Fatalf("after Reset len(Cards) = %d, want 7", got)
	}
	if got := s.FindGame("game_001").Title; got != "Fantasy Realms" {
		t.Errorf("after Reset game_001 title = %q, want Fantasy Realms", got)
	}
}

func TestNewWithData(t *testing.T) {
	games := []core.Game{{ID: "g1", Title: "Test Game"}}
	cards := []core.Card{{ID: "c1", GameID: "g1"}, {ID: "c2", GameID: "g1"}}

	s := NewWithData(games, cards, nil)

	if s.FindGame("g1") == nil {
		t.Fatal("FindGame(g1) = nil")
	}
	s.UpdateGameCardCount("g1")
	if got := s.FindGame("g1").CardCount; got != 2 {
		t.Errorf("g1 cardCount = %d, want 2", got)
	}
	s.UpdateGameDeckCount("g1")
	if got := s.FindGame("g1").DeckCount; got != 0 {
		t.Errorf("g1 deckCount = %d, want 0", got)
	}
}

func TestFind_Missing(t *testing.T) {
	s := New()

	if s.FindGame("game_999") != nil {
		t.Error("FindGame(game_999) != nil")
	}
	if s.FindCard("card_999") != nil {
		t.Error("FindCard(card_999) != nil")
	}
	if s.FindDeck("deck_999") != nil {
		t.Error("FindDeck(deck_999) != nil")
	}
}

func TestUpdateGameCardCount(t *testing.T) {
	s := New()

	s.UpdateGameCardCount("game_001")
	g := s.FindGame("game_001")
	if g.CardCount != 3 {
		t.Fatalf("game_001 cardCount = %d, want 3 (actual table membership)", g.CardCount)
	}

	before := g.UpdatedAt
	if !before.After(time.Now().Add(-time.Minute)) {
		t.Errorf("updatedAt not refreshed: %v", before)
	}

	// Missing game is a silent no-op so delete cascades can call this
	// unconditionally.
	s.UpdateGameCardCount("game_999")
}

func TestUpdateGameDeckCount(t *testing.T) {
	s := New()

	s.UpdateGameDeckCount("game_002")
	if got := s.FindGame("game_002").DeckCount; got != 1 {
		t.Fatalf("game_002 deckCount = %d, want 1", got)
	}

	s.UpdateGameDeckCount("game_999")
}

func TestRemoveDeletedCardFromDecks(t *testing.T) {
	s := New()

	s.RemoveDeletedCardFromDecks("card_001")

	d := s.FindDeck("deck_001")
	if len(d.Cards) != 2 {
		t.Fatalf("deck_001 entries = %d, want 2", len(d.Cards))
	}
	for _, ref := range d.Cards {
		if ref.CardID == "card_001" {
			t.Fatal("deck_001 still references card_001")
		}
	}
	if d.CardCount != 3 {
		t.Errorf("deck_001 cardCount = %d, want 3 (2x card_002 + 1x card_003)", d.CardCount)
	}

	// Decks that never referenced the card are untouched.
	if got := s.FindDeck("deck_002").CardCount; got != 6 {
		t.Errorf("deck_002 cardCount = %d, want 6", got)
	}
}

func TestRemoveDeletedCardFromDecks_Unreferenced(t *testing.T) {
	s := New()
	d2Before := *s.FindDeck("deck_002")

	s.RemoveDeletedCardFromDecks("card_999")

	d2 := s.FindDeck("deck_002")
	if len(d2.Cards) != len(d2Before.Cards) || d2.CardCount != d2Before.CardCount {
		t.Errorf("deck_002 changed by pruning an unreferenced card")
	}
	if !d2.UpdatedAt.Equal(d2Before.UpdatedAt) {
		t.Errorf("deck_002 updatedAt refreshed without a change")
	}
}

func TestCleanupDeletedGame(t *testing.T) {
	s := New()

	s.CleanupDeletedGame("game_001")

	for _, c := range s.Cards {
		if c.GameID == "game_001" {
			t.Fatalf("card %s still belongs to game_001", c.ID)
		}
	}
	for _, d := range s.Decks {
		if d.GameID == "game_001" {
			t.Fatalf("deck %s still belongs to game_001", d.ID)
		}
	}

	if got := len(s.Cards); got != 4 {
		t.Errorf("len(Cards) = %d, want 4", got)
	}
	if got := len(s.Decks); got != 2 {
		t.Errorf("len(Decks) = %d, want 2", got)
	}
}
