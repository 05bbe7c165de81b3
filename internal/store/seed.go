package store

import (
	"time"

	"cardvault/internal/core"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("store: bad seed timestamp " + s)
	}
	return t
}

// seedGames returns a fresh copy of the initial game table.
func seedGames() []core.Game {
	return []core.Game{
		{
			ID:          "game_001",
			Title:       "Fantasy Realms",
			Description: "A strategic card game set in a medieval fantasy world",
			Icon:        "🧙‍♂️",
			CreatorID:   "user_001",
			CardCount:   120,
			DeckCount:   15,
			CreatedAt:   ts("2023-01-10T12:00:00Z"),
			UpdatedAt:   ts("2023-04-15T09:30:00Z"),
		},
		{
			ID:          "game_002",
			Title:       "Cyber Wars",
			Description: "Futuristic combat in a dystopian cyber world",
			Icon:        "🤖",
			CreatorID:   "user_001",
			CardCount:   95,
			DeckCount:   7,
			CreatedAt:   ts("2023-02-20T15:45:00Z"),
			UpdatedAt:   ts("2023-05-05T11:20:00Z"),
		},
		{
			ID:          "game_003",
			Title:       "Ancient Battles",
			Description: "Historical warfare from ancient civilizations",
			Icon:        "⚔️",
			CreatorID:   "user_002",
			CardCount:   75,
			DeckCount:   5,
			CreatedAt:   ts("2023-03-10T09:15:00Z"),
			UpdatedAt:   ts("2023-03-25T14:30:00Z"),
		},
	}
}

// seedCards returns a fresh copy of the initial card table.
func seedCards() []core.Card {
	return []core.Card{
		// Fantasy Realms
		{
			ID:          "card_001",
			GameID:      "game_001",
			Name:        "Dragon Knight",
			Type:        "Monster",
			Rarity:      "Rare",
			Description: "A powerful knight with dragon armor",
			Attributes:  map[string]any{"attack": 1500, "defense": 1200, "cost": 4},
			CreatedAt:   ts("2023-01-15T08:30:00Z"),
			UpdatedAt:   ts("2023-01-15T08:30:00Z"),
		},
		{
			ID:          "card_002",
			GameID:      "game_001",
			Name:        "Magic Barrier",
			Type:        "Spell",
			Rarity:      "Common",
			Description: "Protect a creature from the next attack",
			Attributes:  map[string]any{"cost": 2},
			CreatedAt:   ts("2023-01-15T09:15:00Z"),
			UpdatedAt:   ts("2023-01-15T09:15:00Z"),
		},
		{
			ID:          "card_003",
			GameID:      "game_001",
			Name:        "Shadow Trap",
			Type:        "Trap",
			Rarity:      "Uncommon",
			Description: "When an opponent attacks, reduce their attack by half",
			Attributes:  map[string]any{"cost": 3},
			CreatedAt:   ts("2023-01-16T11:20:00Z"),
			UpdatedAt:   ts("2023-01-16T11:20:00Z"),
		},
		// Cyber Wars
		{
			ID:          "card_101",
			GameID:      "game_002",
			Name:        "Cyber Soldier",
			Type:        "Monster",
			Rarity:      "Common",
			Description: "A basic soldier with cybernetic enhancements",
			Attributes:  map[string]any{"attack": 1000, "defense": 1000, "cost": 3},
			CreatedAt:   ts("2023-02-22T10:30:00Z"),
			UpdatedAt:   ts("2023-02-22T10:30:00Z"),
		},
		{
			ID:          "card_102",
			GameID:      "game_002",
			Name:        "Firewall",
			Type:        "Spell",
			Rarity:      "Rare",
			Description: "Prevent all damage to your creatures for one turn",
			Attributes:  map[string]any{"cost": 4},
			CreatedAt:   ts("2023-02-22T14:45:00Z"),
			UpdatedAt:   ts("2023-02-22T14:45:00Z"),
		},
		// Ancient Battles
		{
			ID:          "card_201",
			GameID:      "game_003",
			Name:        "Roman Legionnaire",
			Type:        "Monster",
			Rarity:      "Common",
			Description: "Disciplined infantry soldier of the Roman Empire",
			Attributes:  map[string]any{"attack": 800, "defense": 1200, "cost": 2},
			CreatedAt:   ts("2023-03-12T09:45:00Z"),
			UpdatedAt:   ts("2023-03-12T09:45:00Z"),
		},
		{
			ID:          "card_202",
			GameID:      "game_003",
			Name:        "Cavalry Charge",
			Type:        "Spell",
			Rarity:      "Uncommon",
			Description: "Double the attack of all your mounted units this turn",
			Attributes:  map[string]any{"cost": 3},
			CreatedAt:   ts("2023-03-12T10:30:00Z"),
			UpdatedAt:   ts("2023-03-12T10:30:00Z"),
		},
	}
}

// seedDecks returns a fresh copy of the initial deck table.
func seedDecks() []core.Deck {
	return []core.Deck{
		{
			ID:          "deck_001",
			GameID:      "game_001",
			CreatorID:   "user_001",
			Name:        "Dragon Dominance",
			Description: "A powerful dragon-focused deck",
			Cards: []core.DeckCardRef{
				{CardID: "card_001", Quantity: 3},
				{CardID: "card_002", Quantity: 2},
				{CardID: "card_003", Quantity: 1},
			},
			CardCount: 6,
			IsPublic:  true,
			CreatedAt: ts("2023-02-05T14:20:00Z"),
			UpdatedAt: ts("2023-03-10T11:45:00Z"),
		},
		{
			ID:          "deck_002",
			GameID:      "game_002",
			CreatorID:   "user_001",
			Name:        "Cyber Defense",
			Description: "A defensive cyber deck",
			Cards: []core.DeckCardRef{
				{CardID: "card_101", Quantity: 4},
				{CardID: "card_102", Quantity: 2},
			},
			CardCount: 6,
			IsPublic:  true,
			CreatedAt: ts("2023-03-15T09:30:00Z"),
			UpdatedAt: ts("2023-03-15T09:30:00Z"),
		},
		{
			ID:          "deck_003",
			GameID:      "game_003",
			CreatorID:   "user_002",
			Name:        "Roman Legion",
			Description: "A deck focused on Roman military tactics",
			Cards: []core.DeckCardRef{
				{CardID: "card_201", Quantity: 3},
				{CardID: "card_202", Quantity: 2},
			},
			CardCount: 5,
			IsPublic:  false,
			CreatedAt: ts("2023-04-10T16:45:00Z"),
			UpdatedAt: ts("2023-04-10T16:45:00Z"),
		},
	}
}
