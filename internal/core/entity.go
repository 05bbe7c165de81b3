// Package core defines the entity model and response envelope shared by
// the store, the mock API, the service layer, and the HTTP transport.
package core

import "time"

// Game is a card game managed by the content service. CardCount and
// DeckCount are derived caches maintained by the store after every
// card/deck mutation; they are never authoritative on their own.
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatorID   string    `json:"creatorId"`
	CardCount   int       `json:"cardCount"`
	DeckCount   int       `json:"deckCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Card belongs to exactly one game. GameID is immutable after creation.
type Card struct {
	ID          string         `json:"id"`
	GameID      string         `json:"gameId"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Rarity      string         `json:"rarity"`
	Image       *string        `json:"image"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// DeckCardRef is one entry in a deck's card list.
type DeckCardRef struct {
	CardID   string `json:"cardId"`
	Quantity int    `json:"quantity"`
}

// Deck references cards of its game by ID. GameID and CreatorID are
// immutable after creation. CardCount is the sum of entry quantities.
type Deck struct {
	ID          string        `json:"id"`
	GameID      string        `json:"gameId"`
	CreatorID   string        `json:"creatorId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Cards       []DeckCardRef `json:"cards"`
	CardCount   int           `json:"cardCount"`
	IsPublic    bool          `json:"isPublic"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ExpandedDeckCard is a deck entry joined with a denormalized copy of the
// referenced card, produced by single-deck reads for rendering.
type ExpandedDeckCard struct {
	CardID   string `json:"cardId"`
	Quantity int    `json:"quantity"`
	Card     *Card  `json:"card"`
}

// DeckDetail is a deck plus its expanded entries. The raw card list is
// kept alongside the expanded view to preserve the deck's wire shape.
type DeckDetail struct {
	Deck
	ExpandedCards []ExpandedDeckCard `json:"expandedCards"`
}

// DeckExportCard is one line of a structured deck export.
type DeckExportCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// DeckExport is the structured form of an exported deck.
type DeckExport struct {
	Name  string           `json:"name"`
	Game  string           `json:"game"`
	Cards []DeckExportCard `json:"cards"`
}

// ExportResult wraps an export in either structured or text form.
// Content is a *DeckExport for format "json" and a string for "text".
type ExportResult struct {
	Format  string `json:"format"`
	Content any    `json:"content"`
}

// ImportSummary reports how an import payload resolved against the
// target game's card set. Imports are partial-success: invalid entries
// are excluded from the created deck and reported here, they never fail
// the operation.
type ImportSummary struct {
	TotalCards        int   `json:"totalCards"`
	ValidCards        int   `json:"validCards"`
	InvalidCards      int   `json:"invalidCards"`
	InvalidCardDetail []any `json:"invalidCardDetails"`
}

// ImportResult is the payload of a successful deck import.
type ImportResult struct {
	Deck          *Deck         `json:"deck"`
	ImportSummary ImportSummary `json:"importSummary"`
}

// DeleteResult acknowledges a delete operation.
type DeleteResult struct {
	Message string `json:"message"`
}

// BulkDeleteResult acknowledges a bulk card delete, reporting how many
// of the requested cards actually existed and were removed.
type BulkDeleteResult struct {
	Message string `json:"message"`
	Deleted int    `json:"deletedCount"`
}
