package core

// Request types shared by the mock API, the service layer, and the HTTP
// transport. Pointer fields distinguish "not provided" from zero values
// so updates can shallow-merge. Validate tags are enforced at the
// transport boundary only; the mock API itself is as permissive as the
// backend it simulates.

// GameInput carries the client-settable fields of a new game.
type GameInput struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=16"`
}

// GameUpdate carries a partial game update.
type GameUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=16"`
}

// CardInput carries the client-settable fields of a new card. GameID is
// taken from the path parameter, never from the body.
type CardInput struct {
	Name        string         `json:"name" validate:"required,min=1,max=100"`
	Type        string         `json:"type" validate:"max=50"`
	Rarity      string         `json:"rarity" validate:"max=50"`
	Image       *string        `json:"image"`
	Description string         `json:"description" validate:"max=1000"`
	Attributes  map[string]any `json:"attributes"`
}

// CardUpdate carries a partial card update. A nil Attributes map leaves
// the existing attributes untouched; a non-nil map replaces them.
type CardUpdate struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type        *string        `json:"type,omitempty" validate:"omitempty,max=50"`
	Rarity      *string        `json:"rarity,omitempty" validate:"omitempty,max=50"`
	Image       *string        `json:"image,omitempty"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// CardListParams are the filter and page controls of a card listing.
// Zero Page and Limit fall back to the defaults (page 1, 20 per page).
type CardListParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
	Type   string `json:"type"`
	Rarity string `json:"rarity"`
}

// DeckListParams are the page controls of a deck listing. Defaults are
// page 1 and 10 per page.
type DeckListParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DeckInput carries the client-settable fields of a new deck. GameID and
// CreatorID are server-assigned.
type DeckInput struct {
	Name        string        `json:"name" validate:"max=100"`
	Description string        `json:"description" validate:"max=500"`
	Cards       []DeckCardRef `json:"cards" validate:"omitempty,dive"`
	IsPublic    bool          `json:"isPublic"`
}

// DeckUpdate carries a partial deck update. A nil Cards slice leaves the
// card list untouched; a non-nil slice replaces it and recomputes the
// deck's cardCount.
type DeckUpdate struct {
	Name        *string       `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=500"`
	Cards       []DeckCardRef `json:"cards,omitempty" validate:"omitempty,dive"`
	IsPublic    *bool         `json:"isPublic,omitempty"`
}

// BulkDeleteInput is the payload of a bulk card delete.
type BulkDeleteInput struct {
	CardIDs []string `json:"cardIds" validate:"required,min=1"`
}

// DeckImportCard is one entry of an import payload: either id-keyed
// (CardID set) or name-keyed (Name set, resolved case-insensitively
// within the target game).
type DeckImportCard struct {
	CardID   string `json:"cardId,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// DeckImportPayload is a deck import document.
type DeckImportPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	IsPublic    bool             `json:"isPublic,omitempty"`
	Cards       []DeckImportCard `json:"cards,omitempty"`
}
