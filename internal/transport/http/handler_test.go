package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cardvault/internal/mockapi"
	"cardvault/internal/store"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *store.Store) {
	st := store.New()
	a := mockapi.New(st, mockapi.WithSleeper(func(ctx context.Context, d time.Duration) {}))
	return NewFiberApp(a, st, true), st
}

var xffCounter int

// doJSON runs one request against the app and decodes the envelope.
// Each request gets its own forwarded-for address so the rate limiter
// never interferes with test volume.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	xffCounter++
	req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.%d.%d", xffCounter/256, xffCounter%256))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, envelope
}

func errorCode(t *testing.T, envelope map[string]any) string {
	t.Helper()
	e, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("envelope has no error object: %v", envelope)
	}
	code, _ := e["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp()

	status, body := doJSON(t, app, "GET", "/health", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "healthy" {
		t.Errorf("body = %v", body)
	}
}

func TestListGames_HTTP(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "GET", "/api/v1/games", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if envelope["success"] != true {
		t.Fatalf("envelope = %v", envelope)
	}
	games, ok := envelope["data"].([]any)
	if !ok || len(games) != 3 {
		t.Errorf("data = %v, want 3 games", envelope["data"])
	}
}

func TestCreateGame_HTTP(t *testing.T) {
	app, st := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/games",
		`{"title": "Star Siege", "description": "Space combat"}`)
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	data := envelope["data"].(map[string]any)
	if data["title"] != "Star Siege" {
		t.Errorf("title = %v", data["title"])
	}
	if data["creatorId"] != "user_001" {
		t.Errorf("creatorId = %v", data["creatorId"])
	}
	if len(st.Games) != 4 {
		t.Errorf("game table = %d rows, want 4", len(st.Games))
	}
}

func TestCreateGame_Validation(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/games", `{"description": "no title"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if code := errorCode(t, envelope); code != "INVALID_REQUEST" {
		t.Errorf("error code = %q, want INVALID_REQUEST", code)
	}
}

func TestContentType_Rejected(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/games", strings.NewReader(`{"title": "x"}`))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Forwarded-For", "10.9.9.9")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", resp.StatusCode)
	}
}

func TestGetGame_NotFound_HTTP(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "GET", "/api/v1/games/game_999", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if code := errorCode(t, envelope); code != "GAME_NOT_FOUND" {
		t.Errorf("error code = %q", code)
	}
}

func TestListCards_QueryParams(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "GET", "/api/v1/games/game_001/cards?search=dragon&page=1&limit=5", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	cards := envelope["data"].([]any)
	if len(cards) != 1 {
		t.Fatalf("filtered cards = %d, want 1", len(cards))
	}
	p := envelope["pagination"].(map[string]any)
	if p["itemsPerPage"] != float64(5) || p["totalItems"] != float64(1) {
		t.Errorf("pagination = %v", p)
	}
}

func TestBulkDelete_HTTP(t *testing.T) {
	app, st := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/cards/bulk-delete",
		`{"cardIds": ["card_001", "card_999"]}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := envelope["data"].(map[string]any)
	if data["deletedCount"] != float64(1) {
		t.Errorf("deletedCount = %v, want 1", data["deletedCount"])
	}
	if len(st.Cards) != 6 {
		t.Errorf("card table = %d rows, want 6", len(st.Cards))
	}
}

func TestBulkDelete_EmptyRejected(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/cards/bulk-delete", `{"cardIds": []}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if code := errorCode(t, envelope); code != "INVALID_REQUEST" {
		t.Errorf("error code = %q", code)
	}
}

func TestCreateDeck_InvalidCards_HTTP(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/games/game_001/decks",
		`{"name": "Broken", "cards": [{"cardId": "card_999", "quantity": 1}]}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if code := errorCode(t, envelope); code != "INVALID_CARDS" {
		t.Errorf("error code = %q, want INVALID_CARDS", code)
	}
	e := envelope["error"].(map[string]any)
	details := e["details"].(map[string]any)
	if _, ok := details["invalidCardIds"]; !ok {
		t.Errorf("details = %v, want invalidCardIds", details)
	}
}

func TestImportDeck_BadJSON_HTTP(t *testing.T) {
	app, _ := newTestApp()

	// The import route skips body validation so malformed payloads
	// reach the deck API and come back as IMPORT_ERROR.
	status, envelope := doJSON(t, app, "POST", "/api/v1/games/game_001/decks/import", `{broken`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if code := errorCode(t, envelope); code != "IMPORT_ERROR" {
		t.Errorf("error code = %q, want IMPORT_ERROR", code)
	}
}

func TestImportDeck_HTTP(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "POST", "/api/v1/games/game_001/decks/import",
		`{"name": "Over The Wire", "cards": [{"cardId": "card_001", "quantity": 2}]}`)
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	data := envelope["data"].(map[string]any)
	summary := data["importSummary"].(map[string]any)
	if summary["validCards"] != float64(1) {
		t.Errorf("summary = %v", summary)
	}
}

func TestExportDeck_Text_HTTP(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "GET", "/api/v1/decks/deck_001/export?format=text", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := envelope["data"].(map[string]any)
	content, ok := data["content"].(string)
	if !ok {
		t.Fatalf("content is %T, want string", data["content"])
	}
	if !strings.HasPrefix(content, "# Dragon Dominance - Fantasy Realms") {
		t.Errorf("content starts with %q", strings.SplitN(content, "\n", 2)[0])
	}
}

func TestReset_HTTP(t *testing.T) {
	app, st := newTestApp()

	doJSON(t, app, "DELETE", "/api/v1/games/game_001", "")
	if len(st.Games) != 2 {
		t.Fatalf("setup delete did not apply")
	}

	status, envelope := doJSON(t, app, "POST", "/api/v1/reset", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if envelope["success"] != true {
		t.Fatalf("envelope = %v", envelope)
	}
	if len(st.Games) != 3 || len(st.Cards) != 7 || len(st.Decks) != 3 {
		t.Errorf("tables = %d/%d/%d, want seed 3/7/3", len(st.Games), len(st.Cards), len(st.Decks))
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp()

	status, envelope := doJSON(t, app, "GET", "/api/v1/nonsense", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if code := errorCode(t, envelope); code != "INVALID_REQUEST" {
		t.Errorf("error code = %q", code)
	}
}
