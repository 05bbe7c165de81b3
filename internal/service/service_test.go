package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"cardvault/internal/client/api"
	"cardvault/internal/core"
	"cardvault/internal/mockapi"
	"cardvault/internal/store"
)

func newMockServices() Services {
	st := store.New()
	return NewMock(st, mockapi.WithSleeper(func(ctx context.Context, d time.Duration) {}))
}

func TestMock_PassThrough(t *testing.T) {
	svc := newMockServices()
	ctx := context.Background()

	resp := svc.Games.GetGames(ctx)
	if !resp.Success {
		t.Fatalf("GetGames failed: %+v", resp.Error)
	}
	if games := resp.Data.([]core.Game); len(games) != 3 {
		t.Fatalf("len(games) = %d, want 3", len(games))
	}

	resp = svc.Games.GetGame(ctx, "game_999")
	if resp.Success || resp.Error.Code != core.ErrGameNotFound {
		t.Fatalf("want GAME_NOT_FOUND envelope, got %+v", resp)
	}

	resp = svc.Cards.GetCards(ctx, "game_001", core.CardListParams{})
	if !resp.Success || resp.Pagination == nil {
		t.Fatalf("GetCards = %+v, want paged success", resp)
	}

	resp = svc.Decks.ImportDeck(ctx, "game_001", []byte(`{"name": "Via Service"}`))
	if !resp.Success {
		t.Fatalf("ImportDeck failed: %+v", resp.Error)
	}
	if resp.Data.(core.ImportResult).Deck.Name != "Via Service" {
		t.Errorf("imported deck name = %q", resp.Data.(core.ImportResult).Deck.Name)
	}
}

func TestMock_SharesOneStore(t *testing.T) {
	st := store.New()
	svc := NewMock(st, mockapi.WithSleeper(func(ctx context.Context, d time.Duration) {}))
	ctx := context.Background()

	if resp := svc.Cards.DeleteCard(ctx, "card_001"); !resp.Success {
		t.Fatalf("DeleteCard failed: %+v", resp.Error)
	}

	resp := svc.Decks.GetDeck(ctx, "deck_001")
	if !resp.Success {
		t.Fatalf("GetDeck failed: %+v", resp.Error)
	}
	if got := resp.Data.(core.DeckDetail).CardCount; got != 3 {
		t.Errorf("deck_001 cardCount via decks service = %d, want 3 after card delete", got)
	}
}

func TestLive_EnvelopePassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"code":"GAME_NOT_FOUND","message":"Game not found"}}`))
	}))
	defer srv.Close()

	svc := NewLive(api.New(srv.URL))
	resp := svc.Games.GetGame(context.Background(), "game_999")

	if resp.Success {
		t.Fatal("expected failure envelope")
	}
	if resp.Error.Code != core.ErrGameNotFound || resp.Error.Message != "Game not found" {
		t.Errorf("error = %+v, want the server's envelope verbatim", resp.Error)
	}
}

func TestLive_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/games" {
			t.Errorf("path = %q, want /api/v1/games", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"game_001","title":"Fantasy Realms"}]}`))
	}))
	defer srv.Close()

	svc := NewLive(api.New(srv.URL))
	resp := svc.Games.GetGames(context.Background())

	if !resp.Success {
		t.Fatalf("GetGames failed: %+v", resp.Error)
	}
	games, ok := resp.Data.([]any)
	if !ok || len(games) != 1 {
		t.Fatalf("data = %#v, want one-element list", resp.Data)
	}
}

func TestLive_NonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	svc := NewLive(api.New(srv.URL))
	resp := svc.Games.GetGames(context.Background())

	if resp.Success {
		t.Fatal("expected failure envelope")
	}
	if resp.Error.Code != "502" {
		t.Errorf("error code = %q, want the status code 502", resp.Error.Code)
	}
	if resp.Error.Message != unknownErrorMessage {
		t.Errorf("error message = %q, want %q", resp.Error.Message, unknownErrorMessage)
	}
}

func TestLive_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	svc := NewLive(api.New(srv.URL))
	resp := svc.Games.GetGames(context.Background())

	if resp.Success {
		t.Fatal("expected failure envelope")
	}
	if resp.Error.Code != core.ErrUnknown {
		t.Errorf("error code = %q, want %q", resp.Error.Code, core.ErrUnknown)
	}
}

func TestNew_ModeSelection(t *testing.T) {
	st := store.New()

	svc := New(Config{Mode: ModeMock}, st)
	if _, ok := svc.Games.(mockGames); !ok {
		t.Errorf("mock mode wired %T, want mockGames", svc.Games)
	}

	svc = New(Config{Mode: ModeLive, APIBaseURL: "http://localhost:8080"}, nil)
	if _, ok := svc.Games.(liveGames); !ok {
		t.Errorf("live mode wired %T, want liveGames", svc.Games)
	}
}

func TestParseEnv(t *testing.T) {
	// Register restores, then clear so the defaults apply.
	t.Setenv("CARDVAULT_MODE", "mock")
	t.Setenv("CARDVAULT_API_URL", "http://localhost:8080")
	os.Unsetenv("CARDVAULT_MODE")
	os.Unsetenv("CARDVAULT_API_URL")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() error: %v", err)
	}
	if cfg.Mode != ModeMock {
		t.Errorf("default mode = %q, want %q", cfg.Mode, ModeMock)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("default api url = %q", cfg.APIBaseURL)
	}

	t.Setenv("CARDVAULT_MODE", "live")
	cfg, err = ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() error: %v", err)
	}
	if cfg.Mode != ModeLive {
		t.Errorf("mode = %q, want %q", cfg.Mode, ModeLive)
	}

	t.Setenv("CARDVAULT_MODE", "sideways")
	if _, err := ParseEnv(); err == nil {
		t.Error("ParseEnv() accepted an invalid mode")
	}
}
