package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardvault/internal/core"
)

func TestClient_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/api/v1/games/game_001" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":"game_001","title":"Fantasy Realms"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.GetGame(context.Background(), "game_001")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if !resp.Success {
		t.Fatalf("envelope = %+v", resp)
	}
	data := resp.Data.(map[string]any)
	if data["title"] != "Fantasy Realms" {
		t.Errorf("title = %v", data["title"])
	}
}

func TestClient_FailureEnvelopeIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"code":"DECK_NOT_FOUND","message":"Deck not found"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.GetDeck(context.Background(), "deck_999")
	if err != nil {
		t.Fatalf("failure envelope should decode cleanly, got error: %v", err)
	}
	if resp.Success || resp.Error.Code != core.ErrDeckNotFound {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListGames(context.Background())
	if err == nil {
		t.Fatal("expected error for non-envelope failure body")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error is %T, want *StatusError", err)
	}
	if statusErr.Status != http.StatusServiceUnavailable || statusErr.Body != "maintenance" {
		t.Errorf("StatusError = %+v", statusErr)
	}
}

func TestClient_QueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCards(context.Background(), "game_001", core.CardListParams{
		Page:   2,
		Limit:  5,
		Search: "dragon knight",
	})
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if gotQuery == "" {
		t.Fatal("no query string sent")
	}
	for _, want := range []string{"page=2", "limit=5", "search=dragon+knight"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}
