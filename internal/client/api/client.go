// Package api implements the HTTP client for the cardvault REST API.
// Every call decodes into the same response envelope the mock API
// produces, so live and mock modes are interchangeable to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cardvault/internal/client/display"
	"cardvault/internal/core"
)

// StatusError reports an HTTP error whose body was not a response
// envelope. The service layer turns the status code into error.code.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Status)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Verbose    bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(u string) {
	c.BaseURL = strings.TrimRight(u, "/")
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*core.Response, error) {
	u := c.BaseURL + path

	var bodyReader io.Reader
	var bodyStr string
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonData)
		bodyStr = string(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Verbose {
		fmt.Printf("\n%s[API] %s %s%s\n", display.Blue, method, path, display.Reset)
		if bodyStr != "" {
			fmt.Printf("%s%s%s\n", display.Blue, bodyStr, display.Reset)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if c.Verbose {
			fmt.Printf("%s[ERROR] %s%s\n", display.Red, err.Error(), display.Reset)
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.Verbose {
		statusColor := display.Green
		if resp.StatusCode >= 400 {
			statusColor = display.Red
		}
		fmt.Printf("%s[%d %s]%s\n", statusColor, resp.StatusCode, http.StatusText(resp.StatusCode), display.Reset)
		var pretty any
		if err := json.Unmarshal(respBody, &pretty); err == nil {
			prettyJSON, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Printf("%sResponse Body:%s\n%s\n", display.Cyan, display.Reset, string(prettyJSON))
		}
	}

	// Both success and failure bodies carry the envelope; anything
	// else is a transport-level problem.
	var envelope core.Response
	if err := json.Unmarshal(respBody, &envelope); err != nil || (resp.StatusCode >= 400 && envelope.Error == nil) {
		if resp.StatusCode >= 400 {
			return nil, &StatusError{Status: resp.StatusCode, Body: string(respBody)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &envelope, nil
}

// API Methods

func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, "GET", "/health", nil)
	return err
}

func (c *Client) ListGames(ctx context.Context) (*core.Response, error) {
	return c.doRequest(ctx, "GET", "/api/v1/games", nil)
}

func (c *Client) GetGame(ctx context.Context, gameID string) (*core.Response, error) {
	return c.doRequest(ctx, "GET", "/api/v1/games/"+gameID, nil)
}

func (c *Client) CreateGame(ctx context.Context, in core.GameInput) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/games", in)
}

func (c *Client) UpdateGame(ctx context.Context, gameID string, in core.GameUpdate) (*core.Response, error) {
	return c.doRequest(ctx, "PUT", "/api/v1/games/"+gameID, in)
}

func (c *Client) DeleteGame(ctx context.Context, gameID string) (*core.Response, error) {
	return c.doRequest(ctx, "DELETE", "/api/v1/games/"+gameID, nil)
}

func (c *Client) ListCards(ctx context.Context, gameID string, params core.CardListParams) (*core.Response, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Rarity != "" {
		q.Set("rarity", params.Rarity)
	}
	path := "/api/v1/games/" + gameID + "/cards"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.doRequest(ctx, "GET", path, nil)
}

func (c *Client) GetCard(ctx context.Context, cardID string) (*core.Response, error) {
	return c.doRequest(ctx, "GET", "/api/v1/cards/"+cardID, nil)
}

func (c *Client) CreateCard(ctx context.Context, gameID string, in core.CardInput) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/games/"+gameID+"/cards", in)
}

func (c *Client) UpdateCard(ctx context.Context, cardID string, in core.CardUpdate) (*core.Response, error) {
	return c.doRequest(ctx, "PUT", "/api/v1/cards/"+cardID, in)
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) (*core.Response, error) {
	return c.doRequest(ctx, "DELETE", "/api/v1/cards/"+cardID, nil)
}

func (c *Client) DeleteCards(ctx context.Context, cardIDs []string) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/cards/bulk-delete", core.BulkDeleteInput{CardIDs: cardIDs})
}

func (c *Client) ListDecks(ctx context.Context, gameID string, params core.DeckListParams) (*core.Response, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	path := "/api/v1/games/" + gameID + "/decks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.doRequest(ctx, "GET", path, nil)
}

func (c *Client) GetDeck(ctx context.Context, deckID string) (*core.Response, error) {
	return c.doRequest(ctx, "GET", "/api/v1/decks/"+deckID, nil)
}

func (c *Client) CreateDeck(ctx context.Context, gameID string, in core.DeckInput) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/games/"+gameID+"/decks", in)
}

func (c *Client) UpdateDeck(ctx context.Context, deckID string, in core.DeckUpdate) (*core.Response, error) {
	return c.doRequest(ctx, "PUT", "/api/v1/decks/"+deckID, in)
}

func (c *Client) DeleteDeck(ctx context.Context, deckID string) (*core.Response, error) {
	return c.doRequest(ctx, "DELETE", "/api/v1/decks/"+deckID, nil)
}

func (c *Client) ExportDeck(ctx context.Context, deckID, format string) (*core.Response, error) {
	path := "/api/v1/decks/" + deckID + "/export"
	if format != "" {
		path += "?format=" + url.QueryEscape(format)
	}
	return c.doRequest(ctx, "GET", path, nil)
}

func (c *Client) ImportDeck(ctx context.Context, gameID string, payload json.RawMessage) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/games/"+gameID+"/decks/import", payload)
}

func (c *Client) Reset(ctx context.Context) (*core.Response, error) {
	return c.doRequest(ctx, "POST", "/api/v1/reset", nil)
}

// RawRequest sends an arbitrary request and dumps the exchange,
// regardless of the verbose setting.
func (c *Client) RawRequest(ctx context.Context, method, path, body string) error {
	var payload any
	if body != "" {
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	verbose := c.Verbose
	c.Verbose = true
	defer func() { c.Verbose = verbose }()

	_, err := c.doRequest(ctx, method, path, payload)
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		fmt.Println(statusErr.Body)
		return nil
	}
	return err
}
