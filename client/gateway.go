package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lb "github.com/matchup-app/matchup-backend/lobby"
)

// CreateLobby is the payload for creating a new lobby. The server assigns
// the id and auto-joins the creator.
type CreateLobby struct {
	SportName   string    `json:"sportName"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	MaxPlayers  int       `json:"maxPlayers"`
	Description string    `json:"description,omitempty"`
}

// Gateway issues lobby operations against the authoritative server.
// Join and Leave are first-class capabilities of the contract; callers
// never need to reach for a concrete implementation.
type Gateway interface {
	ListAll(ctx context.Context) ([]lb.Lobby, error)
	GetByID(ctx context.Context, id string) (lb.Lobby, error)
	Create(ctx context.Context, spec CreateLobby) (lb.Lobby, error)
	Join(ctx context.Context, id string) error
	Leave(ctx context.Context, id string) error
}

type errorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPGateway talks to the matchup REST API and translates its coded
// error payloads into the sentinel taxonomy.
type HTTPGateway struct {
	baseURL  string
	client   *http.Client
	identity Identity
}

func NewHTTPGateway(baseURL string, identity Identity) *HTTPGateway {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &HTTPGateway{
		baseURL:  baseURL,
		client:   client,
		identity: identity,
	}
}

func (g *HTTPGateway) ListAll(ctx context.Context) ([]lb.Lobby, error) {
	var lobbies []lb.Lobby

	err := g.doJSON(ctx, "GET", nil, &lobbies, false, "lobbies")

	if err != nil {
		return nil, err
	}

	return lobbies, nil
}

func (g *HTTPGateway) GetByID(ctx context.Context, id string) (lb.Lobby, error) {
	var lobby lb.Lobby

	err := g.doJSON(ctx, "GET", nil, &lobby, false, "lobbies", id)

	if err != nil {
		return lb.Lobby{}, err
	}

	return lobby, nil
}

func (g *HTTPGateway) Create(ctx context.Context, spec CreateLobby) (lb.Lobby, error) {
	var lobby lb.Lobby

	err := g.doJSON(ctx, "POST", spec, &lobby, true, "lobbies")

	if err != nil {
		return lb.Lobby{}, err
	}

	return lobby, nil
}

func (g *HTTPGateway) Join(ctx context.Context, id string) error {
	return g.doJSON(ctx, "POST", nil, nil, true, "lobbies", id, "join")
}

func (g *HTTPGateway) Leave(ctx context.Context, id string) error {
	return g.doJSON(ctx, "DELETE", nil, nil, true, "lobbies", id, "leave")
}

// doJSON performs one request. Protected operations fail locally with
// ErrUnauthenticated before any network traffic when no credential is
// available.
func (g *HTTPGateway) doJSON(ctx context.Context, method string, body any, out any, protected bool, elem ...string) error {
	var token string

	if protected {
		var ok bool
		token, ok = g.identity.Credential()

		if !ok {
			return lb.ErrUnauthenticated
		}
	}

	reqURL, err := url.JoinPath(g.baseURL, elem...)

	if err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	var reqBody io.Reader = http.NoBody

	if body != nil {
		encoded, err := json.Marshal(body)

		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}

		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if protected {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := g.client.Do(req)

	if err != nil {
		return fmt.Errorf("%w: %v", lb.ErrTransient, err)
	}

	defer res.Body.Close()

	raw, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return g.translateError(res.StatusCode, raw, readErr)
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed reading body: %w", err)
		}
	}

	return nil
}

func (g *HTTPGateway) translateError(status int, raw []byte, readErr error) error {
	if readErr == nil {
		var payload errorPayload

		if json.Unmarshal(raw, &payload) == nil {
			if err := lb.ErrFromCode(payload.Code); err != nil {
				return err
			}
		}
	}

	switch {
	case status == http.StatusNotFound:
		return lb.ErrLobbyNotFound
	case status == http.StatusUnauthorized:
		return lb.ErrUnauthenticated
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: server returned status %d", lb.ErrTransient, status)
	default:
		return fmt.Errorf("request failed with status '%v' and body:\n%v", status, string(raw))
	}
}
