package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matchup-app/matchup-backend/auth"
	"github.com/matchup-app/matchup-backend/client"
	lb "github.com/matchup-app/matchup-backend/lobby"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, user client.User) string {
	t.Helper()

	claims := auth.Claims{UserID: user.ID, Email: user.Email, Nickname: user.Nickname}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.Nil(t, err)

	return token
}

func authedIdentity(t *testing.T, user client.User) *client.TokenIdentity {
	t.Helper()

	identity := client.NewTokenIdentity()
	identity.SetToken(signedToken(t, user))

	return identity
}

func TestGatewayGetByID(t *testing.T) {
	lobby := lobbyWith(userA, userB)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/lobbies/lobby-1", r.URL.Path)
		json.NewEncoder(w).Encode(lobby)
	}))
	defer server.Close()

	gateway := client.NewHTTPGateway(server.URL, client.NewTokenIdentity())

	got, err := gateway.GetByID(context.Background(), "lobby-1")

	require.Nil(t, err)
	assert.Equal(t, lobby.ID, got.ID)
	assert.Equal(t, len(got.Participants), got.JoinedPlayers)
}

func TestGatewayListAll(t *testing.T) {
	lobbies := []lb.Lobby{lobbyWith(userA), lobbyWith(userA, userB)}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lobbies", r.URL.Path)
		json.NewEncoder(w).Encode(lobbies)
	}))
	defer server.Close()

	gateway := client.NewHTTPGateway(server.URL, client.NewTokenIdentity())

	got, err := gateway.ListAll(context.Background())

	require.Nil(t, err)
	assert.Equal(t, 2, len(got))
}

func TestGatewayJoin(t *testing.T) {

	t.Run("sends bearer credential", func(t *testing.T) {
		token := signedToken(t, userB)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/lobbies/lobby-1/join", r.URL.Path)
			assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]string{"message": "joined lobby"})
		}))
		defer server.Close()

		identity := client.NewTokenIdentity()
		identity.SetToken(token)
		gateway := client.NewHTTPGateway(server.URL, identity)

		require.Nil(t, gateway.Join(context.Background(), "lobby-1"))
	})

	t.Run("no credential fails locally without a request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be sent")
		}))
		defer server.Close()

		gateway := client.NewHTTPGateway(server.URL, client.NewTokenIdentity())

		err := gateway.Join(context.Background(), "lobby-1")

		require.ErrorIs(t, err, lb.ErrUnauthenticated)
	})

	t.Run("coded error payloads map to sentinels", func(t *testing.T) {
		cases := []struct {
			status int
			code   string
			want   error
		}{
			{http.StatusBadRequest, lb.CodeLobbyFull, lb.ErrLobbyFull},
			{http.StatusBadRequest, lb.CodeAlreadyJoined, lb.ErrAlreadyJoined},
			{http.StatusNotFound, lb.CodeLobbyNotFound, lb.ErrLobbyNotFound},
		}

		for _, c := range cases {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				json.NewEncoder(w).Encode(map[string]string{"error": "opaque wording", "code": c.code})
			}))

			gateway := client.NewHTTPGateway(server.URL, authedIdentity(t, userB))

			err := gateway.Join(context.Background(), "lobby-1")

			require.ErrorIs(t, err, c.want)
			server.Close()
		}
	})
}

func TestGatewayLeave(t *testing.T) {

	t.Run("not a participant maps to sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "DELETE", r.Method)
			assert.Equal(t, "/lobbies/lobby-1/leave", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "not a participant of this lobby", "code": lb.CodeNotAParticipant})
		}))
		defer server.Close()

		gateway := client.NewHTTPGateway(server.URL, authedIdentity(t, userB))

		err := gateway.Leave(context.Background(), "lobby-1")

		require.ErrorIs(t, err, lb.ErrNotAParticipant)
	})

	t.Run("plain 404 maps to not found without a code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		gateway := client.NewHTTPGateway(server.URL, authedIdentity(t, userB))

		err := gateway.Leave(context.Background(), "lobby-1")

		require.ErrorIs(t, err, lb.ErrLobbyNotFound)
	})
}

func TestGatewayTransientFailures(t *testing.T) {

	t.Run("server errors are transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		gateway := client.NewHTTPGateway(server.URL, client.NewTokenIdentity())

		_, err := gateway.GetByID(context.Background(), "lobby-1")

		require.ErrorIs(t, err, lb.ErrTransient)
	})

	t.Run("unreachable host is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		gateway := client.NewHTTPGateway(server.URL, client.NewTokenIdentity())

		_, err := gateway.GetByID(context.Background(), "lobby-1")

		require.ErrorIs(t, err, lb.ErrTransient)
	})
}

func TestGatewayCreate(t *testing.T) {
	scheduledAt := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/lobbies", r.URL.Path)

		var spec client.CreateLobby
		require.Nil(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, "football", spec.SportName)

		created := lobbyWith(userA)
		created.ScheduledAt = spec.ScheduledAt
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer server.Close()

	gateway := client.NewHTTPGateway(server.URL, authedIdentity(t, userA))

	created, err := gateway.Create(context.Background(), client.CreateLobby{
		SportName:   "football",
		Location:    "Riverside Park",
		ScheduledAt: scheduledAt,
		MaxPlayers:  2,
	})

	require.Nil(t, err)
	assert.Equal(t, 1, created.JoinedPlayers)
	assert.Equal(t, userA.Email, created.CreatorEmail)
}
