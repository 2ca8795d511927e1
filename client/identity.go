package client

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/matchup-app/matchup-backend/auth"
)

// User is the device user's identity as far as the client core needs it.
// All fields may be empty when the user is anonymous or the stored token
// carries no usable claims.
type User struct {
	ID       string
	Email    string
	Nickname string
}

// Identity exposes the current user and bearer credential.
type Identity interface {
	Current() User
	Credential() (token string, ok bool)
}

// TokenIdentity derives the user identity from the bearer token the device
// holds. The token is decoded without signature verification: the server
// remains the authority, the claims are only used to compare against
// participant lists.
type TokenIdentity struct {
	mu    sync.RWMutex
	token string
	user  User
}

func NewTokenIdentity() *TokenIdentity {
	return &TokenIdentity{}
}

// SetToken installs a new credential, replacing any previous one.
func (t *TokenIdentity) SetToken(token string) {
	user := User{}

	claims := &auth.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)

	if err == nil {
		user = User{
			ID:       claims.UserID,
			Email:    claims.Email,
			Nickname: claims.Nickname,
		}
	}

	t.mu.Lock()
	t.token = token
	t.user = user
	t.mu.Unlock()
}

// Clear drops the credential, making the identity anonymous.
func (t *TokenIdentity) Clear() {
	t.mu.Lock()
	t.token = ""
	t.user = User{}
	t.mu.Unlock()
}

func (t *TokenIdentity) Current() User {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.user
}

func (t *TokenIdentity) Credential() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token, len(t.token) != 0
}
