package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims is the payload carried by the bearer tokens this service issues.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already registered")

var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrInvalidToken = errors.New("invalid or expired token")
