package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

type AuthRepository interface {
	InsertUser(ctx context.Context, u User) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type Service struct {
	repo     AuthRepository
	secret   []byte
	tokenTTL time.Duration
	verified *cache.Cache
}

func NewService(repo AuthRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		verified: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (s *Service) Register(ctx context.Context, email, nickname, password string) (User, error) {
	email = strings.TrimSpace(email)

	if len(email) == 0 || len(strings.TrimSpace(nickname)) == 0 || len(password) == 0 {
		return User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.InsertUser(ctx, User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hash),
	})
}

func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))

	if errors.Is(err, ErrUserNotFound) {
		return "", User{}, ErrInvalidCredentials
	}

	if err != nil {
		return "", User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)

	if err != nil {
		return "", User{}, err
	}

	return token, user, nil
}

func (s *Service) issueToken(user User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)

	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a bearer token and returns its claims. Results are
// cached briefly so a burst of requests with the same token does not pay
// for repeated signature checks.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	cached, found := s.verified.Get(tokenString)

	if found {
		return cached.(*Claims), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)

	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	s.verified.Set(tokenString, claims, cache.DefaultExpiration)

	return claims, nil
}
