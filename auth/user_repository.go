package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UserRepository struct{ conn *pgx.Conn }

func NewUserRepository(conn *pgx.Conn) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) InsertUser(ctx context.Context, u User) (User, error) {
	u.ID = uuid.NewString()

	sql := `
			INSERT INTO matchup.users(id, email, nickname, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql, u.ID, u.Email, u.Nickname, u.PasswordHash).Scan(&u.CreatedAt)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `
			SELECT id, email, nickname, password_hash, created_at
			FROM matchup.users
			WHERE email=$1;
		`

	var u User
	err := r.conn.QueryRow(ctx, sql, email).Scan(&u.ID, &u.Email, &u.Nickname, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", email, err)
	}

	return u, nil
}
