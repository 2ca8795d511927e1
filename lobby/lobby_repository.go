package lobby

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetLobbies(ctx context.Context) ([]Lobby, error) {
	sql := `
			SELECT l.id, l.sport_name, l.location, l.latitude, l.longitude, l.scheduled_at,
			       l.max_players, l.description, l.image_url, l.creator_nickname, l.creator_email,
			       l.created_at, COUNT(p.user_id) AS joined_players
			FROM matchup.lobbies l
			LEFT JOIN matchup.lobby_participants p ON p.lobby_id = l.id
			WHERE l.scheduled_at >= $1
			GROUP BY l.id
			ORDER BY l.scheduled_at;
		`

	rows, err := r.conn.Query(ctx, sql, time.Now())

	if err != nil {
		return nil, fmt.Errorf("failed to fetch lobbies: %w", err)
	}

	defer rows.Close()

	var lobbies []Lobby

	for rows.Next() {
		var l Lobby
		err := rows.Scan(
			&l.ID,
			&l.SportName,
			&l.Location,
			&l.Latitude,
			&l.Longitude,
			&l.ScheduledAt,
			&l.MaxPlayers,
			&l.Description,
			&l.ImageURL,
			&l.CreatorNickname,
			&l.CreatorEmail,
			&l.CreatedAt,
			&l.JoinedPlayers,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning lobby row: %w", err)
		}

		lobbies = append(lobbies, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lobby rows: %w", err)
	}

	return lobbies, nil
}

func (r *Repository) GetLobbyByID(ctx context.Context, id string) (Lobby, error) {
	sql := `
			SELECT id, sport_name, location, latitude, longitude, scheduled_at,
			       max_players, description, image_url, creator_nickname, creator_email, created_at
			FROM matchup.lobbies
			WHERE id=$1;
		`

	var l Lobby
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&l.ID,
		&l.SportName,
		&l.Location,
		&l.Latitude,
		&l.Longitude,
		&l.ScheduledAt,
		&l.MaxPlayers,
		&l.Description,
		&l.ImageURL,
		&l.CreatorNickname,
		&l.CreatorEmail,
		&l.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Lobby{}, ErrLobbyNotFound
	}

	if err != nil {
		return Lobby{}, fmt.Errorf("failed to fetch lobby with id %v: %w", id, err)
	}

	participants, err := r.getParticipants(ctx, id)

	if err != nil {
		return Lobby{}, err
	}

	l.Participants = participants
	l.JoinedPlayers = len(participants)

	return l, nil
}

func (r *Repository) getParticipants(ctx context.Context, lobbyID string) ([]Participant, error) {
	sql := `
			SELECT user_id, nickname, email, joined_at
			FROM matchup.lobby_participants
			WHERE lobby_id=$1
			ORDER BY joined_at;
		`

	rows, err := r.conn.Query(ctx, sql, lobbyID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants of lobby %v: %w", lobbyID, err)
	}

	defer rows.Close()

	participants := []Participant{}

	for rows.Next() {
		var p Participant
		err := rows.Scan(&p.UserID, &p.Nickname, &p.Email, &p.JoinedAt)

		if err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}

		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return participants, nil
}

// InsertLobby persists a new lobby and adds the creator as its first
// participant in the same transaction.
func (r *Repository) InsertLobby(ctx context.Context, l Lobby, creator Member) (Lobby, error) {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return Lobby{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	l.ID = uuid.NewString()
	l.CreatorNickname = creator.Nickname
	l.CreatorEmail = creator.Email

	sql := `
			INSERT INTO matchup.lobbies(
			id, sport_name, location, latitude, longitude, scheduled_at,
			max_players, description, image_url, creator_nickname, creator_email)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at;
		`

	err = tx.QueryRow(ctx, sql,
		l.ID,
		l.SportName,
		l.Location,
		l.Latitude,
		l.Longitude,
		l.ScheduledAt,
		l.MaxPlayers,
		l.Description,
		l.ImageURL,
		l.CreatorNickname,
		l.CreatorEmail,
	).Scan(&l.CreatedAt)

	if err != nil {
		return Lobby{}, fmt.Errorf("failed to insert lobby: %w", err)
	}

	var joinedAt time.Time
	err = tx.QueryRow(ctx,
		`INSERT INTO matchup.lobby_participants(lobby_id, user_id, nickname, email)
		 VALUES ($1, $2, $3, $4) RETURNING joined_at;`,
		l.ID, creator.UserID, creator.Nickname, creator.Email,
	).Scan(&joinedAt)

	if err != nil {
		return Lobby{}, fmt.Errorf("failed to insert creator participant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Lobby{}, fmt.Errorf("failed to commit lobby insert: %w", err)
	}

	l.Participants = []Participant{{
		UserID:   creator.UserID,
		Nickname: creator.Nickname,
		Email:    creator.Email,
		JoinedAt: joinedAt,
	}}
	l.JoinedPlayers = 1

	return l, nil
}

// AddParticipant joins a user to a lobby. The lobby row is locked so the
// capacity check and the insert observe the same participant count.
func (r *Repository) AddParticipant(ctx context.Context, lobbyID string, m Member) error {
	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	var maxPlayers int
	err = tx.QueryRow(ctx,
		`SELECT max_players FROM matchup.lobbies WHERE id=$1 FOR UPDATE;`,
		lobbyID,
	).Scan(&maxPlayers)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLobbyNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to lock lobby %v: %w", lobbyID, err)
	}

	var joined int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM matchup.lobby_participants WHERE lobby_id=$1;`,
		lobbyID,
	).Scan(&joined)

	if err != nil {
		return fmt.Errorf("failed to count participants of lobby %v: %w", lobbyID, err)
	}

	if joined >= maxPlayers {
		return ErrLobbyFull
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO matchup.lobby_participants(lobby_id, user_id, nickname, email)
		 VALUES ($1, $2, $3, $4);`,
		lobbyID, m.UserID, m.Nickname, m.Email,
	)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyJoined
	}

	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit join: %w", err)
	}

	return nil
}

func (r *Repository) RemoveParticipant(ctx context.Context, lobbyID, userID string) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM matchup.lobby_participants WHERE lobby_id=$1 AND user_id=$2;`,
		lobbyID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to remove participant from lobby %v: %w", lobbyID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotAParticipant
	}

	return nil
}

// DeleteLobby removes a lobby entirely; participant rows cascade.
func (r *Repository) DeleteLobby(ctx context.Context, lobbyID string) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM matchup.lobbies WHERE id=$1;`,
		lobbyID,
	)

	if err != nil {
		return fmt.Errorf("failed to delete lobby %v: %w", lobbyID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrLobbyNotFound
	}

	return nil
}
