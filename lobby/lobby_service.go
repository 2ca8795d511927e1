package lobby

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type LobbyRepository interface {
	GetLobbies(ctx context.Context) ([]Lobby, error)
	GetLobbyByID(ctx context.Context, id string) (Lobby, error)
	InsertLobby(ctx context.Context, l Lobby, creator Member) (Lobby, error)
	AddParticipant(ctx context.Context, lobbyID string, m Member) error
	RemoveParticipant(ctx context.Context, lobbyID, userID string) error
	DeleteLobby(ctx context.Context, lobbyID string) error
}

type Service struct {
	repo   LobbyRepository
	logger *slog.Logger
}

func NewService(repo LobbyRepository) *Service {
	return &Service{
		repo:   repo,
		logger: slog.Default().With("component", "lobby-service"),
	}
}

func (s *Service) GetLobbies(ctx context.Context) ([]Lobby, error) {
	return s.repo.GetLobbies(ctx)
}

func (s *Service) FindLobbyByID(ctx context.Context, id string) (Lobby, error) {
	if len(strings.TrimSpace(id)) == 0 {
		return Lobby{}, fmt.Errorf("%w: lobby id cannot be empty", ErrInvalidArgument)
	}

	return s.repo.GetLobbyByID(ctx, id)
}

func (s *Service) CreateLobby(ctx context.Context, l Lobby, creator Member) (Lobby, error) {
	if len(strings.TrimSpace(l.SportName)) == 0 {
		return Lobby{}, fmt.Errorf("%w: sport name cannot be empty", ErrInvalidArgument)
	}

	if len(strings.TrimSpace(l.Location)) == 0 {
		return Lobby{}, fmt.Errorf("%w: location cannot be empty", ErrInvalidArgument)
	}

	if l.MaxPlayers <= 0 {
		return Lobby{}, fmt.Errorf("%w: maxPlayers must be positive", ErrInvalidArgument)
	}

	if l.ScheduledAt.IsZero() {
		return Lobby{}, fmt.Errorf("%w: scheduled date is required", ErrInvalidArgument)
	}

	inserted, err := s.repo.InsertLobby(ctx, l, creator)

	if err == nil {
		s.logger.Info("lobby created", "lobbyId", inserted.ID, "sport", inserted.SportName)
	}

	return inserted, err
}

func (s *Service) JoinLobby(ctx context.Context, id string, m Member) error {
	if len(strings.TrimSpace(id)) == 0 {
		return fmt.Errorf("%w: lobby id cannot be empty", ErrInvalidArgument)
	}

	err := s.repo.AddParticipant(ctx, id, m)

	if err == nil {
		s.logger.Info("user joined lobby", "lobbyId", id, "userId", m.UserID)
	}

	return err
}

// LeaveLobby removes the caller from a lobby. If the caller created the
// lobby, the whole lobby is deleted instead and deleted reports true.
func (s *Service) LeaveLobby(ctx context.Context, id string, m Member) (deleted bool, err error) {
	if len(strings.TrimSpace(id)) == 0 {
		return false, fmt.Errorf("%w: lobby id cannot be empty", ErrInvalidArgument)
	}

	l, err := s.repo.GetLobbyByID(ctx, id)

	if err != nil {
		return false, err
	}

	if m.Email != "" && m.Email == l.CreatorEmail {
		if err := s.repo.DeleteLobby(ctx, id); err != nil {
			return false, err
		}

		s.logger.Info("creator left, lobby deleted", "lobbyId", id, "userId", m.UserID)
		return true, nil
	}

	if err := s.repo.RemoveParticipant(ctx, id, m.UserID); err != nil {
		return false, err
	}

	s.logger.Info("user left lobby", "lobbyId", id, "userId", m.UserID)
	return false, nil
}
