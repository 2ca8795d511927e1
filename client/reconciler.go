package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	lb "github.com/matchup-app/matchup-backend/lobby"
)

// Details is a lobby together with the device user's relationship to it.
// IsJoined and IsCreator are recomputed on every fetch from the freshly
// fetched participants list, never persisted. Gone reports that the lobby
// no longer exists remotely, which after a creator leave is the expected
// outcome rather than an error.
type Details struct {
	Lobby     lb.Lobby
	IsJoined  bool
	IsCreator bool
	Gone      bool
}

// Reconciler resolves the device user's membership of a lobby and performs
// join/leave, keeping the local cache eventually consistent with the
// remote. The remote is the source of truth: within one call the remote
// operation is always observed before any cache mutation, and on any
// divergence the remote wins unconditionally.
type Reconciler struct {
	gateway  Gateway
	cache    Cache
	identity Identity
	logger   *slog.Logger
}

func NewReconciler(gateway Gateway, cache Cache, identity Identity) *Reconciler {
	return &Reconciler{
		gateway:  gateway,
		cache:    cache,
		identity: identity,
		logger:   slog.Default().With("component", "lobby-reconciler"),
	}
}

// LoadDetails fetches the authoritative lobby record and computes the
// membership flags for the current user. It is a pure read: the cache is
// consulted only when identity has neither id nor email (offline degraded
// path) and is never written to.
func (r *Reconciler) LoadDetails(ctx context.Context, lobbyID string) (Details, error) {
	if len(strings.TrimSpace(lobbyID)) == 0 {
		return Details{}, fmt.Errorf("%w: lobby id cannot be empty", lb.ErrInvalidArgument)
	}

	lobby, err := r.gateway.GetByID(ctx, lobbyID)

	if err != nil {
		return Details{}, err
	}

	user := r.identity.Current()
	isJoined, isCreator := membership(lobby, user)

	if user.ID == "" && user.Email == "" {
		_, cached, cacheErr := r.cache.GetByID(ctx, lobbyID)

		if cacheErr != nil {
			r.logger.Warn("cache lookup failed", "lobbyId", lobbyID, "err", cacheErr)
		}

		isJoined = cached
	}

	return Details{Lobby: lobby, IsJoined: isJoined, IsCreator: isCreator}, nil
}

// Join adds the current user to a lobby. The remote join runs first; only
// after it succeeds is the lobby mirrored into the cache, so the cache can
// never claim "joined" for a join the server rejected. A cache write
// failure does not fail the operation. A remote ErrAlreadyJoined is a
// synchronization signal, not a failure: the state is reloaded and
// reported as success.
func (r *Reconciler) Join(ctx context.Context, lobby lb.Lobby) (Details, error) {
	if len(strings.TrimSpace(lobby.ID)) == 0 {
		return Details{}, fmt.Errorf("%w: lobby id cannot be empty", lb.ErrInvalidArgument)
	}

	err := r.gateway.Join(ctx, lobby.ID)

	if err != nil && !errors.Is(err, lb.ErrAlreadyJoined) {
		return Details{}, err
	}

	if err == nil {
		r.upsertBestEffort(ctx, lobby)
	}

	details, loadErr := r.LoadDetails(ctx, lobby.ID)

	if loadErr != nil {
		return Details{}, loadErr
	}

	r.upsertBestEffort(ctx, details.Lobby)

	return details, nil
}

// Leave removes the current user from a lobby, or deletes the lobby
// entirely when the user is its creator (server-side semantics). The
// remote leave runs first; on success the cache entry is removed
// unconditionally and the lobby is re-fetched to reconcile. A re-fetch
// that reports the lobby gone is the normal creator-leave outcome.
// ErrNotAParticipant and ErrLobbyNotFound from the remote mean local state
// was stale: the cache entry is dropped and the call reports success.
func (r *Reconciler) Leave(ctx context.Context, lobbyID string) (Details, error) {
	if len(strings.TrimSpace(lobbyID)) == 0 {
		return Details{}, fmt.Errorf("%w: lobby id cannot be empty", lb.ErrInvalidArgument)
	}

	err := r.gateway.Leave(ctx, lobbyID)

	if err != nil && !errors.Is(err, lb.ErrNotAParticipant) && !errors.Is(err, lb.ErrLobbyNotFound) {
		return Details{}, err
	}

	return r.afterLeave(ctx, lobbyID), nil
}

// afterLeave reconciles local state once the remote has confirmed (or
// already reflected) the leave. The leave itself already succeeded, so
// reload failures degrade the result instead of failing the call.
func (r *Reconciler) afterLeave(ctx context.Context, lobbyID string) Details {
	if err := r.cache.DeleteByID(ctx, lobbyID); err != nil {
		r.logger.Warn("failed to remove lobby from cache", "lobbyId", lobbyID, "err", err)
	}

	details, err := r.LoadDetails(ctx, lobbyID)

	if errors.Is(err, lb.ErrLobbyNotFound) {
		return Details{Lobby: lb.Lobby{ID: lobbyID}, Gone: true}
	}

	if err != nil {
		r.logger.Warn("failed to reload lobby after leave", "lobbyId", lobbyID, "err", err)
		return Details{Lobby: lb.Lobby{ID: lobbyID}}
	}

	details.IsJoined = false

	return details
}

func (r *Reconciler) upsertBestEffort(ctx context.Context, lobby lb.Lobby) {
	if err := r.cache.Upsert(ctx, lobby); err != nil {
		r.logger.Warn("failed to mirror lobby into cache", "lobbyId", lobby.ID, "err", err)
	}
}

// membership computes the derived flags from a freshly fetched lobby.
// Participant match is by user id first, email as fallback; creator match
// is an exact email comparison.
func membership(lobby lb.Lobby, user User) (isJoined, isCreator bool) {
	isCreator = user.Email != "" && lobby.CreatorEmail != "" && user.Email == lobby.CreatorEmail

	for _, p := range lobby.Participants {
		if user.ID != "" && p.UserID == user.ID {
			return true, isCreator
		}

		if user.Email != "" && p.Email == user.Email {
			return true, isCreator
		}
	}

	return false, isCreator
}
