package client

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
	lb "github.com/matchup-app/matchup-backend/lobby"
)

// Cache mirrors the lobbies the device user has joined, keyed by lobby id,
// for offline display. It is never the system of record: on any divergence
// the remote fetch wins and entries here are overwritten to match.
type Cache interface {
	Upsert(ctx context.Context, l lb.Lobby) error
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (lb.Lobby, bool, error)
	GetAll(ctx context.Context) ([]lb.Lobby, error)
	// Stream delivers the current snapshot immediately and a fresh one
	// after every mutation, until ctx is done.
	Stream(ctx context.Context) <-chan []lb.Lobby
}

// Store is an in-memory Cache. Entries never expire; last write wins
// per id.
type Store struct {
	entries *cache.Cache

	mu   sync.Mutex
	subs map[chan []lb.Lobby]struct{}
}

func NewStore() *Store {
	return &Store{
		entries: cache.New(cache.NoExpiration, 0),
		subs:    map[chan []lb.Lobby]struct{}{},
	}
}

func (s *Store) Upsert(ctx context.Context, l lb.Lobby) error {
	s.entries.Set(l.ID, l, cache.NoExpiration)
	s.broadcast()
	return nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	s.entries.Delete(id)
	s.broadcast()
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (lb.Lobby, bool, error) {
	entry, found := s.entries.Get(id)

	if !found {
		return lb.Lobby{}, false, nil
	}

	return entry.(lb.Lobby), true, nil
}

func (s *Store) GetAll(ctx context.Context) ([]lb.Lobby, error) {
	return s.snapshot(), nil
}

func (s *Store) Stream(ctx context.Context) <-chan []lb.Lobby {
	ch := make(chan []lb.Lobby, 1)
	ch <- s.snapshot()

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Store) snapshot() []lb.Lobby {
	items := s.entries.Items()
	lobbies := make([]lb.Lobby, 0, len(items))

	for _, item := range items {
		lobbies = append(lobbies, item.Object.(lb.Lobby))
	}

	slices.SortFunc(lobbies, func(a, b lb.Lobby) int {
		if c := a.ScheduledAt.Compare(b.ScheduledAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return lobbies
}

func (s *Store) broadcast() {
	snap := s.snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subs {
		// Drop the stale pending snapshot if the subscriber is slow.
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snap:
		default:
		}
	}
}
