package client

import (
	"context"
	"errors"
	"time"

	lb "github.com/matchup-app/matchup-backend/lobby"
)

// RetryGateway decorates a Gateway with a fixed retry budget for transient
// failures. Every other error kind passes through untouched, so the
// reconciler's idempotence handling is unaffected.
type RetryGateway struct {
	next     Gateway
	attempts int
	backoff  time.Duration
}

func NewRetryGateway(next Gateway, attempts int, backoff time.Duration) *RetryGateway {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryGateway{next: next, attempts: attempts, backoff: backoff}
}

func (g *RetryGateway) ListAll(ctx context.Context) ([]lb.Lobby, error) {
	return retry(ctx, g, func() ([]lb.Lobby, error) {
		return g.next.ListAll(ctx)
	})
}

func (g *RetryGateway) GetByID(ctx context.Context, id string) (lb.Lobby, error) {
	return retry(ctx, g, func() (lb.Lobby, error) {
		return g.next.GetByID(ctx, id)
	})
}

func (g *RetryGateway) Create(ctx context.Context, spec CreateLobby) (lb.Lobby, error) {
	return retry(ctx, g, func() (lb.Lobby, error) {
		return g.next.Create(ctx, spec)
	})
}

func (g *RetryGateway) Join(ctx context.Context, id string) error {
	_, err := retry(ctx, g, func() (struct{}, error) {
		return struct{}{}, g.next.Join(ctx, id)
	})
	return err
}

func (g *RetryGateway) Leave(ctx context.Context, id string) error {
	_, err := retry(ctx, g, func() (struct{}, error) {
		return struct{}{}, g.next.Leave(ctx, id)
	})
	return err
}

func retry[T any](ctx context.Context, g *RetryGateway, op func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt < g.attempts; attempt++ {
		result, err = op()

		if err == nil || !errors.Is(err, lb.ErrTransient) {
			return result, err
		}

		if attempt == g.attempts-1 {
			break
		}

		select {
		case <-time.After(g.backoff):
		case <-ctx.Done():
			return result, ctx.Err()
		}
	}

	return result, err
}
