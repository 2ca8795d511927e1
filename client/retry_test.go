package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/matchup-app/matchup-backend/client"
	cl_mocks "github.com/matchup-app/matchup-backend/client/mocks"
	lb "github.com/matchup-app/matchup-backend/lobby"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRetryGateway(t *testing.T) {
	ctx := context.Background()
	transient := fmt.Errorf("%w: connection reset", lb.ErrTransient)

	t.Run("transient failures are retried until success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		next := cl_mocks.NewMockGateway(ctrl)
		gomock.InOrder(
			next.EXPECT().GetByID(ctx, "lobby-1").Return(lb.Lobby{}, transient),
			next.EXPECT().GetByID(ctx, "lobby-1").Return(lobbyWith(userA), nil),
		)

		gateway := client.NewRetryGateway(next, 3, time.Millisecond)

		got, err := gateway.GetByID(ctx, "lobby-1")

		require.Nil(t, err)
		require.Equal(t, "lobby-1", got.ID)
	})

	t.Run("budget exhaustion returns the last transient error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		next := cl_mocks.NewMockGateway(ctrl)
		next.EXPECT().Join(ctx, "lobby-1").Return(transient).Times(3)

		gateway := client.NewRetryGateway(next, 3, time.Millisecond)

		err := gateway.Join(ctx, "lobby-1")

		require.ErrorIs(t, err, lb.ErrTransient)
	})

	t.Run("non-transient errors pass through without a retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		next := cl_mocks.NewMockGateway(ctrl)
		next.EXPECT().Join(ctx, "lobby-1").Return(lb.ErrAlreadyJoined).Times(1)

		gateway := client.NewRetryGateway(next, 3, time.Millisecond)

		err := gateway.Join(ctx, "lobby-1")

		require.ErrorIs(t, err, lb.ErrAlreadyJoined)
	})

	t.Run("cancelled context stops the backoff wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cancelCtx, cancel := context.WithCancel(context.Background())

		next := cl_mocks.NewMockGateway(ctrl)
		next.EXPECT().Leave(cancelCtx, "lobby-1").DoAndReturn(func(context.Context, string) error {
			cancel()
			return transient
		}).Times(1)

		gateway := client.NewRetryGateway(next, 3, time.Minute)

		err := gateway.Leave(cancelCtx, "lobby-1")

		require.ErrorIs(t, err, context.Canceled)
	})
}
