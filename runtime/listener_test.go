package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"drive-relay/domain"
	"drive-relay/mocks"
)

func TestListenerWorker_Run(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Messages reach the handler until shutdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)
		handlerMock := mocks.NewMockIRelayService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())

		msg := domain.IncomingMessage{Ref: domain.MessageRef{Channel: 100, ID: 42}, Text: "/help"}
		chatMock.EXPECT().NextUpdates(gomock.Any()).
			Return([]domain.IncomingMessage{msg}, nil)
		handlerMock.EXPECT().HandleMessage(gomock.Any(), msg)
		chatMock.EXPECT().NextUpdates(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]domain.IncomingMessage, error) {
				cancel()
				return nil, ctx.Err()
			})

		worker := NewListenerWorker(chatMock, handlerMock, logger)
		req.NoError(worker.Run(ctx))
	})

	t.Run("A transport failure ends the run for the supervisor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)
		handlerMock := mocks.NewMockIRelayService(ctrl)

		pollErr := fmt.Errorf("long poll failed")
		chatMock.EXPECT().NextUpdates(gomock.Any()).Return(nil, pollErr)

		worker := NewListenerWorker(chatMock, handlerMock, logger)
		req.ErrorIs(worker.Run(context.Background()), pollErr)
	})
}
