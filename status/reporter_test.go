package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"drive-relay/domain"
	errs "drive-relay/errors"
	"drive-relay/mocks"
)

func TestReporter(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	trigger := domain.MessageRef{Channel: 100, ID: 42}
	statusRef := domain.MessageRef{Channel: 100, ID: 43}

	t.Run("Creation sends the anchored initial body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)

		chatMock.EXPECT().
			Send(gomock.Any(), trigger, "[Status:](https://t.me/c/100/42)\nIn progress...").
			Return(statusRef, nil)

		reporter, err := NewReporter(context.Background(), chatMock, trigger, logger)
		req.NoError(err)
		req.Equal("In progress...", reporter.Status())
	})

	t.Run("Finish edits to Done and keeps messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)

		chatMock.EXPECT().Send(gomock.Any(), trigger, gomock.Any()).Return(statusRef, nil)
		chatMock.EXPECT().
			Edit(gomock.Any(), statusRef, "[Status:](https://t.me/c/100/42)\nDone.").
			Return(nil)

		reporter, err := NewReporter(context.Background(), chatMock, trigger, logger)
		req.NoError(err)
		req.NoError(reporter.Finish(context.Background(), false))
	})

	t.Run("Finish with auto delete removes both messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)

		chatMock.EXPECT().Send(gomock.Any(), trigger, gomock.Any()).Return(statusRef, nil)
		chatMock.EXPECT().Edit(gomock.Any(), statusRef, gomock.Any()).Return(nil)
		chatMock.EXPECT().Delete(gomock.Any(), trigger).Return(nil)
		chatMock.EXPECT().Delete(gomock.Any(), statusRef).Return(nil)

		reporter, err := NewReporter(context.Background(), chatMock, trigger, logger)
		req.NoError(err)
		req.NoError(reporter.Finish(context.Background(), true))
	})

	t.Run("Missing delete permission is explained to the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)

		chatMock.EXPECT().Send(gomock.Any(), trigger, gomock.Any()).Return(statusRef, nil)
		chatMock.EXPECT().Edit(gomock.Any(), statusRef, gomock.Any()).Return(nil)
		chatMock.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: no rights", errs.ErrDeleteForbidden)).
			Times(2)
		chatMock.EXPECT().
			Reply(gomock.Any(), trigger, deleteForbiddenRes).
			Return(domain.MessageRef{}, nil).
			Times(2)

		reporter, err := NewReporter(context.Background(), chatMock, trigger, logger)
		req.NoError(err)
		req.NoError(reporter.Finish(context.Background(), true))
	})

	t.Run("ReportError replies to the triggering message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		chatMock := mocks.NewMockIChatClient(ctrl)

		chatMock.EXPECT().Send(gomock.Any(), trigger, gomock.Any()).Return(statusRef, nil)

		report := domain.ErrorReport{Err: "boom"}
		chatMock.EXPECT().
			Reply(gomock.Any(), trigger, report.Render()).
			Return(domain.MessageRef{}, nil)

		reporter, err := NewReporter(context.Background(), chatMock, trigger, logger)
		req.NoError(err)
		req.NoError(reporter.ReportError(context.Background(), report))
		req.Equal("In progress...", reporter.Status(), "error report must not touch the status line")
	})
}
