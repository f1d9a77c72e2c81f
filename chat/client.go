//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_chat_client.go -package=mocks

// Package chat defines the chat-side contract and its Telegram adapter.
package chat

import (
	"context"
	"io"

	"drive-relay/domain"
)

// IChatClient is the narrow surface the relay needs from the chat backend.
// It is shared by all concurrently running jobs and must be safe for
// concurrent use.
//
// Edit treats an edit that would produce identical content as a success:
// the backend rejects such edits and the adapter swallows the rejection.
// Delete reports a missing permission as ErrDeleteForbidden.
type IChatClient interface {
	Send(ctx context.Context, to domain.MessageRef, text string) (domain.MessageRef, error)
	Reply(ctx context.Context, to domain.MessageRef, text string) (domain.MessageRef, error)
	Edit(ctx context.Context, msg domain.MessageRef, text string) error
	Delete(ctx context.Context, msg domain.MessageRef) error
	Me(ctx context.Context) (string, error)
	Message(ctx context.Context, ref domain.MessageRef, via domain.ChannelID) (domain.IncomingMessage, error)
	OpenDocument(ctx context.Context, doc domain.Document) (io.ReadCloser, error)
	NextUpdates(ctx context.Context) ([]domain.IncomingMessage, error)
}
