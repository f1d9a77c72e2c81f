package runtime

import (
	"context"
	"log/slog"

	"drive-relay/chat"
	"drive-relay/contract"
	"drive-relay/domain"
)

// messageHandler matches services.IRelayService without importing it;
// runtime stays free of service dependencies.
type messageHandler interface {
	HandleMessage(ctx context.Context, msg domain.IncomingMessage)
}

var _ contract.Worker = (*ListenerWorker)(nil)

// ListenerWorker long-polls the chat backend and feeds every incoming
// message to the relay service. It runs supervised; a transport error
// ends Run and the supervisor restarts it.
type ListenerWorker struct {
	chat    chat.IChatClient
	handler messageHandler
	log     *slog.Logger
}

func NewListenerWorker(chatClient chat.IChatClient, handler messageHandler, log *slog.Logger) *ListenerWorker {
	return &ListenerWorker{
		chat:    chatClient,
		handler: handler,
		log:     log,
	}
}

func (w *ListenerWorker) Run(ctx context.Context) error {
	w.log.Info("Listening for updates")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping update listener")
			return nil
		default:
		}

		messages, err := w.chat.NextUpdates(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		for _, msg := range messages {
			w.handler.HandleMessage(ctx, msg)
		}
	}
}
