//go:generate go run go.uber.org/mock/mockgen -source=relay_service.go -destination=../mocks/mock_relay_service.go -package=mocks

// Package services routes incoming chat messages into transfer jobs.
package services

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"drive-relay/chat"
	"drive-relay/domain"
)

// IRelayService consumes incoming chat messages.
type IRelayService interface {
	HandleMessage(ctx context.Context, msg domain.IncomingMessage)
}

// IJobDispatcher hands a job to the runtime for concurrent execution.
type IJobDispatcher interface {
	Dispatch(ctx context.Context, job domain.Job)
}

// RelayService parses commands, applies guards and dispatches jobs. The
// heavy lifting happens in the transfer orchestrator; everything here is
// routing and simple value lookup.
type RelayService struct {
	chat       chat.IChatClient
	dispatcher IJobDispatcher
	guard      Guard
	policy     *domain.Policy
	log        *slog.Logger
}

func NewRelayService(
	chatClient chat.IChatClient,
	dispatcher IJobDispatcher,
	guard Guard,
	policy *domain.Policy,
	log *slog.Logger,
) *RelayService {
	return &RelayService{
		chat:       chatClient,
		dispatcher: dispatcher,
		guard:      guard,
		policy:     policy,
		log:        log,
	}
}

var _ IRelayService = (*RelayService)(nil)

func (s *RelayService) HandleMessage(ctx context.Context, msg domain.IncomingMessage) {
	cmd, ok := parseCommand(msg)
	if !ok {
		return
	}

	if result := s.guard(ctx, msg); !result.Allowed {
		s.respond(ctx, msg, result.Response)
		return
	}

	switch cmd := cmd.(type) {
	case domain.StartCommand:
		s.respond(ctx, msg, startRes)
	case domain.HelpCommand:
		s.respond(ctx, msg, helpRes)
	case domain.ToggleAutoDeleteCommand:
		if s.policy.ToggleAutoDelete() {
			s.respond(ctx, msg, autoDeleteOnRes)
		} else {
			s.respond(ctx, msg, autoDeleteOffRes)
		}
	case domain.UsageCommand:
		s.respond(ctx, msg, cmd.Response)
	case domain.UploadURLCommand:
		s.dispatcher.Dispatch(ctx, domain.NewJob(msg, cmd.FileURL))
	case domain.TransferDocumentCommand:
		s.dispatcher.Dispatch(ctx, domain.NewJob(msg, ""))
	case domain.TransferLinksCommand:
		s.handleLinks(ctx, cmd)
	}
}

// handleLinks fans a bounded range of sequential messages out into
// independent jobs, one status message each. Messages in the range that
// carry no file are skipped.
func (s *RelayService) handleLinks(ctx context.Context, cmd domain.TransferLinksCommand) {
	refs := lo.Times(cmd.Count, func(i int) domain.MessageRef {
		return domain.MessageRef{Channel: cmd.From.Channel, ID: cmd.From.ID + domain.MessageID(i)}
	})
	for _, ref := range refs {
		fetched, err := s.chat.Message(ctx, ref, cmd.Message.Ref.Channel)
		if err != nil {
			s.log.Error("failed to fetch linked message", "channel", ref.Channel, "id", ref.ID, "error", err)
			continue
		}
		if fetched.Document == nil {
			s.log.Debug("linked message carries no file, skipping", "channel", ref.Channel, "id", ref.ID)
			continue
		}
		// The status message must anchor to the triggering command, not
		// to the restricted source.
		fetched.Ref = cmd.Message.Ref
		s.dispatcher.Dispatch(ctx, domain.NewJob(fetched, ""))
	}
}

func (s *RelayService) respond(ctx context.Context, msg domain.IncomingMessage, text string) {
	if _, err := s.chat.Send(ctx, msg.Ref, text); err != nil {
		s.log.Error("failed to respond", "channel", msg.Ref.Channel, "error", err)
	}
}
