// Package status owns the single mutable chat message that represents an
// in-flight job.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"drive-relay/chat"
	"drive-relay/domain"
	errs "drive-relay/errors"
)

const (
	initialStatus  = "In progress..."
	doneStatus     = "Done."
	anchorTemplate = "[Status:](https://t.me/c/%d/%d)"

	deleteForbiddenRes = "Please set this bot as Admin, and give it ability to Delete Messages."
)

// Reporter drives the status message of one job. The underlying chat
// message is created exactly once, then only ever edited or deleted.
// A Reporter is owned by a single job and is not safe for concurrent use;
// the chunk-upload loop serializes its updates.
type Reporter struct {
	chat    chat.IChatClient
	trigger domain.MessageRef
	anchor  string
	msg     domain.MessageRef
	status  string
	log     *slog.Logger
}

// NewReporter computes the anchor link from the triggering message and
// immediately sends the initial rendered body. This send is the only
// creation point of the status message.
func NewReporter(ctx context.Context, chatClient chat.IChatClient, trigger domain.MessageRef, log *slog.Logger) (*Reporter, error) {
	r := &Reporter{
		chat:    chatClient,
		trigger: trigger,
		anchor:  fmt.Sprintf(anchorTemplate, trigger.Channel, trigger.ID),
		status:  initialStatus,
		log:     log,
	}
	msg, err := chatClient.Send(ctx, trigger, r.Body())
	if err != nil {
		return nil, fmt.Errorf("send status message failed: %w", err)
	}
	r.msg = msg
	return r, nil
}

func (r *Reporter) SetStatus(status string) {
	r.status = status
}

func (r *Reporter) Status() string {
	return r.status
}

// Body renders the message: the immutable anchor link, a newline, and the
// current status text.
func (r *Reporter) Body() string {
	return r.anchor + "\n" + r.status
}

// Update re-renders the current status into the stored message in place.
func (r *Reporter) Update(ctx context.Context) error {
	if err := r.chat.Edit(ctx, r.msg, r.Body()); err != nil {
		return fmt.Errorf("edit status message failed: %w", err)
	}
	return nil
}

// ReportError sends the report as a reply to the triggering message. The
// status line is left untouched.
func (r *Reporter) ReportError(ctx context.Context, report domain.ErrorReport) error {
	if _, err := r.chat.Reply(ctx, r.trigger, report.Render()); err != nil {
		return fmt.Errorf("reply with error report failed: %w", err)
	}
	return nil
}

// Finish commits the terminal status and, when autoDelete is on, removes
// both the status message and the triggering message.
func (r *Reporter) Finish(ctx context.Context, autoDelete bool) error {
	r.status = doneStatus
	if err := r.Update(ctx); err != nil {
		return err
	}
	if !autoDelete {
		return nil
	}
	r.delete(ctx, r.trigger)
	r.delete(ctx, r.msg)
	return nil
}

// delete removes one message. A permission failure is explained to the
// user as a reply; the job is already logically done so nothing escalates.
func (r *Reporter) delete(ctx context.Context, msg domain.MessageRef) {
	err := r.chat.Delete(ctx, msg)
	if err == nil {
		return
	}
	if errors.Is(err, errs.ErrDeleteForbidden) {
		if _, replyErr := r.chat.Reply(ctx, r.trigger, deleteForbiddenRes); replyErr != nil {
			r.log.Error("failed to report missing delete permission", "error", replyErr)
		}
		return
	}
	r.log.Error("failed to delete message", "channel", msg.Channel, "id", msg.ID, "error", err)
}
