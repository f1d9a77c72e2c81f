package status

import (
	"context"
	"fmt"
	"log/slog"

	"drive-relay/domain"
)

const progressTemplate = "Uploaded %.2fMB out of %.2fMB: %.2f%%"

// Tracker is the progress hook handed to the upload transport. The
// transport may not tolerate a failure escaping its progress callback, so
// OnProgress never panics and never returns an error.
type Tracker struct {
	reporter *Reporter
	log      *slog.Logger
}

func NewTracker(reporter *Reporter, log *slog.Logger) *Tracker {
	return &Tracker{
		reporter: reporter,
		log:      log,
	}
}

// OnProgress converts the byte counters to megabytes, formats the status
// line and forces a re-render. Invoked at least once per uploaded chunk
// with cumulative counters.
func (t *Tracker) OnProgress(ctx context.Context, current, total int64) {
	defer func() {
		if rec := recover(); rec != nil {
			t.log.Error("progress callback panicked", "recovered", rec)
		}
	}()

	if total <= 0 {
		t.log.Error("progress callback received a non-positive total", "total", total)
		return
	}

	currentMB := float64(current) / domain.MB
	totalMB := float64(total) / domain.MB
	t.reporter.SetStatus(fmt.Sprintf(progressTemplate, currentMB, totalMB, currentMB/totalMB*100))
	t.log.Debug(t.reporter.Status())

	if err := t.reporter.Update(ctx); err != nil {
		t.log.Error("failed to render progress", "error", err)
	}
}
