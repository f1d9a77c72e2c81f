//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=../mocks/mock_runner.go -package=mocks

package runtime

import (
	"context"
	"log/slog"
	"sync"

	"drive-relay/domain"
)

// ITransfer is the single entry point of the transfer pipeline.
type ITransfer interface {
	Transfer(ctx context.Context, job domain.Job) error
}

// Runner executes jobs as independent goroutines. Jobs share the one chat
// client and one uploader connection and nothing else; a bounded
// semaphore caps how many run at once.
type Runner struct {
	orchestrator ITransfer
	sem          chan struct{}
	wg           sync.WaitGroup
	log          *slog.Logger
}

func NewRunner(orchestrator ITransfer, maxConcurrent int, log *slog.Logger) *Runner {
	return &Runner{
		orchestrator: orchestrator,
		sem:          make(chan struct{}, maxConcurrent),
		log:          log,
	}
}

// Dispatch starts a job on its own goroutine and returns immediately. A
// panicking job is contained here; it must not take down its siblings.
func (r *Runner) Dispatch(ctx context.Context, job domain.Job) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("job panicked", "job", job.ID, "recovered", rec)
			}
		}()

		select {
		case r.sem <- struct{}{}:
			defer func() { <-r.sem }()
		case <-ctx.Done():
			return
		}

		if err := r.orchestrator.Transfer(ctx, job); err != nil {
			r.log.Error("transfer failed", "job", job.ID, "error", err)
		}
	}()
}

// Wait blocks until every dispatched job has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
