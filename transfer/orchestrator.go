// Package transfer implements the pipeline that moves one file from a
// chat event into the storage backend, with live progress on the job's
// status message.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"time"

	"drive-relay/chat"
	"drive-relay/domain"
	errs "drive-relay/errors"
	"drive-relay/resolve"
	"drive-relay/status"
	"drive-relay/storage"
)

// PartSize is the fixed upload segment size.
const PartSize = 2 * domain.MB

// Orchestrator ties resolver, uploader and status reporting together. One
// instance serves all jobs; per-job state lives on the stack of Transfer.
type Orchestrator struct {
	chat       chat.IChatClient
	uploader   storage.IUploader
	resolver   resolve.IResolver
	httpClient *http.Client
	policy     *domain.Policy
	destDir    string
	log        *slog.Logger
}

func NewOrchestrator(
	chatClient chat.IChatClient,
	uploader storage.IUploader,
	resolver resolve.IResolver,
	httpClient *http.Client,
	policy *domain.Policy,
	destDir string,
	log *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		chat:       chatClient,
		uploader:   uploader,
		resolver:   resolver,
		httpClient: httpClient,
		policy:     policy,
		destDir:    destDir,
		log:        log,
	}
}

// Transfer runs one job end to end. A nil return means the status message
// reached its terminal state; on failure the user has already received an
// error report reply and the returned error is for the caller's log.
func (o *Orchestrator) Transfer(ctx context.Context, job domain.Job) error {
	reporter, err := status.NewReporter(ctx, o.chat, job.Trigger.Ref, o.log)
	if err != nil {
		return err
	}
	tracker := status.NewTracker(reporter, o.log)

	source, err := o.resolveSource(ctx, job)
	if err != nil {
		o.fail(ctx, reporter, err, "")
		return err
	}

	if source.IsRemote() {
		trackingURL, err := o.uploader.UploadFromURL(ctx, source.RemoteURL, o.destPath(source.Name))
		switch {
		case err == nil:
			o.log.Info("upload by reference accepted", "job", job.ID, "name", source.Name)
			return reporter.Finish(ctx, o.policy.AutoDelete())
		case errors.Is(err, errs.ErrInvalidRemoteURL):
			o.log.Info("backend rejected remote url, retrying with local stream", "job", job.ID)
			source, err = o.openLocalStream(ctx, source)
			if err != nil {
				o.fail(ctx, reporter, err, "")
				return err
			}
		default:
			o.fail(ctx, reporter, err, trackingURL)
			return err
		}
	}
	defer source.Stream.Close()

	if err := o.uploadStream(ctx, tracker, source); err != nil {
		o.fail(ctx, reporter, err, "")
		return err
	}
	o.log.Info("transfer complete", "job", job.ID, "name", source.Name, "size", source.Size)
	return reporter.Finish(ctx, o.policy.AutoDelete())
}

// resolveSource turns the job's trigger into exactly one of a byte stream
// or a remote URL. A URL whose resource cannot be fetched locally is
// handed to the backend as an upload by reference; a URL that resolves to
// a non-file is a job failure.
func (o *Orchestrator) resolveSource(ctx context.Context, job domain.Job) (domain.Source, error) {
	if job.RawURL != "" {
		name, resp, err := o.resolver.Resolve(ctx, job.RawURL)
		switch {
		case err == nil:
			return domain.Source{Name: name, Size: resp.ContentLength, Stream: resp.Body}, nil
		case errors.Is(err, errs.ErrNoFilename):
			return domain.Source{}, err
		default:
			o.log.Info("source not fetchable locally, delegating to backend", "url", job.RawURL, "error", err)
			return domain.Source{Name: referenceName(job.RawURL), RemoteURL: job.RawURL}, nil
		}
	}

	doc := job.Trigger.Document
	if doc == nil {
		return domain.Source{}, errs.ErrNoDocument
	}
	stream, err := o.chat.OpenDocument(ctx, *doc)
	if err != nil {
		return domain.Source{}, fmt.Errorf("open attached document failed: %w", err)
	}
	name := doc.Name
	if name == "" {
		name = strconv.FormatInt(time.Now().Unix(), 10)
	}
	return domain.Source{Name: name, Size: doc.Size, Stream: stream}, nil
}

// openLocalStream is the second fallback: the backend refused to fetch the
// URL, so the relay streams the bytes itself.
func (o *Orchestrator) openLocalStream(ctx context.Context, source domain.Source) (domain.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.RemoteURL, nil)
	if err != nil {
		return domain.Source{}, fmt.Errorf("create request failed: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return domain.Source{}, fmt.Errorf("%w: %v", errs.ErrSourceUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK || resp.ContentLength < 0 {
		resp.Body.Close()
		return domain.Source{}, errs.ErrSourceUnreachable
	}
	return domain.Source{Name: source.Name, Size: resp.ContentLength, Stream: resp.Body}, nil
}

// uploadStream drives the chunked upload. Progress updates run
// synchronously inside the loop: one chunk, one update, one await, so a
// stale update can never overwrite a later one.
func (o *Orchestrator) uploadStream(ctx context.Context, tracker *status.Tracker, source domain.Source) error {
	total := source.Size
	if total <= 0 {
		return fmt.Errorf("%w: %s", errs.ErrEmptySource, source.Name)
	}
	// Overwrite also clears any partial item a previously aborted remote
	// fetch of the same destination may have created.
	session, err := o.uploader.CreateSession(ctx, o.destPath(source.Name), total, true)
	if err != nil {
		return err
	}

	buf := make([]byte, PartSize)
	var sent int64
	for sent < total {
		n := int(min(int64(PartSize), total-sent))
		if _, err := io.ReadFull(source.Stream, buf[:n]); err != nil {
			return fmt.Errorf("read source stream failed: %w", err)
		}
		if _, err := o.uploader.UploadChunk(ctx, session, buf[:n], sent, total); err != nil {
			return err
		}
		sent += int64(n)
		tracker.OnProgress(ctx, sent, total)
	}
	return nil
}

// fail assembles the error report and delivers it as a reply.
func (o *Orchestrator) fail(ctx context.Context, reporter *status.Reporter, err error, trackingURL string) {
	report := domain.ErrorReport{Err: err.Error(), TrackingURL: trackingURL}
	var uploadErr *storage.UploadError
	if errors.As(err, &uploadErr) {
		report.UploadURL = uploadErr.Endpoint
		report.Response = uploadErr.Response
		report.Analysis = storage.Analyze(uploadErr.Response)
	}
	if reportErr := reporter.ReportError(ctx, report); reportErr != nil {
		o.log.Error("failed to deliver error report", "error", reportErr)
	}
}

func (o *Orchestrator) destPath(name string) string {
	return path.Join(o.destDir, name)
}

// referenceName names the destination for an upload by reference, where
// no response headers are available: the URL shape or a timestamp.
func referenceName(rawURL string) string {
	if name := resolve.NameFromURL(rawURL); name != "" {
		return name
	}
	return strconv.FormatInt(time.Now().Unix(), 10)
}
