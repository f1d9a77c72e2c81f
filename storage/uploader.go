//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=../mocks/mock_uploader.go -package=mocks

// Package storage drives the cloud backends that receive the files.
package storage

import (
	"context"
	"fmt"
)

// UploadSession addresses one in-flight chunked upload.
type UploadSession struct {
	UploadURL   string
	TrackingURL string
}

// UploadResult is the backend's terminal response for a finished upload.
type UploadResult struct {
	Path string
	Size int64
}

// IUploader is the storage-side contract, shared by all concurrently
// running jobs.
//
// UploadChunk returns a non-nil result only for the final chunk.
// UploadFromURL instructs the backend to fetch the source itself and
// returns ErrInvalidRemoteURL when the backend refuses the reference.
type IUploader interface {
	CreateSession(ctx context.Context, destPath string, size int64, overwrite bool) (UploadSession, error)
	UploadChunk(ctx context.Context, session UploadSession, chunk []byte, offset, total int64) (*UploadResult, error)
	UploadFromURL(ctx context.Context, srcURL, destPath string) (string, error)
}

// UploadError carries the transport-level evidence a failed upload leaves
// behind, for the error report shown to the user.
type UploadError struct {
	Endpoint string
	Status   int
	Response string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("upload to %s failed: status %d", e.Endpoint, e.Status)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
