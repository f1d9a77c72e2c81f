package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	errs "drive-relay/errors"
)

// S3Config selects the bucket and, when set, static credentials and a
// custom endpoint for S3-compatible stores.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	KeyID     string
	KeySecret string
}

// S3Uploader implements IUploader on top of S3 multipart uploads. S3 has
// no server-side fetch of arbitrary URLs, so UploadFromURL always reports
// the reference invalid and the orchestrator falls back to local
// streaming.
type S3Uploader struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	log      *slog.Logger

	mu       sync.Mutex
	sessions map[string]*multipartState
}

type multipartState struct {
	key      string
	uploadID string
	parts    []types.CompletedPart
	// chunks arrive smaller than the S3 minimum part size and are
	// coalesced here: into the whole object for simple uploads, into
	// parts of at least the minimum size otherwise
	buffer []byte
	// simple uploads (a single part) bypass the multipart API
	simple bool
}

func NewS3Uploader(ctx context.Context, cfg S3Config, log *slog.Logger) (*S3Uploader, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.KeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.KeySecret, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("load aws config failed: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Uploader{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		log:      log,
		sessions: make(map[string]*multipartState),
	}, nil
}

var _ IUploader = (*S3Uploader)(nil)

const minMultipartSize = 5 * 1024 * 1024 // S3 lower bound for non-final parts

// CreateSession starts a multipart upload, or marks the session simple
// when the file fits in one part. S3 object puts always overwrite, so the
// overwrite flag needs no extra handling here.
func (u *S3Uploader) CreateSession(ctx context.Context, destPath string, size int64, overwrite bool) (UploadSession, error) {
	state := &multipartState{key: destPath, simple: size < minMultipartSize}

	if !state.simple {
		created, err := u.client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(destPath),
		})
		if err != nil {
			return UploadSession{}, &UploadError{Endpoint: u.endpoint(destPath), Err: err}
		}
		state.uploadID = aws.ToString(created.UploadId)
	}

	session := UploadSession{UploadURL: u.endpoint(destPath)}
	u.mu.Lock()
	u.sessions[session.UploadURL] = state
	u.mu.Unlock()
	return session, nil
}

func (u *S3Uploader) UploadChunk(ctx context.Context, session UploadSession, chunk []byte, offset, total int64) (*UploadResult, error) {
	u.mu.Lock()
	state, ok := u.sessions[session.UploadURL]
	u.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown upload session %s", session.UploadURL)
	}

	state.buffer = append(state.buffer, chunk...)
	final := offset+int64(len(chunk)) >= total

	if state.simple {
		if !final {
			return nil, nil
		}
		if _, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(state.key),
			Body:   bytes.NewReader(state.buffer),
		}); err != nil {
			u.forget(session)
			return nil, &UploadError{Endpoint: session.UploadURL, Err: err}
		}
		u.forget(session)
		return &UploadResult{Path: state.key, Size: total}, nil
	}

	if len(state.buffer) >= minMultipartSize || (final && len(state.buffer) > 0) {
		partNumber := int32(len(state.parts) + 1)
		part, err := u.client.UploadPart(ctx, &s3.UploadPartInput{
			Bucket:     aws.String(u.bucket),
			Key:        aws.String(state.key),
			UploadId:   aws.String(state.uploadID),
			PartNumber: aws.Int32(partNumber),
			Body:       bytes.NewReader(state.buffer),
		})
		if err != nil {
			u.abort(ctx, state)
			u.forget(session)
			return nil, &UploadError{Endpoint: session.UploadURL, Err: err}
		}
		state.buffer = nil
		state.parts = append(state.parts, types.CompletedPart{
			ETag:       part.ETag,
			PartNumber: aws.Int32(partNumber),
		})
	}

	if !final {
		return nil, nil
	}

	if _, err := u.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(u.bucket),
		Key:             aws.String(state.key),
		UploadId:        aws.String(state.uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{Parts: state.parts},
	}); err != nil {
		u.abort(ctx, state)
		u.forget(session)
		return nil, &UploadError{Endpoint: session.UploadURL, Err: err}
	}
	u.forget(session)
	return &UploadResult{Path: state.key, Size: total}, nil
}

// UploadFromURL is not supported by S3.
func (u *S3Uploader) UploadFromURL(ctx context.Context, srcURL, destPath string) (string, error) {
	return "", fmt.Errorf("%w: s3 cannot fetch remote urls", errs.ErrInvalidRemoteURL)
}

func (u *S3Uploader) abort(ctx context.Context, state *multipartState) {
	_, err := u.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(u.bucket),
		Key:      aws.String(state.key),
		UploadId: aws.String(state.uploadID),
	})
	if err != nil {
		u.log.Error("failed to abort multipart upload", "key", state.key, "error", err)
	}
}

func (u *S3Uploader) forget(session UploadSession) {
	u.mu.Lock()
	delete(u.sessions, session.UploadURL)
	u.mu.Unlock()
}

func (u *S3Uploader) endpoint(key string) string {
	return fmt.Sprintf("s3://%s/%s", u.bucket, key)
}
