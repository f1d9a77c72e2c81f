package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	errs "drive-relay/errors"
)

// DriveClient implements IUploader against a Graph-style drive API:
// upload sessions with Content-Range chunk PUTs, and copy-from-URL with an
// asynchronous monitor URL.
type DriveClient struct {
	httpClient *http.Client
	base       string // e.g. https://graph.microsoft.com/v1.0/me/drive
	log        *slog.Logger
}

func NewDriveClient(httpClient *http.Client, base string, log *slog.Logger) *DriveClient {
	return &DriveClient{
		httpClient: httpClient,
		base:       strings.TrimRight(base, "/"),
		log:        log,
	}
}

var _ IUploader = (*DriveClient)(nil)

type createSessionRequest struct {
	Item sessionItem `json:"item"`
}

type sessionItem struct {
	ConflictBehavior string `json:"@microsoft.graph.conflictBehavior"`
}

type createSessionResponse struct {
	UploadURL string `json:"uploadUrl"`
}

type driveItem struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// CreateSession opens an upload session for destPath. With overwrite set
// the destination is replaced, which also clears any partial item an
// aborted remote fetch may have left behind.
func (c *DriveClient) CreateSession(ctx context.Context, destPath string, size int64, overwrite bool) (UploadSession, error) {
	endpoint := c.itemEndpoint(destPath) + ":/createUploadSession"

	behavior := "rename"
	if overwrite {
		behavior = "replace"
	}
	body, err := json.Marshal(createSessionRequest{Item: sessionItem{ConflictBehavior: behavior}})
	if err != nil {
		return UploadSession{}, fmt.Errorf("marshal session request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return UploadSession{}, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadSession{}, &UploadError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return UploadSession{}, &UploadError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Response: readBody(resp.Body),
		}
	}

	var session createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return UploadSession{}, fmt.Errorf("decode session response failed: %w", err)
	}
	c.log.Debug("upload session created", "dest", destPath, "size", size)
	return UploadSession{UploadURL: session.UploadURL}, nil
}

// UploadChunk PUTs one segment into the session. Intermediate chunks are
// acknowledged with 202; the final chunk returns the created item.
func (c *DriveClient) UploadChunk(ctx context.Context, session UploadSession, chunk []byte, offset, total int64) (*UploadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, session.UploadURL, bytes.NewReader(chunk))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.ContentLength = int64(len(chunk))
	req.Header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", offset, offset+int64(len(chunk))-1, total))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Endpoint: session.UploadURL, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted:
		return nil, nil
	case http.StatusOK, http.StatusCreated:
		var item driveItem
		if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
			return nil, fmt.Errorf("decode item response failed: %w", err)
		}
		return &UploadResult{Path: item.Name, Size: item.Size}, nil
	default:
		return nil, &UploadError{
			Endpoint: session.UploadURL,
			Status:   resp.StatusCode,
			Response: readBody(resp.Body),
		}
	}
}

// UploadFromURL asks the drive to fetch srcURL itself and returns the
// monitor URL for the asynchronous copy. A rejection of the source URL is
// reported as ErrInvalidRemoteURL so the caller can fall back to streaming
// the bytes locally.
func (c *DriveClient) UploadFromURL(ctx context.Context, srcURL, destPath string) (string, error) {
	dir, name := splitItemPath(destPath)
	endpoint := c.itemEndpoint(dir) + ":/children"

	payload := map[string]any{
		"@microsoft.graph.sourceUrl": srcURL,
		"name":                       name,
		"file":                       struct{}{},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal upload request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "respond-async")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UploadError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusAccepted:
		return resp.Header.Get("Location"), nil
	case resp.StatusCode == http.StatusBadRequest:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidRemoteURL, readBody(resp.Body))
	default:
		return "", &UploadError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Response: readBody(resp.Body),
		}
	}
}

func (c *DriveClient) itemEndpoint(itemPath string) string {
	segments := strings.Split(strings.Trim(itemPath, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return c.base + "/root:/" + strings.Join(segments, "/")
}

func splitItemPath(destPath string) (string, string) {
	destPath = strings.Trim(destPath, "/")
	if idx := strings.LastIndexByte(destPath, '/'); idx != -1 {
		return destPath[:idx], destPath[idx+1:]
	}
	return "", destPath
}

func readBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 8*1024))
	if err != nil {
		return ""
	}
	return string(body)
}
