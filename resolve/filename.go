//go:generate go run go.uber.org/mock/mockgen -source=filename.go -destination=../mocks/mock_resolver.go -package=mocks

// Package resolve turns URLs into display filenames and scans prose for
// links.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	errs "drive-relay/errors"
)

// maxDispositionName is the length above which a Content-Disposition
// filename is considered implausible and discarded.
const maxDispositionName = 100

// IResolver resolves a URL into a display filename and an open response
// whose body the caller must stream.
type IResolver interface {
	Resolve(ctx context.Context, rawURL string) (string, *http.Response, error)
}

type Resolver struct {
	client *http.Client
	log    *slog.Logger
}

func NewResolver(client *http.Client, log *slog.Logger) *Resolver {
	return &Resolver{
		client: client,
		log:    log,
	}
}

// Resolve issues a streaming GET and infers a filename from, in order, the
// Content-Disposition header, the URL's query parameters and path, and the
// content type. It fails with ErrSourceUnreachable when the resource cannot
// be fetched and with ErrNoFilename when the URL plausibly does not point
// to a file at all. On success the returned response is still open and the
// caller must consume its body; the resource is not fetched twice.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("create request failed: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errs.ErrSourceUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Length") == "" {
		resp.Body.Close()
		return "", nil, errs.ErrSourceUnreachable
	}

	exts := extensionsFor(resp.Header.Get("Content-Type"))

	name := nameFromDisposition(resp.Header.Get("Content-Disposition"))
	if len(name) > maxDispositionName {
		r.log.Debug("discarding implausibly long disposition filename", "length", len(name))
		name = timestampName(exts)
	}
	if name != "" {
		return name, resp, nil
	}

	if name = NameFromURL(rawURL); name != "" {
		if len(exts) > 0 && !lo.Contains(exts, strings.ToLower(path.Ext(name))) {
			name += exts[0]
		}
		return name, resp, nil
	}

	if len(exts) == 0 {
		resp.Body.Close()
		return "", nil, errs.ErrNoFilename
	}
	return timestampName(exts), resp, nil
}

// nameFromDisposition extracts the filename token from a
// Content-Disposition header value, URL-decoded and unquoted.
func nameFromDisposition(cd string) string {
	if cd == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(cd); err == nil {
		if name := params["filename"]; name != "" {
			return unescape(strings.Trim(name, `'"`))
		}
	}
	// Permissive fallback for headers the strict parser rejects.
	if _, rest, ok := strings.Cut(cd, "filename="); ok {
		return unescape(strings.Trim(strings.TrimSpace(rest), `'"`))
	}
	return ""
}

// NameFromURL derives a filename from the URL itself: a recognized file
// parameter in the query string wins over the last path segment. Returns
// "" when neither yields anything.
func NameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	query := map[string]string{}
	for key, values := range parsed.Query() {
		if len(values) > 0 && values[0] != "" {
			query[strings.ToLower(key)] = values[0]
		}
	}
	for _, key := range fileParamNames {
		if name := query[key]; name != "" {
			return name
		}
	}

	last := path.Base(parsed.Path)
	if last == "/" || last == "." {
		return ""
	}
	return unescape(strings.Trim(strings.TrimSpace(last), `'"`))
}

func timestampName(exts []string) string {
	name := strconv.FormatInt(time.Now().Unix(), 10)
	if len(exts) > 0 {
		name += exts[0]
	}
	return name
}

func unescape(s string) string {
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}
	return s
}
