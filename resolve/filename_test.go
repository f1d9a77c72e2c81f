package resolve

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "drive-relay/errors"
)

func TestResolver_Resolve(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Filename from Content-Disposition", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		name, resp, err := resolver.Resolve(context.Background(), srv.URL+"/download")
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal("report.pdf", name)
	})

	t.Run("Implausibly long disposition falls back to timestamp", func(t *testing.T) {
		long := strings.Repeat("a", 150) + ".pdf"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="`+long+`"`)
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		name, resp, err := resolver.Resolve(context.Background(), srv.URL+"/download")
		req.NoError(err)
		defer resp.Body.Close()

		req.True(strings.HasSuffix(name, ".pdf"))
		_, convErr := strconv.ParseInt(strings.TrimSuffix(name, ".pdf"), 10, 64)
		req.NoError(convErr, "fallback name should be a unix timestamp")
	})

	t.Run("Filename from query parameter", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte("data"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		name, resp, err := resolver.Resolve(context.Background(), srv.URL+"/download?filename=data.bin")
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal("data.bin", name)
	})

	t.Run("Filename from last path segment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("hello"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		name, resp, err := resolver.Resolve(context.Background(), srv.URL+"/files/doc.txt")
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal("doc.txt", name)
	})

	t.Run("Extension appended when path has none", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		name, resp, err := resolver.Resolve(context.Background(), srv.URL+"/files/report")
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal("report.pdf", name)
	})

	t.Run("Non-200 means the source is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		_, _, err := resolver.Resolve(context.Background(), srv.URL+"/missing.zip")
		req.ErrorIs(err, errs.ErrSourceUnreachable)
	})

	t.Run("No name and no extension means no file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "")
			w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		resolver := NewResolver(srv.Client(), logger)
		_, _, err := resolver.Resolve(context.Background(), srv.URL+"/")
		req.ErrorIs(err, errs.ErrNoFilename)
	})
}

func TestNameFromURL(t *testing.T) {
	req := require.New(t)

	t.Run("Last path segment", func(t *testing.T) {
		req.Equal("b.txt", NameFromURL("https://example.com/a/b.txt"))
	})

	t.Run("Query parameter wins over path", func(t *testing.T) {
		req.Equal("x.zip", NameFromURL("https://example.com/download?name=x.zip"))
	})

	t.Run("Query parameter is case-insensitive", func(t *testing.T) {
		req.Equal("x.zip", NameFromURL("https://example.com/download?FileName=x.zip"))
	})

	t.Run("Percent-encoded segment is decoded", func(t *testing.T) {
		req.Equal("My File.pdf", NameFromURL("https://example.com/My%20File.pdf"))
	})

	t.Run("Bare root yields nothing", func(t *testing.T) {
		req.Equal("", NameFromURL("https://example.com/"))
	})
}
