package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "drive-relay/errors"
)

func TestDriveClient_CreateSession(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Overwrite requests replace behavior", func(t *testing.T) {
		var gotPath, gotBehavior string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			var body createSessionRequest
			req.NoError(json.NewDecoder(r.Body).Decode(&body))
			gotBehavior = body.Item.ConflictBehavior
			json.NewEncoder(w).Encode(createSessionResponse{UploadURL: "https://upload.example.com/s1"})
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), srv.URL, logger)
		session, err := client.CreateSession(context.Background(), "/backups/file.bin", 25, true)
		req.NoError(err)
		req.Equal("https://upload.example.com/s1", session.UploadURL)
		req.Equal("/root:/backups/file.bin:/createUploadSession", gotPath)
		req.Equal("replace", gotBehavior)
	})

	t.Run("Backend rejection carries the response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":"accessDenied"}}`))
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), srv.URL, logger)
		_, err := client.CreateSession(context.Background(), "/file.bin", 25, false)

		var uploadErr *UploadError
		req.ErrorAs(err, &uploadErr)
		req.Equal(http.StatusForbidden, uploadErr.Status)
		req.Contains(uploadErr.Response, "accessDenied")
	})
}

func TestDriveClient_UploadChunk(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Intermediate and final chunks", func(t *testing.T) {
		var ranges []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ranges = append(ranges, r.Header.Get("Content-Range"))
			body, _ := io.ReadAll(r.Body)
			if len(ranges) == 1 {
				req.Equal("0123456789", string(body))
				w.WriteHeader(http.StatusAccepted)
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(driveItem{Name: "file.bin", Size: 25})
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), "https://unused", logger)
		session := UploadSession{UploadURL: srv.URL + "/upload/s1"}

		result, err := client.UploadChunk(context.Background(), session, []byte("0123456789"), 0, 25)
		req.NoError(err)
		req.Nil(result, "intermediate chunk yields no result")

		result, err = client.UploadChunk(context.Background(), session, []byte("012345678901234"), 10, 25)
		req.NoError(err)
		req.NotNil(result)
		req.Equal("file.bin", result.Path)
		req.Equal(int64(25), result.Size)

		req.Equal([]string{"bytes 0-9/25", "bytes 10-24/25"}, ranges)
	})

	t.Run("Transport rejection becomes an UploadError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":"generalException","message":"oops"}}`))
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), "https://unused", logger)
		session := UploadSession{UploadURL: srv.URL + "/upload/s1"}

		_, err := client.UploadChunk(context.Background(), session, []byte("0123456789"), 0, 25)

		var uploadErr *UploadError
		req.ErrorAs(err, &uploadErr)
		req.Equal(session.UploadURL, uploadErr.Endpoint)
		req.Equal(http.StatusInternalServerError, uploadErr.Status)
		req.Contains(uploadErr.Response, "generalException")
	})
}

func TestDriveClient_UploadFromURL(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Accepted copy returns the monitor url", func(t *testing.T) {
		var gotPath, gotPrefer string
		var payload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotPrefer = r.Header.Get("Prefer")
			req.NoError(json.NewDecoder(r.Body).Decode(&payload))
			w.Header().Set("Location", "https://monitor.example.com/op1")
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), srv.URL, logger)
		tracking, err := client.UploadFromURL(context.Background(), "https://src.example.com/a.zip", "/backups/a.zip")
		req.NoError(err)
		req.Equal("https://monitor.example.com/op1", tracking)
		req.Equal("/root:/backups:/children", gotPath)
		req.Equal("respond-async", gotPrefer)
		req.Equal("https://src.example.com/a.zip", payload["@microsoft.graph.sourceUrl"])
		req.Equal("a.zip", payload["name"])
	})

	t.Run("Bad request means the url is invalid to the backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":"invalidRequest"}}`))
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), srv.URL, logger)
		_, err := client.UploadFromURL(context.Background(), "ftp://src/a.zip", "/a.zip")
		req.ErrorIs(err, errs.ErrInvalidRemoteURL)
	})

	t.Run("Other failures become an UploadError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewDriveClient(srv.Client(), srv.URL, logger)
		_, err := client.UploadFromURL(context.Background(), "https://src/a.zip", "/a.zip")

		var uploadErr *UploadError
		req.ErrorAs(err, &uploadErr)
		req.Equal(http.StatusServiceUnavailable, uploadErr.Status)
	})
}

func TestSplitItemPath(t *testing.T) {
	req := require.New(t)

	dir, name := splitItemPath("/backups/2024/a.zip")
	req.Equal("backups/2024", dir)
	req.Equal("a.zip", name)

	dir, name = splitItemPath("a.zip")
	req.Equal("", dir)
	req.Equal("a.zip", name)
}

func TestItemEndpointEscaping(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewDriveClient(http.DefaultClient, "https://drive.example.com/v1", logger)
	endpoint := client.itemEndpoint("/backups/My File.bin")
	req.True(strings.HasSuffix(endpoint, "/root:/backups/My%20File.bin"))
}
