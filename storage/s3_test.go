package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS3Uploader_UploadChunk(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	const mb = 1 << 20

	t.Run("Chunks below the multipart floor coalesce into one put", func(t *testing.T) {
		var mu sync.Mutex
		var putSizes []int
		var putPaths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			putSizes = append(putSizes, len(body))
			putPaths = append(putPaths, r.URL.Path)
			mu.Unlock()
			w.Header().Set("ETag", `"0123456789abcdef0123456789abcdef"`)
		}))
		defer srv.Close()

		uploader, err := NewS3Uploader(context.Background(), S3Config{
			Bucket:    "b",
			Region:    "us-east-1",
			Endpoint:  srv.URL,
			KeyID:     "k",
			KeySecret: "s",
		}, logger)
		req.NoError(err)

		session, err := uploader.CreateSession(context.Background(), "dir/file.bin", 4*mb, true)
		req.NoError(err)

		chunk := bytes.Repeat([]byte{0xAB}, 2*mb)

		result, err := uploader.UploadChunk(context.Background(), session, chunk, 0, 4*mb)
		req.NoError(err)
		req.Nil(result, "no result before the final chunk")

		mu.Lock()
		req.Empty(putSizes, "nothing may reach the store before the final chunk")
		mu.Unlock()

		result, err = uploader.UploadChunk(context.Background(), session, chunk, 2*mb, 4*mb)
		req.NoError(err)
		req.NotNil(result)
		req.Equal("dir/file.bin", result.Path)
		req.Equal(int64(4*mb), result.Size)

		mu.Lock()
		defer mu.Unlock()
		req.Len(putSizes, 1, "the object must be stored whole, in a single put")
		req.GreaterOrEqual(putSizes[0], 4*mb)
		req.Equal([]string{"/b/dir/file.bin"}, putPaths)
	})
}
