package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

type stubStore struct{ name string }

func (s *stubStore) Name() string { return s.name }
func (s *stubStore) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	return "https://example.com/" + fileName, nil
}

func TestRouter_StoreFor(t *testing.T) {
	media := &stubStore{name: "media"}
	docs := &stubStore{name: "docs"}
	r := &Router{Media: media, Docs: docs}

	tests := []struct {
		contentType string
		want        BlobStore
	}{
		{"image/png", media},
		{"video/mp4", media},
		{"audio/mpeg", media},
		{"IMAGE/JPEG", media},
		{"application/pdf", docs},
		{"application/zip", docs},
		{"text/plain", docs},
		{"", docs},
		{"weird", docs},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Same(t, tt.want, r.StoreFor(tt.contentType))
		})
	}
}

func newTestBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "test-cb",
		Timeout: time.Second,
	})
}

func TestHTTPStore_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		assert.Equal(t, "brief.pdf", r.URL.Query().Get("filename"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"url": "https://cdn.example.com/brief.pdf"}`))
	}))
	defer srv.Close()

	store := NewHTTPStore("doc-store", srv.URL, srv.Client(), newTestBreaker())

	url, err := store.Upload(context.Background(), "brief.pdf", "application/pdf", []byte("%PDF"))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/brief.pdf", url)
}

func TestHTTPStore_UploadEscapesFileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "q3 report & notes.pdf", r.URL.Query().Get("filename"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"url": "https://cdn.example.com/q3.pdf"}`))
	}))
	defer srv.Close()

	store := NewHTTPStore("doc-store", srv.URL, srv.Client(), newTestBreaker())

	url, err := store.Upload(context.Background(), "q3 report & notes.pdf", "application/pdf", []byte("%PDF"))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/q3.pdf", url)
}

func TestHTTPStore_UploadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInsufficientStorage)
	}))
	defer srv.Close()

	store := NewHTTPStore("media-store", srv.URL, srv.Client(), newTestBreaker())

	_, err := store.Upload(context.Background(), "logo.png", "image/png", []byte{0x89})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "media-store")
}
