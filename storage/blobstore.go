// Package storage holds the clients for the two external blob-storage
// collaborators: the media store for image/video/audio files and the
// document store for everything else. Both expose the same contract:
// upload bytes, receive a public URL.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/DXD-Magante/dxd-magnate-sub008/logging"
)

type BlobStore interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	Name() string
}

// HTTPStore talks to a blob-storage provider over its HTTP upload endpoint,
// guarded by a circuit breaker so a flapping provider does not pile up
// blocked requests.
type HTTPStore struct {
	name    string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewHTTPStore(name, baseURL string, client *http.Client, breaker *gobreaker.CircuitBreaker) *HTTPStore {
	return &HTTPStore{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		breaker: breaker,
	}
}

func (s *HTTPStore) Name() string { return s.name }

// Upload sends the file bytes to the provider and returns the public URL
// the provider assigned.
func (s *HTTPStore) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		query := url.Values{"filename": {fileName}}
		endpoint := fmt.Sprintf("%s/upload?%s", s.baseURL, query.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to build upload request: %v", err)
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("upload to %s failed: %v", s.name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("upload to %s failed with status %d", s.name, resp.StatusCode)
		}

		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode %s upload response: %v", s.name, err)
		}
		if body.URL == "" {
			return nil, fmt.Errorf("%s returned an empty file URL", s.name)
		}
		return body.URL, nil
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: BLOB_UPLOAD_FAILED, Description: Upload of '%s' to %s failed: %v", fileName, s.name, err)
		return "", err
	}

	logging.Logger.Infof("Event ID: BLOB_UPLOAD_OK, Description: Uploaded '%s' (%s) to %s", fileName, contentType, s.name)
	return result.(string), nil
}
