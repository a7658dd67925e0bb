package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSource fetches catalog files from a web server, e.g. the static site hosting data/.
type HTTPSource struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPSource creates a source for files under baseURL (e.g. "https://example.org/data/").
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	baseURL = strings.TrimRight(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept": "application/json",
			// Chunks are regenerated in place; always ask for the current copy.
			"Cache-Control": "no-store",
		})

	return &HTTPSource{client: client, baseURL: baseURL}
}

// Open implements Source.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get("/" + strings.TrimLeft(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	case res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299:
		return nil, &StatusError{Name: name, Status: res.StatusCode()}
	}

	return io.NopCloser(bytes.NewReader(res.Body())), nil
}

// Describe implements Source.
func (s *HTTPSource) Describe() string {
	return "http:" + s.baseURL
}
