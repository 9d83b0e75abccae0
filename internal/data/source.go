package data

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"regime-dashboard/internal/logger"
)

// Source fetches one raw document by name. token is the cache-busting value
// for this render pass; sources that cannot be cached may ignore it.
type Source interface {
	Fetch(ctx context.Context, name, token string) ([]byte, error)
}

// Fetch error codes.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeUpstreamError = "UPSTREAM_ERROR"
)

// FetchError represents a non-2xx answer from the document host.
type FetchError struct {
	Document   string
	StatusCode int
	Code       string
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// HTTPSource reads documents from a static file host.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates a source for baseURL. A zero timeout means requests
// are only bounded by the caller's context.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch issues GET <base>/<name>?t=<token>.
func (s *HTTPSource) Fetch(ctx context.Context, name, token string) ([]byte, error) {
	u, err := url.Parse(s.BaseURL + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if token != "" {
		q := u.Query()
		q.Set("t", token)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.Warn(ctx, "Document request failed", "document", name, "error", err, "duration", duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug(ctx, "Document response", "document", name, "status", resp.StatusCode, "duration", duration)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// ok
	case resp.StatusCode == http.StatusNotFound:
		return nil, &FetchError{
			Document:   name,
			StatusCode: resp.StatusCode,
			Code:       CodeNotFound,
			Message:    fmt.Sprintf("%s: not found (HTTP 404)", name),
		}
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &FetchError{
			Document:   name,
			StatusCode: resp.StatusCode,
			Code:       CodeUnauthorized,
			Message:    fmt.Sprintf("%s: unauthorized (HTTP 401)", name),
		}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &FetchError{
			Document:   name,
			StatusCode: resp.StatusCode,
			Code:       CodeForbidden,
			Message:    fmt.Sprintf("%s: forbidden (HTTP 403)", name),
		}
	default:
		return nil, &FetchError{
			Document:   name,
			StatusCode: resp.StatusCode,
			Code:       CodeUpstreamError,
			Message:    fmt.Sprintf("%s: host returned status %d", name, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// DirSource reads documents from a local directory.
type DirSource struct {
	Dir string
}

// Fetch reads <dir>/<name>; token is ignored.
func (s *DirSource) Fetch(ctx context.Context, name, token string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.Dir, name))
}

// IsRemote reports whether base points at an HTTP host.
func IsRemote(base string) bool {
	return strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
}

// NewSource picks the source implementation for base.
func NewSource(base string, timeout time.Duration) Source {
	if IsRemote(base) {
		return NewHTTPSource(base, timeout)
	}
	return &DirSource{Dir: base}
}
