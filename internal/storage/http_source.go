package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSource fetches image bytes over HTTP with bounded retries and a hard
// byte cap applied while reading the body.
type HTTPSource struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPSource creates an HTTP image source. maxBytes caps the response
// body; anything larger fails with ErrTooLarge before the bytes reach the
// engine.
func NewHTTPSource(timeout time.Duration, maxBytes int64) *HTTPSource {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPSource{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
		maxBytes: maxBytes,
	}
}

func (h *HTTPSource) FetchBytes(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, image/gif, */*")
	req.Header.Set("User-Agent", "Crop-Image-Gate/1.0")

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		data, retryable, err := h.fetchOnce(req)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 200 * time.Millisecond):
		}
	}
	return nil, lastErr
}

// fetchOnce performs one attempt; the second return value says whether the
// failure is worth retrying (network errors and 5xx are, 4xx is not).
func (h *HTTPSource) fetchOnce(req *http.Request) ([]byte, bool, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, false, fmt.Errorf("client error: status code %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("server error: status code %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if resp.ContentLength > h.maxBytes {
		return nil, false, ErrTooLarge
	}

	// Read one byte past the cap so truncated-vs-oversized is unambiguous.
	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
	if err != nil {
		return nil, true, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > h.maxBytes {
		return nil, false, ErrTooLarge
	}
	return data, false, nil
}
