// internal/common/httpx/client.go
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client issues exactly one network operation per call, bounded by a
// per-call deadline. No retries are issued by this layer.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// Result is the fully-drained outcome of one request.
type Result struct {
	StatusCode int
	Body       []byte
}

// Do runs req under a deadline derived from ctx. The deadline timer is
// released on every exit path; when it fires first, the in-flight
// request is cancelled and the returned error wraps
// context.DeadlineExceeded. The body is read in full before the timer
// is released so callers never race the cancellation.
func (c *Client) Do(ctx context.Context, req *http.Request, deadline time.Duration) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	req = req.WithContext(ctx)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// PostJSON marshals payload and POSTs it under the deadline.
func (c *Client) PostJSON(ctx context.Context, url string, payload interface{}, deadline time.Duration) (*Result, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.Do(ctx, req, deadline)
}

// PostMultipart POSTs an already-encoded multipart body under the
// deadline. contentType must carry the boundary.
func (c *Client) PostMultipart(ctx context.Context, url, contentType string, body io.Reader, deadline time.Duration) (*Result, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	return c.Do(ctx, req, deadline)
}
