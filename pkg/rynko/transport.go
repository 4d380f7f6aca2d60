package rynko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rynko-dev/rynko-go/internal/version"
)

const userAgent = "rynko-go/" + version.Version

// request describes one API call. The body, if any, is serialized to JSON
// exactly once, before the first attempt, so a serialization failure is
// fatal and never retried.
type request struct {
	method string
	url    string
	query  url.Values
	body   []byte
}

// newRequest builds a request descriptor, serializing body to JSON when
// non-nil.
func newRequest(method, rawURL string, query url.Values, body any) (request, error) {
	req := request{method: method, url: rawURL, query: query}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return request{}, fmt.Errorf("rynko: serialize request body: %w", err)
		}
		req.body = data
	}
	return req, nil
}

// httpResult is the normalized outcome of a single round trip.
type httpResult struct {
	status     int
	body       []byte
	retryAfter string
}

// roundTrip performs exactly one HTTP round trip. It does not retry and
// does not interpret status codes beyond reading the response.
func (c *Client) roundTrip(ctx context.Context, req request) (httpResult, error) {
	target := req.url
	if len(req.query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return httpResult{}, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return httpResult{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return httpResult{}, err
	}

	return httpResult{
		status:     resp.StatusCode,
		body:       respBody,
		retryAfter: resp.Header.Get("Retry-After"),
	}, nil
}

// execute is the bounded retry loop every network-facing operation routes
// through. Attempts are strictly sequential; the backoff suspension is
// cancellable through ctx, and a cancellation surfaces as an error rather
// than a further retry.
func (c *Client) execute(ctx context.Context, req request) ([]byte, error) {
	maxAttempts := c.retry.maxAttempts()
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := c.roundTrip(ctx, req)
		if err != nil {
			// Network-level failure: no status code, never retried.
			return nil, &TransportError{Err: err}
		}

		if res.status >= 200 && res.status < 300 {
			return res.body, nil
		}

		apiErr := apiErrorFromResponse(res.status, res.body)
		decision := c.retry.decide(res.status, attempt, res.retryAfter)
		if !decision.retry {
			return nil, apiErr
		}
		lastErr = apiErr

		c.logger.Debug("retrying request",
			"method", req.method,
			"url", req.url,
			"status", res.status,
			"attempt", attempt+1,
			"delay", decision.delay,
		)

		if err := sleepContext(ctx, decision.delay); err != nil {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, &APIError{Message: "request failed after retries"}
}

// doJSON executes req and decodes the response body into T. An empty 2xx
// body yields the zero value of T.
func doJSON[T any](ctx context.Context, c *Client, req request) (T, error) {
	var out T
	body, err := c.execute(ctx, req)
	if err != nil {
		return out, err
	}
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("rynko: decode response: %w", err)
	}
	return out, nil
}

// doVoid executes req and discards any response body.
func doVoid(ctx context.Context, c *Client, req request) error {
	_, err := c.execute(ctx, req)
	return err
}

// apiErrorFromResponse parses a non-2xx body as a structured API error,
// falling back to the raw body when it is not valid JSON.
func apiErrorFromResponse(statusCode int, body []byte) *APIError {
	var apiErr APIError
	if len(body) > 0 && json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}
	return &APIError{
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, string(body)),
		StatusCode: statusCode,
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
