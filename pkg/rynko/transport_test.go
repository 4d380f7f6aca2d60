package rynko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at a mock server with small retry
// delays so tests run fast.
func newTestClient(t *testing.T, baseURL string, mutate ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		APIKey:       "test-api-key",
		BaseURL:      baseURL,
		InitialDelay: 1 * time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		MaxJitter:    1 * time.Millisecond,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestExecute_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"jobId":"job_1","status":"queued"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	job, err := client.Documents().Get(context.Background(), "job_1")
	require.NoError(t, err)
	assert.Equal(t, "job_1", job.JobID)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestExecute_NonRetryableStatusFailsImmediately(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid template id","code":"ERR_TEMPLATE"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Documents().Get(context.Background(), "job_1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid template id", apiErr.Message)
	assert.Equal(t, "ERR_TEMPLATE", apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExecute_ExhaustsRetriesWithLastError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"try later","code":"ERR_BUSY"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) { c.MaxRetries = 3 })
	_, err := client.Documents().Get(context.Background(), "job_1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "ERR_BUSY", apiErr.Code)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestExecute_RetryDisabledIsSingleAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) { c.DisableRetry = true })
	_, err := client.Documents().Get(context.Background(), "job_1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExecute_NonJSONErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Documents().Get(context.Background(), "job_1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP 500: boom", apiErr.Message)
	assert.Empty(t, apiErr.Code)
}

func TestExecute_NetworkErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := newTestClient(t, srv.URL)
	_, err := client.Documents().Get(context.Background(), "job_1")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestExecute_CancelDuringBackoff(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) {
		c.InitialDelay = 1 * time.Second
		c.MaxDelay = 2 * time.Second
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Documents().Get(ctx, "job_1")
	require.ErrorIs(t, err, context.Canceled)

	// Cancellation interrupts the suspension instead of triggering a
	// further attempt.
	assert.Equal(t, int32(1), attempts.Load())
}

func TestRoundTrip_Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		if r.Method == http.MethodPost {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"jobId":"job_1","status":"queued"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.Documents().Get(ctx, "job_1")
	require.NoError(t, err)

	_, err = client.Documents().Generate(ctx, &GenerateRequest{TemplateID: "tmpl_1"})
	require.NoError(t, err)
}

func TestExecute_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.Documents().Delete(context.Background(), "job_1"))
}

func TestNewRequest_SerializationError(t *testing.T) {
	_, err := newRequest(http.MethodPost, "http://example.com", nil, map[string]any{
		"bad": func() {},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serialize request body")
}
