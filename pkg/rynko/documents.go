package rynko

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Polling defaults for WaitForCompletion and WaitForBatchCompletion.
const (
	DefaultPollInterval = 1 * time.Second
	DefaultPollTimeout  = 30 * time.Second
)

type pollSettings struct {
	interval time.Duration
	timeout  time.Duration
}

// PollOption customizes a single wait call.
type PollOption func(*pollSettings)

// WithPollInterval sets the delay between status fetches.
func WithPollInterval(d time.Duration) PollOption {
	return func(s *pollSettings) { s.interval = d }
}

// WithPollTimeout sets the wall-clock deadline for the whole wait,
// measured from the first status fetch. Each individual fetch is still
// subject to the client's per-request timeout.
func WithPollTimeout(d time.Duration) PollOption {
	return func(s *pollSettings) { s.timeout = d }
}

func newPollSettings(opts []PollOption) pollSettings {
	s := pollSettings{interval: DefaultPollInterval, timeout: DefaultPollTimeout}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// DocumentsService handles document-generation operations. Generation is
// asynchronous: Generate queues a job, WaitForCompletion polls it to a
// terminal status.
type DocumentsService struct {
	client *Client
}

// Generate queues a document-generation job.
func (s *DocumentsService) Generate(ctx context.Context, genReq *GenerateRequest) (*GenerateResult, error) {
	if genReq == nil || genReq.TemplateID == "" {
		return nil, errors.New("rynko: template id is required")
	}
	req, err := newRequest(http.MethodPost, s.client.url("/documents/generate"), nil, genReq)
	if err != nil {
		return nil, err
	}
	result, err := doJSON[GenerateResult](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches the current snapshot of a generation job.
func (s *DocumentsService) Get(ctx context.Context, jobID string) (*GenerateResult, error) {
	req, err := newRequest(http.MethodGet, s.client.url("/documents/jobs/"+jobID), nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := doJSON[GenerateResult](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListJobsOptions filters and paginates List. Zero values are omitted.
type ListJobsOptions struct {
	Page        int // 1-based, default 1
	Limit       int // default 20
	TemplateID  string
	WorkspaceID string
	Status      string // queued, processing, completed, failed
}

// jobsEnvelope is the backend's envelope for job listings.
type jobsEnvelope struct {
	Jobs  []GenerateResult `json:"jobs"`
	Total int              `json:"total"`
}

// List returns generation jobs, most recent first.
func (s *DocumentsService) List(ctx context.Context, opts ListJobsOptions) (*ListResponse[GenerateResult], error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("offset", strconv.Itoa((opts.Page-1)*opts.Limit))
	if opts.TemplateID != "" {
		query.Set("templateId", opts.TemplateID)
	}
	if opts.WorkspaceID != "" {
		query.Set("workspaceId", opts.WorkspaceID)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	req, err := newRequest(http.MethodGet, s.client.url("/documents/jobs"), query, nil)
	if err != nil {
		return nil, err
	}
	envelope, err := doJSON[jobsEnvelope](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return newListResponse(envelope.Jobs, envelope.Total, opts.Page, opts.Limit), nil
}

// Delete removes a generated document.
func (s *DocumentsService) Delete(ctx context.Context, jobID string) error {
	req, err := newRequest(http.MethodDelete, s.client.url("/documents/jobs/"+jobID), nil, nil)
	if err != nil {
		return err
	}
	return doVoid(ctx, s.client, req)
}

// WaitForCompletion polls a job until it reaches a terminal status
// (completed or failed) and returns that snapshot. A terminal status is
// honored even when discovered exactly at the deadline; a non-terminal
// status observed past the deadline raises a PollTimeoutError carrying the
// job id. A fetch failure mid-poll propagates as-is.
func (s *DocumentsService) WaitForCompletion(ctx context.Context, jobID string, opts ...PollOption) (*GenerateResult, error) {
	settings := newPollSettings(opts)
	start := time.Now()

	for {
		job, err := s.Get(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.Terminal() {
			return job, nil
		}
		if time.Since(start) > settings.timeout {
			return nil, &PollTimeoutError{Kind: "job", ID: jobID, Timeout: settings.timeout}
		}
		if err := sleepContext(ctx, settings.interval); err != nil {
			return nil, err
		}
	}
}

// GenerateBatch queues generation of many documents from one template.
func (s *DocumentsService) GenerateBatch(ctx context.Context, batchReq *GenerateBatchRequest) (*GenerateBatchResult, error) {
	if err := validateBatchRequest(batchReq); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodPost, s.client.url("/documents/generate-batch"), nil, batchReq)
	if err != nil {
		return nil, err
	}
	result, err := doJSON[GenerateBatchResult](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func validateBatchRequest(req *GenerateBatchRequest) error {
	if req == nil {
		return errors.New("rynko: batch request is required")
	}
	var result *multierror.Error
	if req.TemplateID == "" {
		result = multierror.Append(result, errors.New("template id is required"))
	}
	if len(req.Documents) == 0 {
		result = multierror.Append(result, errors.New("at least one document is required"))
	}
	for i, doc := range req.Documents {
		if len(doc.Variables) == 0 {
			result = multierror.Append(result, fmt.Errorf("document %d: variables are required", i))
		}
	}
	return result.ErrorOrNil()
}

// BatchStatus fetches the current snapshot of a batch.
func (s *DocumentsService) BatchStatus(ctx context.Context, batchID string) (*BatchStatusResult, error) {
	req, err := newRequest(http.MethodGet, s.client.url("/documents/batches/"+batchID), nil, nil)
	if err != nil {
		return nil, err
	}
	result, err := doJSON[BatchStatusResult](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// WaitForBatchCompletion polls a batch until it reaches a terminal status.
// Batches have a third terminal state, partial, alongside completed and
// failed.
func (s *DocumentsService) WaitForBatchCompletion(ctx context.Context, batchID string, opts ...PollOption) (*BatchStatusResult, error) {
	settings := newPollSettings(opts)
	start := time.Now()

	for {
		batch, err := s.BatchStatus(ctx, batchID)
		if err != nil {
			return nil, err
		}
		if batch.Terminal() {
			return batch, nil
		}
		if time.Since(start) > settings.timeout {
			return nil, &PollTimeoutError{Kind: "batch", ID: batchID, Timeout: settings.timeout}
		}
		if err := sleepContext(ctx, settings.interval); err != nil {
			return nil, err
		}
	}
}

// Download fetches a generated document's bytes from its download URL.
// Download URLs are pre-signed, so no Authorization header is sent.
func (s *DocumentsService) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromResponse(resp.StatusCode, body)
	}
	return body, nil
}
