// Package rynko is a Go client for the Rynko document-generation API.
//
// Rynko renders PDF and Excel documents from templates. Generation is
// asynchronous: a job is queued, processed in the background, and exposes
// a download URL once complete.
//
//	client, err := rynko.New(os.Getenv("RYNKO_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	job, err := client.Documents().Generate(ctx, &rynko.GenerateRequest{
//		TemplateID: "tmpl_invoice",
//		Format:     "pdf",
//		Variables: map[string]any{
//			"invoiceNumber": "INV-001",
//			"customerName":  "Acme Corp",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	completed, err := client.Documents().WaitForCompletion(ctx, job.JobID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("download:", completed.DownloadURL)
//
// Requests are retried with exponential backoff and jitter on 429, 503,
// and 504 responses; see Config for tuning. Webhook signature verification
// lives in the sibling package webhook.
package rynko

import (
	"context"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Client is the entry point for the Rynko API. It is safe for concurrent
// use: configuration is copied at construction and the underlying
// *http.Client is the only shared resource.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     hclog.Logger
	retry      retryPolicy

	documents *DocumentsService
	templates *TemplatesService
	webhooks  *WebhooksService
}

// NewClient creates a client from a full configuration. It validates the
// configuration synchronously, before any network activity.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     cfg.Logger.Named("rynko"),
		retry:      newRetryPolicy(cfg),
	}
	c.documents = &DocumentsService{client: c}
	c.templates = &TemplatesService{client: c}
	c.webhooks = &WebhooksService{client: c}
	return c, nil
}

// New creates a client with default configuration and the given API key.
func New(apiKey string) (*Client, error) {
	return NewClient(Config{APIKey: apiKey})
}

// Documents returns the document-generation resource.
func (c *Client) Documents() *DocumentsService {
	return c.documents
}

// Templates returns the templates resource.
func (c *Client) Templates() *TemplatesService {
	return c.templates
}

// Webhooks returns the webhook-subscriptions resource.
func (c *Client) Webhooks() *WebhooksService {
	return c.webhooks
}

// Me returns the authenticated user for the configured API key.
func (c *Client) Me(ctx context.Context) (*User, error) {
	// Auth endpoints live outside the versioned API prefix.
	req, err := newRequest(http.MethodGet, c.baseURLWithoutVersion()+"/api/auth/verify", nil, nil)
	if err != nil {
		return nil, err
	}
	user, err := doJSON[User](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyAPIKey reports whether the configured API key is valid.
func (c *Client) VerifyAPIKey(ctx context.Context) bool {
	_, err := c.Me(ctx)
	return err == nil
}

// url joins a path to the configured base URL.
func (c *Client) url(path string) string {
	return c.cfg.BaseURL + path
}

// baseURLWithoutVersion strips the /api/v1 suffix from the base URL, for
// the handful of endpoints served outside the versioned prefix.
func (c *Client) baseURLWithoutVersion() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/api/v1")
}
