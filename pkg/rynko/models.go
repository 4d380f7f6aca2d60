package rynko

import "time"

// Job and batch status values as reported by the API.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"

	// StatusPartial is a batch-only terminal status: some jobs in the
	// batch succeeded and some failed. Single jobs have no analogous
	// state.
	StatusPartial = "partial"
)

// GenerateRequest describes a document-generation job submission.
type GenerateRequest struct {
	// TemplateID identifies the template to render. Required.
	TemplateID string `json:"templateId"`

	// Format is the output format, "pdf" or "xlsx" (default: "pdf").
	Format string `json:"format,omitempty"`

	// Variables are substituted into the template.
	Variables map[string]any `json:"variables,omitempty"`

	WorkspaceID string `json:"workspaceId,omitempty"`
	Filename    string `json:"filename,omitempty"`

	// Metadata is an opaque key-value object echoed back in job status
	// responses and webhook payloads, useful for correlating documents
	// with application records.
	Metadata map[string]any `json:"metadata,omitempty"`

	Source string `json:"source,omitempty"`
}

// GenerateResult is a snapshot of a document-generation job. The server
// owns the status state machine; each poll is an independent fetch and the
// client never caches or mutates a snapshot.
type GenerateResult struct {
	JobID                string         `json:"jobId"`
	Status               string         `json:"status"`
	StatusURL            string         `json:"statusUrl,omitempty"`
	EstimatedWaitSeconds int            `json:"estimatedWaitSeconds,omitempty"`
	DownloadURL          string         `json:"downloadUrl,omitempty"`
	ExpiresAt            *time.Time     `json:"expiresAt,omitempty"`
	Format               string         `json:"format,omitempty"`
	TemplateID           string         `json:"templateId,omitempty"`
	Metadata             map[string]any `json:"metadata,omitempty"`
	ErrorMessage         string         `json:"errorMessage,omitempty"`
	ErrorCode            string         `json:"errorCode,omitempty"`
}

// Terminal reports whether the job has reached a state after which no
// further transitions occur.
func (r *GenerateResult) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}

// Completed reports whether the job finished successfully.
func (r *GenerateResult) Completed() bool {
	return r.Status == StatusCompleted
}

// Failed reports whether the job failed.
func (r *GenerateResult) Failed() bool {
	return r.Status == StatusFailed
}

// BatchDocumentSpec describes one document within a batch submission.
type BatchDocumentSpec struct {
	Variables map[string]any `json:"variables,omitempty"`
	Filename  string         `json:"filename,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// GenerateBatchRequest describes a batch-generation submission: many
// documents rendered from one template.
type GenerateBatchRequest struct {
	TemplateID string              `json:"templateId"`
	Format     string              `json:"format,omitempty"`
	Documents  []BatchDocumentSpec `json:"documents"`

	// WebhookURL, when set, receives a notification as each document in
	// the batch completes.
	WebhookURL string `json:"webhookUrl,omitempty"`

	Metadata  map[string]any `json:"metadata,omitempty"`
	UseDraft  *bool          `json:"useDraft,omitempty"`
	UseCredit *bool          `json:"useCredit,omitempty"`
	Source    string         `json:"source,omitempty"`
}

// GenerateBatchResult acknowledges a batch submission.
type GenerateBatchResult struct {
	BatchID              string `json:"batchId"`
	Status               string `json:"status"`
	TotalJobs            int    `json:"totalJobs"`
	StatusURL            string `json:"statusUrl,omitempty"`
	EstimatedWaitSeconds int    `json:"estimatedWaitSeconds,omitempty"`
}

// BatchStatusResult is a snapshot of a batch's progress.
type BatchStatusResult struct {
	BatchID         string         `json:"batchId"`
	TemplateID      string         `json:"templateId,omitempty"`
	TemplateName    string         `json:"templateName,omitempty"`
	TemplateShortID string         `json:"templateShortId,omitempty"`
	Format          string         `json:"format,omitempty"`
	Status          string         `json:"status"`
	TotalJobs       int            `json:"totalJobs"`
	CompletedJobs   int            `json:"completedJobs"`
	FailedJobs      int            `json:"failedJobs"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       *time.Time     `json:"createdAt,omitempty"`
	ProcessingAt    *time.Time     `json:"processingAt,omitempty"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
}

// Terminal reports whether the batch has finished. Unlike single jobs,
// batches have a third terminal state, partial.
func (r *BatchStatusResult) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusPartial || r.Status == StatusFailed
}

// Completed reports whether every job in the batch succeeded.
func (r *BatchStatusResult) Completed() bool {
	return r.Status == StatusCompleted
}

// Partial reports whether the batch finished with a mix of successes and
// failures.
func (r *BatchStatusResult) Partial() bool {
	return r.Status == StatusPartial
}

// Failed reports whether the batch failed outright.
func (r *BatchStatusResult) Failed() bool {
	return r.Status == StatusFailed
}

// TemplateVariable describes one variable a template expects.
type TemplateVariable struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required,omitempty"`
	DefaultValue any    `json:"defaultValue,omitempty"`
}

// Template is a document template.
type Template struct {
	ID            string             `json:"id"`
	ShortID       string             `json:"shortId,omitempty"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Type          string             `json:"type,omitempty"`
	OutputFormats []string           `json:"outputFormats,omitempty"`
	Variables     []TemplateVariable `json:"variables,omitempty"`
	CreatedAt     *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time         `json:"updatedAt,omitempty"`
}

// User is the account associated with an API key.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	TeamID        string `json:"teamId,omitempty"`
	WorkspaceID   string `json:"workspaceId,omitempty"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// Subscription is a webhook subscription. Subscriptions are managed
// through the Rynko dashboard and are read-only from the SDK.
type Subscription struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Events      []string `json:"events"`
	Description string   `json:"description,omitempty"`
	Active      bool     `json:"isActive"`
	Secret      string   `json:"secret,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}
