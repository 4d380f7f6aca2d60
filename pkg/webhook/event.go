package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

// Event types currently emitted by Rynko. Unknown types still parse; the
// typed Document/Batch views are just absent for them.
const (
	EventDocumentGenerated  = "document.generated"
	EventDocumentCompleted  = "document.completed"
	EventDocumentFailed     = "document.failed"
	EventDocumentDownloaded = "document.downloaded"
	EventBatchCompleted     = "batch.completed"
	EventBatchFailed        = "batch.failed"
)

// DocumentEventData is the payload of document.* events.
type DocumentEventData struct {
	JobID        string         `mapstructure:"jobId"`
	Status       string         `mapstructure:"status"`
	DownloadURL  string         `mapstructure:"downloadUrl"`
	ErrorMessage string         `mapstructure:"errorMessage"`
	ErrorCode    string         `mapstructure:"errorCode"`
	Metadata     map[string]any `mapstructure:"metadata"`
}

// BatchEventData is the payload of batch.* events.
type BatchEventData struct {
	BatchID       string         `mapstructure:"batchId"`
	Status        string         `mapstructure:"status"`
	TotalJobs     int            `mapstructure:"totalJobs"`
	CompletedJobs int            `mapstructure:"completedJobs"`
	FailedJobs    int            `mapstructure:"failedJobs"`
	Metadata      map[string]any `mapstructure:"metadata"`
}

// Event is a parsed webhook delivery. The typed view matching the event's
// type tag is decoded once at parse time: exactly one of Document and
// Batch is non-nil for document.* and batch.* events, and the raw Data map
// is always kept.
type Event struct {
	ID        string
	Type      string
	CreatedAt string

	// Data is the raw payload, useful for event types this SDK version
	// does not know about.
	Data map[string]any

	// Document is set for document.* events.
	Document *DocumentEventData

	// Batch is set for batch.* events.
	Batch *BatchEventData
}

// eventEnvelope is the wire shape of a delivery.
type eventEnvelope struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	CreatedAt string         `json:"createdAt"`
	Data      map[string]any `json:"data"`
}

// ParseEvent parses a payload into a typed Event without verifying its
// signature. Callers must verify first unless the payload comes from a
// trusted source; Verifier.ConstructEvent does both.
func ParseEvent(payload []byte) (*Event, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("webhook: parse event: %w", err)
	}

	event := &Event{
		ID:        envelope.ID,
		Type:      envelope.Type,
		CreatedAt: envelope.CreatedAt,
		Data:      envelope.Data,
	}

	switch {
	case strings.HasPrefix(envelope.Type, "document."):
		var data DocumentEventData
		if err := mapstructure.Decode(envelope.Data, &data); err != nil {
			return nil, fmt.Errorf("webhook: decode document event data: %w", err)
		}
		event.Document = &data
	case strings.HasPrefix(envelope.Type, "batch."):
		var data BatchEventData
		if err := mapstructure.Decode(envelope.Data, &data); err != nil {
			return nil, fmt.Errorf("webhook: decode batch event data: %w", err)
		}
		event.Batch = &data
	}

	return event, nil
}

// IsDocumentEvent reports whether the event carries a document payload.
func (e *Event) IsDocumentEvent() bool {
	return e.Document != nil
}

// IsBatchEvent reports whether the event carries a batch payload.
func (e *Event) IsBatchEvent() bool {
	return e.Batch != nil
}

// CreatedAtTime parses the delivery timestamp. The server has emitted
// both RFC3339 and epoch-style stamps over time, so parsing is lenient.
func (e *Event) CreatedAtTime() (time.Time, error) {
	if e.CreatedAt == "" {
		return time.Time{}, fmt.Errorf("webhook: event has no createdAt")
	}
	return dateparse.ParseAny(e.CreatedAt)
}
