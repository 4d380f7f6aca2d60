package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent_DocumentFailed(t *testing.T) {
	payload := `{
		"id": "evt_1",
		"type": "document.failed",
		"createdAt": "2026-08-30T10:00:00Z",
		"data": {
			"jobId": "job_9",
			"status": "failed",
			"errorMessage": "template render error",
			"errorCode": "ERR_X",
			"metadata": {"orderId": "ord_789"}
		}
	}`

	event, err := ParseEvent([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "document.failed", event.Type)
	assert.True(t, event.IsDocumentEvent())
	assert.False(t, event.IsBatchEvent())

	require.NotNil(t, event.Document)
	assert.Equal(t, "job_9", event.Document.JobID)
	assert.Equal(t, "ERR_X", event.Document.ErrorCode)
	assert.Equal(t, "ord_789", event.Document.Metadata["orderId"])
}

func TestParseEvent_BatchCompleted(t *testing.T) {
	payload := `{
		"id": "evt_batch_1",
		"type": "batch.completed",
		"createdAt": "2026-08-30T10:00:00Z",
		"data": {
			"batchId": "batch_456",
			"status": "completed",
			"totalJobs": 10,
			"completedJobs": 8,
			"failedJobs": 2
		}
	}`

	event, err := ParseEvent([]byte(payload))
	require.NoError(t, err)

	assert.False(t, event.IsDocumentEvent())
	assert.True(t, event.IsBatchEvent())

	require.NotNil(t, event.Batch)
	assert.Equal(t, "batch_456", event.Batch.BatchID)
	assert.Equal(t, 10, event.Batch.TotalJobs)
	assert.Equal(t, 8, event.Batch.CompletedJobs)
	assert.Equal(t, 2, event.Batch.FailedJobs)
}

func TestParseEvent_UnknownTypeKeepsRawData(t *testing.T) {
	payload := `{"id": "evt_2", "type": "credits.low", "data": {"remaining": 5}}`

	event, err := ParseEvent([]byte(payload))
	require.NoError(t, err)

	assert.False(t, event.IsDocumentEvent())
	assert.False(t, event.IsBatchEvent())
	assert.Equal(t, float64(5), event.Data["remaining"])
}

func TestParseEvent_InvalidJSON(t *testing.T) {
	_, err := ParseEvent([]byte("{"))
	require.Error(t, err)
}

func TestEvent_CreatedAtTime(t *testing.T) {
	event, err := ParseEvent([]byte(`{"id": "evt_1", "type": "document.generated", "createdAt": "2026-08-30T10:00:00Z", "data": {}}`))
	require.NoError(t, err)

	at, err := event.CreatedAtTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), at.UTC())

	empty := &Event{}
	_, err = empty.CreatedAtTime()
	require.Error(t, err)
}
