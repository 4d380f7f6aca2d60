package rynko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhooks_ListNormalizesDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook-subscriptions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`{
			"data": [
				{"id": "wh_1", "url": "https://example.com/hooks", "events": ["document.completed"], "isActive": true}
			],
			"total": 1
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.Webhooks().List(context.Background(), 0, 0)
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "wh_1", result.Data[0].ID)
	assert.True(t, result.Data[0].Active)
	assert.Equal(t, PaginationMeta{Page: 1, Limit: 20, Total: 1, TotalPages: 1}, result.Meta)
	assert.False(t, result.HasMore())
}

func TestWebhooks_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook-subscriptions/wh_1", r.URL.Path)
		w.Write([]byte(`{"id": "wh_1", "url": "https://example.com/hooks", "events": ["batch.completed"]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	sub, err := client.Webhooks().Get(context.Background(), "wh_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"batch.completed"}, sub.Events)
}
