package rynko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatesPayload = `{
	"data": [
		{"id": "tmpl_1", "name": "Invoice", "outputFormats": ["pdf"]},
		{"id": "tmpl_2", "name": "Report", "outputFormats": ["pdf", "xlsx"]},
		{"id": "tmpl_3", "name": "Ledger", "outputFormats": ["xlsx"]}
	],
	"meta": {"page": 1, "limit": 20, "total": 40, "totalPages": 2}
}`

func TestTemplates_ListEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Templates are served outside the versioned prefix.
		assert.Equal(t, "/api/templates/attachment", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(templatesPayload))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api/v1")
	result, err := client.Templates().List(context.Background(), ListTemplatesOptions{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Len(t, result.Data, 3)
	assert.Equal(t, "Invoice", result.Data[0].Name)
	assert.Equal(t, PaginationMeta{Page: 1, Limit: 20, Total: 40, TotalPages: 2}, result.Meta)
	assert.True(t, result.HasMore())
}

func TestTemplates_FormatFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(templatesPayload))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api/v1")
	ctx := context.Background()

	pdf, err := client.Templates().ListPDF(ctx, ListTemplatesOptions{})
	require.NoError(t, err)
	require.Len(t, pdf.Data, 2)
	assert.Equal(t, "tmpl_1", pdf.Data[0].ID)
	assert.Equal(t, "tmpl_2", pdf.Data[1].ID)

	excel, err := client.Templates().ListExcel(ctx, ListTemplatesOptions{})
	require.NoError(t, err)
	require.Len(t, excel.Data, 2)
	assert.Equal(t, "tmpl_2", excel.Data[0].ID)
	assert.Equal(t, "tmpl_3", excel.Data[1].ID)
}

func TestTemplates_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/templates/tmpl_invoice", r.URL.Path)
		w.Write([]byte(`{
			"id": "tmpl_invoice",
			"shortId": "tmpl_abc123",
			"name": "Invoice",
			"variables": [{"name": "invoiceNumber", "type": "string", "required": true}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api/v1")
	tmpl, err := client.Templates().Get(context.Background(), "tmpl_invoice")
	require.NoError(t, err)

	assert.Equal(t, "Invoice", tmpl.Name)
	require.Len(t, tmpl.Variables, 1)
	assert.True(t, tmpl.Variables[0].Required)

	// Short-id and slug lookups hit the same endpoint.
	_, err = client.Templates().GetByShortID(context.Background(), "tmpl_invoice")
	require.NoError(t, err)
}
