package rynko

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strconv"
)

// TemplatesService handles template operations. Templates are served from
// the non-versioned API prefix.
type TemplatesService struct {
	client *Client
}

// ListTemplatesOptions paginates and filters List. Zero values are
// omitted from the request.
type ListTemplatesOptions struct {
	Page   int
	Limit  int
	Search string // match on template name
}

// List returns templates. This endpoint serves the {data, meta} envelope
// directly, so no client-side normalization is needed.
func (s *TemplatesService) List(ctx context.Context, opts ListTemplatesOptions) (*ListResponse[Template], error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}

	req, err := newRequest(http.MethodGet, s.client.baseURLWithoutVersion()+"/api/templates/attachment", query, nil)
	if err != nil {
		return nil, err
	}
	result, err := doJSON[ListResponse[Template]](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPDF returns templates that can render PDF output. The filter is
// applied client-side on outputFormats.
func (s *TemplatesService) ListPDF(ctx context.Context, opts ListTemplatesOptions) (*ListResponse[Template], error) {
	return s.listByFormat(ctx, opts, "pdf")
}

// ListExcel returns templates that can render Excel output.
func (s *TemplatesService) ListExcel(ctx context.Context, opts ListTemplatesOptions) (*ListResponse[Template], error) {
	return s.listByFormat(ctx, opts, "xlsx", "excel")
}

func (s *TemplatesService) listByFormat(ctx context.Context, opts ListTemplatesOptions, formats ...string) (*ListResponse[Template], error) {
	result, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	filtered := make([]Template, 0, len(result.Data))
	for _, tmpl := range result.Data {
		for _, f := range formats {
			if slices.Contains(tmpl.OutputFormats, f) {
				filtered = append(filtered, tmpl)
				break
			}
		}
	}
	result.Data = filtered
	return result, nil
}

// Get fetches a template by UUID, short ID, or slug.
func (s *TemplatesService) Get(ctx context.Context, templateID string) (*Template, error) {
	req, err := newRequest(http.MethodGet, s.client.baseURLWithoutVersion()+"/api/templates/"+templateID, nil, nil)
	if err != nil {
		return nil, err
	}
	tmpl, err := doJSON[Template](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// GetByShortID fetches a template by short ID (e.g. "tmpl_abc123").
func (s *TemplatesService) GetByShortID(ctx context.Context, shortID string) (*Template, error) {
	return s.Get(ctx, shortID)
}

// GetBySlug fetches a template by slug (e.g. "invoice-template").
func (s *TemplatesService) GetBySlug(ctx context.Context, slug string) (*Template, error) {
	return s.Get(ctx, slug)
}
