package rynko

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// WebhooksService lists webhook subscriptions. Subscriptions are managed
// through the Rynko dashboard; signature verification of inbound webhook
// payloads lives in the webhook package.
type WebhooksService struct {
	client *Client
}

// subscriptionsEnvelope is the backend's envelope for subscription
// listings.
type subscriptionsEnvelope struct {
	Data  []Subscription `json:"data"`
	Total int            `json:"total"`
}

// List returns webhook subscriptions. Page and limit default to 1 and 20.
func (s *WebhooksService) List(ctx context.Context, page, limit int) (*ListResponse[Subscription], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	req, err := newRequest(http.MethodGet, s.client.url("/webhook-subscriptions"), query, nil)
	if err != nil {
		return nil, err
	}
	envelope, err := doJSON[subscriptionsEnvelope](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return newListResponse(envelope.Data, envelope.Total, page, limit), nil
}

// Get fetches a webhook subscription by ID.
func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*Subscription, error) {
	req, err := newRequest(http.MethodGet, s.client.url("/webhook-subscriptions/"+webhookID), nil, nil)
	if err != nil {
		return nil, err
	}
	sub, err := doJSON[Subscription](ctx, s.client, req)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
