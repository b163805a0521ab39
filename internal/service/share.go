package service

import (
	"context"
	"encoding/json"
	"fmt"

	"tripplan/internal/domain"
	"tripplan/internal/metrics"
	"tripplan/internal/share"
	"tripplan/internal/store"
)

// ShareService turns the document into shareable link tokens and back.
// A token is self-contained; nothing is stored server-side for a link.
type ShareService struct {
	docs    store.DocumentStore
	baseURL string
}

// NewShareService constructs a ShareService. baseURL is the page URL the
// token is appended to as a "#d=" fragment.
func NewShareService(docs store.DocumentStore, baseURL string) *ShareService {
	return &ShareService{docs: docs, baseURL: baseURL}
}

// Link is a generated share link.
type Link struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Create encodes the current document into a link.
func (s *ShareService) Create(ctx context.Context) (Link, error) {
	d := loadDocument(ctx, s.docs)
	raw, err := json.Marshal(d)
	if err != nil {
		metrics.ShareLinks.WithLabelValues("create", "error").Inc()
		return Link{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	token, err := share.Encode(raw)
	if err != nil {
		metrics.ShareLinks.WithLabelValues("create", "error").Inc()
		return Link{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	metrics.ShareLinks.WithLabelValues("create", "ok").Inc()
	return Link{Token: token, URL: s.baseURL + "#d=" + token}, nil
}

// Apply decodes a token, merges the carried document over fresh defaults
// with the usual migration, and persists it. Persisting immediately is the
// fragment-stripping equivalent: after Apply the state is owned locally and
// future edits never re-share a stale token. A malformed token returns
// domain.ErrBadPayload and applies nothing.
func (s *ShareService) Apply(ctx context.Context, token string) (domain.Document, error) {
	raw, err := share.Decode(token)
	if err != nil {
		metrics.ShareLinks.WithLabelValues("apply", "error").Inc()
		return domain.Document{}, fmt.Errorf("service.ShareService.Apply: %w", err)
	}
	d, err := domain.Decode(raw)
	if err != nil {
		metrics.ShareLinks.WithLabelValues("apply", "error").Inc()
		return domain.Document{}, fmt.Errorf("service.ShareService.Apply: %w", err)
	}
	if err := saveDocument(ctx, s.docs, d); err != nil {
		metrics.ShareLinks.WithLabelValues("apply", "error").Inc()
		return domain.Document{}, fmt.Errorf("service.ShareService.Apply: %w", err)
	}
	metrics.ShareLinks.WithLabelValues("apply", "ok").Inc()
	return d, nil
}
