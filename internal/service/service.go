// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce the document's shape rules, and
// orchestrate loads and saves of the single document blob. No storage
// format knowledge lives here; services depend on store.DocumentStore.
//
// Every mutating operation is a load-mutate-save round trip. There is no
// cross-request coordination: the last writer wins, matching the product's
// single-tab persistence model.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"tripplan/internal/domain"
	"tripplan/internal/metrics"
	"tripplan/internal/store"
)

// loadDocument returns the current document, substituting the built-in
// defaults when the store is empty or the stored blob is corrupt. Storage
// corruption is recovered silently, never surfaced to the user.
func loadDocument(ctx context.Context, docs store.DocumentStore) domain.Document {
	raw, err := docs.Load(ctx)
	if err != nil || len(raw) == 0 {
		return domain.Default()
	}
	d, err := domain.Decode(raw)
	if err != nil {
		return domain.Default()
	}
	return d
}

// saveDocument serializes and persists the document.
func saveDocument(ctx context.Context, docs store.DocumentStore, d domain.Document) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("service.saveDocument: marshal: %w", err)
	}
	if err := docs.Save(ctx, raw); err != nil {
		return fmt.Errorf("service.saveDocument: %w", err)
	}
	metrics.DocumentSaves.Inc()
	return nil
}
