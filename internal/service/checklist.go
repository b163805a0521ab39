package service

import (
	"context"
	"fmt"
	"strings"

	"tripplan/internal/domain"
	"tripplan/internal/store"
)

// ChecklistService implements the packing checklist. Items are addressed by
// index, like the budget ledger.
type ChecklistService struct {
	docs store.DocumentStore
}

// NewChecklistService constructs a ChecklistService.
func NewChecklistService(docs store.DocumentStore) *ChecklistService {
	return &ChecklistService{docs: docs}
}

// List returns the checklist.
func (s *ChecklistService) List(ctx context.Context) []domain.ChecklistItem {
	return loadDocument(ctx, s.docs).Checklist
}

// Add appends an unchecked item. Whitespace-only text is a validation error.
func (s *ChecklistService) Add(ctx context.Context, text string) (domain.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.Add: %w: text is required", domain.ErrValidation)
	}

	d := loadDocument(ctx, s.docs)
	item := domain.ChecklistItem{Text: text}
	d.Checklist = append(d.Checklist, item)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.Add: %w", err)
	}
	return item, nil
}

// SetDone checks or unchecks the item at index.
func (s *ChecklistService) SetDone(ctx context.Context, index int, done bool) (domain.ChecklistItem, error) {
	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Checklist) {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.SetDone: %w", domain.ErrNotFound)
	}
	d.Checklist[index].Done = done
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.SetDone: %w", err)
	}
	return d.Checklist[index], nil
}

// Delete removes the item at index.
func (s *ChecklistService) Delete(ctx context.Context, index int) error {
	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Checklist) {
		return fmt.Errorf("service.ChecklistService.Delete: %w", domain.ErrNotFound)
	}
	d.Checklist = append(d.Checklist[:index], d.Checklist[index+1:]...)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return fmt.Errorf("service.ChecklistService.Delete: %w", err)
	}
	return nil
}

// Clear empties the whole checklist. The product button is labelled "clear
// checked" but has always dropped everything; kept as-is.
func (s *ChecklistService) Clear(ctx context.Context) error {
	d := loadDocument(ctx, s.docs)
	d.Checklist = []domain.ChecklistItem{}
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return fmt.Errorf("service.ChecklistService.Clear: %w", err)
	}
	return nil
}
