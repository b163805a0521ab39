package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripplan/internal/domain"
	"tripplan/internal/store"
)

// NoteService implements the free-form notes panel. Notes are newest-first;
// they are addressed by index within that order.
type NoteService struct {
	docs store.DocumentStore

	// now is injectable for tests.
	now func() time.Time
}

// NewNoteService constructs a NoteService.
func NewNoteService(docs store.DocumentStore) *NoteService {
	return &NoteService{docs: docs, now: time.Now}
}

// List returns all notes, newest first.
func (s *NoteService) List(ctx context.Context) []domain.Note {
	return loadDocument(ctx, s.docs).Notes
}

// Add prepends a note. A note needs a title or a body; both empty is a
// validation error.
func (s *NoteService) Add(ctx context.Context, title, tag, body string) (domain.Note, error) {
	title, tag, body = strings.TrimSpace(title), strings.TrimSpace(tag), strings.TrimSpace(body)
	if title == "" && body == "" {
		return domain.Note{}, fmt.Errorf("service.NoteService.Add: %w: a title or body is required", domain.ErrValidation)
	}

	d := loadDocument(ctx, s.docs)
	n := domain.Note{Title: title, Tag: tag, Body: body, TS: s.now().UnixMilli()}
	d.Notes = append([]domain.Note{n}, d.Notes...)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Add: %w", err)
	}
	return n, nil
}

// Update replaces the note at index, refreshing its timestamp.
func (s *NoteService) Update(ctx context.Context, index int, title, tag, body string) (domain.Note, error) {
	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Notes) {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", domain.ErrNotFound)
	}
	d.Notes[index] = domain.Note{
		Title: strings.TrimSpace(title),
		Tag:   strings.TrimSpace(tag),
		Body:  strings.TrimSpace(body),
		TS:    s.now().UnixMilli(),
	}
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	return d.Notes[index], nil
}

// Delete removes the note at index.
func (s *NoteService) Delete(ctx context.Context, index int) error {
	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Notes) {
		return fmt.Errorf("service.NoteService.Delete: %w", domain.ErrNotFound)
	}
	d.Notes = append(d.Notes[:index], d.Notes[index+1:]...)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return fmt.Errorf("service.NoteService.Delete: %w", err)
	}
	return nil
}
