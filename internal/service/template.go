package service

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"tripplan/internal/domain"
	"tripplan/internal/store"
	"tripplan/templates"
)

// TemplateService lists and applies the built-in trip templates.
type TemplateService struct {
	docs store.DocumentStore
	fsys fs.FS
}

// NewTemplateService constructs a TemplateService over the embedded
// template files.
func NewTemplateService(docs store.DocumentStore) *TemplateService {
	return &TemplateService{docs: docs, fsys: templates.FS}
}

// List returns the available template names, sorted.
func (s *TemplateService) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("service.TemplateService.List: %w", err)
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Apply replaces the current document with the named template, running the
// usual migration pass. Unknown names return domain.ErrNotFound.
func (s *TemplateService) Apply(ctx context.Context, name string) (domain.Document, error) {
	raw, err := fs.ReadFile(s.fsys, name+".json")
	if err != nil {
		return domain.Document{}, fmt.Errorf("service.TemplateService.Apply: %w", domain.ErrNotFound)
	}

	d, err := domain.Decode(raw)
	if err != nil {
		// Embedded templates are validated by tests; a decode failure here
		// is a build defect, not user error.
		return domain.Document{}, fmt.Errorf("service.TemplateService.Apply: template %s: %w", name, err)
	}
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Document{}, fmt.Errorf("service.TemplateService.Apply: %w", err)
	}
	return d, nil
}
