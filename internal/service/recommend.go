package service

import (
	"context"
	"fmt"
	"strings"

	"tripplan/internal/catalog"
	"tripplan/internal/domain"
	"tripplan/internal/store"
)

// RecommendService exposes the read-only recommendations catalog and the
// "add to itinerary" actions that turn catalog records into poi entries.
type RecommendService struct {
	docs    store.DocumentStore
	cat     *catalog.Catalog
	entries *ItineraryService
}

// NewRecommendService constructs a RecommendService.
func NewRecommendService(docs store.DocumentStore, cat *catalog.Catalog, entries *ItineraryService) *RecommendService {
	return &RecommendService{docs: docs, cat: cat, entries: entries}
}

// List returns the catalog records matching the filters plus the distinct
// feed city names for the filter dropdown.
func (s *RecommendService) List(city, category string) ([]domain.Recommendation, []string) {
	return s.cat.Filter(city, category), s.cat.Cities()
}

// Add turns the named catalog record into a poi entry on date. The entry
// references the registry city whose name matches the record's city
// (case-insensitive), when there is one, and carries the record's
// coordinates when the feed provided a usable pair. The bool reports
// whether the focused day was touched.
func (s *RecommendService) Add(ctx context.Context, name, date, clock string) (domain.Entry, bool, error) {
	if date == "" {
		return domain.Entry{}, false, fmt.Errorf("service.RecommendService.Add: %w: date is required", domain.ErrValidation)
	}

	var rec *domain.Recommendation
	for _, r := range s.cat.Items() {
		if r.Name == name {
			rec = &r
			break
		}
	}
	if rec == nil {
		return domain.Entry{}, false, fmt.Errorf("service.RecommendService.Add: %w", domain.ErrNotFound)
	}

	entry, refresh, err := s.entries.Add(ctx, s.entryFor(ctx, *rec, date, clock))
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("service.RecommendService.Add: %w", err)
	}
	return entry, refresh, nil
}

// AddAll adds every record matching the filters to date, in feed order.
// It returns the created entries and whether the focused day was touched.
func (s *RecommendService) AddAll(ctx context.Context, city, category, date, clock string) ([]domain.Entry, bool, error) {
	if date == "" {
		return nil, false, fmt.Errorf("service.RecommendService.AddAll: %w: date is required", domain.ErrValidation)
	}

	added := []domain.Entry{}
	refresh := false
	for _, rec := range s.cat.Filter(city, category) {
		entry, r, err := s.entries.Add(ctx, s.entryFor(ctx, rec, date, clock))
		if err != nil {
			return nil, false, fmt.Errorf("service.RecommendService.AddAll: %w", err)
		}
		added = append(added, entry)
		refresh = refresh || r
	}
	return added, refresh, nil
}

// entryFor builds the poi entry for a catalog record.
func (s *RecommendService) entryFor(ctx context.Context, rec domain.Recommendation, date, clock string) domain.Entry {
	e := domain.Entry{
		Date:  date,
		Time:  clock,
		Type:  domain.EntryPOI,
		Ref:   s.cityKeyByName(ctx, rec.City),
		Title: rec.Name,
	}
	if rec.HasCoords() {
		lat, lon := rec.Lat.Value, rec.Lon.Value
		e.Lat, e.Lon = &lat, &lon
	}
	return e
}

// cityKeyByName resolves a feed city name against the registry,
// case-insensitively. No match means an unreferenced poi.
func (s *RecommendService) cityKeyByName(ctx context.Context, name string) string {
	for _, c := range loadDocument(ctx, s.docs).Cities {
		if strings.EqualFold(c.Name, name) {
			return c.Key
		}
	}
	return ""
}
