package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tripplan/internal/domain"
	"tripplan/internal/itinerary"
	"tripplan/internal/store"
)

// ItineraryService implements the itinerary operations and their map
// synchronization: every mutation reports whether the currently focused day
// was touched, so callers know to refresh the overlay.
type ItineraryService struct {
	docs store.DocumentStore
	view *ViewService
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(docs store.DocumentStore, view *ViewService) *ItineraryService {
	return &ItineraryService{docs: docs, view: view}
}

// Days returns the whole itinerary grouped and ordered for rendering.
func (s *ItineraryService) Days(ctx context.Context) []itinerary.Day {
	return itinerary.Days(loadDocument(ctx, s.docs).Itinerary)
}

// Add validates, normalizes, and appends a new entry. The returned bool is
// true when the entry landed on the currently focused day.
func (s *ItineraryService) Add(ctx context.Context, e domain.Entry) (domain.Entry, bool, error) {
	if err := e.Validate(); err != nil {
		return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Add: %w", err)
	}
	e.ID = uuid.NewString()
	e.Normalize()

	d := loadDocument(ctx, s.docs)
	d.Itinerary = append(d.Itinerary, e)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Add: %w", err)
	}
	return e, e.Date == s.view.ActiveDate(), nil
}

// Update applies an inline edit to an existing entry: type, time, ref,
// title, and coordinates can all change; the date cannot (entries never
// move between days through editing). Values are normalized per the new
// type, so fields the type does not carry are dropped, not rejected.
func (s *ItineraryService) Update(ctx context.Context, id string, e domain.Entry) (domain.Entry, bool, error) {
	d := loadDocument(ctx, s.docs)

	for i := range d.Itinerary {
		if d.Itinerary[i].ID != id {
			continue
		}
		cur := &d.Itinerary[i]
		cur.Type = e.Type
		cur.Time = e.Time
		cur.Ref = e.Ref
		cur.Title = e.Title
		cur.Lat, cur.Lon = e.Lat, e.Lon
		if err := validateEdit(*cur); err != nil {
			return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Update: %w", err)
		}
		cur.Normalize()

		if err := saveDocument(ctx, s.docs, d); err != nil {
			return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Update: %w", err)
		}
		return *cur, cur.Date == s.view.ActiveDate(), nil
	}
	return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Update: %w", domain.ErrNotFound)
}

// validateEdit checks the rules an inline edit must still satisfy. Unlike
// Validate it does not require a poi title; the edit form defaults one in
// Normalize instead of rejecting the save.
func validateEdit(e domain.Entry) error {
	switch e.Type {
	case domain.EntryCity:
		if e.Ref == "" {
			return fmt.Errorf("%w: city entry requires a city ref", domain.ErrValidation)
		}
	case domain.EntryPOI, domain.EntryNote:
	default:
		return fmt.Errorf("%w: unknown entry type %q", domain.ErrValidation, e.Type)
	}
	return nil
}

// Delete removes one entry by id.
func (s *ItineraryService) Delete(ctx context.Context, id string) (bool, error) {
	d := loadDocument(ctx, s.docs)

	for i, e := range d.Itinerary {
		if e.ID != id {
			continue
		}
		date := e.Date
		d.Itinerary = append(d.Itinerary[:i], d.Itinerary[i+1:]...)
		if err := saveDocument(ctx, s.docs, d); err != nil {
			return false, fmt.Errorf("service.ItineraryService.Delete: %w", err)
		}
		return date == s.view.ActiveDate(), nil
	}
	return false, fmt.Errorf("service.ItineraryService.Delete: %w", domain.ErrNotFound)
}

// Reorder commits a within-day drag-and-drop as one transaction (see
// itinerary.ReorderDay for the exact semantics) and persists the result.
func (s *ItineraryService) Reorder(ctx context.Context, date string, ids []string) ([]itinerary.Day, bool, error) {
	d := loadDocument(ctx, s.docs)
	d.Itinerary = itinerary.ReorderDay(d.Itinerary, date, ids)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return nil, false, fmt.Errorf("service.ItineraryService.Reorder: %w", err)
	}
	return itinerary.Days(d.Itinerary), date == s.view.ActiveDate(), nil
}

// FocusDay records date as the active day and returns its overlay plan.
// The focus sticks: any later full map render re-applies it until another
// day is focused or the focus is cleared.
func (s *ItineraryService) FocusDay(ctx context.Context, date string) itinerary.FocusPlan {
	s.view.SetActiveDate(date)
	d := loadDocument(ctx, s.docs)
	return itinerary.FocusDay(date, d.Itinerary, d.Cities)
}

// FocusEntry computes the map reaction for one entry. The bool is false
// when the entry has no locatable reaction (a note, or an unlocatable poi).
// A city entry also records the selection, matching the sidebar behavior.
func (s *ItineraryService) FocusEntry(ctx context.Context, id string) (itinerary.CityFocus, bool, error) {
	d := loadDocument(ctx, s.docs)

	for _, e := range d.Itinerary {
		if e.ID != id {
			continue
		}
		focus, ok := itinerary.FocusEntry(e, d.Cities)
		if ok && focus.Highlight != "" && e.Type == domain.EntryCity {
			s.view.Select(focus.Highlight)
		}
		return focus, ok, nil
	}
	return itinerary.CityFocus{}, false, fmt.Errorf("service.ItineraryService.FocusEntry: %w", domain.ErrNotFound)
}

// ClearFocus drops the active day focus.
func (s *ItineraryService) ClearFocus() {
	s.view.ClearFocus()
}

// Map builds the full map render model, re-applying the active day focus
// when one is recorded.
func (s *ItineraryService) Map(ctx context.Context) itinerary.MapRender {
	d := loadDocument(ctx, s.docs)
	selected := s.view.EnsureSelected(d.Cities)
	return itinerary.RenderMap(d.Cities, d.Itinerary, selected, s.view.ActiveDate())
}
