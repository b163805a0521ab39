package service

import (
	"sync"

	"tripplan/internal/domain"
)

// ViewService tracks the transient per-process view state: the currently
// selected city and the focused itinerary day. Neither is part of the
// document (not persisted, not shared via export or links),
// but they have to survive across requests so a full map re-render can
// re-apply an active day focus.
type ViewService struct {
	mu         sync.Mutex
	selected   string
	activeDate string
}

// NewViewService returns an empty view state.
func NewViewService() *ViewService {
	return &ViewService{}
}

// Selected returns the selected city key, or "" when nothing is selected.
func (v *ViewService) Selected() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Select records the selected city key.
func (v *ViewService) Select(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = key
}

// ActiveDate returns the focused day, or "" when no day focus is active.
func (v *ViewService) ActiveDate() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeDate
}

// SetActiveDate records the focused day.
func (v *ViewService) SetActiveDate(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.activeDate = date
}

// ClearFocus drops any active day focus.
func (v *ViewService) ClearFocus() {
	v.SetActiveDate("")
}

// OnCityDeleted resets the selection after a deletion: the first remaining
// city, or nothing when the registry emptied.
func (v *ViewService) OnCityDeleted(remaining []domain.City) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(remaining) > 0 {
		v.selected = remaining[0].Key
	} else {
		v.selected = ""
	}
}

// EnsureSelected resolves the effective selection against the registry:
// the stored key when it still exists, otherwise the first city. Mirrors
// the product behavior of always having an implicit selection.
func (v *ViewService) EnsureSelected(cities []domain.City) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := domain.FindCity(cities, v.selected); ok {
		return v.selected
	}
	if len(cities) > 0 {
		return cities[0].Key
	}
	return ""
}
