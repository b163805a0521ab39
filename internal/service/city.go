package service

import (
	"context"
	"fmt"
	"strings"

	"tripplan/internal/domain"
	"tripplan/internal/itinerary"
	"tripplan/internal/store"
)

// CityService implements the city registry operations. It owns the map
// selection side effects: focusing a city records the selection, deleting a
// city resets it.
type CityService struct {
	docs store.DocumentStore
	view *ViewService
}

// NewCityService constructs a CityService backed by the store and view state.
func NewCityService(docs store.DocumentStore, view *ViewService) *CityService {
	return &CityService{docs: docs, view: view}
}

// List returns the registry in route order.
func (s *CityService) List(ctx context.Context) []domain.City {
	return loadDocument(ctx, s.docs).Cities
}

// Get returns one city by key.
func (s *CityService) Get(ctx context.Context, key string) (domain.City, error) {
	c, ok := domain.FindCity(loadDocument(ctx, s.docs).Cities, key)
	if !ok {
		return domain.City{}, fmt.Errorf("service.CityService.Get: %w", domain.ErrNotFound)
	}
	return c, nil
}

// Add appends a new city to the end of the route. The key derives from the
// name and is suffixed ("-2", "-3", ...) until unique.
func (s *CityService) Add(ctx context.Context, c domain.City) (domain.City, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.City{}, fmt.Errorf("service.CityService.Add: %w: name is required", domain.ErrValidation)
	}

	d := loadDocument(ctx, s.docs)

	base := domain.CityKey(c.Name)
	c.Key = base
	for n := 2; ; n++ {
		if _, taken := domain.FindCity(d.Cities, c.Key); !taken {
			break
		}
		c.Key = fmt.Sprintf("%s-%d", base, n)
	}
	c.Friend = false

	d.Cities = append(d.Cities, c)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.City{}, fmt.Errorf("service.CityService.Add: %w", err)
	}
	return c, nil
}

// Update overwrites the editable fields of a city. A blank name keeps the
// old one rather than erasing it.
func (s *CityService) Update(ctx context.Context, key string, c domain.City) (domain.City, error) {
	d := loadDocument(ctx, s.docs)

	for i := range d.Cities {
		if d.Cities[i].Key != key {
			continue
		}
		if name := strings.TrimSpace(c.Name); name != "" {
			d.Cities[i].Name = name
		}
		d.Cities[i].Lat = c.Lat
		d.Cities[i].Lon = c.Lon
		d.Cities[i].Dates = c.Dates
		d.Cities[i].Stay = c.Stay
		d.Cities[i].Transport = c.Transport
		d.Cities[i].Plan = c.Plan
		d.Cities[i].Notes = c.Notes
		d.Cities[i].SideTrip = c.SideTrip

		if err := saveDocument(ctx, s.docs, d); err != nil {
			return domain.City{}, fmt.Errorf("service.CityService.Update: %w", err)
		}
		return d.Cities[i], nil
	}
	return domain.City{}, fmt.Errorf("service.CityService.Update: %w", domain.ErrNotFound)
}

// Delete removes a city from the route and clears the map selection to the
// first remaining city. Itinerary entries referencing the city are left in
// place with a dangling ref; day focus skips them.
func (s *CityService) Delete(ctx context.Context, key string) error {
	d := loadDocument(ctx, s.docs)

	idx := -1
	for i, c := range d.Cities {
		if c.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("service.CityService.Delete: %w", domain.ErrNotFound)
	}

	d.Cities = append(d.Cities[:idx], d.Cities[idx+1:]...)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return fmt.Errorf("service.CityService.Delete: %w", err)
	}
	s.view.OnCityDeleted(d.Cities)
	return nil
}

// Reorder moves the city fromKey to the position currently held by toKey,
// shifting the rest. Unknown keys make the drop a silent no-op, matching
// the drag-and-drop surface this backs.
func (s *CityService) Reorder(ctx context.Context, fromKey, toKey string) ([]domain.City, error) {
	d := loadDocument(ctx, s.docs)

	fi, ti := -1, -1
	for i, c := range d.Cities {
		if c.Key == fromKey {
			fi = i
		}
		if c.Key == toKey {
			ti = i
		}
	}
	if fi < 0 || ti < 0 || fi == ti {
		return d.Cities, nil
	}

	moved := d.Cities[fi]
	d.Cities = append(d.Cities[:fi], d.Cities[fi+1:]...)
	d.Cities = append(d.Cities[:ti], append([]domain.City{moved}, d.Cities[ti:]...)...)

	if err := saveDocument(ctx, s.docs, d); err != nil {
		return nil, fmt.Errorf("service.CityService.Reorder: %w", err)
	}
	return d.Cities, nil
}

// Focus selects a city and returns the map reaction: center, pulse, and
// marker highlight.
func (s *CityService) Focus(ctx context.Context, key string) (itinerary.CityFocus, error) {
	c, err := s.Get(ctx, key)
	if err != nil {
		return itinerary.CityFocus{}, fmt.Errorf("service.CityService.Focus: %w", err)
	}
	s.view.Select(key)
	return itinerary.FocusCity(c), nil
}
