package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplan/internal/domain"
	"tripplan/internal/handler"
	"tripplan/internal/itinerary"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
// Set only the method fields your test needs.
type mockItineraryServicer struct {
	days       func(ctx context.Context) []itinerary.Day
	add        func(ctx context.Context, e domain.Entry) (domain.Entry, bool, error)
	update     func(ctx context.Context, id string, e domain.Entry) (domain.Entry, bool, error)
	delete     func(ctx context.Context, id string) (bool, error)
	reorder    func(ctx context.Context, date string, ids []string) ([]itinerary.Day, bool, error)
	focusDay   func(ctx context.Context, date string) itinerary.FocusPlan
	focusEntry func(ctx context.Context, id string) (itinerary.CityFocus, bool, error)
	clearFocus func()
	mapRender  func(ctx context.Context) itinerary.MapRender
}

func (m *mockItineraryServicer) Days(ctx context.Context) []itinerary.Day { return m.days(ctx) }
func (m *mockItineraryServicer) Add(ctx context.Context, e domain.Entry) (domain.Entry, bool, error) {
	return m.add(ctx, e)
}
func (m *mockItineraryServicer) Update(ctx context.Context, id string, e domain.Entry) (domain.Entry, bool, error) {
	return m.update(ctx, id, e)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, id string) (bool, error) {
	return m.delete(ctx, id)
}
func (m *mockItineraryServicer) Reorder(ctx context.Context, date string, ids []string) ([]itinerary.Day, bool, error) {
	return m.reorder(ctx, date, ids)
}
func (m *mockItineraryServicer) FocusDay(ctx context.Context, date string) itinerary.FocusPlan {
	return m.focusDay(ctx, date)
}
func (m *mockItineraryServicer) FocusEntry(ctx context.Context, id string) (itinerary.CityFocus, bool, error) {
	return m.focusEntry(ctx, id)
}
func (m *mockItineraryServicer) ClearFocus() { m.clearFocus() }
func (m *mockItineraryServicer) Map(ctx context.Context) itinerary.MapRender {
	return m.mapRender(ctx)
}

// compile-time check: mockItineraryServicer must satisfy handler.ItineraryServicer.
var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

func TestAddEntry_201(t *testing.T) {
	var got domain.Entry
	svc := &mockItineraryServicer{
		add: func(_ context.Context, e domain.Entry) (domain.Entry, bool, error) {
			got = e
			e.ID = "new-id"
			return e, true, nil
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary", map[string]any{
		"date": "2026-04-10", "time": "09:00", "type": "poi", "title": "Ramen",
		"lat": 35.0, "lon": "135.0",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, got.HasCoords(), "a numeric string coordinate still decodes")
	assert.Equal(t, 135.0, *got.Lon)

	var resp struct {
		Entry        domain.Entry `json:"entry"`
		RefreshFocus bool         `json:"refreshFocus"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "new-id", resp.Entry.ID)
	assert.True(t, resp.RefreshFocus)
}

func TestAddEntry_HalfCoordinateDropsPair(t *testing.T) {
	var got domain.Entry
	svc := &mockItineraryServicer{
		add: func(_ context.Context, e domain.Entry) (domain.Entry, bool, error) {
			got = e
			return e, false, nil
		},
	}

	serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary", map[string]any{
		"date": "2026-04-10", "type": "poi", "title": "Ramen", "lat": 35.0,
	})

	assert.Nil(t, got.Lat)
	assert.Nil(t, got.Lon)
}

func TestAddEntry_JunkCoordinateTreatedAbsent(t *testing.T) {
	var got domain.Entry
	svc := &mockItineraryServicer{
		add: func(_ context.Context, e domain.Entry) (domain.Entry, bool, error) {
			got = e
			return e, false, nil
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary", map[string]any{
		"date": "2026-04-10", "type": "poi", "title": "Ramen", "lat": "north", "lon": 135.0,
	})

	assert.Equal(t, http.StatusCreated, rec.Code, "junk coordinates are not a request error")
	assert.False(t, got.HasCoords())
}

func TestAddEntry_422(t *testing.T) {
	svc := &mockItineraryServicer{
		add: func(_ context.Context, _ domain.Entry) (domain.Entry, bool, error) {
			return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Add: %w: date is required", domain.ErrValidation)
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary", map[string]any{"type": "note"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestAddEntry_BadJSON(t *testing.T) {
	svc := &mockItineraryServicer{}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary", "not an object")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEntry_404(t *testing.T) {
	svc := &mockItineraryServicer{
		update: func(_ context.Context, _ string, _ domain.Entry) (domain.Entry, bool, error) {
			return domain.Entry{}, false, fmt.Errorf("service.ItineraryService.Update: %w", domain.ErrNotFound)
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPut, "/api/v1/itinerary/nope", map[string]any{"type": "note"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestDeleteEntry_200(t *testing.T) {
	svc := &mockItineraryServicer{
		delete: func(_ context.Context, id string) (bool, error) {
			assert.Equal(t, "e1", id)
			return true, nil
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodDelete, "/api/v1/itinerary/e1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		RefreshFocus bool `json:"refreshFocus"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.RefreshFocus)
}

func TestReorderDay_200(t *testing.T) {
	svc := &mockItineraryServicer{
		reorder: func(_ context.Context, date string, ids []string) ([]itinerary.Day, bool, error) {
			assert.Equal(t, "2026-04-10", date)
			assert.Equal(t, []string{"b", "a"}, ids)
			return []itinerary.Day{{Date: date}}, true, nil
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary/days/2026-04-10/reorder", map[string]any{
		"ids": []string{"b", "a"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Days         []itinerary.Day `json:"days"`
		RefreshFocus bool            `json:"refreshFocus"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Days, 1)
	assert.True(t, resp.RefreshFocus)
}

func TestFocusDay_200(t *testing.T) {
	svc := &mockItineraryServicer{
		focusDay: func(_ context.Context, date string) itinerary.FocusPlan {
			return itinerary.FocusPlan{Date: date, Highlight: []string{"kyoto"}}
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/itinerary/days/2026-04-10/focus", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var plan itinerary.FocusPlan
	decodeBody(t, rec, &plan)
	assert.Equal(t, "2026-04-10", plan.Date)
}

func TestFocusEntry_204WhenNoReaction(t *testing.T) {
	svc := &mockItineraryServicer{
		focusEntry: func(_ context.Context, _ string) (itinerary.CityFocus, bool, error) {
			return itinerary.CityFocus{}, false, nil
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodPost, "/api/v1/focus/entry/e1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestClearFocus_204(t *testing.T) {
	cleared := false
	svc := &mockItineraryServicer{clearFocus: func() { cleared = true }}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodDelete, "/api/v1/focus", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, cleared)
}

func TestGetMap_200(t *testing.T) {
	svc := &mockItineraryServicer{
		mapRender: func(_ context.Context) itinerary.MapRender {
			return itinerary.MapRender{Padding: itinerary.FitPadding, Max: itinerary.MapBounds}
		},
	}

	rec := serve(t, handler.Deps{Itinerary: svc}, http.MethodGet, "/api/v1/map", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var r itinerary.MapRender
	decodeBody(t, rec, &r)
	assert.Equal(t, itinerary.FitPadding, r.Padding)
	assert.Equal(t, itinerary.MapBounds, r.Max)
}
