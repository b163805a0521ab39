package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplan/internal/domain"
)

func fptr(v float64) *float64 { return &v }

// ---- Normalize -------------------------------------------------------------

func TestEntry_Normalize_CityClearsVariantFields(t *testing.T) {
	e := domain.Entry{Type: domain.EntryCity, Ref: "tokyo", Title: "stale", Lat: fptr(1), Lon: fptr(2)}

	e.Normalize()

	assert.Empty(t, e.Title)
	assert.Nil(t, e.Lat)
	assert.Nil(t, e.Lon)
	assert.Equal(t, "tokyo", e.Ref)
}

func TestEntry_Normalize_POIDefaultsTitle(t *testing.T) {
	e := domain.Entry{Type: domain.EntryPOI}

	e.Normalize()

	assert.Equal(t, "POI", e.Title)
}

func TestEntry_Normalize_POIDropsHalfPair(t *testing.T) {
	e := domain.Entry{Type: domain.EntryPOI, Title: "Ramen", Lat: fptr(35.0)}

	e.Normalize()

	assert.Nil(t, e.Lat, "a coordinate pair is only meaningful with both halves")
	assert.Nil(t, e.Lon)
}

func TestEntry_Normalize_POIKeepsFullPair(t *testing.T) {
	e := domain.Entry{Type: domain.EntryPOI, Title: "Ramen", Lat: fptr(35.0), Lon: fptr(135.0)}

	e.Normalize()

	assert.True(t, e.HasCoords())
}

func TestEntry_Normalize_NoteKeepsOnlyTitle(t *testing.T) {
	e := domain.Entry{Type: domain.EntryNote, Ref: "tokyo", Lat: fptr(1), Lon: fptr(2)}

	e.Normalize()

	assert.Equal(t, "Note", e.Title)
	assert.Empty(t, e.Ref)
	assert.Nil(t, e.Lat)
}

// ---- Validate --------------------------------------------------------------

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.Entry
		wantErr bool
	}{
		{"valid city", domain.Entry{Date: "2026-04-10", Type: domain.EntryCity, Ref: "tokyo"}, false},
		{"valid poi", domain.Entry{Date: "2026-04-10", Type: domain.EntryPOI, Title: "Ramen"}, false},
		{"valid note without title", domain.Entry{Date: "2026-04-10", Type: domain.EntryNote}, false},
		{"missing date", domain.Entry{Type: domain.EntryNote}, true},
		{"city without ref", domain.Entry{Date: "2026-04-10", Type: domain.EntryCity}, true},
		{"poi without title", domain.Entry{Date: "2026-04-10", Type: domain.EntryPOI}, true},
		{"unknown type", domain.Entry{Date: "2026-04-10", Type: "hotel"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---- CityKey ---------------------------------------------------------------

func TestCityKey(t *testing.T) {
	assert.Equal(t, "tokyo", domain.CityKey("Tokyo"))
	assert.Equal(t, "new-city", domain.CityKey("  New   City  "))
	assert.Equal(t, "", domain.CityKey("   "))
}

// ---- Budget math -----------------------------------------------------------

func TestBudgetRow_PerPerson(t *testing.T) {
	assert.Equal(t, 5000, domain.BudgetRow{Cost: 10000, People: 2}.PerPerson())
	assert.Equal(t, 3333, domain.BudgetRow{Cost: 10000, People: 3}.PerPerson(), "share rounds to nearest")
	assert.Equal(t, 10000, domain.BudgetRow{Cost: 10000, People: 0}.PerPerson(), "zero people counts the full cost")
	assert.Equal(t, 10000, domain.BudgetRow{Cost: 10000, People: 1}.PerPerson())
}

func TestTotalBudget(t *testing.T) {
	rows := []domain.BudgetRow{
		{Cost: 10000, People: 2},
		{Cost: 9000, People: 3},
	}

	totals := domain.TotalBudget(rows)

	assert.Equal(t, 19000, totals.Cost)
	assert.Equal(t, 8000, totals.PerPerson)
}

func TestTotalBudget_Empty(t *testing.T) {
	assert.Equal(t, domain.BudgetTotals{}, domain.TotalBudget(nil))
}
