package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripplan/internal/domain"
	"tripplan/internal/store"
)

// DocumentService implements whole-document operations: read, export,
// import, departure metadata, and the departure countdown.
type DocumentService struct {
	docs store.DocumentStore
}

// NewDocumentService constructs a DocumentService backed by the store.
func NewDocumentService(docs store.DocumentStore) *DocumentService {
	return &DocumentService{docs: docs}
}

// Get returns the current document (defaults when nothing is stored).
func (s *DocumentService) Get(ctx context.Context) domain.Document {
	return loadDocument(ctx, s.docs)
}

// Export returns the full document as pretty-printed JSON, suitable for a
// downloadable backup file.
func (s *DocumentService) Export(ctx context.Context) ([]byte, error) {
	d := loadDocument(ctx, s.docs)
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("service.DocumentService.Export: %w", err)
	}
	return raw, nil
}

// Import replaces the document with the uploaded payload merged over fresh
// defaults, running the same migration steps as a normal load. A payload
// that does not decode returns domain.ErrBadPayload and applies nothing.
func (s *DocumentService) Import(ctx context.Context, raw []byte) (domain.Document, error) {
	d, err := domain.Decode(raw)
	if err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Import: %w", err)
	}
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.Import: %w", err)
	}
	return d, nil
}

// SetDeparture stores the departure date string. The value is kept verbatim;
// an unparseable date just renders the countdown in its invalid phase.
func (s *DocumentService) SetDeparture(ctx context.Context, departure string) (domain.Document, error) {
	d := loadDocument(ctx, s.docs)
	d.Departure = departure
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.Document{}, fmt.Errorf("service.DocumentService.SetDeparture: %w", err)
	}
	return d, nil
}

// Countdown phases.
const (
	CountdownUnset    = "unset"    // no departure date stored
	CountdownInvalid  = "invalid"  // stored date does not parse
	CountdownUpcoming = "upcoming" // two or more days out
	CountdownTomorrow = "tomorrow"
	CountdownToday    = "today"
	CountdownDeparted = "departed" // the trip is underway
)

// Countdown is the header widget state: whole days until (or since)
// departure and the display year, which follows the departure date when one
// is set.
type Countdown struct {
	Phase   string `json:"phase"`
	Days    int    `json:"days"` // negative once departed
	Message string `json:"message"`
	Year    int    `json:"year"`
}

// Countdown computes the countdown relative to now. Dates compare at
// midnight in now's location, so the count flips at local midnight.
func (s *DocumentService) Countdown(ctx context.Context, now time.Time) Countdown {
	d := loadDocument(ctx, s.docs)

	out := Countdown{Year: d.Year}
	if d.Departure == "" {
		out.Phase = CountdownUnset
		out.Message = "Set a departure date"
		return out
	}

	target, err := time.ParseInLocation("2006-01-02", d.Departure, now.Location())
	if err != nil {
		out.Phase = CountdownInvalid
		out.Message = "Set a valid date"
		return out
	}
	out.Year = target.Year()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(target.Sub(today).Hours() / 24)
	out.Days = days

	switch {
	case days > 1:
		out.Phase = CountdownUpcoming
		out.Message = fmt.Sprintf("%d days until departure", days)
	case days == 1:
		out.Phase = CountdownTomorrow
		out.Message = "1 day until departure"
	case days == 0:
		out.Phase = CountdownToday
		out.Message = "Today, have a great flight!"
	default:
		since := -days
		plural := "s"
		if since == 1 {
			plural = ""
		}
		out.Phase = CountdownDeparted
		out.Message = fmt.Sprintf("Itinerary live, %d day%s since departure", since, plural)
	}
	return out
}
