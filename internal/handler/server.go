// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (document.go, city.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"tripplan/internal/domain"
	"tripplan/internal/itinerary"
	"tripplan/internal/service"
)

// DocumentServicer defines the whole-document operations the handler depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type DocumentServicer interface {
	Get(ctx context.Context) domain.Document
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, raw []byte) (domain.Document, error)
	SetDeparture(ctx context.Context, departure string) (domain.Document, error)
	Countdown(ctx context.Context, now time.Time) service.Countdown
}

// CityServicer defines the city registry operations the handler depends on.
type CityServicer interface {
	List(ctx context.Context) []domain.City
	Get(ctx context.Context, key string) (domain.City, error)
	Add(ctx context.Context, c domain.City) (domain.City, error)
	Update(ctx context.Context, key string, c domain.City) (domain.City, error)
	Delete(ctx context.Context, key string) error
	Reorder(ctx context.Context, fromKey, toKey string) ([]domain.City, error)
	Focus(ctx context.Context, key string) (itinerary.CityFocus, error)
}

// ItineraryServicer defines the itinerary and map operations the handler
// depends on.
type ItineraryServicer interface {
	Days(ctx context.Context) []itinerary.Day
	Add(ctx context.Context, e domain.Entry) (domain.Entry, bool, error)
	Update(ctx context.Context, id string, e domain.Entry) (domain.Entry, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reorder(ctx context.Context, date string, ids []string) ([]itinerary.Day, bool, error)
	FocusDay(ctx context.Context, date string) itinerary.FocusPlan
	FocusEntry(ctx context.Context, id string) (itinerary.CityFocus, bool, error)
	ClearFocus()
	Map(ctx context.Context) itinerary.MapRender
}

// BudgetServicer defines the budget table operations the handler depends on.
type BudgetServicer interface {
	List(ctx context.Context) ([]domain.BudgetRow, domain.BudgetTotals)
	Add(ctx context.Context, row domain.BudgetRow) (domain.BudgetRow, error)
	Update(ctx context.Context, index int, row domain.BudgetRow) (domain.BudgetRow, error)
	Delete(ctx context.Context, index int) error
}

// ChecklistServicer defines the checklist operations the handler depends on.
type ChecklistServicer interface {
	List(ctx context.Context) []domain.ChecklistItem
	Add(ctx context.Context, text string) (domain.ChecklistItem, error)
	SetDone(ctx context.Context, index int, done bool) (domain.ChecklistItem, error)
	Delete(ctx context.Context, index int) error
	Clear(ctx context.Context) error
}

// NoteServicer defines the notes operations the handler depends on.
type NoteServicer interface {
	List(ctx context.Context) []domain.Note
	Add(ctx context.Context, title, tag, body string) (domain.Note, error)
	Update(ctx context.Context, index int, title, tag, body string) (domain.Note, error)
	Delete(ctx context.Context, index int) error
}

// RecommendServicer defines the recommendation feed operations the handler
// depends on.
type RecommendServicer interface {
	List(city, category string) ([]domain.Recommendation, []string)
	Add(ctx context.Context, name, date, clock string) (domain.Entry, bool, error)
	AddAll(ctx context.Context, city, category, date, clock string) ([]domain.Entry, bool, error)
}

// ShareServicer defines the share-link operations the handler depends on.
type ShareServicer interface {
	Create(ctx context.Context) (service.Link, error)
	Apply(ctx context.Context, token string) (domain.Document, error)
}

// TemplateServicer defines the template operations the handler depends on.
type TemplateServicer interface {
	List() ([]string, error)
	Apply(ctx context.Context, name string) (domain.Document, error)
}

// Deps collects the services the Server needs. A struct keeps NewServer
// readable as the API surface grows.
type Deps struct {
	Documents DocumentServicer
	Cities    CityServicer
	Itinerary ItineraryServicer
	Budget    BudgetServicer
	Checklist ChecklistServicer
	Notes     NoteServicer
	Recommend RecommendServicer
	Share     ShareServicer
	Templates TemplateServicer
}

// Server holds the handler dependencies. Methods live in resource-specific
// files but all operate on this struct.
type Server struct {
	deps Deps

	// now is injectable for countdown tests; defaults to time.Now.
	now func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps, now: time.Now}
}

// Routes mounts every API endpoint on a fresh router. Cross-cutting
// middleware (logging, CORS, rate limiting, read-only guard) is attached by
// the caller so tests can exercise handlers bare.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/document", s.GetDocument)
		r.Get("/export", s.ExportDocument)
		r.Post("/import", s.ImportDocument)
		r.Put("/document/departure", s.SetDeparture)
		r.Get("/countdown", s.GetCountdown)

		r.Route("/cities", func(r chi.Router) {
			r.Get("/", s.ListCities)
			r.Post("/", s.AddCity)
			r.Post("/reorder", s.ReorderCities)
			r.Get("/{key}", s.GetCity)
			r.Put("/{key}", s.UpdateCity)
			r.Delete("/{key}", s.DeleteCity)
		})

		r.Route("/itinerary", func(r chi.Router) {
			r.Get("/", s.ListDays)
			r.Post("/", s.AddEntry)
			r.Put("/{id}", s.UpdateEntry)
			r.Delete("/{id}", s.DeleteEntry)
			r.Post("/days/{date}/reorder", s.ReorderDay)
			r.Post("/days/{date}/focus", s.FocusDay)
		})

		r.Post("/focus/city/{key}", s.FocusCity)
		r.Post("/focus/entry/{id}", s.FocusEntry)
		r.Delete("/focus", s.ClearFocus)
		r.Get("/map", s.GetMap)

		r.Route("/budget", func(r chi.Router) {
			r.Get("/", s.ListBudget)
			r.Post("/", s.AddBudgetRow)
			r.Put("/{index}", s.UpdateBudgetRow)
			r.Delete("/{index}", s.DeleteBudgetRow)
		})

		r.Route("/checklist", func(r chi.Router) {
			r.Get("/", s.ListChecklist)
			r.Post("/", s.AddChecklistItem)
			r.Put("/{index}", s.SetChecklistDone)
			r.Delete("/{index}", s.DeleteChecklistItem)
			r.Delete("/", s.ClearChecklist)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", s.ListNotes)
			r.Post("/", s.AddNote)
			r.Put("/{index}", s.UpdateNote)
			r.Delete("/{index}", s.DeleteNote)
		})

		r.Route("/recommended", func(r chi.Router) {
			r.Get("/", s.ListRecommended)
			r.Post("/add", s.AddRecommended)
			r.Post("/add-all", s.AddAllRecommended)
		})

		r.Post("/share", s.CreateShareLink)
		r.Post("/share/apply", s.ApplyShareLink)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.ListTemplates)
			r.Post("/{name}/apply", s.ApplyTemplate)
		})
	})

	return r
}
