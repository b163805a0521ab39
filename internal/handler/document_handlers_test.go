package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplan/internal/domain"
	"tripplan/internal/handler"
	"tripplan/internal/service"
)

// mockDocumentServicer is a test double for handler.DocumentServicer.
type mockDocumentServicer struct {
	get          func(ctx context.Context) domain.Document
	export       func(ctx context.Context) ([]byte, error)
	importDoc    func(ctx context.Context, raw []byte) (domain.Document, error)
	setDeparture func(ctx context.Context, departure string) (domain.Document, error)
	countdown    func(ctx context.Context, now time.Time) service.Countdown
}

func (m *mockDocumentServicer) Get(ctx context.Context) domain.Document { return m.get(ctx) }
func (m *mockDocumentServicer) Export(ctx context.Context) ([]byte, error) {
	return m.export(ctx)
}
func (m *mockDocumentServicer) Import(ctx context.Context, raw []byte) (domain.Document, error) {
	return m.importDoc(ctx, raw)
}
func (m *mockDocumentServicer) SetDeparture(ctx context.Context, departure string) (domain.Document, error) {
	return m.setDeparture(ctx, departure)
}
func (m *mockDocumentServicer) Countdown(ctx context.Context, now time.Time) service.Countdown {
	return m.countdown(ctx, now)
}

// compile-time check: mockDocumentServicer must satisfy handler.DocumentServicer.
var _ handler.DocumentServicer = (*mockDocumentServicer)(nil)

func TestGetDocument_200(t *testing.T) {
	svc := &mockDocumentServicer{
		get: func(_ context.Context) domain.Document {
			d := domain.Default()
			d.Departure = "2026-04-05"
			return d
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodGet, "/api/v1/document", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, "2026-04-05", resp["departure"])
}

func TestExportDocument_DownloadHeaders(t *testing.T) {
	svc := &mockDocumentServicer{
		export: func(_ context.Context) ([]byte, error) {
			return []byte(`{"year": 2026}`), nil
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodGet, "/api/v1/export", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="trip-plan.json"`, rec.Header().Get("Content-Disposition"))
	assert.JSONEq(t, `{"year": 2026}`, rec.Body.String())
}

func TestImportDocument_200(t *testing.T) {
	var gotRaw []byte
	svc := &mockDocumentServicer{
		importDoc: func(_ context.Context, raw []byte) (domain.Document, error) {
			gotRaw = raw
			return domain.Default(), nil
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodPost, "/api/v1/import", map[string]any{"year": 2030})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"year": 2030}`, string(gotRaw), "the raw body goes to the service untouched")
}

func TestImportDocument_400OnBadPayload(t *testing.T) {
	svc := &mockDocumentServicer{
		importDoc: func(_ context.Context, _ []byte) (domain.Document, error) {
			return domain.Document{}, fmt.Errorf("service.DocumentService.Import: %w: not a JSON object", domain.ErrBadPayload)
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodPost, "/api/v1/import", "garbage")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_payload", errorCode(t, rec))
}

func TestSetDeparture_200(t *testing.T) {
	svc := &mockDocumentServicer{
		setDeparture: func(_ context.Context, departure string) (domain.Document, error) {
			d := domain.Default()
			d.Departure = departure
			return d, nil
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodPut, "/api/v1/document/departure", map[string]any{
		"departure": "2026-04-05",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, "2026-04-05", resp["departure"])
}

func TestGetCountdown_200(t *testing.T) {
	svc := &mockDocumentServicer{
		countdown: func(_ context.Context, now time.Time) service.Countdown {
			require.False(t, now.IsZero())
			return service.Countdown{Phase: service.CountdownUpcoming, Days: 4, Message: "4 days until departure", Year: 2026}
		},
	}

	rec := serve(t, handler.Deps{Documents: svc}, http.MethodGet, "/api/v1/countdown", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var c service.Countdown
	decodeBody(t, rec, &c)
	assert.Equal(t, "upcoming", c.Phase)
	assert.Equal(t, 4, c.Days)
}

func TestHealth_200(t *testing.T) {
	rec := serve(t, handler.Deps{}, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
