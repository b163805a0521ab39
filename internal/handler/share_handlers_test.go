package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplan/internal/domain"
	"tripplan/internal/handler"
	"tripplan/internal/service"
)

// mockShareServicer is a test double for handler.ShareServicer.
type mockShareServicer struct {
	create func(ctx context.Context) (service.Link, error)
	apply  func(ctx context.Context, token string) (domain.Document, error)
}

func (m *mockShareServicer) Create(ctx context.Context) (service.Link, error) {
	return m.create(ctx)
}
func (m *mockShareServicer) Apply(ctx context.Context, token string) (domain.Document, error) {
	return m.apply(ctx, token)
}

var _ handler.ShareServicer = (*mockShareServicer)(nil)

// mockTemplateServicer is a test double for handler.TemplateServicer.
type mockTemplateServicer struct {
	list  func() ([]string, error)
	apply func(ctx context.Context, name string) (domain.Document, error)
}

func (m *mockTemplateServicer) List() ([]string, error) { return m.list() }
func (m *mockTemplateServicer) Apply(ctx context.Context, name string) (domain.Document, error) {
	return m.apply(ctx, name)
}

var _ handler.TemplateServicer = (*mockTemplateServicer)(nil)

// mockBudgetServicer is a test double for handler.BudgetServicer.
type mockBudgetServicer struct {
	list     func(ctx context.Context) ([]domain.BudgetRow, domain.BudgetTotals)
	add      func(ctx context.Context, row domain.BudgetRow) (domain.BudgetRow, error)
	update   func(ctx context.Context, index int, row domain.BudgetRow) (domain.BudgetRow, error)
	deleteFn func(ctx context.Context, index int) error
}

func (m *mockBudgetServicer) List(ctx context.Context) ([]domain.BudgetRow, domain.BudgetTotals) {
	return m.list(ctx)
}
func (m *mockBudgetServicer) Add(ctx context.Context, row domain.BudgetRow) (domain.BudgetRow, error) {
	return m.add(ctx, row)
}
func (m *mockBudgetServicer) Update(ctx context.Context, index int, row domain.BudgetRow) (domain.BudgetRow, error) {
	return m.update(ctx, index, row)
}
func (m *mockBudgetServicer) Delete(ctx context.Context, index int) error {
	return m.deleteFn(ctx, index)
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

func TestCreateShareLink_201(t *testing.T) {
	svc := &mockShareServicer{
		create: func(_ context.Context) (service.Link, error) {
			return service.Link{Token: "abc", URL: "https://trip.example.com/#d=abc"}, nil
		},
	}

	rec := serve(t, handler.Deps{Share: svc}, http.MethodPost, "/api/v1/share", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var link service.Link
	decodeBody(t, rec, &link)
	assert.Equal(t, "abc", link.Token)
}

func TestApplyShareLink_400OnBadToken(t *testing.T) {
	svc := &mockShareServicer{
		apply: func(_ context.Context, _ string) (domain.Document, error) {
			return domain.Document{}, fmt.Errorf("service.ShareService.Apply: %w: not base64url", domain.ErrBadPayload)
		},
	}

	rec := serve(t, handler.Deps{Share: svc}, http.MethodPost, "/api/v1/share/apply", map[string]any{"token": "!!!"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_payload", errorCode(t, rec))
}

func TestListTemplates_200(t *testing.T) {
	svc := &mockTemplateServicer{
		list: func() ([]string, error) { return []string{"japan-classic"}, nil },
	}

	rec := serve(t, handler.Deps{Templates: svc}, http.MethodGet, "/api/v1/templates", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"templates": ["japan-classic"]}`, rec.Body.String())
}

func TestApplyTemplate_404(t *testing.T) {
	svc := &mockTemplateServicer{
		apply: func(_ context.Context, _ string) (domain.Document, error) {
			return domain.Document{}, fmt.Errorf("service.TemplateService.Apply: %w", domain.ErrNotFound)
		},
	}

	rec := serve(t, handler.Deps{Templates: svc}, http.MethodPost, "/api/v1/templates/mars/apply", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBudgetRow_BadIndex400(t *testing.T) {
	svc := &mockBudgetServicer{}

	rec := serve(t, handler.Deps{Budget: svc}, http.MethodPut, "/api/v1/budget/oops", map[string]any{"item": "X", "cost": 1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))
}

func TestListBudget_200(t *testing.T) {
	svc := &mockBudgetServicer{
		list: func(_ context.Context) ([]domain.BudgetRow, domain.BudgetTotals) {
			rows := []domain.BudgetRow{{Item: "Hotel", Cost: 30000, People: 2}}
			return rows, domain.TotalBudget(rows)
		},
	}

	rec := serve(t, handler.Deps{Budget: svc}, http.MethodGet, "/api/v1/budget", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Rows   []domain.BudgetRow  `json:"rows"`
		Totals domain.BudgetTotals `json:"totals"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 30000, resp.Totals.Cost)
	assert.Equal(t, 15000, resp.Totals.PerPerson)
}
