package service

import (
	"context"
	"fmt"

	"tripplan/internal/domain"
	"tripplan/internal/store"
)

// BudgetService implements the budget ledger. Rows are addressed by index;
// the ledger is short and positional identity matches the table it backs.
type BudgetService struct {
	docs store.DocumentStore
}

// NewBudgetService constructs a BudgetService.
func NewBudgetService(docs store.DocumentStore) *BudgetService {
	return &BudgetService{docs: docs}
}

// List returns the ledger and its totals.
func (s *BudgetService) List(ctx context.Context) ([]domain.BudgetRow, domain.BudgetTotals) {
	rows := loadDocument(ctx, s.docs).Budget
	return rows, domain.TotalBudget(rows)
}

// Add appends a row. An empty item or a non-positive cost is a validation
// error; people defaults to 1.
func (s *BudgetService) Add(ctx context.Context, row domain.BudgetRow) (domain.BudgetRow, error) {
	if err := validateBudgetRow(&row); err != nil {
		return domain.BudgetRow{}, fmt.Errorf("service.BudgetService.Add: %w", err)
	}

	d := loadDocument(ctx, s.docs)
	d.Budget = append(d.Budget, row)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.BudgetRow{}, fmt.Errorf("service.BudgetService.Add: %w", err)
	}
	return row, nil
}

// Update replaces the row at index.
func (s *BudgetService) Update(ctx context.Context, index int, row domain.BudgetRow) (domain.BudgetRow, error) {
	if err := validateBudgetRow(&row); err != nil {
		return domain.BudgetRow{}, fmt.Errorf("service.BudgetService.Update: %w", err)
	}

	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Budget) {
		return domain.BudgetRow{}, fmt.Errorf("service.BudgetService.Update: %w", domain.ErrNotFound)
	}
	d.Budget[index] = row
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return domain.BudgetRow{}, fmt.Errorf("service.BudgetService.Update: %w", err)
	}
	return row, nil
}

// Delete removes the row at index.
func (s *BudgetService) Delete(ctx context.Context, index int) error {
	d := loadDocument(ctx, s.docs)
	if index < 0 || index >= len(d.Budget) {
		return fmt.Errorf("service.BudgetService.Delete: %w", domain.ErrNotFound)
	}
	d.Budget = append(d.Budget[:index], d.Budget[index+1:]...)
	if err := saveDocument(ctx, s.docs, d); err != nil {
		return fmt.Errorf("service.BudgetService.Delete: %w", err)
	}
	return nil
}

func validateBudgetRow(row *domain.BudgetRow) error {
	if row.Item == "" {
		return fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	if row.Cost <= 0 {
		return fmt.Errorf("%w: cost must be positive", domain.ErrValidation)
	}
	if row.People <= 0 {
		row.People = 1
	}
	return nil
}
