package domain

import "math"

// BudgetRow is one line in the budget ledger. City holds a city key; rows
// keep their key even if the city is later deleted (the key is then shown
// verbatim). Identity is positional: rows are edited and deleted by index.
type BudgetRow struct {
	City   string `json:"city"`
	Item   string `json:"item"`
	Cost   int    `json:"cost"`
	People int    `json:"people"`
}

// PerPerson returns the rounded per-person share of the row's cost.
// A row with zero people counts its full cost per person.
func (b BudgetRow) PerPerson() int {
	if b.People <= 0 {
		return b.Cost
	}
	return int(math.Round(float64(b.Cost) / float64(b.People)))
}

// BudgetTotals aggregates a ledger: the sum of row costs and the sum of
// per-person shares.
type BudgetTotals struct {
	Cost      int `json:"cost"`
	PerPerson int `json:"perPerson"`
}

// TotalBudget sums the ledger.
func TotalBudget(rows []BudgetRow) BudgetTotals {
	var t BudgetTotals
	for _, r := range rows {
		t.Cost += r.Cost
		t.PerPerson += r.PerPerson()
	}
	return t
}
