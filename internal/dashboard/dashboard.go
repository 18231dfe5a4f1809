// Package dashboard computes the spending summary shown on the
// dashboard. The summary is derived data, it is recomputed on every
// request and never persisted.
package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smartbudget/backend/internal/models"
)

// Per-category status labels.
const (
	StatusOnTrack    = "On Track"
	StatusWarning    = "Warning"
	StatusOverBudget = "Over Budget"
)

// Uncategorized is the bucket for expenses without a category.
const Uncategorized = "uncategorized"

// warnThreshold is the fraction of the limit at which a category
// switches from "On Track" to "Warning".
var warnThreshold = decimal.NewFromFloat(0.8)

// CategorySummary is the spending breakdown for one category.
type CategorySummary struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Spent  decimal.Decimal `json:"spent"`
	Budget decimal.Decimal `json:"budget"`
	Status string          `json:"status"`
}

// Alert is a derived informational message accompanying a summary.
type Alert struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Summary is the full dashboard payload.
type Summary struct {
	TotalSpent  decimal.Decimal   `json:"total_spent"`
	TotalBudget decimal.Decimal   `json:"total_budget"`
	Remaining   decimal.Decimal   `json:"remaining"`
	Categories  []CategorySummary `json:"categories"`
	Alerts      []Alert           `json:"alerts"`
}

// Summarize joins expenses against categories and the current budget.
//
// Remaining is clamped at zero, it is never negative. When the total
// budget limit is zero no alert is emitted so that the percentage
// computation cannot divide by zero.
func Summarize(expenses []models.Expense, categories []models.Category, budget models.Budget) Summary {
	totalSpent := decimal.Zero
	spentPerCategory := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		totalSpent = totalSpent.Add(expense.Amount)

		categoryID := expense.CategoryID
		if categoryID == "" {
			categoryID = Uncategorized
		}
		spentPerCategory[categoryID] = spentPerCategory[categoryID].Add(expense.Amount)
	}

	breakdown := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		spent := spentPerCategory[category.ID]

		breakdown = append(breakdown, CategorySummary{
			ID:     category.ID,
			Name:   category.Name,
			Spent:  spent.Round(2),
			Budget: category.Budget.Round(2),
			Status: statusFor(spent, category.Budget),
		})
	}

	remaining := budget.TotalLimit.Sub(totalSpent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	alerts := make([]Alert, 0, 1)
	if budget.TotalLimit.IsPositive() {
		percent := totalSpent.Div(budget.TotalLimit).Mul(decimal.NewFromInt(100)).Round(1)
		alerts = append(alerts, Alert{
			Message: fmt.Sprintf("You have spent %s%% of your total budget", percent),
			Type:    "info",
		})
	}

	return Summary{
		TotalSpent:  totalSpent.Round(2),
		TotalBudget: budget.TotalLimit.Round(2),
		Remaining:   remaining.Round(2),
		Categories:  breakdown,
		Alerts:      alerts,
	}
}

// statusFor classifies spending against a limit:
// above the limit is "Over Budget", at 80% of the limit or more it is
// "Warning", everything below that is "On Track".
func statusFor(spent, limit decimal.Decimal) string {
	if spent.GreaterThan(limit) {
		return StatusOverBudget
	}

	if spent.GreaterThanOrEqual(limit.Mul(warnThreshold)) {
		return StatusWarning
	}

	return StatusOnTrack
}
