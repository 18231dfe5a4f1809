package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/smartbudget/backend/internal/dashboard"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/internal/storage"
)

// MetricsResponse contains only the three figures for the metric
// cards, without the per-category breakdown.
type MetricsResponse struct {
	TotalSpent  decimal.Decimal `json:"total_spent" example:"250"`
	TotalBudget decimal.Decimal `json:"total_budget" example:"400"`
	Remaining   decimal.Decimal `json:"remaining" example:"150"`
}

type DashboardController struct {
	store storage.Store
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup, store storage.Store) {
	ctrl := DashboardController{store: store}

	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", ctrl.Summary)

	r.OPTIONS("/metrics", httputil.OptionsGet)
	r.GET("/metrics", ctrl.Metrics)
}

// Summary recomputes the full dashboard summary from the store.
//
// Any store error fails the whole request, a partial summary is never
// emitted.
func (ctrl DashboardController) Summary(c *gin.Context) {
	expenses, categories, budget, err := ctrl.gather(c)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.Summarize(expenses, categories, budget))
}

// Metrics returns only the total figures.
func (ctrl DashboardController) Metrics(c *gin.Context) {
	expenses, _, budget, err := ctrl.gather(c)
	if err != nil {
		handleError(c, err)
		return
	}

	summary := dashboard.Summarize(expenses, nil, budget)
	c.JSON(http.StatusOK, MetricsResponse{
		TotalSpent:  summary.TotalSpent,
		TotalBudget: summary.TotalBudget,
		Remaining:   summary.Remaining,
	})
}

func (ctrl DashboardController) gather(c *gin.Context) ([]models.Expense, []models.Category, models.Budget, error) {
	ctx := c.Request.Context()

	expenses, err := ctrl.store.ListExpenses(ctx)
	if err != nil {
		return nil, nil, models.Budget{}, fmt.Errorf("aggregating dashboard: %w", err)
	}

	categories, err := ctrl.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, models.Budget{}, fmt.Errorf("aggregating dashboard: %w", err)
	}

	budget, err := ctrl.store.CurrentBudget(ctx)
	if err != nil {
		return nil, nil, models.Budget{}, fmt.Errorf("aggregating dashboard: %w", err)
	}

	return expenses, categories, budget, nil
}
