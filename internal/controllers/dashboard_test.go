package controllers_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smartbudget/backend/internal/controllers"
	"github.com/smartbudget/backend/internal/dashboard"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardSeeded() {
	suite.store.Seed()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary dashboard.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	// Seeded data: 45.50 (Food) + 15.00 (Transportation) against a
	// total limit of 400
	assert.True(suite.T(), summary.TotalSpent.Equal(decimal.NewFromFloat(60.50)), "total spent is %s", summary.TotalSpent)
	assert.True(suite.T(), summary.TotalBudget.Equal(decimal.NewFromInt(400)))
	assert.True(suite.T(), summary.Remaining.Equal(decimal.NewFromFloat(339.50)), "remaining is %s", summary.Remaining)

	require.Len(suite.T(), summary.Categories, 3)
	for _, category := range summary.Categories {
		assert.Equal(suite.T(), dashboard.StatusOnTrack, category.Status, "category %s", category.Name)
	}

	require.Len(suite.T(), summary.Alerts, 1)
	assert.Equal(suite.T(), "info", summary.Alerts[0].Type)
	assert.Equal(suite.T(), "You have spent 15.1% of your total budget", summary.Alerts[0].Message)
}

func (suite *TestSuiteStandard) TestDashboardStatusChanges() {
	suite.store.Seed()

	// Push the Food category over its limit of 150
	suite.createTestExpense(suite.T(), models.ExpenseCreate{
		Amount:      amount(120),
		CategoryID:  "cat_food",
		Description: "Party catering",
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary dashboard.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	statuses := make(map[string]string)
	for _, category := range summary.Categories {
		statuses[category.ID] = category.Status
	}

	assert.Equal(suite.T(), dashboard.StatusOverBudget, statuses["cat_food"])
	assert.Equal(suite.T(), dashboard.StatusOnTrack, statuses["cat_transport"])
}

// TestDashboardEmptyStore verifies that an unseeded store produces an
// all-zero summary without alerts, in particular no division by zero
// for the percentage.
func (suite *TestSuiteStandard) TestDashboardEmptyStore() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary dashboard.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	assert.True(suite.T(), summary.TotalSpent.IsZero())
	assert.True(suite.T(), summary.Remaining.IsZero())
	assert.Empty(suite.T(), summary.Alerts)
}

func (suite *TestSuiteStandard) TestDashboardMetrics() {
	suite.store.Seed()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/dashboard/metrics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var metrics controllers.MetricsResponse
	test.DecodeResponse(suite.T(), &r, &metrics)

	assert.True(suite.T(), metrics.TotalSpent.Equal(decimal.NewFromFloat(60.50)))
	assert.True(suite.T(), metrics.TotalBudget.Equal(decimal.NewFromInt(400)))
	assert.True(suite.T(), metrics.Remaining.Equal(decimal.NewFromFloat(339.50)))
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/api/dashboard", "OPTIONS, GET"},
		{"/api/dashboard/metrics", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
