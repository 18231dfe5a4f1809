package controllers_test

import (
	"net/http"

	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesList() {
	suite.store.Seed()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)
	require.Len(suite.T(), categories, 3)

	names := make(map[string]string)
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	assert.Equal(suite.T(), "Food", names["cat_food"])
	assert.Equal(suite.T(), "Transportation", names["cat_transport"])
	assert.Equal(suite.T(), "Entertainment", names["cat_entertainment"])
}

func (suite *TestSuiteStandard) TestCategoriesEmptyList() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "/api/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesReadOnly() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/api/categories", "{}")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
