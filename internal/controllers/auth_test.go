package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/smartbudget/backend/internal/controllers"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) registerTestUser(t *testing.T, email string) controllers.TokenResponse {
	t.Helper()

	r := test.Request(t, suite.router, http.MethodPost, "/api/auth/register", controllers.RegisterRequest{
		Email:    email,
		Password: "hunter2",
		Name:     "Jane",
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response controllers.TokenResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestAuthRegister() {
	response := suite.registerTestUser(suite.T(), "jane@example.com")

	assert.NotEmpty(suite.T(), response.UserID)
	assert.Equal(suite.T(), "Jane", response.Username)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), int64(3600), response.ExpiresIn)
}

func (suite *TestSuiteStandard) TestAuthRegisterFails() {
	suite.registerTestUser(suite.T(), "jane@example.com")

	tests := []struct {
		name string
		body any
	}{
		{"missing email", controllers.RegisterRequest{Password: "hunter2"}},
		{"missing password", controllers.RegisterRequest{Email: "john@example.com"}},
		{"email already registered", controllers.RegisterRequest{Email: "jane@example.com", Password: "other"}},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/api/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httputil.HTTPError
			test.DecodeResponse(t, &r, &response)
			assert.NotEmpty(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthLogin() {
	registered := suite.registerTestUser(suite.T(), "jane@example.com")

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/api/auth/login", controllers.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.TokenResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), registered.UserID, response.UserID)
	assert.NotEmpty(suite.T(), response.Token)
}

func (suite *TestSuiteStandard) TestAuthLoginFails() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"unknown email", controllers.LoginRequest{Email: "nobody@example.com", Password: "hunter2"}, http.StatusUnauthorized},
		{"missing email", controllers.LoginRequest{Password: "hunter2"}, http.StatusBadRequest},
		{"missing password", controllers.LoginRequest{Email: "jane@example.com"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/api/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthVerifyToken() {
	registered := suite.registerTestUser(suite.T(), "jane@example.com")

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/api/auth/verify-token", controllers.VerifyTokenRequest{
		Token: registered.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.VerifyTokenResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Valid)
	assert.Equal(suite.T(), registered.UserID, response.UserID)
	assert.Empty(suite.T(), response.Error)
}

// TestAuthVerifyTokenInvalid verifies that an invalid token is
// reported in the body, not via the status code.
func (suite *TestSuiteStandard) TestAuthVerifyTokenInvalid() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/api/auth/verify-token", controllers.VerifyTokenRequest{
		Token: "not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.VerifyTokenResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Valid)
	assert.Empty(suite.T(), response.UserID)
	assert.NotEmpty(suite.T(), response.Error)
}

func (suite *TestSuiteStandard) TestAuthGetUser() {
	registered := suite.registerTestUser(suite.T(), "jane@example.com")

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/api/auth/user/%s", registered.UserID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user models.User
	test.DecodeResponse(suite.T(), &r, &user)
	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.Name)

	assert.NotContains(suite.T(), r.Body.String(), "password", "the password hash must never be serialized")
}

func (suite *TestSuiteStandard) TestAuthGetUserNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/api/auth/user/does-not-exist", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
