package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartbudget/backend/internal/auth"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/storage"
)

type RegisterRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"hunter2"`
	Name     string `json:"name" example:"Jane"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"hunter2"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// TokenResponse is returned after a successful registration or login.
type TokenResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in" example:"86400"`
}

type VerifyTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

type AuthController struct {
	service *auth.Service
	store   storage.Store
}

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, service *auth.Service, store storage.Store) {
	ctrl := AuthController{service: service, store: store}

	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", ctrl.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", ctrl.Login)

	r.OPTIONS("/verify-token", httputil.OptionsPost)
	r.POST("/verify-token", ctrl.VerifyToken)

	r.OPTIONS("/user/:id", httputil.OptionsGet)
	r.GET("/user/:id", ctrl.GetUser)
}

// Register creates a new user and returns a token for it.
func (ctrl AuthController) Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	user, token, err := ctrl.service.Register(c.Request.Context(), request.Email, request.Password, request.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		UserID:    user.ID,
		Username:  user.Name,
		Token:     token,
		ExpiresIn: ctrl.service.ExpiresIn(),
	})
}

// Login returns a token for an existing user.
func (ctrl AuthController) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	user, token, err := ctrl.service.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		UserID:    user.ID,
		Username:  user.Name,
		Token:     token,
		ExpiresIn: ctrl.service.ExpiresIn(),
	})
}

// VerifyToken checks a token and reports whether it is valid. The
// response status is always 200, validity is part of the body.
func (ctrl AuthController) VerifyToken(c *gin.Context) {
	var request VerifyTokenRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	identity, err := ctrl.service.Verify(request.Token)
	if err != nil {
		c.JSON(http.StatusOK, VerifyTokenResponse{
			Valid: false,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, VerifyTokenResponse{
		Valid:  true,
		UserID: identity.UserID,
	})
}

// GetUser returns a user record. The password hash is never
// serialized.
func (ctrl AuthController) GetUser(c *gin.Context) {
	user, err := ctrl.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
