package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/storage"
)

type CategoryController struct {
	store storage.Store
}

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed. Categories are read-only, they are
// seeded out-of-band.
func RegisterCategoryRoutes(r *gin.RouterGroup, store storage.Store) {
	ctrl := CategoryController{store: store}

	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", ctrl.List)
}

func (ctrl CategoryController) List(c *gin.Context) {
	categories, err := ctrl.store.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
