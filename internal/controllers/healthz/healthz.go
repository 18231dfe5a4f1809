// Package healthz provides the health endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/internal/storage"
)

type Controller struct {
	store storage.Store
}

func RegisterRoutes(r *gin.RouterGroup, store storage.Store) {
	ctrl := Controller{store: store}

	r.OPTIONS("", Options)
	r.GET("", ctrl.Get)
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health and, if not healthy, an error.
func (ctrl Controller) Get(c *gin.Context) {
	if err := ctrl.store.Ping(c.Request.Context()); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.Status(http.StatusNoContent)
}
