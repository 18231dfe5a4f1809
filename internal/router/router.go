// Package router assembles the Gin engine: middleware, the root route
// and the API route groups.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smartbudget/backend/internal/auth"
	"github.com/smartbudget/backend/internal/controllers"
	"github.com/smartbudget/backend/internal/controllers/healthz"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/storage"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// RootResponse confirms that the backend is running.
type RootResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"SmartBudget API is running"`
	Version string `json:"version" example:"0.1.0"`

	// Mock is true when the in-memory store is active. Mock mode is
	// only observable through response content, not through a distinct
	// status code.
	Mock bool `json:"mock"`
}

// Router controls the routes for the API.
func Router(store storage.Store, authService *auth.Service) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings. The frontend runs on a different port, so all
	// origins are allowed unless restricted explicitly.
	corsConfig := cors.DefaultConfig()
	if allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")
		corsConfig.AllowOrigins = strings.Fields(allowOrigins)
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot(store))
	r.OPTIONS("", OptionsRoot)

	healthz.RegisterRoutes(r.Group("/healthz"), store)

	api := r.Group("/api")
	controllers.RegisterAuthRoutes(api.Group("/auth"), authService, store)
	controllers.RegisterDashboardRoutes(api.Group("/dashboard"), store)
	controllers.RegisterExpenseRoutes(api.Group("/expenses"), store)
	controllers.RegisterCategoryRoutes(api.Group("/categories"), store)

	log.Info().Msg("backend startup complete")

	return r, nil
}

// GetRoot returns the handler for the liveness/info route.
func GetRoot(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RootResponse{
			Status:  "success",
			Message: "SmartBudget API is running",
			Version: version,
			Mock:    store.IsMock(),
		})
	}
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
