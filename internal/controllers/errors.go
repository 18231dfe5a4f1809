package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/smartbudget/backend/internal/auth"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/models"
)

// status returns the appropriate HTTP status for a store or
// validation error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrNoFields),
		errors.Is(err, models.ErrAmountNegative),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, auth.ErrMissingField):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// handleError writes the JSON error response for err.
//
// Unexpected errors are logged with the request id and replaced with a
// generic message so that no internals leak to the client.
func handleError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = models.ErrGeneral
	}

	httputil.NewError(c, s, err)
}
