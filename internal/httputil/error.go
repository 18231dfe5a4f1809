package httputil

import "github.com/gin-gonic/gin"

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no expense with ID exp_001"`
}

// NewError writes a JSON error body with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}
