// Package httputil provides shared helpers for request binding,
// OPTIONS responses and error bodies.
package httputil

import (
	"github.com/gin-gonic/gin"
)

// Error is used for error responses that contain a body.
type Error struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// NewError writes an Error response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, Error{
		Error: err.Error(),
	})
}
