// Package httpx provides shared HTTP response helpers.
package httpx

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON shape of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes a JSON error response and aborts the request.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// LogAndRespondError logs the underlying error server-side and responds
// with a short caller-visible message that does not leak internals.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}
