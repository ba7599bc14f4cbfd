package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karishma-dev/link-sharing-app-backend/pkg/httpx"
)

// maxBodyBytes caps request bodies read by the JSON guard.
const maxBodyBytes = 1 << 20

// RequireJSON rejects requests whose body is not a JSON object before the
// handler runs. The body is re-attached for downstream binding.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			httpx.RespondError(c, http.StatusBadRequest, "failed to read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
			// A literal null unmarshals into a nil map without error.
			httpx.RespondError(c, http.StatusBadRequest, "request body must be a JSON object")
			return
		}

		c.Next()
	}
}
