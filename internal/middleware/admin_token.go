package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminToken gates schedule management endpoints. An empty configured token
// disables them entirely.
func AdminToken(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin API is disabled"},
			)
			return
		}

		got := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "forbidden"},
			)
			return
		}

		c.Next()
	}
}
