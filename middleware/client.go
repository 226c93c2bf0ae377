package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"handyhub/utils"
)

const clientIDKey = "clientID"

// ClientKeyMiddleware resolves the storefront client key for the request.
// Browsers send the key in the X-Client-ID header; when absent a fresh one
// is minted and echoed back so the caller can persist it. Every cart,
// staged booking, and checkout session is namespaced under this key.
func ClientKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(utils.ClientIDHeader)
		if clientID == "" {
			clientID = uuid.New().String()
		}
		c.Header(utils.ClientIDHeader, clientID)
		c.Set(clientIDKey, clientID)
		c.Next()
	}
}

// ClientID returns the client key resolved by ClientKeyMiddleware.
func ClientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
