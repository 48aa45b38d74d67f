package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	allowedHeaders = "Content-Type,Authorization,true"
	allowedMethods = "GET,PUT,POST,DELETE,PATCH,OPTIONS"
)

// CORS sets the allow headers on every response and answers preflight
// requests directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Headers", allowedHeaders)
		header.Set("Access-Control-Allow-Methods", allowedMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
