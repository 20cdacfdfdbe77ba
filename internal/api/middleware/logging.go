package middleware

import (
	"time"

	"github.com/divgaze/api/internal/logging"
	"github.com/divgaze/api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request through the application logger
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			utils.ClientIdentifier(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
