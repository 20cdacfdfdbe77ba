package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIdentifier derives the rate-limit key for a request: the first
// address in X-Forwarded-For, then the raw connection address, then the
// literal "unknown" when neither is usable.
func ClientIdentifier(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For can be a comma-separated list
		// Format: client, proxy1, proxy2, ...
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	if c.Request.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil && host != "" {
			return host
		}
		return c.Request.RemoteAddr
	}

	return "unknown"
}
