package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func makeContext(remoteAddr, forwardedFor string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	c.Request = req
	return c
}

func TestClientIdentifier(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		want         string
	}{
		{"forwarded-for wins", "10.0.0.1:1234", "203.0.113.7", "203.0.113.7"},
		{"first of forwarded list", "10.0.0.1:1234", "203.0.113.7, 10.0.0.2, 10.0.0.3", "203.0.113.7"},
		{"falls back to remote addr", "192.0.2.1:5678", "", "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", "", "192.0.2.1"},
		{"unknown when nothing available", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := makeContext(tt.remoteAddr, tt.forwardedFor)
			if got := ClientIdentifier(c); got != tt.want {
				t.Errorf("ClientIdentifier() = %q, want %q", got, tt.want)
			}
		})
	}
}
