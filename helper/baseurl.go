package helper

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// BaseURL resolves the externally visible origin for building derived links.
// APP_BASE_URL wins; otherwise the proxy protocol header and request host.
func BaseURL(c *gin.Context) string {
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}

	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + c.Request.Host
}
