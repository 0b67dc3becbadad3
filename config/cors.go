package config

import (
	"os"
	"strings"
)

// AllowedOrigins builds the cross-origin allow-list: the development frontends
// plus whatever CLIENT_URL / CLIENT_URLS (comma-separated) add.
func AllowedOrigins() []string {
	origins := []string{
		"http://localhost:4200",
		"http://localhost:4201",
		"http://localhost:3000",
	}

	if v := os.Getenv("CLIENT_URL"); v != "" {
		origins = append(origins, v)
	}

	if v := os.Getenv("CLIENT_URLS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return origins
}
