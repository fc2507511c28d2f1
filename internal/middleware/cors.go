// Package middleware provides reusable HTTP middleware for the Address API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
//
// If-Match must be explicitly allowed (it is not a safelisted request header),
// and ETag, Location, X-Total-Count and Retry-After must be exposed or browser
// clients cannot read them from the response.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "If-Match"},
		ExposedHeaders: []string{"ETag", "Location", "X-Total-Count", "Retry-After"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
