// Package version stamps the matched API version into the request context.
package version

import (
	"net/http"

	"nomen/pkg/requestcontext"
)

// APIVersion identifies a versioned route group.
type APIVersion string

// Supported versions.
const V1 APIVersion = "v1"

func (v APIVersion) String() string { return string(v) }

// Extract returns middleware that records which versioned route group
// matched. With chi the version is decided by the route itself, so mount
// this inside the group:
//
//	r.Route("/v1", func(v1 chi.Router) {
//	    v1.Use(version.Extract(version.V1))
//	    // ... routes
//	})
//
// Handlers and logs read it back with requestcontext.APIVersion.
func Extract(v APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithAPIVersion(r.Context(), v.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
